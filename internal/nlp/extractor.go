package nlp

import "strings"

// Profile segments used to specialize knowledge-base answers.
const (
	SegmentFemale  = "female"
	SegmentSenior  = "senior"
	SegmentStudent = "student"
	SegmentGeneral = "general"
)

// ExtractSegment pulls a coarse profile segment out of free text. It is
// total: text that matches no rule is SegmentGeneral.
func ExtractSegment(text string) string {
	msg := strings.ToLower(text)

	switch {
	case strings.Contains(msg, "female") || strings.Contains(msg, "woman") || strings.Contains(msg, "girl"):
		return SegmentFemale
	case strings.Contains(msg, "senior") || strings.Contains(msg, "old"):
		return SegmentSenior
	case strings.Contains(msg, "student"):
		return SegmentStudent
	default:
		return SegmentGeneral
	}
}

// ExtractLocation pulls a coarse location out of free text, defaulting
// to the country-wide bucket.
func ExtractLocation(text string) string {
	msg := strings.ToLower(text)

	switch {
	case strings.Contains(msg, "bhubaneswar"):
		return "bhubaneswar"
	case strings.Contains(msg, "odisha"):
		return "odisha"
	default:
		return "india"
	}
}
