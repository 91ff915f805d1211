package sms

import "strings"

// MaxChars is the hard outbound message budget. Summarize never returns
// more characters than this.
const MaxChars = 160

const (
	linksMarker = " Links: "
	ellipsis    = "..."
)

// Compose joins an answer text with its portal links using the marker
// Summarize splits on, so links survive truncation verbatim.
func Compose(text string, links []string) string {
	if len(links) == 0 {
		return text
	}
	return text + linksMarker + strings.Join(links, ", ")
}

// Summarize enforces the outbound length budget. Text within budget is
// returned unchanged. Over budget, the links suffix (marker included) is
// kept verbatim and only the leading text is truncated. Lengths are
// counted in runes so multibyte scripts are never split mid-character.
func Summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxChars {
		return text
	}

	idx := strings.Index(text, linksMarker)
	if idx < 0 {
		// No links to protect: flat truncation.
		return string(runes[:MaxChars-len(ellipsis)]) + ellipsis
	}

	main := []rune(text[:idx])
	suffix := text[idx:]

	budget := MaxChars - len([]rune(suffix)) - len(ellipsis)
	if budget < 0 {
		budget = 0
	}
	if budget > len(main) {
		budget = len(main)
	}

	return string(main[:budget]) + ellipsis + suffix
}
