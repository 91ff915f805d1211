package nlp

import "strings"

// Intent is the canonical category of a user's request.
type Intent string

const (
	IntentJob         Intent = "job"
	IntentInternship  Intent = "internship"
	IntentScholarship Intent = "scholarship"
	IntentFellowship  Intent = "fellowship"
	IntentScheme      Intent = "scheme"
	IntentEducation   Intent = "education"
	IntentUnknown     Intent = "unknown"
)

// intentRules is evaluated top to bottom and the first match wins. The
// order is a contract: a message that mentions both a job and a
// scholarship always classifies as "job". Keyword sets are disjoint.
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentJob, []string{"job", "naukri", "employment", "vacancy"}},
	{IntentInternship, []string{"intern", "apprentice"}},
	{IntentScholarship, []string{"scholarship", "stipend"}},
	{IntentFellowship, []string{"fellowship", "research grant"}},
	{IntentScheme, []string{"scheme", "yojana"}},
	{IntentEducation, []string{"exam", "syllabus", "subject"}},
}

// ClassifyIntent maps raw text to one canonical intent. Matching is
// case-insensitive and substring based; unmatched text is IntentUnknown.
func ClassifyIntent(message string) Intent {
	msg := strings.ToLower(message)

	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.intent
			}
		}
	}

	return IntentUnknown
}

// KnownIntents returns every classifiable intent in priority order,
// excluding IntentUnknown.
func KnownIntents() []Intent {
	out := make([]Intent, 0, len(intentRules))
	for _, rule := range intentRules {
		out = append(out, rule.intent)
	}
	return out
}
