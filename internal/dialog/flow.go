package dialog

import (
	"github.com/disha-labs/disha-backend/internal/i18n"
	"github.com/disha-labs/disha-backend/internal/nlp"
)

// Question pairs a profile field with the prompt that collects it.
type Question struct {
	Field  string
	Prompt i18n.Key
}

// questionFlow lists, per intent, the profile fields a user must answer
// and the order they are asked in. The order is the only valid question
// sequence. Static, immutable at runtime.
var questionFlow = map[nlp.Intent][]Question{

	nlp.IntentJob: {
		{Field: "age", Prompt: i18n.PromptAge},
		{Field: "education", Prompt: i18n.PromptEducationWork},
		{Field: "location", Prompt: i18n.PromptCityState},
		{Field: "work_mode", Prompt: i18n.PromptWorkMode},
	},

	nlp.IntentInternship: {
		{Field: "education", Prompt: i18n.PromptStudyClass},
		{Field: "field", Prompt: i18n.PromptField},
		{Field: "location", Prompt: i18n.PromptCityState},
		{Field: "work_mode", Prompt: i18n.PromptWorkMode},
	},

	nlp.IntentScholarship: {
		{Field: "education", Prompt: i18n.PromptStudyClass},
		{Field: "category", Prompt: i18n.PromptCategory},
		{Field: "gender", Prompt: i18n.PromptGender},
		{Field: "location", Prompt: i18n.PromptState},
	},

	nlp.IntentFellowship: {
		{Field: "education", Prompt: i18n.PromptQualification},
		{Field: "field", Prompt: i18n.PromptFieldSubject},
		{Field: "gender", Prompt: i18n.PromptGender},
		{Field: "location", Prompt: i18n.PromptState},
	},

	nlp.IntentEducation: {
		{Field: "class", Prompt: i18n.PromptClassSemester},
		{Field: "subject", Prompt: i18n.PromptSubject},
	},

	nlp.IntentScheme: {
		{Field: "age", Prompt: i18n.PromptAge},
		{Field: "gender", Prompt: i18n.PromptGender},
		{Field: "category", Prompt: i18n.PromptCategory},
		{Field: "income", Prompt: i18n.PromptIncome},
		{Field: "location", Prompt: i18n.PromptState},
	},
}

// Questions returns the ordered question list for an intent. Unknown
// intents have no questions.
func Questions(intent nlp.Intent) []Question {
	return questionFlow[intent]
}

// NextQuestion scans the intent's question list in order and returns the
// first field missing from profile. ok is false once every field is
// answered (or the intent has no flow).
func NextQuestion(intent nlp.Intent, profile map[string]string) (Question, bool) {
	for _, q := range questionFlow[intent] {
		if _, answered := profile[q.Field]; !answered {
			return q, true
		}
	}
	return Question{}, false
}
