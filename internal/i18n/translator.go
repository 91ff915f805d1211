package i18n

import "github.com/disha-labs/disha-backend/internal/nlp"

// Key identifies one translatable phrase. Lookups are keyed symbolically
// so rewording the English copy never breaks a locale table.
type Key string

// Question prompts.
const (
	PromptAge           Key = "prompt.age"
	PromptEducationWork Key = "prompt.education_experience"
	PromptCityState     Key = "prompt.city_state"
	PromptWorkMode      Key = "prompt.work_mode"
	PromptStudyClass    Key = "prompt.study_class"
	PromptField         Key = "prompt.field"
	PromptCategory      Key = "prompt.category"
	PromptGender        Key = "prompt.gender"
	PromptState         Key = "prompt.state"
	PromptQualification Key = "prompt.qualification"
	PromptFieldSubject  Key = "prompt.field_subject"
	PromptClassSemester Key = "prompt.class_semester"
	PromptSubject       Key = "prompt.subject"
	PromptIncome        Key = "prompt.income"
)

// Knowledge-base summaries.
const (
	SummaryJobGeneral         Key = "summary.job.general"
	SummaryJobStudent         Key = "summary.job.student"
	SummaryInternshipGeneral  Key = "summary.internship.general"
	SummaryInternshipStudent  Key = "summary.internship.student"
	SummaryScholarshipGeneral Key = "summary.scholarship.general"
	SummaryScholarshipFemale  Key = "summary.scholarship.female"
	SummaryFellowshipGeneral  Key = "summary.fellowship.general"
	SummarySchemeGeneral      Key = "summary.scheme.general"
	SummarySchemeFemale       Key = "summary.scheme.female"
	SummarySchemeSenior       Key = "summary.scheme.senior"
	SummaryEducationGeneral   Key = "summary.education.general"
)

// Service messages.
const (
	MsgCouldNotUnderstand Key = "msg.could_not_understand"
	MsgApology            Key = "msg.apology"
)

// Translator resolves (locale, key) pairs against immutable phrase
// tables loaded once at startup. English is the authoring locale; any
// miss in a regional table falls back to the English phrase.
type Translator struct {
	tables map[string]map[Key]string
}

// NewTranslator builds a translator over the built-in phrase tables.
func NewTranslator() *Translator {
	return &Translator{tables: phraseTables}
}

// Translate returns the phrase for key in the given locale. A locale or
// key miss silently falls back to English; an unknown key renders as its
// symbolic name rather than failing.
func (t *Translator) Translate(key Key, locale string) string {
	if locale != nlp.LocaleEnglish {
		if table, ok := t.tables[locale]; ok {
			if phrase, ok := table[key]; ok {
				return phrase
			}
		}
	}

	if phrase, ok := t.tables[nlp.LocaleEnglish][key]; ok {
		return phrase
	}
	return string(key)
}

// Has reports whether locale has its own phrase for key.
func (t *Translator) Has(key Key, locale string) bool {
	table, ok := t.tables[locale]
	if !ok {
		return false
	}
	_, ok = table[key]
	return ok
}
