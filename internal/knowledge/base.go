package knowledge

import (
	"github.com/disha-labs/disha-backend/internal/i18n"
	"github.com/disha-labs/disha-backend/internal/nlp"
)

// Entry is one answer: a localized summary plus the portal links that
// back it. Links are never empty for a real entry.
type Entry struct {
	Text  i18n.Key
	Links []string
}

// FallbackPortal is the generic portal linked when an intent has no
// matching segment entry at all.
const FallbackPortal = "https://www.myscheme.gov.in"

// Base is the static knowledge base, loaded once at startup and never
// mutated. Resolution order per intent: requested segment, then
// "general", then an apology entry pointing at the national portal.
type Base struct {
	entries map[nlp.Intent]map[string]Entry
}

// NewBase builds the built-in knowledge base.
func NewBase() *Base {
	return &Base{entries: map[nlp.Intent]map[string]Entry{
		nlp.IntentJob: {
			nlp.SegmentGeneral: {
				Text:  i18n.SummaryJobGeneral,
				Links: []string{"https://www.sarkariresult.com", "https://www.freejobalert.com"},
			},
			nlp.SegmentStudent: {
				Text:  i18n.SummaryJobStudent,
				Links: []string{"https://www.sarkariresult.com/student-jobs"},
			},
		},
		nlp.IntentInternship: {
			nlp.SegmentGeneral: {
				Text:  i18n.SummaryInternshipGeneral,
				Links: []string{"https://internship.aicte-india.org"},
			},
			nlp.SegmentStudent: {
				Text:  i18n.SummaryInternshipStudent,
				Links: []string{"https://internship.aicte-india.org/student"},
			},
		},
		nlp.IntentScholarship: {
			nlp.SegmentGeneral: {
				Text:  i18n.SummaryScholarshipGeneral,
				Links: []string{"https://scholarships.gov.in", "https://www.buddy4study.com"},
			},
			nlp.SegmentFemale: {
				Text:  i18n.SummaryScholarshipFemale,
				Links: []string{"https://scholarships.gov.in", "https://www.buddy4study.com/scholarships-for-girls"},
			},
		},
		nlp.IntentFellowship: {
			nlp.SegmentGeneral: {
				Text:  i18n.SummaryFellowshipGeneral,
				Links: []string{"https://www.ugc.ac.in", "https://www.dst.gov.in"},
			},
		},
		nlp.IntentScheme: {
			nlp.SegmentGeneral: {
				Text:  i18n.SummarySchemeGeneral,
				Links: []string{"https://www.myscheme.gov.in"},
			},
			nlp.SegmentFemale: {
				Text:  i18n.SummarySchemeFemale,
				Links: []string{"https://www.myscheme.gov.in/search/category/Women%20and%20Child"},
			},
			nlp.SegmentSenior: {
				Text:  i18n.SummarySchemeSenior,
				Links: []string{"https://www.myscheme.gov.in/search/category/Social%20welfare"},
			},
		},
		nlp.IntentEducation: {
			nlp.SegmentGeneral: {
				Text:  i18n.SummaryEducationGeneral,
				Links: []string{"https://diksha.gov.in", "https://ncert.nic.in"},
			},
		},
	}}
}

// Resolve looks up the answer for (intent, segment). The second return
// is false only when the intent itself is unknown to the base; a known
// intent always yields a displayable entry.
func (b *Base) Resolve(intent nlp.Intent, segment string) (Entry, bool) {
	segments, ok := b.entries[intent]
	if !ok {
		return Entry{}, false
	}

	if entry, ok := segments[segment]; ok {
		return entry, true
	}
	if entry, ok := segments[nlp.SegmentGeneral]; ok {
		return entry, true
	}

	return Entry{Text: i18n.MsgApology, Links: []string{FallbackPortal}}, true
}
