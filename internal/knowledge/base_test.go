package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disha-labs/disha-backend/internal/i18n"
	"github.com/disha-labs/disha-backend/internal/nlp"
)

func TestResolve_SegmentHit(t *testing.T) {
	kb := NewBase()

	entry, ok := kb.Resolve(nlp.IntentScholarship, nlp.SegmentFemale)
	require.True(t, ok)
	assert.Equal(t, i18n.SummaryScholarshipFemale, entry.Text)
	assert.NotEmpty(t, entry.Links)
}

func TestResolve_MissingSegmentFallsBackToGeneral(t *testing.T) {
	kb := NewBase()

	entry, ok := kb.Resolve(nlp.IntentScholarship, nlp.SegmentSenior)
	require.True(t, ok)
	assert.Equal(t, i18n.SummaryScholarshipGeneral, entry.Text)
}

func TestResolve_UnknownIntent(t *testing.T) {
	kb := NewBase()

	_, ok := kb.Resolve(nlp.IntentUnknown, nlp.SegmentGeneral)
	assert.False(t, ok)
}

// Every known intent must resolve for every segment: the general
// fallback guarantees a displayable answer with at least one link.
func TestResolve_AlwaysDisplayable(t *testing.T) {
	kb := NewBase()
	segments := []string{
		nlp.SegmentGeneral, nlp.SegmentFemale, nlp.SegmentSenior, nlp.SegmentStudent,
	}

	for _, intent := range nlp.KnownIntents() {
		for _, segment := range segments {
			entry, ok := kb.Resolve(intent, segment)
			require.True(t, ok, "intent %s segment %s", intent, segment)
			assert.NotEmpty(t, entry.Text)
			assert.NotEmpty(t, entry.Links)
		}
	}
}
