package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSegment(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I am a female graduate", SegmentFemale},
		{"woman from odisha", SegmentFemale},
		{"senior citizen", SegmentSenior},
		{"college student", SegmentStudent},
		{"graduate engineer", SegmentGeneral},
		{"", SegmentGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractSegment(tt.text), "text: %q", tt.text)
	}
}

// Female outranks student when both are present; the rules short-circuit
// in a fixed order.
func TestExtractSegment_RuleOrder(t *testing.T) {
	assert.Equal(t, SegmentFemale, ExtractSegment("female student"))
	assert.Equal(t, SegmentSenior, ExtractSegment("old student"))
}

func TestExtractLocation(t *testing.T) {
	assert.Equal(t, "bhubaneswar", ExtractLocation("I live in Bhubaneswar"))
	assert.Equal(t, "odisha", ExtractLocation("from rural Odisha"))
	assert.Equal(t, "india", ExtractLocation("from Pune"))
}
