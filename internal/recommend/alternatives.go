package recommend

import "github.com/disha-labs/disha-backend/internal/models"

// maxAlternatives caps how many fallback records a missed opportunity
// gets.
const maxAlternatives = 3

// SuggestAlternatives returns up to three other opportunities sharing
// the missed record's category and education level, excluding itself,
// in original catalog order. A filtered selection, not a ranking.
func SuggestAlternatives(missed *models.Opportunity, all []*models.Opportunity) []*models.Opportunity {
	alternatives := make([]*models.Opportunity, 0, maxAlternatives)

	for _, opp := range all {
		if opp.ID == missed.ID {
			continue
		}
		if opp.Category != missed.Category || opp.EducationLevel != missed.EducationLevel {
			continue
		}
		alternatives = append(alternatives, opp)
		if len(alternatives) == maxAlternatives {
			break
		}
	}

	return alternatives
}
