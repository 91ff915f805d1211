package recommend

import (
	"fmt"

	"github.com/disha-labs/disha-backend/internal/models"
	"github.com/disha-labs/disha-backend/internal/storage"
)

// Explainer produces a human-readable justification for one matched
// opportunity. The default is a template; callers may plug in something
// richer.
type Explainer interface {
	Explain(student *models.StudentProfile, opp *models.Opportunity) string
}

// templateExplainer fills a fixed sentence from the matched fields.
type templateExplainer struct{}

func (templateExplainer) Explain(student *models.StudentProfile, opp *models.Opportunity) string {
	return fmt.Sprintf("Matches your %s education level and age %d is within %d-%d. Apply before %s.",
		opp.EducationLevel, student.Age, opp.Eligibility.MinAge, opp.Eligibility.MaxAge, opp.Deadline)
}

// Service runs the ranking pipeline: filter the catalog by eligibility,
// order by deadline, annotate each survivor with an explanation.
type Service struct {
	store     storage.Store
	explainer Explainer
}

// NewService creates a recommendation service. A nil explainer gets the
// built-in template one.
func NewService(store storage.Store, explainer Explainer) *Service {
	if explainer == nil {
		explainer = templateExplainer{}
	}
	return &Service{store: store, explainer: explainer}
}

// Recommend returns every eligible opportunity for the student, in
// deadline order.
func (s *Service) Recommend(student *models.StudentProfile) ([]*models.Recommendation, error) {
	opps, err := s.store.ListOpportunities()
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}

	eligible := make([]*models.Opportunity, 0, len(opps))
	for _, opp := range opps {
		if ok, _ := IsEligible(student, opp); ok {
			eligible = append(eligible, opp)
		}
	}

	ranked, err := RankByDeadline(eligible)
	if err != nil {
		return nil, err
	}

	recommendations := make([]*models.Recommendation, 0, len(ranked))
	for _, opp := range ranked {
		recommendations = append(recommendations, &models.Recommendation{
			ID:          opp.ID,
			Title:       opp.Title,
			Deadline:    opp.Deadline,
			Link:        opp.Link,
			Explanation: s.explainer.Explain(student, opp),
		})
	}
	return recommendations, nil
}

// Alternatives suggests replacements for a missed or ineligible
// opportunity.
func (s *Service) Alternatives(id string) ([]*models.Opportunity, error) {
	missed, err := s.store.GetOpportunity(id)
	if err != nil {
		return nil, err
	}
	all, err := s.store.ListOpportunities()
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	return SuggestAlternatives(missed, all), nil
}
