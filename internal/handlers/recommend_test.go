package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disha-labs/disha-backend/internal/models"
	"github.com/disha-labs/disha-backend/internal/recommend"
	"github.com/disha-labs/disha-backend/internal/storage"
)

func newRecommendTestApp(t *testing.T, opps ...*models.Opportunity) *fiber.App {
	t.Helper()

	store := storage.NewMemoryStore()
	for _, opp := range opps {
		require.NoError(t, store.SaveOpportunity(opp))
	}

	handler := NewRecommendHandler(recommend.NewService(store, nil))
	app := fiber.New()
	app.Post("/recommend", handler.Recommend)
	app.Get("/recommend/:id/alternatives", handler.Alternatives)
	return app
}

func TestRecommend_ReturnsRankedEligible(t *testing.T) {
	app := newRecommendTestApp(t,
		&models.Opportunity{
			ID: "late", Title: "Late Scholarship", Category: "scholarship",
			EducationLevel: "graduate",
			Eligibility:    models.AgeRange{MinAge: 18, MaxAge: 25},
			Deadline:       "2026-12-01", Link: "https://example.org/late",
		},
		&models.Opportunity{
			ID: "early", Title: "Early Scholarship", Category: "scholarship",
			EducationLevel: "graduate",
			Eligibility:    models.AgeRange{MinAge: 18, MaxAge: 25},
			Deadline:       "2026-09-01", Link: "https://example.org/early",
		},
		&models.Opportunity{
			ID: "wrong-level", Title: "PhD Fellowship", Category: "fellowship",
			EducationLevel: "postgraduate",
			Eligibility:    models.AgeRange{MinAge: 18, MaxAge: 30},
			Deadline:       "2026-10-01",
		},
	)

	req := httptest.NewRequest("POST", "/recommend",
		strings.NewReader(`{"age": 21, "education_level": "graduate"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Count           int                      `json:"count"`
		Recommendations []*models.Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 2, out.Count)
	assert.Equal(t, "early", out.Recommendations[0].ID)
	assert.Equal(t, "late", out.Recommendations[1].ID)
	assert.NotEmpty(t, out.Recommendations[0].Explanation)
}

func TestRecommend_MissingProfileFields(t *testing.T) {
	app := newRecommendTestApp(t)

	for _, payload := range []string{
		`{"education_level": "graduate"}`,
		`{"age": 21}`,
	} {
		req := httptest.NewRequest("POST", "/recommend", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, payload)
	}
}

func TestRecommend_InvalidDeadlineIs422(t *testing.T) {
	app := newRecommendTestApp(t, &models.Opportunity{
		ID: "bad", Title: "Broken", Category: "job", EducationLevel: "graduate",
		Eligibility: models.AgeRange{MinAge: 18, MaxAge: 30},
		Deadline:    "next week",
	})

	req := httptest.NewRequest("POST", "/recommend",
		strings.NewReader(`{"age": 21, "education_level": "graduate"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAlternatives_CapsAtThree(t *testing.T) {
	opps := []*models.Opportunity{
		{ID: "missed", Category: "job", EducationLevel: "graduate", Deadline: "2026-01-01"},
	}
	for _, id := range []string{"a", "b", "c", "d"} {
		opps = append(opps, &models.Opportunity{
			ID: id, Category: "job", EducationLevel: "graduate", Deadline: "2026-12-01",
		})
	}
	app := newRecommendTestApp(t, opps...)

	resp, err := app.Test(httptest.NewRequest("GET", "/recommend/missed/alternatives", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Count        int                   `json:"count"`
		Alternatives []*models.Opportunity `json:"alternatives"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 3, out.Count)
}

func TestAlternatives_UnknownOpportunity(t *testing.T) {
	app := newRecommendTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/recommend/ghost/alternatives", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
