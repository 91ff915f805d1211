package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disha-labs/disha-backend/internal/models"
)

func testSession(phone string) *models.Session {
	return &models.Session{
		SessionID: "sess-" + phone,
		Phone:     phone,
		Intent:    "scholarship",
		Language:  "en",
		Profile:   map[string]string{},
		Step:      models.StepStart,
	}
}

func TestMemoryStore_SessionRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.SaveSession(testSession("9000000001")))

	session, err := store.GetSession("9000000001")
	require.NoError(t, err)
	assert.Equal(t, "scholarship", session.Intent)
	assert.Equal(t, models.StepStart, session.Step)
}

func TestMemoryStore_SessionNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetSession("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// Saves are whole-record upserts keyed by phone.
func TestMemoryStore_SessionUpsert(t *testing.T) {
	store := NewMemoryStore()

	first := testSession("9000000001")
	require.NoError(t, store.SaveSession(first))

	second := testSession("9000000001")
	second.Step = "education"
	second.Profile = map[string]string{"education": "btech"}
	require.NoError(t, store.SaveSession(second))

	got, err := store.GetSession("9000000001")
	require.NoError(t, err)
	assert.Equal(t, "education", got.Step)
	assert.Equal(t, "btech", got.Profile["education"])

	sessions, err := store.ListSessions()
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

// Mutating a returned session must not reach into the store's copy.
func TestMemoryStore_SessionIsolation(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveSession(testSession("9000000001")))

	got, err := store.GetSession("9000000001")
	require.NoError(t, err)
	got.Profile["education"] = "mutated"

	fresh, err := store.GetSession("9000000001")
	require.NoError(t, err)
	assert.Empty(t, fresh.Profile)
}

func TestMemoryStore_DeleteSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveSession(testSession("9000000001")))

	require.NoError(t, store.DeleteSession("9000000001"))
	_, err := store.GetSession("9000000001")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, store.DeleteSession("9000000001"), ErrSessionNotFound)
}

func TestMemoryStore_OpportunitiesKeepInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, store.SaveOpportunity(&models.Opportunity{
			ID: id, Category: "job", EducationLevel: "graduate", Deadline: "2026-01-01",
		}))
	}

	opps, err := store.ListOpportunities()
	require.NoError(t, err)
	require.Len(t, opps, 3)
	assert.Equal(t, "C", opps[0].ID)
	assert.Equal(t, "A", opps[1].ID)
	assert.Equal(t, "B", opps[2].ID)
}

// Upserting an existing record keeps its position in the catalog order.
func TestMemoryStore_OpportunityUpsertKeepsOrder(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveOpportunity(&models.Opportunity{ID: "A", Title: "old"}))
	require.NoError(t, store.SaveOpportunity(&models.Opportunity{ID: "B", Title: "b"}))
	require.NoError(t, store.SaveOpportunity(&models.Opportunity{ID: "A", Title: "new"}))

	opps, err := store.ListOpportunities()
	require.NoError(t, err)
	require.Len(t, opps, 2)
	assert.Equal(t, "A", opps[0].ID)
	assert.Equal(t, "new", opps[0].Title)
}

func TestMemoryStore_DeleteOpportunity(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveOpportunity(&models.Opportunity{ID: "A"}))
	require.NoError(t, store.SaveOpportunity(&models.Opportunity{ID: "B"}))

	require.NoError(t, store.DeleteOpportunity("A"))

	opps, err := store.ListOpportunities()
	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.Equal(t, "B", opps[0].ID)

	assert.ErrorIs(t, store.DeleteOpportunity("A"), ErrOpportunityNotFound)
	_, err = store.GetOpportunity("A")
	assert.ErrorIs(t, err, ErrOpportunityNotFound)
}
