package storage

import (
	"errors"

	"github.com/disha-labs/disha-backend/internal/models"
)

// Sentinel errors shared by every Store implementation.
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrOpportunityNotFound = errors.New("opportunity not found")
)

// Store persists dialog sessions and the opportunity catalog.
//
// Session writes are whole-record upserts keyed by phone number and must
// be durably committed before they return: a write that errors is never
// considered committed, and a successful write survives a process
// restart. Serializing turns of the same phone is the dialog manager's
// job, not the store's.
type Store interface {
	// Session operations
	GetSession(phone string) (*models.Session, error)
	SaveSession(session *models.Session) error
	DeleteSession(phone string) error
	ListSessions() ([]*models.Session, error)

	// Opportunity catalog operations
	SaveOpportunity(opp *models.Opportunity) error
	GetOpportunity(id string) (*models.Opportunity, error)
	// ListOpportunities returns records in insertion order, which the
	// ranker's stable sort preserves for equal deadlines.
	ListOpportunities() ([]*models.Opportunity, error)
	DeleteOpportunity(id string) error
}
