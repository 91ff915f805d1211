package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/disha-labs/disha-backend/internal/models"
)

// MemoryStore holds all data in memory, for development and tests.
type MemoryStore struct {
	sessions      map[string]*models.Session
	opportunities map[string]*models.Opportunity
	oppOrder      []string

	sessionMu sync.RWMutex
	oppMu     sync.RWMutex
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:      make(map[string]*models.Session),
		opportunities: make(map[string]*models.Opportunity),
	}
}

func (m *MemoryStore) GetSession(phone string) (*models.Session, error) {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	session, exists := m.sessions[phone]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (m *MemoryStore) SaveSession(session *models.Session) error {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	stored := session.Clone()
	if existing, ok := m.sessions[session.Phone]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = time.Now()

	m.sessions[session.Phone] = stored
	return nil
}

func (m *MemoryStore) DeleteSession(phone string) error {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	if _, exists := m.sessions[phone]; !exists {
		return ErrSessionNotFound
	}
	delete(m.sessions, phone)
	return nil
}

func (m *MemoryStore) ListSessions() ([]*models.Session, error) {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	sessions := make([]*models.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session.Clone())
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Phone < sessions[j].Phone
	})
	return sessions, nil
}

func (m *MemoryStore) SaveOpportunity(opp *models.Opportunity) error {
	m.oppMu.Lock()
	defer m.oppMu.Unlock()

	stored := *opp
	if existing, ok := m.opportunities[opp.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = time.Now()
		}
		m.oppOrder = append(m.oppOrder, opp.ID)
	}
	stored.UpdatedAt = time.Now()

	m.opportunities[opp.ID] = &stored
	return nil
}

func (m *MemoryStore) GetOpportunity(id string) (*models.Opportunity, error) {
	m.oppMu.RLock()
	defer m.oppMu.RUnlock()

	opp, exists := m.opportunities[id]
	if !exists {
		return nil, ErrOpportunityNotFound
	}
	out := *opp
	return &out, nil
}

func (m *MemoryStore) ListOpportunities() ([]*models.Opportunity, error) {
	m.oppMu.RLock()
	defer m.oppMu.RUnlock()

	opps := make([]*models.Opportunity, 0, len(m.oppOrder))
	for _, id := range m.oppOrder {
		if opp, ok := m.opportunities[id]; ok {
			out := *opp
			opps = append(opps, &out)
		}
	}
	return opps, nil
}

func (m *MemoryStore) DeleteOpportunity(id string) error {
	m.oppMu.Lock()
	defer m.oppMu.Unlock()

	if _, exists := m.opportunities[id]; !exists {
		return ErrOpportunityNotFound
	}
	delete(m.opportunities, id)
	for i, oid := range m.oppOrder {
		if oid == id {
			m.oppOrder = append(m.oppOrder[:i], m.oppOrder[i+1:]...)
			break
		}
	}
	return nil
}
