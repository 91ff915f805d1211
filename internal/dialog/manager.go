package dialog

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/disha-labs/disha-backend/internal/i18n"
	"github.com/disha-labs/disha-backend/internal/knowledge"
	"github.com/disha-labs/disha-backend/internal/models"
	"github.com/disha-labs/disha-backend/internal/nlp"
	"github.com/disha-labs/disha-backend/internal/sms"
	"github.com/disha-labs/disha-backend/internal/storage"
)

// Manager runs the per-phone dialog state machine: it loads or creates
// the session, records the previous answer, picks the next question and
// composes the final knowledge-base answer once the profile is full.
//
// Turns for the same phone number are serialized; different phones run
// in parallel. Every state mutation is committed to the store before the
// reply is returned, so a restart resumes exactly at the persisted step.
type Manager struct {
	store      storage.Store
	kb         *knowledge.Base
	translator *i18n.Translator

	mu         sync.Mutex
	phoneLocks map[string]*sync.Mutex
}

// NewManager creates a dialog manager.
func NewManager(store storage.Store, kb *knowledge.Base, translator *i18n.Translator) *Manager {
	return &Manager{
		store:      store,
		kb:         kb,
		translator: translator,
		phoneLocks: make(map[string]*sync.Mutex),
	}
}

// HandleMessage runs one dialog turn for an inbound (message, phone)
// pair and returns the outbound reply text.
func (m *Manager) HandleMessage(phone, message string) (string, error) {
	lock := m.acquirePhoneLock(phone)
	defer lock.Unlock()

	session, err := m.store.GetSession(phone)
	if errors.Is(err, storage.ErrSessionNotFound) {
		session = newSession(phone, message)
		log.Printf("Session %s created for %s (intent=%s, lang=%s)",
			session.SessionID, phone, session.Intent, session.Language)
	} else if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}

	// Record the previous answer. The session-creating message only
	// selects the intent; it is never consumed as an answer, which the
	// StepStart sentinel guarantees.
	if !session.Completed && session.Step != models.StepStart {
		session.Profile[session.Step] = strings.ToLower(strings.TrimSpace(message))
	}

	intent := nlp.Intent(session.Intent)
	if q, ok := NextQuestion(intent, session.Profile); ok {
		session.Step = q.Field
		if err := m.store.SaveSession(session); err != nil {
			return "", fmt.Errorf("persist session: %w", err)
		}
		return m.translator.Translate(q.Prompt, session.Language), nil
	}

	// All fields answered (or the intent has no questions at all).
	session.Completed = true
	if err := m.store.SaveSession(session); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}

	return m.composeAnswer(session), nil
}

// Reset deletes a phone's session so the next message starts fresh.
// This is the only way a session ever ends; idle sessions never expire.
func (m *Manager) Reset(phone string) error {
	lock := m.acquirePhoneLock(phone)
	defer lock.Unlock()

	if err := m.store.DeleteSession(phone); err != nil {
		return err
	}

	// Drop the lock entry so the map stays bounded by active dialogs.
	m.mu.Lock()
	delete(m.phoneLocks, phone)
	m.mu.Unlock()
	return nil
}

// Session returns the current dialog state for a phone number.
func (m *Manager) Session(phone string) (*models.Session, error) {
	return m.store.GetSession(phone)
}

func newSession(phone, message string) *models.Session {
	return &models.Session{
		SessionID: uuid.NewString(),
		Phone:     phone,
		Intent:    string(nlp.ClassifyIntent(message)),
		Language:  nlp.DetectLanguage(message),
		Profile:   make(map[string]string),
		Step:      models.StepStart,
	}
}

func (m *Manager) composeAnswer(session *models.Session) string {
	entry, ok := m.kb.Resolve(nlp.Intent(session.Intent), segmentFor(session))
	if !ok {
		return m.translator.Translate(i18n.MsgCouldNotUnderstand, session.Language)
	}

	text := m.translator.Translate(entry.Text, session.Language)
	return sms.Summarize(sms.Compose(text, entry.Links))
}

// segmentFor derives the knowledge-base segment from the collected
// answers, scanning them in question order for determinism.
func segmentFor(session *models.Session) string {
	var parts []string
	for _, q := range Questions(nlp.Intent(session.Intent)) {
		if v, ok := session.Profile[q.Field]; ok {
			parts = append(parts, v)
		}
	}
	return nlp.ExtractSegment(strings.Join(parts, " "))
}

// acquirePhoneLock returns the phone's turn lock, locked. Reset removes
// lock entries, so after locking we verify the map still holds the same
// mutex and retry if it was swapped out underneath us.
func (m *Manager) acquirePhoneLock(phone string) *sync.Mutex {
	for {
		lock := m.phoneLock(phone)
		lock.Lock()

		m.mu.Lock()
		current := m.phoneLocks[phone]
		m.mu.Unlock()

		if current == lock {
			return lock
		}
		lock.Unlock()
	}
}

func (m *Manager) phoneLock(phone string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.phoneLocks[phone]
	if !ok {
		lock = &sync.Mutex{}
		m.phoneLocks[phone] = lock
	}
	return lock
}
