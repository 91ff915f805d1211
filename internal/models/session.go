package models

import (
	"time"
)

// StepStart is the step sentinel for a session that has been created but
// has not yet asked its first question. The inbound message that created
// the session is never recorded as an answer.
const StepStart = "start"

// Session stores the dialog state for one phone number. There is at most
// one session per phone at a time; intent and language are detected once
// at creation and frozen for the session's lifetime.
type Session struct {
	ID        uint              `json:"-" gorm:"primaryKey"`
	SessionID string            `json:"session_id" gorm:"uniqueIndex"`
	Phone     string            `json:"phone" gorm:"uniqueIndex"`
	Intent    string            `json:"intent"`
	Language  string            `json:"language"`
	Profile   map[string]string `json:"profile" gorm:"serializer:json"`
	Step      string            `json:"step"`
	Completed bool              `json:"completed"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Clone returns a deep copy so callers can mutate freely without racing
// the store's own copy.
func (s *Session) Clone() *Session {
	out := *s
	out.Profile = make(map[string]string, len(s.Profile))
	for k, v := range s.Profile {
		out.Profile[k] = v
	}
	return &out
}
