package domain

import "time"

// SessionState tracks whether a session is eligible for status sync
type SessionState string

const (
	StateActive SessionState = "active"
	StateError  SessionState = "error"
)

// Session is one working tree tracked by the engine
type Session struct {
	CreatedAt    time.Time
	IsArchived   bool
	Name         string
	ProjectID    string
	State        SessionState
	WorktreePath string
}

// Eligible reports whether the session takes part in bulk refreshes
func (s Session) Eligible() bool {
	return !s.IsArchived && s.State != StateError
}

// SessionLocation is what the engine needs to inspect a session
type SessionLocation struct {
	ProjectID    string
	WorktreePath string
}
