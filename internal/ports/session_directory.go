package ports

import (
	"context"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

// SessionDirectory resolves sessions to the location the engine inspects
type SessionDirectory interface {
	// Resolve returns domain.ErrSessionNotFound or domain.ErrNoWorktree
	// when there is nothing to inspect
	Resolve(ctx context.Context, sessionID string) (*domain.SessionLocation, error)
	ListSessions(ctx context.Context, includeArchived bool) ([]domain.Session, error)
}

// ProjectDirectory returns the main branch sessions of a project are compared against
type ProjectDirectory interface {
	MainBranch(ctx context.Context, projectID string) (string, error)
}
