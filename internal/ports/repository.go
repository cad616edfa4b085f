package ports

import (
	"context"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

// SessionReader provides read access to sessions
type SessionReader interface {
	Get(ctx context.Context, name string) (*domain.Session, error)
	List(ctx context.Context, includeArchived bool) ([]domain.Session, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Session, error)
}

// SessionWriter provides write access to sessions
type SessionWriter interface {
	Add(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, name string) error
	SetArchived(ctx context.Context, name string, archived bool) error
	UpdateState(ctx context.Context, name string, state domain.SessionState) error
}

// SessionRepository combines all session persistence operations
type SessionRepository interface {
	SessionReader
	SessionWriter
	Close() error
}

// ProjectRepository persists projects
type ProjectRepository interface {
	AddProject(ctx context.Context, project domain.Project) error
	GetProject(ctx context.Context, idOrName string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// StatusStore persists the last computed status of each session
type StatusStore interface {
	SaveStatus(ctx context.Context, sessionID string, status domain.GitStatus) error
	LoadStatuses(ctx context.Context) (map[string]domain.GitStatus, error)
}
