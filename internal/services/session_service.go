package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

// SessionEngine is the part of the status engine session lifecycle touches
type SessionEngine interface {
	Cancel(sessionID string)
	Invalidate(sessionID string)
	Refresh(sessionID string, userInitiated bool)
}

// SessionService manages the session registry and keeps the status
// engine and watcher in step with it
type SessionService struct {
	engine      SessionEngine
	notifier    ports.ChangeNotifier
	projectRepo ports.ProjectRepository
	sessionRepo ports.SessionRepository
}

// NewSessionService creates a SessionService. engine and notifier may be
// nil for commands that only edit the registry.
func NewSessionService(
	sessionRepo ports.SessionRepository,
	projectRepo ports.ProjectRepository,
	engine SessionEngine,
	notifier ports.ChangeNotifier,
) *SessionService {
	return &SessionService{
		engine:      engine,
		notifier:    notifier,
		projectRepo: projectRepo,
		sessionRepo: sessionRepo,
	}
}

// AddSessionParams holds the inputs for AddSession
type AddSessionParams struct {
	Name         string
	Project      string // ID or name
	WorktreePath string
}

// AddSession registers a session under an existing project
func (s *SessionService) AddSession(ctx context.Context, params AddSessionParams) (*domain.Session, error) {
	logging.Logger.Info("Adding session", "name", params.Name, "project", params.Project)

	project, err := s.projectRepo.GetProject(ctx, params.Project)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %q: %w", params.Project, err)
	}

	worktree := params.WorktreePath
	if worktree != "" {
		if worktree, err = filepath.Abs(worktree); err != nil {
			return nil, fmt.Errorf("invalid worktree path: %w", err)
		}
	}

	session := domain.Session{
		Name:         params.Name,
		ProjectID:    project.ID,
		State:        domain.StateActive,
		WorktreePath: worktree,
	}
	if err := s.sessionRepo.Add(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to add session: %w", err)
	}

	s.watch(session)
	if s.engine != nil {
		s.engine.Refresh(session.Name, true)
	}
	return &session, nil
}

// ImportWorktrees registers one session per worktree, named after the
// worktree directory. Names already taken are skipped.
func (s *SessionService) ImportWorktrees(ctx context.Context, project *domain.Project, worktrees []domain.Worktree) ([]domain.Session, error) {
	var imported []domain.Session
	for _, wt := range worktrees {
		session, err := s.AddSession(ctx, AddSessionParams{
			Name:         filepath.Base(wt.Path),
			Project:      project.ID,
			WorktreePath: wt.Path,
		})
		if errors.Is(err, domain.ErrSessionExists) {
			logging.Logger.Info("Skipping worktree with existing session name", "path", wt.Path)
			continue
		}
		if err != nil {
			return imported, err
		}
		imported = append(imported, *session)
	}
	return imported, nil
}

// GetSession returns a session by name
func (s *SessionService) GetSession(ctx context.Context, name string) (*domain.Session, error) {
	return s.sessionRepo.Get(ctx, name)
}

// ListSessions returns sessions, optionally including archived ones
func (s *SessionService) ListSessions(ctx context.Context, includeArchived bool) ([]domain.Session, error) {
	return s.sessionRepo.List(ctx, includeArchived)
}

// SetArchived archives or restores a session. Archiving stops all status
// work for it.
func (s *SessionService) SetArchived(ctx context.Context, name string, archived bool) error {
	session, err := s.sessionRepo.Get(ctx, name)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.SetArchived(ctx, name, archived); err != nil {
		return fmt.Errorf("failed to update archive state: %w", err)
	}

	if archived {
		s.detach(name)
		return nil
	}
	session.IsArchived = false
	s.watch(*session)
	if s.engine != nil {
		s.engine.Refresh(name, true)
	}
	return nil
}

// SetState moves a session between active and error. Sessions in error
// are skipped by bulk refreshes and no longer watched.
func (s *SessionService) SetState(ctx context.Context, name string, state domain.SessionState) error {
	session, err := s.sessionRepo.Get(ctx, name)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.UpdateState(ctx, name, state); err != nil {
		return fmt.Errorf("failed to update session state: %w", err)
	}

	if state == domain.StateError {
		s.detach(name)
		return nil
	}
	session.State = state
	s.watch(*session)
	if s.engine != nil && session.Eligible() {
		s.engine.Refresh(name, true)
	}
	return nil
}

// DeleteSession removes a session and stops all status work for it
func (s *SessionService) DeleteSession(ctx context.Context, name string) error {
	if err := s.sessionRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.detach(name)
	return nil
}

// WatchAll starts watching every eligible session and project
func (s *SessionService) WatchAll(ctx context.Context) error {
	if s.notifier == nil {
		return nil
	}

	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	for _, p := range projects {
		if err := s.notifier.WatchProject(p.ID, p.Path); err != nil {
			logging.Logger.Warn("Failed to watch project", "project", p.ID, "error", err)
		}
	}

	sessions, err := s.sessionRepo.List(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	for _, sess := range sessions {
		s.watch(sess)
	}
	return nil
}

func (s *SessionService) watch(session domain.Session) {
	if s.notifier == nil || session.WorktreePath == "" || !session.Eligible() {
		return
	}
	if err := s.notifier.Watch(session.Name, session.WorktreePath); err != nil {
		logging.Logger.Warn("Failed to watch session worktree", "session", session.Name, "error", err)
	}
}

func (s *SessionService) detach(name string) {
	if s.notifier != nil {
		s.notifier.Unwatch(name)
	}
	if s.engine != nil {
		s.engine.Cancel(name)
		s.engine.Invalidate(name)
	}
}
