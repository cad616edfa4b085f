package services

import (
	"context"
	"path/filepath"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

// RefEngine is the part of the status engine branch movements drive
type RefEngine interface {
	NotifyMainBranchUpdated(ctx context.Context, projectID, updatedBy string) domain.RefreshSummary
	Refresh(sessionID string, userInitiated bool)
}

// RefRouter turns branch ref movements reported by the watcher into
// engine work for the sessions they affect
type RefRouter struct {
	engine   RefEngine
	locator  ports.WorktreeLocator
	mains    ports.ProjectDirectory
	projects ports.ProjectRepository
	sessions ports.SessionReader
}

// NewRefRouter creates a RefRouter
func NewRefRouter(
	engine RefEngine,
	mains ports.ProjectDirectory,
	projects ports.ProjectRepository,
	sessions ports.SessionReader,
	locator ports.WorktreeLocator,
) *RefRouter {
	return &RefRouter{
		engine:   engine,
		locator:  locator,
		mains:    mains,
		projects: projects,
		sessions: sessions,
	}
}

// HandleRefChange reacts to branch moving in projectID. A moved main
// branch, or a packed-refs rewrite (empty branch), reconciles the whole
// project; any other branch refreshes the sessions checked out on it.
func (r *RefRouter) HandleRefChange(ctx context.Context, projectID, branch string) {
	main, err := r.mains.MainBranch(ctx, projectID)
	if err != nil {
		logging.Logger.Warn("Cannot resolve main branch for ref change", "project", projectID, "error", err)
		return
	}

	if branch == "" || branch == main {
		logging.Logger.Info("Main branch moved", "project", projectID, "branch", main)
		r.engine.NotifyMainBranchUpdated(ctx, projectID, "")
		return
	}

	for _, name := range r.sessionsOnBranch(ctx, projectID, branch) {
		r.engine.Refresh(name, false)
	}
}

// sessionsOnBranch lists eligible sessions whose worktree has branch
// checked out. Every eligible session of the project is returned when the
// worktree layout cannot be read.
func (r *RefRouter) sessionsOnBranch(ctx context.Context, projectID, branch string) []string {
	sessions, err := r.sessions.ListByProject(ctx, projectID)
	if err != nil {
		logging.Logger.Warn("Failed to list project sessions", "project", projectID, "error", err)
		return nil
	}

	var eligible []domain.Session
	for _, s := range sessions {
		if s.Eligible() && s.WorktreePath != "" {
			eligible = append(eligible, s)
		}
	}

	project, err := r.projects.GetProject(ctx, projectID)
	if err != nil {
		return sessionNames(eligible)
	}
	worktrees, err := r.locator.ListWorktrees(ctx, project.Path)
	if err != nil {
		logging.Logger.Debug("Worktree list unavailable, refreshing whole project", "project", projectID, "error", err)
		return sessionNames(eligible)
	}

	onBranch := make(map[string]bool)
	for _, wt := range worktrees {
		if wt.Branch == branch {
			onBranch[filepath.Clean(wt.Path)] = true
		}
	}

	var names []string
	for _, s := range eligible {
		if onBranch[filepath.Clean(s.WorktreePath)] {
			names = append(names, s.Name)
		}
	}
	return names
}

func sessionNames(sessions []domain.Session) []string {
	names := make([]string, len(sessions))
	for i, s := range sessions {
		names[i] = s.Name
	}
	return names
}
