package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

// ErrProjectHasSessions is returned when deleting a project still in use
var ErrProjectHasSessions = errors.New("project still has sessions")

// ProjectService manages registered projects
type ProjectService struct {
	detector    ports.MainBranchDetector
	locator     ports.WorktreeLocator
	projectRepo ports.ProjectRepository
	sessionRepo ports.SessionReader
}

// NewProjectService creates a ProjectService
func NewProjectService(
	projectRepo ports.ProjectRepository,
	sessionRepo ports.SessionReader,
	detector ports.MainBranchDetector,
	locator ports.WorktreeLocator,
) *ProjectService {
	return &ProjectService{
		detector:    detector,
		locator:     locator,
		projectRepo: projectRepo,
		sessionRepo: sessionRepo,
	}
}

// AddProjectParams holds the inputs for AddProject
type AddProjectParams struct {
	MainBranch string
	Name       string
	Path       string
}

// AddProject registers a repository. A worktree path is normalized to its
// main repository. The main branch is detected now to validate it, but only
// stored when given explicitly.
func (s *ProjectService) AddProject(ctx context.Context, params AddProjectParams) (*domain.Project, error) {
	path, err := filepath.Abs(params.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid project path: %w", err)
	}

	mainPath, err := s.locator.MainRepoPath(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s is not a git repository: %w", path, err)
	}
	if mainPath != path {
		logging.Logger.Info("Using main repository instead of worktree", "given", path, "main", mainPath)
		path = mainPath
	}

	if params.MainBranch == "" {
		branch, err := s.detector.DetectMainBranch(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to detect main branch of %s: %w", path, err)
		}
		logging.Logger.Info("Detected main branch for new project", "path", path, "branch", branch)
	}

	name := params.Name
	if name == "" {
		name = filepath.Base(path)
	}

	project := domain.Project{
		ID:         uuid.New().String(),
		MainBranch: params.MainBranch,
		Name:       name,
		Path:       path,
	}
	if err := s.projectRepo.AddProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to add project: %w", err)
	}
	return &project, nil
}

// GetProject finds a project by ID or name
func (s *ProjectService) GetProject(ctx context.Context, idOrName string) (*domain.Project, error) {
	return s.projectRepo.GetProject(ctx, idOrName)
}

// ListProjects returns every project
func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.ListProjects(ctx)
}

// DeleteProject removes a project with no sessions left
func (s *ProjectService) DeleteProject(ctx context.Context, idOrName string) error {
	project, err := s.projectRepo.GetProject(ctx, idOrName)
	if err != nil {
		return err
	}
	sessions, err := s.sessionRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("failed to list project sessions: %w", err)
	}
	if len(sessions) > 0 {
		return fmt.Errorf("%w: %d", ErrProjectHasSessions, len(sessions))
	}
	return s.projectRepo.DeleteProject(ctx, project.ID)
}

// DiscoverWorktrees lists the project's worktrees that are not yet
// registered as sessions. The main checkout is never returned.
func (s *ProjectService) DiscoverWorktrees(ctx context.Context, idOrName string) (*domain.Project, []domain.Worktree, error) {
	project, err := s.projectRepo.GetProject(ctx, idOrName)
	if err != nil {
		return nil, nil, err
	}

	worktrees, err := s.locator.ListWorktrees(ctx, project.Path)
	if err != nil {
		return nil, nil, err
	}

	sessions, err := s.sessionRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list project sessions: %w", err)
	}
	known := make(map[string]bool, len(sessions))
	for _, sess := range sessions {
		known[filepath.Clean(sess.WorktreePath)] = true
	}

	var found []domain.Worktree
	for _, wt := range worktrees {
		p := filepath.Clean(wt.Path)
		if p == filepath.Clean(project.Path) || known[p] {
			continue
		}
		found = append(found, wt)
	}
	logging.Logger.Debug("Discovered worktrees", "project", project.ID, "new", len(found), "total", len(worktrees))
	return project, found, nil
}
