package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

// MainBranchResolver implements ports.ProjectDirectory. A project's stored
// main branch wins; otherwise the branch is detected once and memoized.
type MainBranchResolver struct {
	detector ports.MainBranchDetector
	flights  singleflight.Group
	mu       sync.RWMutex
	projects ports.ProjectRepository
	resolved map[string]string
}

var _ ports.ProjectDirectory = (*MainBranchResolver)(nil)

// NewMainBranchResolver creates a MainBranchResolver
func NewMainBranchResolver(projects ports.ProjectRepository, detector ports.MainBranchDetector) *MainBranchResolver {
	return &MainBranchResolver{
		detector: detector,
		projects: projects,
		resolved: make(map[string]string),
	}
}

// MainBranch returns the branch sessions of projectID are compared against
func (r *MainBranchResolver) MainBranch(ctx context.Context, projectID string) (string, error) {
	r.mu.RLock()
	branch, ok := r.resolved[projectID]
	r.mu.RUnlock()
	if ok {
		return branch, nil
	}

	v, err, _ := r.flights.Do(projectID, func() (any, error) {
		project, err := r.projects.GetProject(ctx, projectID)
		if err != nil {
			return "", fmt.Errorf("failed to load project: %w", err)
		}

		branch := project.MainBranch
		if branch == "" {
			branch, err = r.detector.DetectMainBranch(ctx, project.Path)
			if err != nil {
				return "", fmt.Errorf("failed to detect main branch: %w", err)
			}
			logging.Logger.Debug("Detected main branch", "project", projectID, "branch", branch)
		}

		r.mu.Lock()
		r.resolved[projectID] = branch
		r.mu.Unlock()
		return branch, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Forget drops the memoized branch so the next call resolves it again
func (r *MainBranchResolver) Forget(projectID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resolved, projectID)
}
