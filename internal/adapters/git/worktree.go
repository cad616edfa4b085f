package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

var _ ports.WorktreeLocator = (*CLIInspector)(nil)

// MainRepoPath gets the main repository path, even for worktrees.
// For worktrees, git-common-dir points into the main repository.
func (i *CLIInspector) MainRepoPath(ctx context.Context, path string) (string, error) {
	logging.Logger.Debug("Getting main repo path", "path", path)

	gitCommonDir, err := i.run(ctx, path, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", fmt.Errorf("failed to get git common dir: %w", err)
	}

	// Relative paths (like ".git") are relative to path
	if !filepath.IsAbs(gitCommonDir) {
		gitCommonDir = filepath.Join(path, gitCommonDir)
	}

	mainRepoPath := filepath.Clean(filepath.Dir(gitCommonDir))
	logging.Logger.Debug("Found main repo path", "main_repo_path", mainRepoPath)
	return mainRepoPath, nil
}

// ListWorktrees lists every worktree of the repository, main checkout first
func (i *CLIInspector) ListWorktrees(ctx context.Context, repoPath string) ([]domain.Worktree, error) {
	out, err := i.run(ctx, repoPath, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	worktrees := parseWorktreeList(out)
	logging.Logger.Debug("Found worktrees", "repo_path", repoPath, "count", len(worktrees))
	return worktrees, nil
}

// parseWorktreeList parses `git worktree list --porcelain` output.
// Detached and bare entries keep an empty branch.
func parseWorktreeList(output string) []domain.Worktree {
	var worktrees []domain.Worktree
	var current domain.Worktree

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			if current.Path != "" {
				worktrees = append(worktrees, current)
			}
			current = domain.Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		}
	}

	if current.Path != "" {
		worktrees = append(worktrees, current)
	}
	return worktrees
}
