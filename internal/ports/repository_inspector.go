package ports

import (
	"context"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

// WorkingDirectoryProber performs the cheap working-tree check
type WorkingDirectoryProber interface {
	ProbeWorkingDirectory(ctx context.Context, path string) (domain.WorkingDirectoryProbe, error)
	IsRebaseInProgress(ctx context.Context, path string) (bool, error)
}

// DivergenceReader compares a worktree against a reference branch
type DivergenceReader interface {
	AheadBehind(ctx context.Context, path, branch string) (domain.AheadBehind, error)
	CommitShortstat(ctx context.Context, path, branch string) (domain.DiffStats, error)
	CommitCount(ctx context.Context, path, branch string) (int, error)
}

// DiffReader summarizes uncommitted changes
type DiffReader interface {
	DiffStats(ctx context.Context, path string) (domain.DiffStats, error)
}

// RepositoryInspector combines all low-level git queries used by the engine
type RepositoryInspector interface {
	WorkingDirectoryProber
	DivergenceReader
	DiffReader
}

// MainBranchDetector detects a repository's integration branch
type MainBranchDetector interface {
	DetectMainBranch(ctx context.Context, repoPath string) (string, error)
}

// WorktreeLocator discovers the repository layout around a worktree
type WorktreeLocator interface {
	MainRepoPath(ctx context.Context, path string) (string, error)
	ListWorktrees(ctx context.Context, repoPath string) ([]domain.Worktree, error)
}
