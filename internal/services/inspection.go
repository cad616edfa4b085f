package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

// inspectWorktree runs the full set of probes against path and derives a
// status. Independent probes run concurrently in two phases: state first,
// then the stats that state says are needed.
func inspectWorktree(ctx context.Context, inspector ports.RepositoryInspector, path, branch string, now time.Time) (domain.GitStatus, error) {
	var (
		probe    domain.WorkingDirectoryProbe
		rebasing bool
		ab       domain.AheadBehind
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		probe, err = inspector.ProbeWorkingDirectory(gctx, path)
		if err != nil {
			return fmt.Errorf("probe working directory: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rebasing, err = inspector.IsRebaseInProgress(gctx, path)
		if err != nil {
			return fmt.Errorf("check rebase: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ab, err = inspector.AheadBehind(gctx, path, branch)
		if err != nil {
			return fmt.Errorf("ahead/behind against %s: %w", branch, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.GitStatus{}, err
	}

	in := domain.StatusInputs{
		Ahead:          ab.Ahead,
		Behind:         ab.Behind,
		Conflicted:     probe.HasConflicts || rebasing,
		Uncommitted:    probe.HasUncommittedChanges(),
		UntrackedFiles: probe.HasUntracked,
	}

	g, gctx = errgroup.WithContext(ctx)
	if in.Uncommitted {
		g.Go(func() error {
			var err error
			in.DiffStats, err = inspector.DiffStats(gctx, path)
			if err != nil {
				return fmt.Errorf("diff stats: %w", err)
			}
			return nil
		})
	}
	if in.Ahead > 0 {
		g.Go(func() error {
			var err error
			in.CommitStats, err = inspector.CommitShortstat(gctx, path, branch)
			if err != nil {
				return fmt.Errorf("commit shortstat: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			in.TotalCommits, err = inspector.CommitCount(gctx, path, branch)
			if err != nil {
				return fmt.Errorf("commit count: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.GitStatus{}, err
	}

	return domain.DeriveGitStatus(in, now), nil
}

// unchangedSince runs the cheap probes and reports whether they agree with
// the cached status. A tree with uncommitted changes never counts as
// unchanged since its diff stats may have moved. A rebase in progress
// counts as a conflict, as in a full inspection.
func unchangedSince(ctx context.Context, inspector ports.RepositoryInspector, path, branch string, cached domain.GitStatus) (bool, error) {
	if cached.State == domain.GitStateUnknown || cached.HasUncommittedChanges {
		return false, nil
	}

	probe, err := inspector.ProbeWorkingDirectory(ctx, path)
	if err != nil {
		return false, fmt.Errorf("probe working directory: %w", err)
	}
	if probe.HasUncommittedChanges() || probe.HasUntracked != cached.HasUntrackedFiles {
		return false, nil
	}

	rebasing, err := inspector.IsRebaseInProgress(ctx, path)
	if err != nil {
		return false, fmt.Errorf("check rebase: %w", err)
	}
	if (probe.HasConflicts || rebasing) != (cached.State == domain.GitStateConflict) {
		return false, nil
	}

	ab, err := inspector.AheadBehind(ctx, path, branch)
	if err != nil {
		return false, fmt.Errorf("ahead/behind against %s: %w", branch, err)
	}
	return ab.Ahead == cached.Ahead && ab.Behind == cached.Behind, nil
}

// inputsFromStatus recovers derivation inputs from a computed status
func inputsFromStatus(s domain.GitStatus) domain.StatusInputs {
	return domain.StatusInputs{
		Ahead:  s.Ahead,
		Behind: s.Behind,
		CommitStats: domain.DiffStats{
			Additions:    s.CommitAdditions,
			Deletions:    s.CommitDeletions,
			FilesChanged: s.CommitFilesChanged,
		},
		Conflicted: s.State == domain.GitStateConflict,
		DiffStats: domain.DiffStats{
			Additions:    s.Additions,
			Deletions:    s.Deletions,
			FilesChanged: s.FilesChanged,
		},
		TotalCommits:   s.TotalCommits,
		Uncommitted:    s.HasUncommittedChanges,
		UntrackedFiles: s.HasUntrackedFiles,
	}
}
