package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

// errNoCachedStatus means a transition has nothing to apply a delta to,
// either no entry or one whose probes failed
var errNoCachedStatus = errors.New("no cached status")

// TransitionUpdater derives a new status from the cached one when the
// caller already knows what changed, avoiding a full inspection
type TransitionUpdater struct {
	cache     *StatusCache
	clock     clock.Clock
	inspector ports.WorkingDirectoryProber
	diff      ports.DiffReader
}

// NewTransitionUpdater creates a TransitionUpdater
func NewTransitionUpdater(cache *StatusCache, clk clock.Clock, inspector ports.RepositoryInspector) *TransitionUpdater {
	return &TransitionUpdater{cache: cache, clock: clk, inspector: inspector, diff: inspector}
}

// Derive computes the post-transition status for key. Any error means the
// caller must fall back to a full inspection.
func (u *TransitionUpdater) Derive(ctx context.Context, key, path string, kind domain.TransitionKind) (domain.GitStatus, error) {
	entry, ok := u.cache.Get(key)
	if !ok || entry.Status.State == domain.GitStateUnknown {
		return domain.GitStatus{}, errNoCachedStatus
	}
	in := inputsFromStatus(entry.Status)
	in.Behind = 0

	switch kind {
	case domain.TransitionFromMain:
		probe, err := u.inspector.ProbeWorkingDirectory(ctx, path)
		if err != nil {
			return domain.GitStatus{}, fmt.Errorf("probe working directory: %w", err)
		}
		in.Conflicted = probe.HasConflicts
		in.Uncommitted = probe.HasUncommittedChanges()
		in.UntrackedFiles = probe.HasUntracked
		in.DiffStats = domain.DiffStats{}
		if in.Uncommitted {
			if in.DiffStats, err = u.diff.DiffStats(ctx, path); err != nil {
				return domain.GitStatus{}, fmt.Errorf("diff stats: %w", err)
			}
		}
		return domain.DeriveGitStatus(in, u.clock.Now()), nil

	case domain.TransitionToMain:
		in.Conflicted = false
		in.Uncommitted = false
		in.UntrackedFiles = false
		in.DiffStats = domain.DiffStats{}
		status := domain.DeriveGitStatus(in, u.clock.Now())
		status.State = domain.GitStateAhead
		status.SecondaryStates = nil
		return status, nil

	default:
		return domain.GitStatus{}, fmt.Errorf("unsupported transition %s", kind)
	}
}
