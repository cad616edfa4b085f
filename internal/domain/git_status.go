package domain

import (
	"slices"
	"time"
)

// GitState is the primary, mutually exclusive state of a worktree
type GitState string

const (
	GitStateAhead     GitState = "ahead"
	GitStateBehind    GitState = "behind"
	GitStateClean     GitState = "clean"
	GitStateConflict  GitState = "conflict"
	GitStateDiverged  GitState = "diverged"
	GitStateModified  GitState = "modified"
	GitStateUnknown   GitState = "unknown"
	GitStateUntracked GitState = "untracked"
)

// GitStatus is the computed status of one session worktree.
// Zero counts are omitted from JSON: absence means none.
type GitStatus struct {
	State           GitState   `json:"state"`
	SecondaryStates []GitState `json:"secondaryStates,omitempty"`

	Ahead  int `json:"ahead,omitempty"`
	Behind int `json:"behind,omitempty"`

	Additions    int `json:"additions,omitempty"`
	Deletions    int `json:"deletions,omitempty"`
	FilesChanged int `json:"filesChanged,omitempty"`

	CommitAdditions    int `json:"commitAdditions,omitempty"`
	CommitDeletions    int `json:"commitDeletions,omitempty"`
	CommitFilesChanged int `json:"commitFilesChanged,omitempty"`
	TotalCommits       int `json:"totalCommits,omitempty"`

	HasUncommittedChanges bool `json:"hasUncommittedChanges"`
	HasUntrackedFiles     bool `json:"hasUntrackedFiles"`
	IsReadyToMerge        bool `json:"isReadyToMerge"`

	LastChecked time.Time `json:"lastChecked"`
}

// StatusInputs are the raw facts a GitStatus is derived from
type StatusInputs struct {
	Ahead          int
	Behind         int
	CommitStats    DiffStats
	Conflicted     bool
	DiffStats      DiffStats
	TotalCommits   int
	Uncommitted    bool
	UntrackedFiles bool
}

// DeriveGitStatus builds a GitStatus from raw inputs, resolving the primary
// state by priority: conflict, modified, diverged, ahead, behind, untracked, clean.
func DeriveGitStatus(in StatusInputs, checkedAt time.Time) GitStatus {
	s := GitStatus{
		Ahead:                 max(in.Ahead, 0),
		Behind:                max(in.Behind, 0),
		HasUncommittedChanges: in.Uncommitted,
		HasUntrackedFiles:     in.UntrackedFiles,
		LastChecked:           checkedAt,
	}

	if in.Uncommitted {
		s.Additions = in.DiffStats.Additions
		s.Deletions = in.DiffStats.Deletions
		s.FilesChanged = in.DiffStats.FilesChanged
	}

	if s.Ahead > 0 {
		s.CommitAdditions = in.CommitStats.Additions
		s.CommitDeletions = in.CommitStats.Deletions
		s.CommitFilesChanged = in.CommitStats.FilesChanged
		s.TotalCommits = in.TotalCommits
	}

	switch {
	case in.Conflicted:
		s.State = GitStateConflict
	case in.Uncommitted:
		s.State = GitStateModified
	case s.Ahead > 0 && s.Behind > 0:
		s.State = GitStateDiverged
	case s.Ahead > 0:
		s.State = GitStateAhead
	case s.Behind > 0:
		s.State = GitStateBehind
	case in.UntrackedFiles:
		s.State = GitStateUntracked
	default:
		s.State = GitStateClean
	}

	s.SecondaryStates = secondaryStates(s)
	s.IsReadyToMerge = s.Ahead > 0 && s.Behind == 0 && !s.HasUncommittedChanges && !s.HasUntrackedFiles
	return s
}

func secondaryStates(s GitStatus) []GitState {
	var out []GitState
	add := func(state GitState, present bool) {
		if present && state != s.State {
			out = append(out, state)
		}
	}
	diverged := s.State == GitStateDiverged
	add(GitStateAhead, s.Ahead > 0 && !diverged)
	add(GitStateBehind, s.Behind > 0 && !diverged)
	add(GitStateModified, s.HasUncommittedChanges)
	add(GitStateUntracked, s.HasUntrackedFiles)
	return out
}

// UnknownGitStatus is the status recorded when inspection fails
func UnknownGitStatus(checkedAt time.Time) GitStatus {
	return GitStatus{State: GitStateUnknown, LastChecked: checkedAt}
}

// Equal reports whether two statuses carry the same observable content.
// LastChecked is ignored.
func (s GitStatus) Equal(o GitStatus) bool {
	return s.State == o.State &&
		slices.Equal(s.SecondaryStates, o.SecondaryStates) &&
		s.Ahead == o.Ahead &&
		s.Behind == o.Behind &&
		s.Additions == o.Additions &&
		s.Deletions == o.Deletions &&
		s.FilesChanged == o.FilesChanged &&
		s.CommitAdditions == o.CommitAdditions &&
		s.CommitDeletions == o.CommitDeletions &&
		s.CommitFilesChanged == o.CommitFilesChanged &&
		s.TotalCommits == o.TotalCommits &&
		s.HasUncommittedChanges == o.HasUncommittedChanges &&
		s.HasUntrackedFiles == o.HasUntrackedFiles &&
		s.IsReadyToMerge == o.IsReadyToMerge
}

// RefreshSummary reports the outcome of a bulk refresh
type RefreshSummary struct {
	Failed    int
	Refreshed int
	Total     int
}
