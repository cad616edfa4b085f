package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveGitStatus_StatePriority(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		in    StatusInputs
		state GitState
	}{
		{
			name:  "conflict dominates everything",
			in:    StatusInputs{Conflicted: true, Ahead: 3, Behind: 2, Uncommitted: true},
			state: GitStateConflict,
		},
		{
			name:  "modified beats divergence",
			in:    StatusInputs{Uncommitted: true, Ahead: 1, Behind: 1},
			state: GitStateModified,
		},
		{
			name:  "diverged",
			in:    StatusInputs{Ahead: 2, Behind: 1},
			state: GitStateDiverged,
		},
		{
			name:  "ahead",
			in:    StatusInputs{Ahead: 2, UntrackedFiles: true},
			state: GitStateAhead,
		},
		{
			name:  "behind",
			in:    StatusInputs{Behind: 5},
			state: GitStateBehind,
		},
		{
			name:  "untracked only",
			in:    StatusInputs{UntrackedFiles: true},
			state: GitStateUntracked,
		},
		{
			name:  "clean",
			in:    StatusInputs{},
			state: GitStateClean,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DeriveGitStatus(tt.in, now)
			assert.Equal(t, tt.state, s.State)
			assert.NotContains(t, s.SecondaryStates, s.State)
			assert.Equal(t, now, s.LastChecked)
		})
	}
}

func TestDeriveGitStatus_SecondaryStates(t *testing.T) {
	s := DeriveGitStatus(StatusInputs{Conflicted: true, Ahead: 1, Uncommitted: true, UntrackedFiles: true}, time.Now())
	assert.Equal(t, []GitState{GitStateAhead, GitStateModified, GitStateUntracked}, s.SecondaryStates)

	s = DeriveGitStatus(StatusInputs{Ahead: 2, Behind: 1, UntrackedFiles: true}, time.Now())
	assert.Equal(t, []GitState{GitStateUntracked}, s.SecondaryStates, "diverged already implies ahead and behind")
}

func TestDeriveGitStatus_ReadyToMerge(t *testing.T) {
	s := DeriveGitStatus(StatusInputs{Ahead: 4, TotalCommits: 4}, time.Now())
	assert.True(t, s.IsReadyToMerge)
	assert.Equal(t, GitStateAhead, s.State)

	s = DeriveGitStatus(StatusInputs{Ahead: 4, UntrackedFiles: true}, time.Now())
	assert.False(t, s.IsReadyToMerge)

	s = DeriveGitStatus(StatusInputs{Ahead: 4, Behind: 1}, time.Now())
	assert.False(t, s.IsReadyToMerge)
}

func TestDeriveGitStatus_CommitStatsOnlyWhenAhead(t *testing.T) {
	in := StatusInputs{
		CommitStats:  DiffStats{Additions: 10, Deletions: 2, FilesChanged: 3},
		TotalCommits: 2,
	}
	s := DeriveGitStatus(in, time.Now())
	assert.Zero(t, s.CommitAdditions)
	assert.Zero(t, s.TotalCommits)

	in.Ahead = 2
	s = DeriveGitStatus(in, time.Now())
	assert.Equal(t, 10, s.CommitAdditions)
	assert.Equal(t, 2, s.TotalCommits)
}

func TestGitStatus_JSONOmitsZeroCounts(t *testing.T) {
	s := DeriveGitStatus(StatusInputs{}, time.Unix(0, 0).UTC())
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "ahead")
	assert.NotContains(t, raw, "behind")
	assert.NotContains(t, raw, "additions")
	assert.Equal(t, "clean", raw["state"])
}

func TestGitStatus_EqualIgnoresLastChecked(t *testing.T) {
	a := DeriveGitStatus(StatusInputs{Ahead: 1}, time.Unix(1, 0))
	b := DeriveGitStatus(StatusInputs{Ahead: 1}, time.Unix(99, 0))
	assert.True(t, a.Equal(b))

	c := DeriveGitStatus(StatusInputs{Ahead: 2}, time.Unix(1, 0))
	assert.False(t, a.Equal(c))
}
