package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

func TestParsePorcelainV2(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected domain.WorkingDirectoryProbe
	}{
		{
			name:     "clean",
			output:   "",
			expected: domain.WorkingDirectoryProbe{},
		},
		{
			name:     "worktree modification",
			output:   "1 .M N... 100644 100644 100644 abc def file.go",
			expected: domain.WorkingDirectoryProbe{HasModified: true},
		},
		{
			name:     "staged addition",
			output:   "1 A. N... 000000 100644 100644 000 abc new.go",
			expected: domain.WorkingDirectoryProbe{HasStaged: true},
		},
		{
			name:     "rename staged and modified",
			output:   "2 RM N... 100644 100644 100644 abc def R100 new.go\told.go",
			expected: domain.WorkingDirectoryProbe{HasModified: true, HasStaged: true},
		},
		{
			name:     "untracked and conflict",
			output:   "? notes.txt\nu UU N... 100644 100644 100644 100644 a b c conflict.go",
			expected: domain.WorkingDirectoryProbe{HasConflicts: true, HasUntracked: true},
		},
		{
			name:     "ignored entries do not count",
			output:   "! build/",
			expected: domain.WorkingDirectoryProbe{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parsePorcelainV2(tt.output))
		})
	}
}

func TestParseShortstat(t *testing.T) {
	tests := []struct {
		output   string
		expected domain.DiffStats
	}{
		{"", domain.DiffStats{}},
		{" 1 file changed, 1 insertion(+)", domain.DiffStats{FilesChanged: 1, Additions: 1}},
		{" 3 files changed, 10 insertions(+), 2 deletions(-)", domain.DiffStats{FilesChanged: 3, Additions: 10, Deletions: 2}},
		{" 2 files changed, 5 deletions(-)", domain.DiffStats{FilesChanged: 2, Deletions: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseShortstat(tt.output))
		})
	}
}

func TestParseLeftRight(t *testing.T) {
	ab, err := parseLeftRight("3\t1")
	require.NoError(t, err)
	assert.Equal(t, domain.AheadBehind{Ahead: 3, Behind: 1}, ab)

	_, err = parseLeftRight("garbage")
	assert.Error(t, err)

	_, err = parseLeftRight("x\t1")
	assert.Error(t, err)
}

// testRepo is a throwaway repository with a main branch and a feature worktree
type testRepo struct {
	t        *testing.T
	main     string
	worktree string
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	root := t.TempDir()
	r := &testRepo{t: t, main: filepath.Join(root, "repo"), worktree: filepath.Join(root, "feature")}
	require.NoError(t, os.MkdirAll(r.main, 0755))

	r.git(r.main, "init", "-q")
	r.git(r.main, "symbolic-ref", "HEAD", "refs/heads/main")
	r.commitFile(r.main, "README.md", "hello\n", "initial")
	r.git(r.main, "worktree", "add", "-q", "-b", "feature", r.worktree)
	return r
}

func (r *testRepo) git(dir string, args ...string) {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_CONFIG_NOSYSTEM=1",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(r.t, err, "git %v: %s", args, out)
}

func (r *testRepo) write(dir, name, content string) {
	r.t.Helper()
	require.NoError(r.t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func (r *testRepo) commitFile(dir, name, content, message string) {
	r.t.Helper()
	r.write(dir, name, content)
	r.git(dir, "add", name)
	r.git(dir, "commit", "-q", "-m", message)
}

func TestCLIInspector_AgainstRealRepository(t *testing.T) {
	repo := newTestRepo(t)
	inspector := NewCLIInspector()
	ctx := context.Background()

	probe, err := inspector.ProbeWorkingDirectory(ctx, repo.worktree)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkingDirectoryProbe{}, probe)

	repo.commitFile(repo.worktree, "a.go", "package a\n", "feature one")
	repo.commitFile(repo.worktree, "b.go", "package b\n\nvar X = 1\n", "feature two")
	repo.commitFile(repo.main, "main.txt", "main moved\n", "main one")

	ab, err := inspector.AheadBehind(ctx, repo.worktree, "main")
	require.NoError(t, err)
	assert.Equal(t, domain.AheadBehind{Ahead: 2, Behind: 1}, ab)

	count, err := inspector.CommitCount(ctx, repo.worktree, "main")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	commitStats, err := inspector.CommitShortstat(ctx, repo.worktree, "main")
	require.NoError(t, err)
	assert.Equal(t, domain.DiffStats{FilesChanged: 2, Additions: 4}, commitStats)

	repo.write(repo.worktree, "a.go", "package a\n\nfunc A() {}\n")
	repo.write(repo.worktree, "untracked.txt", "x\n")

	probe, err = inspector.ProbeWorkingDirectory(ctx, repo.worktree)
	require.NoError(t, err)
	assert.True(t, probe.HasModified)
	assert.True(t, probe.HasUntracked)
	assert.False(t, probe.HasStaged)

	diff, err := inspector.DiffStats(ctx, repo.worktree)
	require.NoError(t, err)
	assert.Equal(t, domain.DiffStats{FilesChanged: 1, Additions: 2}, diff)

	rebasing, err := inspector.IsRebaseInProgress(ctx, repo.worktree)
	require.NoError(t, err)
	assert.False(t, rebasing)
}

func TestCLIInspector_DetectMainBranch(t *testing.T) {
	repo := newTestRepo(t)
	inspector := NewCLIInspector()

	branch, err := inspector.DetectMainBranch(context.Background(), repo.main)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	_, err = inspector.DetectMainBranch(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestCLIInspector_ErrorsCarryStderr(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	_, err := NewCLIInspector().ProbeWorkingDirectory(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git status")
}
