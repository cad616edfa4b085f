package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 30 * time.Millisecond

type signalRecorder struct {
	mu      sync.Mutex
	changes map[string]int
	refs    []string
}

func newRecorder() *signalRecorder {
	return &signalRecorder{changes: make(map[string]int)}
}

func (r *signalRecorder) onChange(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes[sessionID]++
}

func (r *signalRecorder) onRef(projectID, branch string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refs = append(r.refs, projectID+"/"+branch)
}

func (r *signalRecorder) changeCount(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.changes[sessionID]
}

func (r *signalRecorder) refSignals() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.refs...)
}

func newTestWatcher(t *testing.T, rec *signalRecorder) *Watcher {
	t.Helper()
	w, err := New(Options{
		Debounce:     testDebounce,
		Ignore:       []string{"node_modules"},
		OnChange:     rec.onChange,
		OnRefChanged: rec.onRef,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatch_BurstCoalescesIntoOneSignal(t *testing.T) {
	rec := newRecorder()
	w := newTestWatcher(t, rec)

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0755))
	require.NoError(t, w.Watch("s1", root))

	for i := 0; i < 5; i++ {
		writeFile(t, filepath.Join(root, "pkg", "file.go"), "package pkg // edit")
	}

	assert.Eventually(t, func() bool { return rec.changeCount("s1") == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(3 * testDebounce)
	assert.Equal(t, 1, rec.changeCount("s1"))
}

func TestWatch_IgnoredDirectoriesAreSilent(t *testing.T) {
	rec := newRecorder()
	w := newTestWatcher(t, rec)

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "dep"), 0755))
	require.NoError(t, w.Watch("s1", root))

	writeFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "x")

	time.Sleep(5 * testDebounce)
	assert.Equal(t, 0, rec.changeCount("s1"))
}

func TestWatch_NewSubdirectoryIsFollowed(t *testing.T) {
	rec := newRecorder()
	w := newTestWatcher(t, rec)

	root := t.TempDir()
	require.NoError(t, w.Watch("s1", root))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "fresh"), 0755))
	assert.Eventually(t, func() bool { return rec.changeCount("s1") == 1 }, 2*time.Second, 10*time.Millisecond)

	writeFile(t, filepath.Join(root, "fresh", "a.txt"), "a")
	assert.Eventually(t, func() bool { return rec.changeCount("s1") == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatch_LinkedWorktreeIndexChanges(t *testing.T) {
	rec := newRecorder()
	w := newTestWatcher(t, rec)

	root := t.TempDir()
	gitDir := filepath.Join(t.TempDir(), "worktrees", "feature")
	require.NoError(t, os.MkdirAll(gitDir, 0755))
	writeFile(t, filepath.Join(root, ".git"), "gitdir: "+gitDir+"\n")
	require.NoError(t, w.Watch("s1", root))

	writeFile(t, filepath.Join(gitDir, "ORIG_HEAD"), "abc")
	time.Sleep(5 * testDebounce)
	assert.Equal(t, 0, rec.changeCount("s1"), "unrelated git dir files are ignored")

	writeFile(t, filepath.Join(gitDir, "index"), "staged")
	assert.Eventually(t, func() bool { return rec.changeCount("s1") == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestUnwatch_StopsSignals(t *testing.T) {
	rec := newRecorder()
	w := newTestWatcher(t, rec)

	root := t.TempDir()
	require.NoError(t, w.Watch("s1", root))
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	w.Unwatch("s1")

	time.Sleep(5 * testDebounce)
	assert.Equal(t, 0, rec.changeCount("s1"), "pending signal dropped on unwatch")

	writeFile(t, filepath.Join(root, "b.txt"), "b")
	time.Sleep(5 * testDebounce)
	assert.Equal(t, 0, rec.changeCount("s1"))
}

func TestWatch_SharedDirectoriesSurviveOneUnwatch(t *testing.T) {
	rec := newRecorder()
	w := newTestWatcher(t, rec)

	root := t.TempDir()
	require.NoError(t, w.Watch("s1", root))
	require.NoError(t, w.Watch("s2", root))
	w.Unwatch("s1")

	writeFile(t, filepath.Join(root, "a.txt"), "a")

	assert.Eventually(t, func() bool { return rec.changeCount("s2") == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, rec.changeCount("s1"))
}

func TestWatchProject_BranchRefMoves(t *testing.T) {
	rec := newRecorder()
	w := newTestWatcher(t, rec)

	repo := t.TempDir()
	heads := filepath.Join(repo, ".git", "refs", "heads")
	require.NoError(t, os.MkdirAll(heads, 0755))
	writeFile(t, filepath.Join(heads, "main"), "1111")
	require.NoError(t, w.WatchProject("p1", repo))

	writeFile(t, filepath.Join(heads, "main"), "2222")
	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual([]string{"p1/main"}, rec.refSignals())
	}, 2*time.Second, 10*time.Millisecond)

	writeFile(t, filepath.Join(repo, ".git", "packed-refs"), "# pack-refs")
	assert.Eventually(t, func() bool { return len(rec.refSignals()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "p1/", rec.refSignals()[1])
}

func TestWatchProject_RequiresMainCheckout(t *testing.T) {
	rec := newRecorder()
	w := newTestWatcher(t, rec)

	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, ".git"), "gitdir: /elsewhere")

	assert.Error(t, w.WatchProject("p1", repo))
	assert.Error(t, w.WatchProject("p2", t.TempDir()))
}

func TestWatch_MissingPath(t *testing.T) {
	w := newTestWatcher(t, newRecorder())
	assert.Error(t, w.Watch("s1", filepath.Join(t.TempDir(), "missing")))
}

func TestClose_IsIdempotent(t *testing.T) {
	w, err := New(Options{Debounce: testDebounce})
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Error(t, w.Watch("s1", t.TempDir()))
}

func TestResolveGitDir(t *testing.T) {
	plain := t.TempDir()
	assert.Empty(t, resolveGitDir(plain))

	main := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(main, ".git"), 0755))
	assert.Equal(t, filepath.Join(main, ".git"), resolveGitDir(main))

	linked := t.TempDir()
	writeFile(t, filepath.Join(linked, ".git"), "gitdir: ../repo/.git/worktrees/linked\n")
	assert.Equal(t, filepath.Clean(filepath.Join(linked, "../repo/.git/worktrees/linked")), resolveGitDir(linked))
}
