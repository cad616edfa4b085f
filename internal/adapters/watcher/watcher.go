// Package watcher turns filesystem activity in worktrees and repository
// refs into per-session and per-project change signals.
package watcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
	"github.com/wolverin0/crystal-fork-sub001/internal/config"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

// gitStateFiles are the entries of a git dir whose changes alter status
var gitStateFiles = map[string]bool{
	"HEAD":         true,
	"MERGE_HEAD":   true,
	"index":        true,
	"rebase-apply": true,
	"rebase-merge": true,
}

// Options configures a Watcher
type Options struct {
	Clock    clock.Clock
	Debounce time.Duration
	Ignore   []string

	// OnChange fires once a session's worktree has been quiet for Debounce
	OnChange func(sessionID string)

	// OnRefChanged fires when a local branch ref of a project moves.
	// branch is empty when only packed-refs changed.
	OnRefChanged func(projectID, branch string)
}

type sessionWatch struct {
	dirs   []string
	gitDir string
	root   string
}

type projectWatch struct {
	commonDir string
	dirs      []string
	headsDir  string
}

type pendingSignal struct {
	timer *clock.Timer
}

// Watcher implements ports.ChangeNotifier on top of fsnotify
type Watcher struct {
	opts     Options
	ignore   map[string]bool
	fsw      *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	dirs     map[string]int
	sessions map[string]*sessionWatch
	projects map[string]*projectWatch
	pending  map[string]*pendingSignal
	closed   bool
}

var _ ports.ChangeNotifier = (*Watcher)(nil)

// New creates a Watcher and starts its event loop
func New(opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fs watcher: %w", err)
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = config.DefaultWatchDebounce
	}

	ignore := make(map[string]bool, len(opts.Ignore))
	for _, name := range opts.Ignore {
		ignore[name] = true
	}
	// Git dirs are watched selectively, never recursively
	ignore[".git"] = true

	w := &Watcher{
		opts:     opts,
		ignore:   ignore,
		fsw:      fsw,
		done:     make(chan struct{}),
		dirs:     make(map[string]int),
		sessions: make(map[string]*sessionWatch),
		projects: make(map[string]*projectWatch),
		pending:  make(map[string]*pendingSignal),
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Watch implements ports.ChangeNotifier.Watch. Re-watching a session
// replaces the previous registration.
func (w *Watcher) Watch(sessionID, path string) error {
	root, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot watch %s: not a directory", root)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New("watcher closed")
	}

	if old, ok := w.sessions[sessionID]; ok {
		w.releaseLocked(old.dirs)
	}

	sw := &sessionWatch{root: root, gitDir: resolveGitDir(root)}
	sw.dirs = w.addTreeLocked(root, nil)
	if sw.gitDir != "" && w.addDirLocked(sw.gitDir) {
		sw.dirs = append(sw.dirs, sw.gitDir)
	}
	w.sessions[sessionID] = sw

	logging.Logger.Debug("Watching session worktree", "session", sessionID, "root", root, "dirs", len(sw.dirs))
	return nil
}

// Unwatch implements ports.ChangeNotifier.Unwatch
func (w *Watcher) Unwatch(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sw, ok := w.sessions[sessionID]
	if !ok {
		return
	}
	w.releaseLocked(sw.dirs)
	delete(w.sessions, sessionID)
	w.cancelLocked(sessionKey(sessionID))
}

// WatchProject implements ports.ChangeNotifier.WatchProject. repoPath must
// be a main checkout with a .git directory.
func (w *Watcher) WatchProject(projectID, repoPath string) error {
	commonDir := filepath.Join(repoPath, ".git")
	info, err := os.Stat(commonDir)
	if err != nil {
		return fmt.Errorf("cannot watch refs of %s: %w", repoPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot watch refs of %s: not a main checkout", repoPath)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New("watcher closed")
	}

	if old, ok := w.projects[projectID]; ok {
		w.releaseLocked(old.dirs)
	}

	pw := &projectWatch{commonDir: commonDir, headsDir: filepath.Join(commonDir, "refs", "heads")}
	if w.addDirLocked(commonDir) {
		pw.dirs = append(pw.dirs, commonDir)
	}
	pw.dirs = w.addTreeLocked(pw.headsDir, pw.dirs)
	w.projects[projectID] = pw

	logging.Logger.Debug("Watching project refs", "project", projectID, "heads", pw.headsDir)
	return nil
}

// UnwatchProject implements ports.ChangeNotifier.UnwatchProject
func (w *Watcher) UnwatchProject(projectID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	pw, ok := w.projects[projectID]
	if !ok {
		return
	}
	w.releaseLocked(pw.dirs)
	delete(w.projects, projectID)
	for key := range w.pending {
		if strings.HasPrefix(key, refKeyPrefix(projectID)) {
			w.cancelLocked(key)
		}
	}
}

// Close stops the event loop and drops every pending signal
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for key := range w.pending {
		w.cancelLocked(key)
	}
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("Filesystem watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	for projectID, pw := range w.projects {
		if branch, ok := pw.branchFor(path); ok {
			if event.Op&fsnotify.Create != 0 && isUnder(path, pw.headsDir) {
				pw.dirs = w.addTreeLocked(path, pw.dirs)
			}
			id, b := projectID, branch
			w.scheduleLocked(refKeyPrefix(projectID)+branch, func() {
				if w.opts.OnRefChanged != nil {
					w.opts.OnRefChanged(id, b)
				}
			})
		}
	}

	for sessionID, sw := range w.sessions {
		if !w.touchesSession(sw, path) {
			continue
		}
		if event.Op&fsnotify.Create != 0 && isUnder(path, sw.root) {
			sw.dirs = w.addTreeLocked(path, sw.dirs)
		}
		id := sessionID
		w.scheduleLocked(sessionKey(sessionID), func() {
			if w.opts.OnChange != nil {
				w.opts.OnChange(id)
			}
		})
	}
}

// branchFor maps a path inside the git dir to the branch it records
func (pw *projectWatch) branchFor(path string) (string, bool) {
	if isUnder(path, pw.headsDir) && path != pw.headsDir {
		rel, err := filepath.Rel(pw.headsDir, path)
		if err != nil {
			return "", false
		}
		return strings.TrimSuffix(filepath.ToSlash(rel), ".lock"), true
	}
	if filepath.Dir(path) == pw.commonDir && strings.HasPrefix(filepath.Base(path), "packed-refs") {
		return "", true
	}
	return "", false
}

func (w *Watcher) touchesSession(sw *sessionWatch, path string) bool {
	if sw.gitDir != "" && filepath.Dir(path) == sw.gitDir {
		return gitStateFiles[filepath.Base(path)]
	}
	if !isUnder(path, sw.root) {
		return false
	}
	rel, err := filepath.Rel(sw.root, path)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if w.ignore[part] {
			return false
		}
	}
	return true
}

// scheduleLocked delays fire until key has been quiet for the debounce window
func (w *Watcher) scheduleLocked(key string, fire func()) {
	w.cancelLocked(key)

	entry := &pendingSignal{}
	w.pending[key] = entry
	entry.timer = w.opts.Clock.AfterFunc(w.opts.Debounce, func() {
		w.mu.Lock()
		if w.pending[key] != entry {
			w.mu.Unlock()
			return
		}
		delete(w.pending, key)
		w.mu.Unlock()
		fire()
	})
}

func (w *Watcher) cancelLocked(key string) {
	if entry, ok := w.pending[key]; ok {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		delete(w.pending, key)
	}
}

// addTreeLocked watches root and every non-ignored directory below it
func (w *Watcher) addTreeLocked(root string, dirs []string) []string {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && w.ignore[d.Name()] {
			return filepath.SkipDir
		}
		if w.addDirLocked(path) {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}

func (w *Watcher) addDirLocked(path string) bool {
	if w.dirs[path] == 0 {
		if err := w.fsw.Add(path); err != nil {
			logging.Logger.Debug("Failed to watch directory", "path", path, "error", err)
			return false
		}
	}
	w.dirs[path]++
	return true
}

func (w *Watcher) releaseLocked(dirs []string) {
	for _, dir := range dirs {
		w.dirs[dir]--
		if w.dirs[dir] > 0 {
			continue
		}
		delete(w.dirs, dir)
		// Removed directories are dropped by fsnotify already
		_ = w.fsw.Remove(dir)
	}
}

// resolveGitDir returns the git dir of a worktree. Linked worktrees keep
// a .git file pointing at it.
func resolveGitDir(root string) string {
	dotGit := filepath.Join(root, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		return ""
	}
	if info.IsDir() {
		return dotGit
	}

	data, err := os.ReadFile(dotGit)
	if err != nil {
		return ""
	}
	line := strings.TrimSpace(string(data))
	if !strings.HasPrefix(line, "gitdir:") {
		return ""
	}
	gitDir := strings.TrimSpace(strings.TrimPrefix(line, "gitdir:"))
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(root, gitDir)
	}
	return filepath.Clean(gitDir)
}

func isUnder(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}

func sessionKey(sessionID string) string { return "s:" + sessionID }

func refKeyPrefix(projectID string) string { return "p:" + projectID + ":" }
