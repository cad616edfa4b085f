package ports

// ChangeNotifier watches worktrees and signals that something changed.
// Signals are delivered to the callbacks registered on construction.
type ChangeNotifier interface {
	Watch(sessionID, path string) error
	Unwatch(sessionID string)
	WatchProject(projectID, repoPath string) error
	UnwatchProject(projectID string)
	Close() error
}
