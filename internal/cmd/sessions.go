package cmd

// SessionsCmd manages sessions
type SessionsCmd struct {
	Add     SessionsAddCmd     `cmd:"add" help:"Register a worktree as a session"`
	Archive SessionsArchiveCmd `cmd:"archive" help:"Archive or unarchive a session"`
	Del     SessionsDelCmd     `cmd:"del" help:"Delete a session"`
	Import  SessionsImportCmd  `cmd:"import" help:"Register every unregistered worktree of a project"`
	List    SessionsListCmd    `cmd:"list" help:"List sessions" default:"1"`
	Merged  SessionsMergedCmd  `cmd:"merged" help:"Record that a session was merged into main"`
	Rebased SessionsRebasedCmd `cmd:"rebased" help:"Record that a session was rebased onto main"`
	State   SessionsStateCmd   `cmd:"state" help:"Mark a session active or in error"`
}
