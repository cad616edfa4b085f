package domain

import "time"

// Project groups sessions that share a repository and main branch
type Project struct {
	CreatedAt  time.Time
	ID         string
	MainBranch string // empty means detect
	Name       string
	Path       string
}

// Worktree is one checkout listed by `git worktree list`
type Worktree struct {
	Branch string
	Path   string
}
