package domain

// WorkingDirectoryProbe is the result of a cheap working-tree check
type WorkingDirectoryProbe struct {
	HasConflicts bool
	HasModified  bool
	HasStaged    bool
	HasUntracked bool
}

// HasUncommittedChanges reports modified or staged content
func (p WorkingDirectoryProbe) HasUncommittedChanges() bool {
	return p.HasModified || p.HasStaged
}

// AheadBehind holds commit divergence counts against a reference branch
type AheadBehind struct {
	Ahead  int
	Behind int
}

// DiffStats summarizes a diff
type DiffStats struct {
	Additions    int
	Deletions    int
	FilesChanged int
}
