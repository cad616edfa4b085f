package storage

import "time"

// ProjectModel is the GORM model for projects table
type ProjectModel struct {
	CreatedAt  time.Time
	ID         string `gorm:"primaryKey"`
	MainBranch string `gorm:"not null;default:''"`
	Name       string `gorm:"not null;uniqueIndex:idx_project_name"`
	Path       string `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string { return "projects" }

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	CreatedAt    time.Time
	Name         string `gorm:"primaryKey"`
	ProjectID    string `gorm:"not null;index:idx_session_project"`
	State        string `gorm:"not null;default:'active';check:state IN ('active','error')"`
	UpdatedAt    time.Time
	WorktreePath string `gorm:"default:''"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// SessionArchiveModel is the GORM model for session archive status
type SessionArchiveModel struct {
	ArchivedAt  *time.Time `gorm:"default:null"`
	CreatedAt   time.Time
	IsArchived  bool   `gorm:"not null;default:false"`
	SessionName string `gorm:"primaryKey"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (SessionArchiveModel) TableName() string { return "session_archives" }

// StatusSnapshotModel is the GORM model for the last known git status
type StatusSnapshotModel struct {
	CheckedAt   time.Time
	Payload     string `gorm:"not null"`
	SessionName string `gorm:"primaryKey"`
	State       string `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (StatusSnapshotModel) TableName() string { return "status_snapshots" }
