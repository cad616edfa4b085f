package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wolverin0/crystal-fork-sub001/internal/config"
	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements the session and project repositories using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.ProjectRepository = (*SQLiteRepository)(nil)
	_ ports.SessionDirectory  = (*SQLiteRepository)(nil)
	_ ports.SessionRepository = (*SQLiteRepository)(nil)
	_ ports.StatusStore       = (*SQLiteRepository)(nil)
)

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Connection-scoped pragmas go in the DSN so every pooled connection gets them
	dsn := dbPath + "?_busy_timeout=5000&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the watch loop read while a CLI command writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Opened state database", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath opens the state database inside a GITSYNC_HOME directory
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ProjectModel{}, &SessionModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	// Archive rows follow their session through renames and deletes
	if !db.Migrator().HasTable(&SessionArchiveModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS session_archives (
				session_name TEXT PRIMARY KEY,
				is_archived INTEGER NOT NULL DEFAULT 0,
				archived_at DATETIME,
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (session_name) REFERENCES sessions(name) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return fmt.Errorf("failed to create session_archives table: %w", err)
		}
	}

	if !db.Migrator().HasTable(&StatusSnapshotModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS status_snapshots (
				session_name TEXT PRIMARY KEY,
				state TEXT NOT NULL,
				payload TEXT NOT NULL,
				checked_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (session_name) REFERENCES sessions(name) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return fmt.Errorf("failed to create status_snapshots table: %w", err)
		}
	}
	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Database busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

// isConstraintViolation reports whether err is a uniqueness or key conflict
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

// Resolve implements ports.SessionDirectory.Resolve
func (r *SQLiteRepository) Resolve(ctx context.Context, sessionID string) (*domain.SessionLocation, error) {
	session, err := r.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.WorktreePath == "" {
		return nil, fmt.Errorf("%s: %w", sessionID, domain.ErrNoWorktree)
	}
	if _, err := os.Stat(session.WorktreePath); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", sessionID, domain.ErrNoWorktree, err)
	}
	return &domain.SessionLocation{
		ProjectID:    session.ProjectID,
		WorktreePath: session.WorktreePath,
	}, nil
}

// ListSessions implements ports.SessionDirectory.ListSessions
func (r *SQLiteRepository) ListSessions(ctx context.Context, includeArchived bool) ([]domain.Session, error) {
	return r.List(ctx, includeArchived)
}
