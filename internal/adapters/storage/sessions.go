package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

// Get implements SessionReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, name string) (*domain.Session, error) {
	var session SessionModel
	var archive SessionArchiveModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("name = ?", name).First(&session).Error; err != nil {
				return err
			}
			// Missing archive row means not archived
			tx.Where("session_name = ?", name).Limit(1).Find(&archive)
			return nil
		})
	}, maxRetries)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %s: %w", name, domain.ErrSessionNotFound)
		}
		return nil, err
	}

	result := sessionModelToDomain(session, archive.IsArchived)
	return &result, nil
}

// List implements SessionReader.List
func (r *SQLiteRepository) List(ctx context.Context, includeArchived bool) ([]domain.Session, error) {
	return r.list(ctx, includeArchived, "")
}

// ListByProject implements SessionReader.ListByProject. Archived sessions
// are included.
func (r *SQLiteRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Session, error) {
	return r.list(ctx, true, projectID)
}

func (r *SQLiteRepository) list(ctx context.Context, includeArchived bool, projectID string) ([]domain.Session, error) {
	var sessions []SessionModel
	var archives []SessionArchiveModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			query := tx.Order("created_at ASC, name ASC")
			if projectID != "" {
				query = query.Where("project_id = ?", projectID)
			}
			if !includeArchived {
				query = query.Where("name NOT IN (SELECT session_name FROM session_archives WHERE is_archived = 1)")
			}
			if err := query.Find(&sessions).Error; err != nil {
				return err
			}
			return tx.Where("is_archived = ?", true).Find(&archives).Error
		})
	}, maxRetries)

	if err != nil {
		return nil, err
	}

	archiveMap := make(map[string]bool, len(archives))
	for _, a := range archives {
		archiveMap[a.SessionName] = a.IsArchived
	}

	result := make([]domain.Session, len(sessions))
	for i, sess := range sessions {
		result[i] = sessionModelToDomain(sess, archiveMap[sess.Name])
	}
	return result, nil
}

// Add implements SessionWriter.Add
func (r *SQLiteRepository) Add(ctx context.Context, session domain.Session) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&ProjectModel{}).Where("id = ?", session.ProjectID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("project %s: %w", session.ProjectID, domain.ErrProjectNotFound)
			}

			model := domainToSessionModel(session)
			if err := tx.Create(&model).Error; err != nil {
				if isConstraintViolation(err) {
					return fmt.Errorf("session %s: %w", session.Name, domain.ErrSessionExists)
				}
				return fmt.Errorf("failed to create session: %w", err)
			}

			if session.IsArchived {
				now := time.Now().UTC()
				return tx.Create(&SessionArchiveModel{
					ArchivedAt:  &now,
					IsArchived:  true,
					SessionName: session.Name,
				}).Error
			}
			return nil
		})
	}, maxRetries)
}

// Delete implements SessionWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&SessionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %s: %w", name, domain.ErrSessionNotFound)
		}
		return nil
	}, maxRetries)
}

// SetArchived implements SessionWriter.SetArchived
func (r *SQLiteRepository) SetArchived(ctx context.Context, name string, archived bool) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := ensureSession(tx, name); err != nil {
				return err
			}

			var archivedAt *time.Time
			if archived {
				now := time.Now().UTC()
				archivedAt = &now
			}

			var archive SessionArchiveModel
			err := tx.Where("session_name = ?", name).First(&archive).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&SessionArchiveModel{
					ArchivedAt:  archivedAt,
					IsArchived:  archived,
					SessionName: name,
				}).Error
			}
			if err != nil {
				return fmt.Errorf("failed to load archive: %w", err)
			}

			archive.IsArchived = archived
			archive.ArchivedAt = archivedAt
			return tx.Save(&archive).Error
		})
	}, maxRetries)
}

// UpdateState implements SessionWriter.UpdateState
func (r *SQLiteRepository) UpdateState(ctx context.Context, name string, state domain.SessionState) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&SessionModel{}).
			Where("name = ?", name).
			Update("state", string(state))
		if result.Error != nil {
			return fmt.Errorf("failed to update state: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %s: %w", name, domain.ErrSessionNotFound)
		}
		return nil
	}, maxRetries)
}

func ensureSession(tx *gorm.DB, name string) error {
	var count int64
	if err := tx.Model(&SessionModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("session %s: %w", name, domain.ErrSessionNotFound)
	}
	return nil
}
