package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
)

// SaveStatus implements ports.StatusStore.SaveStatus. Statuses of sessions
// that no longer exist are dropped.
func (r *SQLiteRepository) SaveStatus(ctx context.Context, sessionID string, status domain.GitStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}

	model := StatusSnapshotModel{
		CheckedAt:   status.LastChecked.UTC(),
		Payload:     string(payload),
		SessionName: sessionID,
		State:       string(status.State),
	}
	return withRetry(func() error {
		if err := ensureSession(r.db.WithContext(ctx), sessionID); err != nil {
			return err
		}
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"checked_at", "payload", "state", "updated_at"}),
		}).Create(&model).Error
	}, maxRetries)
}

// LoadStatuses implements ports.StatusStore.LoadStatuses. Rows that fail
// to decode are skipped.
func (r *SQLiteRepository) LoadStatuses(ctx context.Context) (map[string]domain.GitStatus, error) {
	var models []StatusSnapshotModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	result := make(map[string]domain.GitStatus, len(models))
	for _, m := range models {
		var status domain.GitStatus
		if err := json.Unmarshal([]byte(m.Payload), &status); err != nil {
			logging.Logger.Warn("Skipping unreadable status snapshot", "session", m.SessionName, "error", err)
			continue
		}
		result[m.SessionName] = status
	}
	return result, nil
}
