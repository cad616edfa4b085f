package storage

import (
	"context"
	"fmt"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

// AddProject implements ProjectRepository.AddProject
func (r *SQLiteRepository) AddProject(ctx context.Context, project domain.Project) error {
	model := domainToProjectModel(project)
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			if isConstraintViolation(err) {
				return fmt.Errorf("project %s: %w", project.Name, domain.ErrProjectExists)
			}
			return fmt.Errorf("failed to create project: %w", err)
		}
		return nil
	}, maxRetries)
}

// GetProject implements ProjectRepository.GetProject. An exact ID match
// wins over a name match.
func (r *SQLiteRepository) GetProject(ctx context.Context, idOrName string) (*domain.Project, error) {
	var models []ProjectModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("id = ? OR name = ?", idOrName, idOrName).
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("project %s: %w", idOrName, domain.ErrProjectNotFound)
	}

	chosen := models[0]
	for _, m := range models {
		if m.ID == idOrName {
			chosen = m
			break
		}
	}
	project := projectModelToDomain(chosen)
	return &project, nil
}

// ListProjects implements ProjectRepository.ListProjects
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var models []ProjectModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Project, len(models))
	for i, m := range models {
		result[i] = projectModelToDomain(m)
	}
	return result, nil
}

// DeleteProject implements ProjectRepository.DeleteProject
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProjectModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("project %s: %w", id, domain.ErrProjectNotFound)
		}
		return nil
	}, maxRetries)
}
