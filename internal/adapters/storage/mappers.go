package storage

import (
	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel, isArchived bool) domain.Session {
	return domain.Session{
		CreatedAt:    m.CreatedAt,
		IsArchived:   isArchived,
		Name:         m.Name,
		ProjectID:    m.ProjectID,
		State:        domain.SessionState(m.State),
		WorktreePath: m.WorktreePath,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	state := s.State
	if state == "" {
		state = domain.StateActive
	}
	return SessionModel{
		Name:         s.Name,
		ProjectID:    s.ProjectID,
		State:        string(state),
		WorktreePath: s.WorktreePath,
	}
}

func projectModelToDomain(m ProjectModel) domain.Project {
	return domain.Project{
		CreatedAt:  m.CreatedAt,
		ID:         m.ID,
		MainBranch: m.MainBranch,
		Name:       m.Name,
		Path:       m.Path,
	}
}

func domainToProjectModel(p domain.Project) ProjectModel {
	return ProjectModel{
		ID:         p.ID,
		MainBranch: p.MainBranch,
		Name:       p.Name,
		Path:       p.Path,
	}
}
