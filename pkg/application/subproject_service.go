package application

import (
	"fmt"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

type SubProjectService struct {
	repo  tracking.Repository
	audit domain.AuditLogger
}

func NewSubProjectService(repo tracking.Repository, audit domain.AuditLogger) *SubProjectService {
	if audit == nil {
		audit = domain.NopAuditLogger{}
	}
	return &SubProjectService{repo: repo, audit: audit}
}

func (s *SubProjectService) ListByProject(projectID int64) ([]tracking.SubProject, error) {
	if err := domain.ValidateID(domain.KindProject, projectID); err != nil {
		return nil, err
	}
	subs, err := s.repo.ListSubProjects(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subprojects: %w", err)
	}
	return subs, nil
}

func (s *SubProjectService) Get(id int64) (*tracking.SubProject, error) {
	if err := domain.ValidateID(domain.KindSubProject, id); err != nil {
		return nil, err
	}
	return s.repo.GetSubProject(id)
}

func (s *SubProjectService) Create(projectID int64, name, description, actor string) (*tracking.SubProject, error) {
	sp, err := tracking.NewSubProject(projectID, name, description)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetProject(projectID); err != nil {
		return nil, err
	}
	if err := s.repo.CreateSubProject(&sp); err != nil {
		return nil, err
	}

	_ = s.audit.Log("subproject.created", actor, map[string]any{
		"subproject_id": sp.ID,
		"project_id":    sp.ProjectID,
		"name":          sp.Name,
	})
	return &sp, nil
}

func (s *SubProjectService) Update(id int64, name, description, actor string) (*tracking.SubProject, error) {
	sp, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	sp.Name = name
	sp.Description = description
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSubProject(sp); err != nil {
		return nil, err
	}

	_ = s.audit.Log("subproject.updated", actor, map[string]any{
		"subproject_id": sp.ID,
	})
	return sp, nil
}

func (s *SubProjectService) Delete(id int64, actor string) error {
	if err := domain.ValidateID(domain.KindSubProject, id); err != nil {
		return err
	}
	if err := s.repo.DeleteSubProject(id); err != nil {
		return err
	}

	_ = s.audit.Log("subproject.deleted", actor, map[string]any{
		"subproject_id": id,
	})
	return nil
}
