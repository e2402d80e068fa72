package application

import (
	"fmt"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

// ProjectInput carries the editable fields of a project.
type ProjectInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      float64
	HourlyRate  float64
}

type ProjectService struct {
	repo  tracking.ProjectRepository
	audit domain.AuditLogger
}

func NewProjectService(repo tracking.ProjectRepository, audit domain.AuditLogger) *ProjectService {
	if audit == nil {
		audit = domain.NopAuditLogger{}
	}
	return &ProjectService{repo: repo, audit: audit}
}

func (s *ProjectService) List() ([]tracking.Project, error) {
	projects, err := s.repo.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(id int64) (*tracking.Project, error) {
	if err := domain.ValidateID(domain.KindProject, id); err != nil {
		return nil, err
	}
	return s.repo.GetProject(id)
}

func (s *ProjectService) Create(in ProjectInput, actor string) (*tracking.Project, error) {
	p, err := tracking.NewProject(in.Name, in.Description, in.StartDate, in.EndDate, in.Budget, in.HourlyRate)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateProject(&p); err != nil {
		return nil, err
	}

	_ = s.audit.Log("project.created", actor, map[string]any{
		"project_id": p.ID,
		"name":       p.Name,
	})
	return &p, nil
}

// Update replaces the editable fields of a project. Status and creation time are kept.
func (s *ProjectService) Update(id int64, in ProjectInput, actor string) (*tracking.Project, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Description = in.Description
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate
	p.Budget = in.Budget
	p.HourlyRate = in.HourlyRate
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateProject(p); err != nil {
		return nil, err
	}

	_ = s.audit.Log("project.updated", actor, map[string]any{
		"project_id": p.ID,
	})
	return p, nil
}

func (s *ProjectService) Delete(id int64, actor string) error {
	if err := domain.ValidateID(domain.KindProject, id); err != nil {
		return err
	}
	if err := s.repo.DeleteProject(id); err != nil {
		return err
	}

	_ = s.audit.Log("project.deleted", actor, map[string]any{
		"project_id": id,
	})
	return nil
}

// Transition fires a lifecycle event (start, pause, resume, complete, reopen) on the project.
func (s *ProjectService) Transition(id int64, event string, actor string) (*tracking.Project, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	from := p.Status
	to, err := tracking.Transition(p.ID, from, event)
	if err != nil {
		return nil, err
	}
	p.Status = to
	if err := s.repo.UpdateProject(p); err != nil {
		return nil, err
	}

	_ = s.audit.Log("project.transition", actor, map[string]any{
		"project_id": p.ID,
		"event":      event,
		"from":       string(from),
		"status":     string(to),
	})
	return p, nil
}
