package application

import (
	"fmt"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

// TaskInput carries the editable fields of a task.
type TaskInput struct {
	SubProjectID   *int64
	Name           string
	Description    string
	EstimatedHours *int
	Deadline       *time.Time
}

type TaskService struct {
	repo  tracking.Repository
	audit domain.AuditLogger
}

func NewTaskService(repo tracking.Repository, audit domain.AuditLogger) *TaskService {
	if audit == nil {
		audit = domain.NopAuditLogger{}
	}
	return &TaskService{repo: repo, audit: audit}
}

func (s *TaskService) ListByProject(projectID int64) ([]tracking.Task, error) {
	if err := domain.ValidateID(domain.KindProject, projectID); err != nil {
		return nil, err
	}
	tasks, err := s.repo.ListTasksByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) ListBySubProject(subProjectID int64) ([]tracking.Task, error) {
	if err := domain.ValidateID(domain.KindSubProject, subProjectID); err != nil {
		return nil, err
	}
	tasks, err := s.repo.ListTasksBySubProject(subProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(id int64) (*tracking.Task, error) {
	if err := domain.ValidateID(domain.KindTask, id); err != nil {
		return nil, err
	}
	return s.repo.GetTask(id)
}

func (s *TaskService) Create(projectID int64, in TaskInput, actor string) (*tracking.Task, error) {
	t, err := tracking.NewTask(projectID, in.SubProjectID, in.Name, in.Description, in.EstimatedHours, in.Deadline)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetProject(projectID); err != nil {
		return nil, err
	}
	if err := s.checkSubProject(projectID, in.SubProjectID); err != nil {
		return nil, err
	}
	if err := s.repo.CreateTask(&t); err != nil {
		return nil, err
	}

	_ = s.audit.Log("task.created", actor, map[string]any{
		"task_id":    t.ID,
		"project_id": t.ProjectID,
		"name":       t.Name,
	})
	return &t, nil
}

func (s *TaskService) Update(id int64, in TaskInput, actor string) (*tracking.Task, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	t.SubProjectID = in.SubProjectID
	t.Name = in.Name
	t.Description = in.Description
	t.EstimatedHours = in.EstimatedHours
	t.Deadline = in.Deadline
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkSubProject(t.ProjectID, t.SubProjectID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateTask(t); err != nil {
		return nil, err
	}

	_ = s.audit.Log("task.updated", actor, map[string]any{
		"task_id": t.ID,
	})
	return t, nil
}

func (s *TaskService) Delete(id int64, actor string) error {
	if err := domain.ValidateID(domain.KindTask, id); err != nil {
		return err
	}
	if err := s.repo.DeleteTask(id); err != nil {
		return err
	}

	_ = s.audit.Log("task.deleted", actor, map[string]any{
		"task_id": id,
	})
	return nil
}

func (s *TaskService) checkSubProject(projectID int64, subProjectID *int64) error {
	if subProjectID == nil {
		return nil
	}
	sp, err := s.repo.GetSubProject(*subProjectID)
	if err != nil {
		return err
	}
	if sp.ProjectID != projectID {
		return domain.InvalidArgument("SubProject does not belong to the project")
	}
	return nil
}
