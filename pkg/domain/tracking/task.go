package tracking

import (
	"strings"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

// Task is a unit of estimated work inside a project.
// A nil EstimatedHours means the task has not been estimated.
type Task struct {
	ID             int64      `json:"id"`
	ProjectID      int64      `json:"project_id"`
	SubProjectID   *int64     `json:"subproject_id,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	EstimatedHours *int       `json:"estimated_hours,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

func NewTask(projectID int64, subProjectID *int64, name, description string, estimatedHours *int, deadline *time.Time) (Task, error) {
	t := Task{
		ProjectID:      projectID,
		SubProjectID:   subProjectID,
		Name:           strings.TrimSpace(name),
		Description:    description,
		EstimatedHours: estimatedHours,
		Deadline:       deadline,
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (t *Task) Validate() error {
	if err := domain.ValidateID(domain.KindProject, t.ProjectID); err != nil {
		return err
	}
	if t.SubProjectID != nil {
		if err := domain.ValidateID(domain.KindSubProject, *t.SubProjectID); err != nil {
			return err
		}
	}
	if strings.TrimSpace(t.Name) == "" {
		return domain.InvalidArgument("Task name cannot be empty")
	}
	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		return domain.InvalidArgument("Estimated hours must be non-negative")
	}
	return nil
}

// Estimate returns the estimated hours, treating an absent estimate as zero.
func (t *Task) Estimate() int {
	if t.EstimatedHours == nil {
		return 0
	}
	return *t.EstimatedHours
}
