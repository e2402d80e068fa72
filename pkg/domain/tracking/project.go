// Package tracking models projects, their sub-projects and tasks, and the time logged against them.
package tracking

import (
	"math"
	"strings"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

// Project is the top-level unit of planned work.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Status      ProjectStatus `json:"status"`
	Budget      float64       `json:"budget"`
	HourlyRate  float64       `json:"hourly_rate"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewProject validates the fields of a new project. The returned project is in the planned state.
func NewProject(name, description string, start, end *time.Time, budget, hourlyRate float64) (Project, error) {
	p := Project{
		Name:        strings.TrimSpace(name),
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Status:      StatusPlanned,
		Budget:      budget,
		HourlyRate:  hourlyRate,
	}
	if err := p.Validate(); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Validate checks the project's own invariants. The id is not checked.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.InvalidArgument("Project name cannot be empty")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return domain.InvalidArgument("End date cannot be before start date")
	}
	if err := validateAmount("Budget", p.Budget); err != nil {
		return err
	}
	if err := validateAmount("Hourly rate", p.HourlyRate); err != nil {
		return err
	}
	if p.Status != "" && !p.Status.IsValid() {
		return domain.InvalidArgument("Unknown project status: " + string(p.Status))
	}
	return nil
}

func validateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.InvalidArgument(field + " must be a finite number")
	}
	if v < 0 {
		return domain.InvalidArgument(field + " must be non-negative")
	}
	return nil
}
