package application

import (
	"fmt"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
	"github.com/Laman1911/AS-Calculation/pkg/domain/metrics"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

// CalculationService derives hour, pace and progress figures for projects.
// It holds no state; every call reads fresh figures from its source.
type CalculationService struct {
	source   tracking.MetricsSource
	currency string
}

func NewCalculationService(source tracking.MetricsSource) *CalculationService {
	return &CalculationService{source: source}
}

// WithCurrency sets the currency label attached to summaries.
func (s *CalculationService) WithCurrency(currency string) *CalculationService {
	s.currency = currency
	return s
}

// TotalEstimatedHours sums the estimates of every task in the project. Unestimated tasks count as 0.
func (s *CalculationService) TotalEstimatedHours(projectID int64) (int, error) {
	if err := domain.ValidateID(domain.KindProject, projectID); err != nil {
		return 0, err
	}
	tasks, err := s.source.ListTasksByProject(projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return sumEstimates(tasks), nil
}

// TotalRegisteredHours sums every time entry logged against the project's tasks.
func (s *CalculationService) TotalRegisteredHours(projectID int64) (int, error) {
	if err := domain.ValidateID(domain.KindProject, projectID); err != nil {
		return 0, err
	}
	total, err := s.source.SumHoursByProject(projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum registered hours: %w", err)
	}
	return total, nil
}

// RemainingEstimatedHours is estimated minus registered, never below zero.
func (s *CalculationService) RemainingEstimatedHours(projectID int64) (int, error) {
	estimated, registered, err := s.totals(projectID)
	if err != nil {
		return 0, err
	}
	return metrics.Remaining(estimated, registered), nil
}

// WorkingDaysBetween counts Monday to Friday days in the inclusive range.
func (s *CalculationService) WorkingDaysBetween(start, endInclusive *time.Time) int {
	return calendar.WorkingDaysBetween(start, endInclusive)
}

// RequiredHoursPerWorkday spreads the remaining hours over the working days of the project's date range.
// A nil project, a missing date or an empty range yields 0 without reading anything.
func (s *CalculationService) RequiredHoursPerWorkday(project *tracking.Project) (float64, error) {
	if project == nil || project.StartDate == nil || project.EndDate == nil {
		return 0, nil
	}
	days := calendar.WorkingDaysBetween(project.StartDate, project.EndDate)
	if days == 0 {
		return 0, nil
	}
	remaining, err := s.RemainingEstimatedHours(project.ID)
	if err != nil {
		return 0, err
	}
	return metrics.PerWorkday(remaining, days), nil
}

// ProgressPercentage is registered over estimated hours as a percentage in [0, 100].
func (s *CalculationService) ProgressPercentage(projectID int64) (float64, error) {
	estimated, registered, err := s.totals(projectID)
	if err != nil {
		return 0, err
	}
	return metrics.Progress(estimated, registered), nil
}

// Summary loads the project and reports all of its figures, including cost against budget.
func (s *CalculationService) Summary(projectID int64) (*metrics.Summary, error) {
	if err := domain.ValidateID(domain.KindProject, projectID); err != nil {
		return nil, err
	}
	project, err := s.source.GetProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	tasks, err := s.source.ListTasksByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	registered, err := s.source.SumHoursByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum registered hours: %w", err)
	}

	unestimated := 0
	for _, t := range tasks {
		if t.EstimatedHours == nil {
			unestimated++
		}
	}

	sum := metrics.NewSummary(metrics.Inputs{
		EstimatedHours:   sumEstimates(tasks),
		RegisteredHours:  registered,
		WorkingDays:      calendar.WorkingDaysBetween(project.StartDate, project.EndDate),
		Budget:           project.Budget,
		HourlyRate:       project.HourlyRate,
		TaskCount:        len(tasks),
		UnestimatedTasks: unestimated,
	})
	sum.ProjectID = project.ID
	sum.ProjectName = project.Name
	sum.StartDate = calendar.FormatDate(project.StartDate)
	sum.EndDate = calendar.FormatDate(project.EndDate)
	sum.Currency = s.currency
	return &sum, nil
}

func (s *CalculationService) totals(projectID int64) (int, int, error) {
	estimated, err := s.TotalEstimatedHours(projectID)
	if err != nil {
		return 0, 0, err
	}
	registered, err := s.TotalRegisteredHours(projectID)
	if err != nil {
		return 0, 0, err
	}
	return estimated, registered, nil
}

func sumEstimates(tasks []tracking.Task) int {
	estimates := make([]*int, len(tasks))
	for i := range tasks {
		estimates[i] = tasks[i].EstimatedHours
	}
	return metrics.SumEstimated(estimates)
}
