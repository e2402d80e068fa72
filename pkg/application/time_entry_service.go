package application

import (
	"fmt"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

type TimeEntryService struct {
	repo  tracking.Repository
	audit domain.AuditLogger
	now   func() time.Time
}

func NewTimeEntryService(repo tracking.Repository, audit domain.AuditLogger) *TimeEntryService {
	if audit == nil {
		audit = domain.NopAuditLogger{}
	}
	return &TimeEntryService{repo: repo, audit: audit, now: time.Now}
}

// WithClock replaces the clock used to decide what "today" is.
func (s *TimeEntryService) WithClock(now func() time.Time) *TimeEntryService {
	s.now = now
	return s
}

func (s *TimeEntryService) ListByTask(taskID int64) ([]tracking.TimeEntry, error) {
	if err := domain.ValidateID(domain.KindTask, taskID); err != nil {
		return nil, err
	}
	entries, err := s.repo.ListTimeEntriesByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return entries, nil
}

func (s *TimeEntryService) Get(id int64) (*tracking.TimeEntry, error) {
	if err := domain.ValidateID(domain.KindTimeEntry, id); err != nil {
		return nil, err
	}
	return s.repo.GetTimeEntry(id)
}

func (s *TimeEntryService) TotalByProject(projectID int64) (int, error) {
	if err := domain.ValidateID(domain.KindProject, projectID); err != nil {
		return 0, err
	}
	return s.repo.SumHoursByProject(projectID)
}

// Log records hours worked on a task. A nil workDate means today.
func (s *TimeEntryService) Log(taskID int64, workDate *time.Time, hours int, actor string) (*tracking.TimeEntry, error) {
	today := s.now()
	if workDate == nil {
		workDate = &today
	}
	te, err := tracking.NewTimeEntry(taskID, workDate, hours, today)
	if err != nil {
		return nil, err
	}
	task, err := s.repo.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateTimeEntry(&te); err != nil {
		return nil, err
	}

	_ = s.audit.Log("time.logged", actor, map[string]any{
		"entry_id":   te.ID,
		"task_id":    te.TaskID,
		"project_id": task.ProjectID,
		"hours":      te.Hours,
		"work_date":  te.WorkDate.Format(calendar.Layout),
	})
	return &te, nil
}

func (s *TimeEntryService) Update(id int64, workDate *time.Time, hours int, actor string) (*tracking.TimeEntry, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if workDate == nil {
		workDate = &existing.WorkDate
	}
	te, err := tracking.NewTimeEntry(existing.TaskID, workDate, hours, s.now())
	if err != nil {
		return nil, err
	}
	te.ID = existing.ID
	if err := s.repo.UpdateTimeEntry(&te); err != nil {
		return nil, err
	}

	_ = s.audit.Log("time.updated", actor, map[string]any{
		"entry_id": te.ID,
		"hours":    te.Hours,
	})
	return &te, nil
}

func (s *TimeEntryService) Delete(id int64, actor string) error {
	if err := domain.ValidateID(domain.KindTimeEntry, id); err != nil {
		return err
	}
	if err := s.repo.DeleteTimeEntry(id); err != nil {
		return err
	}

	_ = s.audit.Log("time.deleted", actor, map[string]any{
		"entry_id": id,
	})
	return nil
}
