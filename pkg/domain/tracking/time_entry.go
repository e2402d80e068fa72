package tracking

import (
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
)

// MaxHoursPerDay bounds a single time entry.
const MaxHoursPerDay = 24

// TimeEntry records whole hours worked on a task on one calendar day.
type TimeEntry struct {
	ID       int64     `json:"id"`
	TaskID   int64     `json:"task_id"`
	WorkDate time.Time `json:"work_date"`
	Hours    int       `json:"hours"`
}

// NewTimeEntry validates a new entry. today is the current calendar day; work dates after it are rejected.
func NewTimeEntry(taskID int64, workDate *time.Time, hours int, today time.Time) (TimeEntry, error) {
	if err := domain.ValidateID(domain.KindTask, taskID); err != nil {
		return TimeEntry{}, err
	}
	if workDate == nil {
		return TimeEntry{}, domain.InvalidArgument("Work date cannot be null")
	}
	te := TimeEntry{
		TaskID:   taskID,
		WorkDate: calendar.Normalize(*workDate),
		Hours:    hours,
	}
	if err := te.Validate(today); err != nil {
		return TimeEntry{}, err
	}
	return te, nil
}

func (te *TimeEntry) Validate(today time.Time) error {
	if te.WorkDate.After(calendar.Normalize(today)) {
		return domain.InvalidArgument("Work date cannot be in the future")
	}
	if te.Hours <= 0 {
		return domain.InvalidArgument("Hours must be greater than 0")
	}
	if te.Hours > MaxHoursPerDay {
		return domain.InvalidArgument("Hours cannot exceed 24 per day")
	}
	return nil
}
