package tracking

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
)

func intp(v int) *int    { return &v }
func idp(v int64) *int64 { return &v }
func datep(y int, m time.Month, d int) *time.Time {
	t := calendar.Date(y, m, d)
	return &t
}

func wantInvalid(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", msg)
	}
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err.Error() != msg {
		t.Errorf("message: want %q, got %q", msg, err.Error())
	}
}

func TestNewProject(t *testing.T) {
	p, err := NewProject("  Website  ", "", datep(2026, 2, 2), datep(2026, 2, 6), 5000, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Website" {
		t.Errorf("name not trimmed: %q", p.Name)
	}
	if p.Status != StatusPlanned {
		t.Errorf("expected planned status, got %s", p.Status)
	}

	tests := []struct {
		name       string
		pname      string
		start, end *time.Time
		budget     float64
		rate       float64
		msg        string
	}{
		{"blank name", "  ", nil, nil, 0, 0, "Project name cannot be empty"},
		{"end before start", "X", datep(2026, 2, 6), datep(2026, 2, 2), 0, 0, "End date cannot be before start date"},
		{"negative budget", "X", nil, nil, -1, 0, "Budget must be non-negative"},
		{"negative rate", "X", nil, nil, 0, -5, "Hourly rate must be non-negative"},
		{"NaN budget", "X", nil, nil, math.NaN(), 0, "Budget must be a finite number"},
		{"infinite rate", "X", nil, nil, 0, math.Inf(1), "Hourly rate must be a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProject(tt.pname, "", tt.start, tt.end, tt.budget, tt.rate)
			wantInvalid(t, err, tt.msg)
		})
	}

	if _, err := NewProject("Same day", "", datep(2026, 2, 2), datep(2026, 2, 2), 0, 0); err != nil {
		t.Errorf("same start and end should be accepted: %v", err)
	}
}

func TestNewSubProject(t *testing.T) {
	if _, err := NewSubProject(1, "Backend", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := NewSubProject(0, "Backend", "")
	wantInvalid(t, err, "Project ID must be valid")
	_, err = NewSubProject(1, "", "")
	wantInvalid(t, err, "Name cannot be empty")
}

func TestNewTask(t *testing.T) {
	task, err := NewTask(1, idp(2), "Design", "", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Estimate() != 0 {
		t.Errorf("absent estimate should count as 0, got %d", task.Estimate())
	}

	tests := []struct {
		name      string
		projectID int64
		sub       *int64
		tname     string
		est       *int
		msg       string
	}{
		{"invalid project", -1, nil, "T", nil, "Project ID must be valid"},
		{"invalid subproject", 1, idp(0), "T", nil, "SubProject ID must be valid"},
		{"blank name", 1, nil, " ", nil, "Task name cannot be empty"},
		{"negative estimate", 1, nil, "T", intp(-3), "Estimated hours must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask(tt.projectID, tt.sub, tt.tname, "", tt.est, nil)
			wantInvalid(t, err, tt.msg)
		})
	}

	zero, err := NewTask(1, nil, "Zero", "", intp(0), nil)
	if err != nil || zero.Estimate() != 0 {
		t.Errorf("zero estimate should be accepted: %v", err)
	}
}

func TestNewTimeEntry(t *testing.T) {
	today := time.Date(2026, 2, 6, 15, 30, 0, 0, time.UTC)

	te, err := NewTimeEntry(1, datep(2026, 2, 6), 8, today)
	if err != nil {
		t.Fatalf("entry for today should be accepted: %v", err)
	}
	if te.Hours != 8 || !te.WorkDate.Equal(calendar.Date(2026, 2, 6)) {
		t.Errorf("unexpected entry: %+v", te)
	}
	if _, err := NewTimeEntry(1, datep(2026, 2, 6), 24, today); err != nil {
		t.Errorf("24 hours should be accepted: %v", err)
	}

	tests := []struct {
		name   string
		taskID int64
		date   *time.Time
		hours  int
		msg    string
	}{
		{"invalid task", 0, datep(2026, 2, 5), 1, "Task ID must be valid"},
		{"missing date", 1, nil, 1, "Work date cannot be null"},
		{"future date", 1, datep(2026, 2, 7), 1, "Work date cannot be in the future"},
		{"zero hours", 1, datep(2026, 2, 5), 0, "Hours must be greater than 0"},
		{"too many hours", 1, datep(2026, 2, 5), 25, "Hours cannot exceed 24 per day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeEntry(tt.taskID, tt.date, tt.hours, today)
			wantInvalid(t, err, tt.msg)
		})
	}
}
