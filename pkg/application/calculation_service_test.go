package application_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/application"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

func intp(v int) *int { return &v }

func datep(y int, m time.Month, d int) *time.Time {
	t := calendar.Date(y, m, d)
	return &t
}

// seedProject stores a project with one task per estimate and one entry per logged value.
func seedProject(repo *MockRepo, start, end *time.Time, estimates []*int, logged []int) *tracking.Project {
	p := &tracking.Project{Name: "P", StartDate: start, EndDate: end, Status: tracking.StatusActive}
	_ = repo.CreateProject(p)

	var firstTask int64
	for _, est := range estimates {
		t := &tracking.Task{ProjectID: p.ID, Name: "t", EstimatedHours: est}
		_ = repo.CreateTask(t)
		if firstTask == 0 {
			firstTask = t.ID
		}
	}
	if len(logged) > 0 && firstTask == 0 {
		t := &tracking.Task{ProjectID: p.ID, Name: "untracked"}
		_ = repo.CreateTask(t)
		firstTask = t.ID
	}
	for _, h := range logged {
		_ = repo.CreateTimeEntry(&tracking.TimeEntry{TaskID: firstTask, WorkDate: calendar.Date(2026, 2, 2), Hours: h})
	}
	return p
}

func TestCalculationService_TotalEstimatedHours(t *testing.T) {
	tests := []struct {
		name      string
		estimates []*int
		want      int
	}{
		{"no tasks", nil, 0},
		{"absent estimates count as zero", []*int{intp(5), intp(10), nil}, 15},
		{"all absent", []*int{nil, nil}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockRepo()
			p := seedProject(repo, nil, nil, tt.estimates, nil)
			svc := application.NewCalculationService(repo)

			got, err := svc.TotalEstimatedHours(p.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCalculationService_TotalRegisteredHours(t *testing.T) {
	repo := NewMockRepo()
	p := seedProject(repo, nil, nil, []*int{intp(10)}, []int{3, 4})
	other := seedProject(repo, nil, nil, []*int{intp(10)}, []int{8})
	svc := application.NewCalculationService(repo)

	got, err := svc.TotalRegisteredHours(p.ID)
	if err != nil || got != 7 {
		t.Errorf("want 7, got %d (%v)", got, err)
	}
	got, _ = svc.TotalRegisteredHours(other.ID)
	if got != 8 {
		t.Errorf("other project: want 8, got %d", got)
	}

	empty := seedProject(repo, nil, nil, nil, nil)
	got, err = svc.TotalRegisteredHours(empty.ID)
	if err != nil || got != 0 {
		t.Errorf("no entries: want 0, got %d (%v)", got, err)
	}
}

func TestCalculationService_RemainingEstimatedHours(t *testing.T) {
	tests := []struct {
		name   string
		est    []*int
		logged []int
		want   int
	}{
		{"partly done", []*int{intp(30)}, []int{10}, 20},
		{"over registered floors at zero", []*int{intp(30)}, []int{24, 16}, 0},
		{"nothing estimated", nil, []int{5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockRepo()
			p := seedProject(repo, nil, nil, tt.est, tt.logged)
			got, err := application.NewCalculationService(repo).RemainingEstimatedHours(p.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCalculationService_WorkingDaysBetween(t *testing.T) {
	svc := application.NewCalculationService(NewMockRepo())

	tests := []struct {
		name       string
		start, end *time.Time
		want       int
	}{
		{"mon to fri", datep(2026, 2, 2), datep(2026, 2, 6), 5},
		{"tue to next mon", datep(2026, 2, 3), datep(2026, 2, 9), 5},
		{"nil start", nil, datep(2026, 2, 6), 0},
		{"nil end", datep(2026, 2, 2), nil, 0},
		{"reversed", datep(2026, 2, 6), datep(2026, 2, 2), 0},
		{"weekend only", datep(2026, 2, 7), datep(2026, 2, 8), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.WorkingDaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("want %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCalculationService_RequiredHoursPerWorkday(t *testing.T) {
	repo := NewMockRepo()
	svc := application.NewCalculationService(repo)

	p := seedProject(repo, datep(2026, 2, 2), datep(2026, 2, 6), []*int{intp(20), intp(30)}, nil)
	got, err := svc.RequiredHoursPerWorkday(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10.0 {
		t.Errorf("want 10.0, got %v", got)
	}

	uneven := seedProject(repo, datep(2026, 2, 2), datep(2026, 2, 4), []*int{intp(10)}, nil)
	got, _ = svc.RequiredHoursPerWorkday(uneven)
	if math.Abs(got-10.0/3.0) > 1e-9 {
		t.Errorf("want unrounded 3.333..., got %v", got)
	}

	zeroCases := []struct {
		name    string
		project *tracking.Project
	}{
		{"nil project", nil},
		{"missing start", &tracking.Project{ID: p.ID, EndDate: datep(2026, 2, 6)}},
		{"missing end", &tracking.Project{ID: p.ID, StartDate: datep(2026, 2, 2)}},
		{"weekend range", &tracking.Project{ID: p.ID, StartDate: datep(2026, 2, 7), EndDate: datep(2026, 2, 8)}},
	}
	for _, tc := range zeroCases {
		t.Run(tc.name, func(t *testing.T) {
			before := repo.Reads
			got, err := svc.RequiredHoursPerWorkday(tc.project)
			if err != nil || got != 0 {
				t.Errorf("want 0, got %v (%v)", got, err)
			}
			if repo.Reads != before {
				t.Errorf("expected no reads, got %d", repo.Reads-before)
			}
		})
	}
}

func TestCalculationService_ProgressPercentage(t *testing.T) {
	tests := []struct {
		name   string
		est    []*int
		logged []int
		want   float64
	}{
		{"half", []*int{intp(100)}, []int{20, 20, 10}, 50.0},
		{"capped at 100", []*int{intp(50)}, []int{24, 24, 24, 24, 4}, 100.0},
		{"no tasks", nil, nil, 0.0},
		{"only unestimated tasks", []*int{nil}, []int{5}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockRepo()
			p := seedProject(repo, nil, nil, tt.est, tt.logged)
			got, err := application.NewCalculationService(repo).ProgressPercentage(p.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCalculationService_InvalidIDReadsNothing(t *testing.T) {
	calls := map[string]func(*application.CalculationService, int64) error{
		"TotalEstimatedHours": func(s *application.CalculationService, id int64) error {
			_, err := s.TotalEstimatedHours(id)
			return err
		},
		"TotalRegisteredHours": func(s *application.CalculationService, id int64) error {
			_, err := s.TotalRegisteredHours(id)
			return err
		},
		"RemainingEstimatedHours": func(s *application.CalculationService, id int64) error {
			_, err := s.RemainingEstimatedHours(id)
			return err
		},
		"ProgressPercentage": func(s *application.CalculationService, id int64) error {
			_, err := s.ProgressPercentage(id)
			return err
		},
		"Summary": func(s *application.CalculationService, id int64) error {
			_, err := s.Summary(id)
			return err
		},
	}

	for name, call := range calls {
		for _, id := range []int64{0, -1, -42} {
			repo := NewMockRepo()
			err := call(application.NewCalculationService(repo), id)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("%s(%d): expected ErrInvalidArgument, got %v", name, id, err)
			}
			if err != nil && err.Error() != "Project ID must be valid" {
				t.Errorf("%s(%d): unexpected message %q", name, id, err.Error())
			}
			if repo.Reads != 0 {
				t.Errorf("%s(%d): expected no reads, got %d", name, id, repo.Reads)
			}
		}
	}
}

func TestCalculationService_PropagatesSourceErrors(t *testing.T) {
	repo := NewMockRepo()
	p := seedProject(repo, nil, nil, []*int{intp(5)}, nil)
	repo.LoadError = errBoom
	svc := application.NewCalculationService(repo)

	if _, err := svc.TotalEstimatedHours(p.ID); !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
	if _, err := svc.ProgressPercentage(p.ID); !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}

func TestCalculationService_Summary(t *testing.T) {
	repo := NewMockRepo()
	p := seedProject(repo, datep(2026, 2, 2), datep(2026, 2, 6), []*int{intp(30), intp(20), nil}, []int{8, 2})
	stored := repo.Projects[p.ID]
	stored.Budget = 6000
	stored.HourlyRate = 100

	sum, err := application.NewCalculationService(repo).WithCurrency("DKK").Summary(p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.EstimatedHours != 50 || sum.RegisteredHours != 10 || sum.RemainingHours != 40 {
		t.Errorf("hours: %+v", sum)
	}
	if sum.WorkingDays != 5 || sum.RequiredPerDay != 8.0 {
		t.Errorf("pace: %+v", sum)
	}
	if sum.ProgressPercent != 20.0 {
		t.Errorf("progress: want 20, got %v", sum.ProgressPercent)
	}
	if sum.EstimatedCost != 5000 || sum.ActualCost != 1000 || math.Abs(sum.ProfitMargin-20) > 1e-9 {
		t.Errorf("cost: %+v", sum)
	}
	if sum.OverBudget {
		t.Error("should not be over budget")
	}
	if sum.TaskCount != 3 || sum.UnestimatedTasks != 1 {
		t.Errorf("task counts: %+v", sum)
	}
	if sum.StartDate != "2026-02-02" || sum.Currency != "DKK" || sum.ProjectName != "P" {
		t.Errorf("labels: %+v", sum)
	}
}

func TestCalculationService_SummaryNotFound(t *testing.T) {
	_, err := application.NewCalculationService(NewMockRepo()).Summary(404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
