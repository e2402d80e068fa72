package application_test

import (
	"errors"
	"testing"

	"github.com/Laman1911/AS-Calculation/pkg/application"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

func newImportService(repo *MockRepo, audit *MockAudit) *application.ImportService {
	return application.NewImportService(
		application.NewProjectService(repo, audit),
		application.NewSubProjectService(repo, audit),
		application.NewTaskService(repo, audit),
		application.NewTimeEntryService(repo, audit).WithClock(fixedClock),
	).WithClock(fixedClock)
}

const validImport = `{
  "projects": [
    {
      "name": "Website",
      "start_date": "2026-02-02",
      "end_date": "2026-02-27",
      "budget": 10000,
      "hourly_rate": 100,
      "subprojects": [{"name": "Frontend"}],
      "tasks": [
        {"name": "Layout", "subproject": "Frontend", "estimated_hours": 20,
         "time_entries": [{"work_date": "2026-02-02", "hours": 6}, {"work_date": "2026-02-03", "hours": 4}]},
        {"name": "Hosting", "estimated_hours": null}
      ]
    }
  ]
}`

func TestImportService_Import(t *testing.T) {
	repo := NewMockRepo()
	audit := &MockAudit{}
	svc := newImportService(repo, audit)

	res, err := svc.Import([]byte(validImport), "import")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Projects != 1 || res.SubProjects != 1 || res.Tasks != 2 || res.TimeEntries != 2 {
		t.Errorf("unexpected counts: %+v", res)
	}

	calc := application.NewCalculationService(repo)
	projects, _ := repo.ListProjects()
	est, _ := calc.TotalEstimatedHours(projects[0].ID)
	reg, _ := calc.TotalRegisteredHours(projects[0].ID)
	if est != 20 || reg != 10 {
		t.Errorf("imported figures: estimated %d, registered %d", est, reg)
	}

	tasks, _ := repo.ListTasksByProject(projects[0].ID)
	if tasks[0].SubProjectID == nil {
		t.Error("task should reference its subproject")
	}
	for _, actor := range audit.Actors {
		if actor != "import" {
			t.Errorf("unexpected actor %q", actor)
		}
	}
}

func TestImportService_RejectsWithoutWriting(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{projects:`},
		{"missing projects", `{}`},
		{"unknown top-level field", `{"projects": [], "extra": 1}`},
		{"project without name", `{"projects": [{"budget": 1}]}`},
		{"bad date format", `{"projects": [{"name": "A", "start_date": "02/02/2026"}]}`},
		{"hours out of range", `{"projects": [{"name": "A", "tasks": [{"name": "t", "time_entries": [{"work_date": "2026-02-02", "hours": 25}]}]}]}`},
		{"negative estimate", `{"projects": [{"name": "A", "tasks": [{"name": "t", "estimated_hours": -2}]}]}`},
		{"end before start", `{"projects": [{"name": "A", "start_date": "2026-02-06", "end_date": "2026-02-02"}]}`},
		{"future work date", `{"projects": [{"name": "A", "tasks": [{"name": "t", "time_entries": [{"work_date": "2026-03-01", "hours": 2}]}]}]}`},
		{"unknown subproject", `{"projects": [{"name": "A", "tasks": [{"name": "t", "subproject": "nope"}]}]}`},
		{"invalid second project", `{"projects": [{"name": "A"}, {"name": "B", "budget": -5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockRepo()
			_, err := newImportService(repo, &MockAudit{}).Import([]byte(tt.doc), "import")
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if len(repo.Projects) != 0 || len(repo.Tasks) != 0 || len(repo.Entries) != 0 {
				t.Error("nothing should be written for a rejected document")
			}
		})
	}
}
