package application_test

import (
	"errors"
	"testing"

	"github.com/Laman1911/AS-Calculation/pkg/application"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

func TestSubProjectService(t *testing.T) {
	repo := NewMockRepo()
	audit := &MockAudit{}
	svc := application.NewSubProjectService(repo, audit)
	p := seedProject(repo, nil, nil, nil, nil)

	sp, err := svc.Create(p.ID, "Backend", "", "cli")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(p.ID, "  ", "", "cli"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("blank name: %v", err)
	}
	if _, err := svc.Create(999, "X", "", "cli"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown project: %v", err)
	}

	list, err := svc.ListByProject(p.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListByProject: %v, %d", err, len(list))
	}

	renamed, err := svc.Update(sp.ID, "API", "rest", "cli")
	if err != nil || renamed.Name != "API" {
		t.Errorf("Update: %v %+v", err, renamed)
	}
	if err := svc.Delete(sp.ID, "cli"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	want := []string{"subproject.created", "subproject.updated", "subproject.deleted"}
	if len(audit.Actions) != len(want) {
		t.Fatalf("audit: %v", audit.Actions)
	}
	for i := range want {
		if audit.Actions[i] != want[i] {
			t.Errorf("audit[%d] = %s, want %s", i, audit.Actions[i], want[i])
		}
	}
}

func TestTaskService_Create(t *testing.T) {
	repo := NewMockRepo()
	audit := &MockAudit{}
	svc := application.NewTaskService(repo, audit)
	p := seedProject(repo, nil, nil, nil, nil)
	other := seedProject(repo, nil, nil, nil, nil)
	sp := &tracking.SubProject{ProjectID: other.ID, Name: "foreign"}
	_ = repo.CreateSubProject(sp)

	task, err := svc.Create(p.ID, application.TaskInput{Name: "Design", EstimatedHours: intp(8)}, "cli")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ProjectID != p.ID || *task.EstimatedHours != 8 {
		t.Errorf("unexpected task: %+v", task)
	}

	tests := []struct {
		name      string
		projectID int64
		in        application.TaskInput
		target    error
	}{
		{"invalid project id", 0, application.TaskInput{Name: "x"}, domain.ErrInvalidArgument},
		{"blank name", p.ID, application.TaskInput{Name: ""}, domain.ErrInvalidArgument},
		{"negative estimate", p.ID, application.TaskInput{Name: "x", EstimatedHours: intp(-1)}, domain.ErrInvalidArgument},
		{"unknown project", 999, application.TaskInput{Name: "x"}, domain.ErrNotFound},
		{"subproject of another project", p.ID, application.TaskInput{Name: "x", SubProjectID: &sp.ID}, domain.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.projectID, tt.in, "cli"); !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}

	if len(audit.Actions) != 1 || audit.Actions[0] != "task.created" {
		t.Errorf("only the successful create should be audited: %v", audit.Actions)
	}
}

func TestTaskService_UpdateDelete(t *testing.T) {
	repo := NewMockRepo()
	svc := application.NewTaskService(repo, nil)
	p := seedProject(repo, nil, nil, nil, nil)
	task, _ := svc.Create(p.ID, application.TaskInput{Name: "Design"}, "cli")

	updated, err := svc.Update(task.ID, application.TaskInput{Name: "Build", EstimatedHours: intp(12)}, "api")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Build" || updated.Estimate() != 12 {
		t.Errorf("unexpected task: %+v", updated)
	}

	tasks, _ := svc.ListByProject(p.ID)
	if len(tasks) != 1 {
		t.Errorf("expected 1 task, got %d", len(tasks))
	}
	if err := svc.Delete(task.ID, "api"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(task.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ListBySubProject(0); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("ListBySubProject(0): %v", err)
	}
}
