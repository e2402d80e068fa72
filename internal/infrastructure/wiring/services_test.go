package wiring

import (
	"testing"

	"github.com/Laman1911/AS-Calculation/pkg/application"
)

func TestBuildAppServices(t *testing.T) {
	services, err := BuildAppServices(initWorkspace(t))
	if err != nil {
		t.Fatalf("build services failed: %v", err)
	}
	defer services.Close()

	if services.Calc == nil || services.Projects == nil || services.Tasks == nil || services.Import == nil {
		t.Fatalf("expected non-nil services, got %+v", services)
	}

	p, err := services.Projects.Create(application.ProjectInput{Name: "Wired"}, "test")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	sum, err := services.Calc.Summary(p.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.ProjectName != "Wired" || sum.Currency != "DKK" {
		t.Errorf("unexpected summary: %+v", sum)
	}

	events, err := services.Audit.GetTimeline()
	if err != nil || len(events) != 1 || events[0].Action != "project.created" {
		t.Errorf("expected one audit event, got %v (%v)", events, err)
	}
}
