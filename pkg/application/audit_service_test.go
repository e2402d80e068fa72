package application_test

import (
	"errors"
	"testing"

	"github.com/Laman1911/AS-Calculation/pkg/application"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

func TestAuditService_LogChainsHashes(t *testing.T) {
	repo := &MockAuditRepo{}
	svc := application.NewAuditService(repo)

	if err := svc.Log("project.created", "cli", map[string]any{"project_id": 1}); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if err := svc.Log("time.logged", "api", map[string]any{"hours": 4}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	events, _ := svc.GetTimeline()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].PrevHash != "" || events[1].PrevHash != events[0].Hash {
		t.Error("events are not chained")
	}
	if events[0].ID == "" || events[0].ID == events[1].ID {
		t.Error("events need distinct ids")
	}

	violations, err := svc.VerifyIntegrity()
	if err != nil || len(violations) != 0 {
		t.Errorf("expected clean chain, got %v (%v)", violations, err)
	}
}

func TestAuditService_DetectsTampering(t *testing.T) {
	repo := &MockAuditRepo{}
	svc := application.NewAuditService(repo)
	_ = svc.Log("project.created", "cli", nil)
	_ = svc.Log("project.deleted", "cli", map[string]any{"project_id": 1})

	repo.Events[1].Actor = "someone-else"

	violations, err := svc.VerifyIntegrity()
	if err != nil {
		t.Fatalf("VerifyIntegrity: %v", err)
	}
	if len(violations) != 1 {
		t.Errorf("expected 1 violation, got %v", violations)
	}
}

func TestAuditService_LoadError(t *testing.T) {
	repo := &MockAuditRepo{LoadError: errBoom}
	svc := application.NewAuditService(repo)

	if err := svc.Log("x", "cli", nil); !errors.Is(err, errBoom) {
		t.Errorf("expected load error, got %v", err)
	}
	if _, err := svc.VerifyIntegrity(); !errors.Is(err, errBoom) {
		t.Errorf("expected load error, got %v", err)
	}
}

func TestAuditService_Subscribe(t *testing.T) {
	repo := &MockAuditRepo{}
	svc := application.NewAuditService(repo)

	var got []domain.Event
	svc.Subscribe(func(e domain.Event) { got = append(got, e) })

	_ = svc.Log("task.created", "api", map[string]any{"task_id": 3})
	if len(got) != 1 || got[0].Action != "task.created" || got[0].Hash == "" {
		t.Fatalf("unexpected delivered events: %+v", got)
	}

	failing := application.NewAuditService(&MockAuditRepo{LoadError: errBoom})
	failing.Subscribe(func(domain.Event) { t.Error("failed log should not be delivered") })
	_ = failing.Log("task.created", "api", nil)
}
