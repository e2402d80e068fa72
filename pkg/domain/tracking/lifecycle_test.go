package tracking

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from  ProjectStatus
		event string
		want  ProjectStatus
	}{
		{StatusPlanned, EventStart, StatusActive},
		{"", EventStart, StatusActive},
		{StatusActive, EventPause, StatusOnHold},
		{StatusOnHold, EventResume, StatusActive},
		{StatusActive, EventComplete, StatusCompleted},
		{StatusCompleted, EventReopen, StatusActive},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+tt.event, func(t *testing.T) {
			got, err := Transition(1, tt.from, tt.event)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestTransition_Invalid(t *testing.T) {
	tests := []struct {
		from  ProjectStatus
		event string
	}{
		{StatusPlanned, EventComplete},
		{StatusPlanned, EventPause},
		{StatusOnHold, EventComplete},
		{StatusCompleted, EventStart},
		{StatusActive, "explode"},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+tt.event, func(t *testing.T) {
			got, err := Transition(7, tt.from, tt.event)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if got != tt.from {
				t.Errorf("status should stay %s, got %s", tt.from, got)
			}
			var te *TransitionError
			if !errors.As(err, &te) || te.ProjectID != 7 || te.Event != tt.event {
				t.Errorf("unexpected transition error: %#v", err)
			}
		})
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	if _, err := Transition(1, "archived", EventStart); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestProjectLifecycle_Sequence(t *testing.T) {
	lc, err := NewProjectLifecycle(3, StatusPlanned)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ev := range []string{EventStart, EventPause, EventResume, EventComplete} {
		if _, err := lc.Fire(ev); err != nil {
			t.Fatalf("%s: %v", ev, err)
		}
	}
	if lc.Current() != StatusCompleted {
		t.Errorf("expected completed, got %s", lc.Current())
	}
}

func TestProjectStatus_CanTransitionWith(t *testing.T) {
	if !StatusActive.CanTransitionWith(EventPause) {
		t.Error("active should accept pause")
	}
	if StatusPlanned.CanTransitionWith(EventComplete) {
		t.Error("planned should not accept complete")
	}
	if ProjectStatus("archived").IsValid() {
		t.Error("archived is not a known status")
	}
}
