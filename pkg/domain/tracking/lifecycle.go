package tracking

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State ids for the lifecycle machine. Kept as untyped strings for statekit.StateID.
const (
	statePlanned   = "planned"
	stateActive    = "active"
	stateOnHold    = "on_hold"
	stateCompleted = "completed"
)

// LifecycleContext carries the project the machine is driving.
type LifecycleContext struct {
	ProjectID int64
}

// ProjectLifecycle drives a project's status through its allowed transitions.
type ProjectLifecycle struct {
	projectID   int64
	interpreter *statekit.Interpreter[LifecycleContext]
}

func NewProjectLifecycle(projectID int64, current ProjectStatus) (*ProjectLifecycle, error) {
	if current == "" {
		current = StatusPlanned
	}
	if !current.IsValid() {
		return nil, fmt.Errorf("unknown project status %q", current)
	}

	builder := statekit.NewMachine[LifecycleContext]("project-lifecycle").
		WithInitial(statekit.StateID(string(current))).
		WithContext(LifecycleContext{ProjectID: projectID})

	builder.State(statePlanned).
		On(EventStart).Target(stateActive).
		Done()

	builder.State(stateActive).
		On(EventPause).Target(stateOnHold).
		On(EventComplete).Target(stateCompleted).
		Done()

	builder.State(stateOnHold).
		On(EventResume).Target(stateActive).
		Done()

	builder.State(stateCompleted).
		On(EventReopen).Target(stateActive).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build lifecycle machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &ProjectLifecycle{projectID: projectID, interpreter: interpreter}, nil
}

// Fire sends event to the machine and returns the resulting status.
// An event that leaves the status unchanged is reported as a TransitionError.
func (l *ProjectLifecycle) Fire(event string) (ProjectStatus, error) {
	before := l.Current()
	l.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := l.Current()

	if before == after {
		return before, &TransitionError{ProjectID: l.projectID, From: before, Event: event}
	}
	return after, nil
}

func (l *ProjectLifecycle) Current() ProjectStatus {
	return ProjectStatus(l.interpreter.State().Value)
}

// Transition applies event to a project in status current.
func Transition(projectID int64, current ProjectStatus, event string) (ProjectStatus, error) {
	lc, err := NewProjectLifecycle(projectID, current)
	if err != nil {
		return current, err
	}
	return lc.Fire(event)
}
