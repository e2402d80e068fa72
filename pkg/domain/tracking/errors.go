package tracking

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition indicates the lifecycle event is not allowed in the project's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError provides details about a rejected lifecycle event.
type TransitionError struct {
	ProjectID int64
	From      ProjectStatus
	Event     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s project %d while it is %s", e.Event, e.ProjectID, e.From)
}

// Is allows errors.Is to work with TransitionError.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
