package cli

import (
	"errors"
	"fmt"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	var transErr *tracking.TransitionError
	if errors.As(err, &transErr) {
		return NewCLIError(
			transErr.Error(),
			fmt.Sprintf("Project %d is '%s'; allowed events: %v", transErr.ProjectID, transErr.From, transErr.From.ValidEvents()),
			err,
		)
	}

	var invalid *domain.InvalidArgumentError
	if errors.As(err, &invalid) {
		return NewCLIError(invalid.Message, "", err)
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return NewCLIError(
			notFound.Error(),
			fmt.Sprintf("No %s with id %d; list the available ones first", notFound.Kind, notFound.ID),
			err,
		)
	}

	if errors.Is(err, wiring.ErrNotInitialized) {
		return NewCLIError("workspace not initialized", "Run 'kalkulation init' to create a workspace", err)
	}

	return err
}
