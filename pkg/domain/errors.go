package domain

import "errors"

var (
	// ErrInvalidArgument is the only fault raised by the calculation layer.
	// Use errors.Is to detect it through wrapping.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// InvalidArgumentError carries the user-facing message for a rejected input.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is allows errors.Is to work with InvalidArgumentError.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument builds an InvalidArgumentError.
func InvalidArgument(msg string) error {
	return &InvalidArgumentError{Message: msg}
}

// NotFoundError names the entity kind and id that could not be found.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

// Is allows errors.Is to work with NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
