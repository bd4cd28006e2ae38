package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for consistent error handling.
var (
	// ErrUnknownTool is returned when a call names a tool that is not registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidArguments marks a call whose arguments are missing,
	// ill-typed or out of range. Handlers return it before any I/O.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// ArgumentError carries the caller-facing message of an invalid-arguments
// failure. It matches ErrInvalidArguments with errors.Is.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// Is reports whether target is ErrInvalidArguments.
func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArguments }

// InvalidArguments builds an ArgumentError from a format string.
func InvalidArguments(format string, a ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, a...)}
}
