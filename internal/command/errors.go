package command

import (
	"errors"
	"fmt"
)

// Sentinel errors for the command registry.
var (
	// ErrInvalidCommand indicates a command failed validation.
	ErrInvalidCommand = errors.New("command: invalid command")

	// ErrNotFound indicates a lookup by an unknown command ID.
	ErrNotFound = errors.New("command: not found")

	// ErrUnavailable indicates a dispatch attempt on a command whose
	// availability predicate currently returns false.
	ErrUnavailable = errors.New("command: not available")
)

// ValidationError reports a structurally invalid command. It is surfaced
// synchronously to the caller of Register/RegisterAll so that broken
// commands fail at startup, not when a user triggers them.
type ValidationError struct {
	// ID is the offending command's ID, empty if the ID itself is missing.
	ID string

	// Reason describes the failed requirement.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.ID == "" {
		return "invalid command: " + e.Reason
	}
	return fmt.Sprintf("invalid command %q: %s", e.ID, e.Reason)
}

// Is allows errors.Is to match ValidationError with ErrInvalidCommand.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCommand
}

// NotFoundError reports a lookup for an unregistered command ID.
type NotFoundError struct {
	// ID is the command ID that was not found.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown command %q", e.ID)
}

// Is allows errors.Is to match NotFoundError with ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
