package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrGhostFile        = errors.New("file is missing on disk")
	ErrEmptyDestination = errors.New("destination is required")
	ErrNothingCut       = errors.New("clipboard is empty")
	ErrNotConfirmed     = errors.New("destructive action not confirmed")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GhostFileError is returned when an indexed file is absent on disk
type GhostFileError struct {
	Path string
}

func (e *GhostFileError) Error() string {
	return fmt.Sprintf("%s is in the index but missing on disk", e.Path)
}

func (e *GhostFileError) Is(target error) bool {
	return target == ErrGhostFile
}

// MoveError represents a move-related failure
type MoveError struct {
	Source string
	Dest   string
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %s", e.Source, e.Dest, e.Reason)
}

func (e *MoveError) Is(target error) bool {
	return target == ErrInvalidOperation
}

// RefreshError reports which collections failed to refetch after a command
// that itself succeeded.
type RefreshError struct {
	Scope RefreshScope
	Err   error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("refresh %s: %v", e.Scope, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}
