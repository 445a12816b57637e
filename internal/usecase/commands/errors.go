package commands

import (
	"fmt"

	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/pkg/errs"
)

// ValidationError names the offending input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrValidation
}

func newValidationError(field, message string) error {
	return errs.Mark(&ValidationError{Field: field, Message: message}, errs.ErrValidation)
}

// CapacityConflictError reports the first hour that could not hold the requested lanes.
// Callers should re-query availability and retry with a different selection.
type CapacityConflictError struct {
	Date      schedule.Date
	Hour      schedule.Hour
	Remaining int
	Requested int
}

func (e *CapacityConflictError) Error() string {
	return fmt.Sprintf("capacity conflict on %s at %s: %d lanes left, %d requested",
		e.Date, e.Hour.Label(), e.Remaining, e.Requested)
}

func (e *CapacityConflictError) Is(target error) bool {
	return target == errs.ErrCapacityConflict
}

func (e *CapacityConflictError) Retryable() bool {
	return true
}
