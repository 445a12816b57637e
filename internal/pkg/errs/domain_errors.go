package errs

import "errors"

// Error categories shared by the usecase and handler layers
var (
	// Input could not be accepted as given; the caller must correct it
	ErrValidation = errors.New("validation failed")

	// A commit would exceed the lane capacity of some hour; re-query availability and retry
	ErrCapacityConflict = errors.New("capacity conflict")

	// The payment collaborator could not produce a redirect URL
	ErrPaymentLink = errors.New("payment link unavailable")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrSettingsNotFound    = errors.New("settings not found")

	ErrForbidden         = errors.New("operation not allowed for actor")
	ErrInvalidTransition = errors.New("invalid reservation status transition")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// A client with the same normalized phone was created concurrently
var ErrClientExists = errors.New("client already exists")
