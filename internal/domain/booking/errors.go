package booking

import "errors"

var (
	ErrInvalidDate             = errors.New("invalid date")
	ErrMissingIdentifier       = errors.New("missing user or venue identifier")
	ErrNotFound                = errors.New("booking not found")
	ErrVenueNotFound           = errors.New("venue not found")
	ErrEventNotFound           = errors.New("event not found")
	ErrForbidden               = errors.New("operation not allowed for this user")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrAlreadyCancelled        = errors.New("booking is already cancelled")
)
