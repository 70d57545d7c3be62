package event

import "errors"

var (
	ErrNotFound      = errors.New("event not found")
	ErrForbidden     = errors.New("not the event organizer")
	ErrVenueNotFound = errors.New("venue not found")
	ErrNotVenueOwner = errors.New("event venue belongs to another organizer")
)
