package venue

import "errors"

var (
	ErrNotFound  = errors.New("venue not found")
	ErrForbidden = errors.New("not the venue owner")
)
