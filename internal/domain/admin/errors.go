package admin

import "errors"

var (
	ErrCannotBanSelf  = errors.New("cannot ban yourself")
	ErrCannotBanAdmin = errors.New("cannot ban an admin")
)
