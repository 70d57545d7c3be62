package category

import "errors"

var (
	ErrNotFound      = errors.New("category not found")
	ErrAlreadyExists = errors.New("category with this name already exists")
	ErrInUse         = errors.New("category is referenced by venues or events")
)
