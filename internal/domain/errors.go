package domain

import "errors"

var (
	// ErrNotFound signals that the requested user does not exist.
	ErrNotFound = errors.New("user: not found")
	// ErrAlreadyExists signals an email collision with an existing record.
	ErrAlreadyExists = errors.New("user: already exists")
	// ErrInvalidData wraps unexpected failures surfaced by the service layer
	// so transport never sees an unclassified error.
	ErrInvalidData = errors.New("user: invalid data")
)
