package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidTransition = errors.New("booking status transition not allowed")
)
