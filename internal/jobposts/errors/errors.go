package errors

import "errors"

var (
	ErrNotFound = errors.New("job post not found")

	ErrInvalidTransition = errors.New("job post status transition not allowed")
)
