package errors

import "errors"

var (
	ErrNotFound = errors.New("appointment request not found")

	ErrProviderNotFound = errors.New("provider not found")

	ErrInvalidTransition = errors.New("appointment status transition not allowed")
)
