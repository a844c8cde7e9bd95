package errors

import "errors"

var (
	ErrProviderNotFound = errors.New("provider not found")

	ErrBusinessNotFound = errors.New("business not found")
)
