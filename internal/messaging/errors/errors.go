package errors

import "errors"

var ErrThreadNotFound = errors.New("thread not found")
