package calendar

import "errors"

var (
	ErrUnknownMode = errors.New("unknown calendar view mode")

	ErrOutsideRange = errors.New("selected day is outside the displayed range")
)
