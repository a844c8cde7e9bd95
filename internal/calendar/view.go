package calendar

import (
	"fmt"
	"time"
)

// View is the navigable state of a calendar screen. It is a value: every
// navigation returns a new View and leaves the receiver untouched.
type View struct {
	Reference time.Time
	Mode      Mode
	Selected  *time.Time
}

func NewView(ref time.Time, mode Mode) View {
	return View{Reference: ref, Mode: mode}
}

func (v View) Grid() (Grid, error) {
	return BuildGrid(v.Reference, v.Mode)
}

// Next moves forward one month, week or day. The selection is cleared.
func (v View) Next() View {
	return v.step(1)
}

// Prev moves back one month, week or day. The selection is cleared.
func (v View) Prev() View {
	return v.step(-1)
}

func (v View) step(dir int) View {
	y, m, d := v.Reference.Date()
	loc := v.Reference.Location()

	var ref time.Time
	switch v.Mode {
	case ModeMonth:
		ref = time.Date(y, m+time.Month(dir), 1, 0, 0, 0, 0, loc)
	case ModeWeek:
		ref = time.Date(y, m, d+7*dir, 0, 0, 0, 0, loc)
	default:
		ref = time.Date(y, m, d+dir, 0, 0, 0, 0, loc)
	}
	return View{Reference: ref, Mode: v.Mode}
}

// WithMode switches granularity around the same reference date.
func (v View) WithMode(mode Mode) View {
	return View{Reference: v.Reference, Mode: mode}
}

// Range returns the half-open [start, end) span of days the view displays.
func (v View) Range() (time.Time, time.Time) {
	y, m, d := v.Reference.Date()
	loc := v.Reference.Location()
	switch v.Mode {
	case ModeMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
	case ModeWeek:
		start := WeekStart(v.Reference)
		sy, sm, sd := start.Date()
		return start, time.Date(sy, sm, sd+7, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc), time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	}
}

// Select marks a displayed day. Days outside the current range are rejected.
func (v View) Select(day time.Time) (View, error) {
	start, end := v.Range()
	y, m, d := day.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, v.Reference.Location())
	if midnight.Before(start) || !midnight.Before(end) {
		return v, fmt.Errorf("%w: %s", ErrOutsideRange, midnight.Format("2006-01-02"))
	}
	v.Selected = &midnight
	return v, nil
}
