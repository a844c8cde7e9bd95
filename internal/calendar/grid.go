package calendar

import (
	"fmt"
	"strings"
	"time"
)

type Mode string

const (
	ModeMonth Mode = "Month"
	ModeWeek  Mode = "Week"
	ModeDay   Mode = "Day"
)

// ParseMode accepts a mode name in any letter case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month":
		return ModeMonth, nil
	case "week":
		return ModeWeek, nil
	case "day":
		return ModeDay, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Grid is the ordered cell sequence for one calendar screen.
// Nil cells are the leading blanks that align day 1 under its weekday column.
type Grid struct {
	Mode        Mode
	Cells       []*time.Time
	HeaderLabel string
}

// Days returns the non-blank cells.
func (g Grid) Days() []time.Time {
	out := make([]time.Time, 0, len(g.Cells))
	for _, c := range g.Cells {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// LeadingBlanks counts the nil cells before the first day.
func (g Grid) LeadingBlanks() int {
	n := 0
	for _, c := range g.Cells {
		if c != nil {
			break
		}
		n++
	}
	return n
}

// BuildGrid lays out the cells shown for ref in the given mode.
// Month grids are padded at the front only and may end mid-row.
func BuildGrid(ref time.Time, mode Mode) (Grid, error) {
	switch mode {
	case ModeMonth:
		return monthGrid(ref), nil
	case ModeWeek:
		return weekGrid(ref), nil
	case ModeDay:
		return dayGrid(ref), nil
	}
	return Grid{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

func monthGrid(ref time.Time) Grid {
	y, m, _ := ref.Date()
	loc := ref.Location()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, loc)
	lead := int(first.Weekday())

	cells := make([]*time.Time, lead, lead+last.Day())
	for d := 1; d <= last.Day(); d++ {
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		cells = append(cells, &day)
	}

	return Grid{
		Mode:        ModeMonth,
		Cells:       cells,
		HeaderLabel: first.Format("January 2006"),
	}
}

func weekGrid(ref time.Time) Grid {
	start := WeekStart(ref)
	y, m, d := start.Date()
	cells := make([]*time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		day := time.Date(y, m, d+i, 0, 0, 0, 0, start.Location())
		cells = append(cells, &day)
	}

	return Grid{
		Mode:        ModeWeek,
		Cells:       cells,
		HeaderLabel: weekLabel(*cells[0], *cells[6]),
	}
}

func dayGrid(ref time.Time) Grid {
	day := ref
	return Grid{
		Mode:        ModeDay,
		Cells:       []*time.Time{&day},
		HeaderLabel: DayLabel(ref),
	}
}

// WeekStart returns midnight of the Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// DayLabel is the long form used for single-day headers, e.g. "Sunday, January 25, 2026".
func DayLabel(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

func weekLabel(start, end time.Time) string {
	if start.Year() != end.Year() {
		return start.Format("Jan 2, 2006") + " - " + end.Format("Jan 2, 2006")
	}
	return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}
