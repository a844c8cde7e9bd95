package model

import (
	"fmt"
	"time"
)

// DateKeyLayout is the zero-padded calendar day format used to bucket events.
const DateKeyLayout = "2006-01-02"

type DateKey string

func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

// ParseDateKey accepts only canonical YYYY-MM-DD keys naming a real calendar day.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date key %q: %w", s, err)
	}
	if t.Format(DateKeyLayout) != s {
		return "", fmt.Errorf("invalid date key %q: not canonical", s)
	}
	return DateKey(s), nil
}

// In returns midnight of the keyed day in loc.
func (k DateKey) In(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateKeyLayout, string(k), loc)
}

func (k DateKey) String() string {
	return string(k)
}
