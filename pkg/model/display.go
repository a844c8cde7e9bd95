package model

import (
	"fmt"
	"time"
)

// MessageTimeLabel renders a timestamp the way thread lists show it:
// clock time for today, "Yesterday", otherwise a short month and day.
func MessageTimeLabel(t, now time.Time) string {
	t = t.In(now.Location())
	today := startOfDay(now)
	switch {
	case !t.Before(today):
		return t.Format("3:04 PM")
	case !t.Before(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return t.Format("Jan 2")
	}
}

// TimeAgo renders the coarse relative age used on notification rows.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	default:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
