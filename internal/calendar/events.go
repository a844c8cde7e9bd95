package calendar

import (
	"fmt"
	"time"

	"handyhub/pkg/model"
)

const (
	defaultEventTitle = "Job"
	noEventsLabel     = "No events scheduled"
)

type EventSummary struct {
	Title string `json:"title"`
	Time  string `json:"time"`
}

func Summarize(b model.Booking) EventSummary {
	title := b.JobTitle
	if title == "" {
		title = defaultEventTitle
	}
	return EventSummary{
		Title: title + " " + b.Time,
		Time:  b.Time,
	}
}

// Agenda maps a date key to the events on that day, in booking order.
type Agenda map[model.DateKey][]EventSummary

// AggregateByDate buckets bookings by their stored date. No timezone
// conversion is applied; the key is the booking's date as written.
func AggregateByDate(bookings []model.Booking) Agenda {
	agenda := make(Agenda)
	for _, b := range bookings {
		agenda[b.Date] = append(agenda[b.Date], Summarize(b))
	}
	return agenda
}

// IsBooked reports whether any event falls on key.
func (a Agenda) IsBooked(key model.DateKey) bool {
	return len(a[key]) > 0
}

// DayDetail is everything shown for a single calendar day.
type DayDetail struct {
	Date        model.DateKey   `json:"date"`
	HeaderLabel string          `json:"header_label"`
	Bookings    []model.Booking `json:"bookings"`
	Events      []EventSummary  `json:"events"`
	Empty       bool            `json:"empty"`
	CountLabel  string          `json:"count_label"`
}

// BuildDayDetail selects the bookings stored under key, keeping source order.
func BuildDayDetail(key model.DateKey, bookings []model.Booking, loc *time.Location) (DayDetail, error) {
	day, err := key.In(loc)
	if err != nil {
		return DayDetail{}, err
	}

	detail := DayDetail{
		Date:        key,
		HeaderLabel: DayLabel(day),
		Bookings:    []model.Booking{},
		Events:      []EventSummary{},
	}
	for _, b := range bookings {
		if b.Date == key {
			detail.Bookings = append(detail.Bookings, b)
			detail.Events = append(detail.Events, Summarize(b))
		}
	}
	detail.Empty = len(detail.Bookings) == 0
	detail.CountLabel = countLabel(len(detail.Bookings))
	return detail, nil
}

func countLabel(n int) string {
	switch n {
	case 0:
		return noEventsLabel
	case 1:
		return "1 event"
	default:
		return fmt.Sprintf("%d events", n)
	}
}

// CellView is a grid cell ready for rendering.
type CellView struct {
	Blank    bool           `json:"blank"`
	Date     model.DateKey  `json:"date,omitempty"`
	Day      int            `json:"day,omitempty"`
	Weekday  string         `json:"weekday,omitempty"`
	Booked   bool           `json:"booked"`
	Events   []EventSummary `json:"events,omitempty"`
	Selected bool           `json:"selected"`
	Today    bool           `json:"today"`
}

// Annotate joins a grid with the agenda, the current selection and today.
func Annotate(g Grid, agenda Agenda, selected *time.Time, today time.Time) []CellView {
	var selectedKey model.DateKey
	if selected != nil {
		selectedKey = model.DateKeyOf(*selected)
	}
	todayKey := model.DateKeyOf(today)

	cells := make([]CellView, 0, len(g.Cells))
	for _, c := range g.Cells {
		if c == nil {
			cells = append(cells, CellView{Blank: true})
			continue
		}
		key := model.DateKeyOf(*c)
		cells = append(cells, CellView{
			Date:     key,
			Day:      c.Day(),
			Weekday:  c.Weekday().String(),
			Booked:   agenda.IsBooked(key),
			Events:   agenda[key],
			Selected: key == selectedKey,
			Today:    key == todayKey,
		})
	}
	return cells
}
