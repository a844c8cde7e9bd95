package service

import (
	"context"
	"errors"
	"time"

	"handyhub/internal/calendar"
	"handyhub/pkg/config"
	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/model"
	"handyhub/pkg/validation"
)

// BookingReader is the booking source the calendar renders. The bookings
// repository satisfies it.
type BookingReader interface {
	FindAll(ctx context.Context) ([]model.Booking, error)
}

// ScreenQuery selects a calendar screen. Blank Date means today and blank
// Mode means Month.
type ScreenQuery struct {
	Date     string
	Mode     string
	Selected string
}

type Screen struct {
	Mode        calendar.Mode       `json:"mode"`
	Reference   model.DateKey       `json:"reference"`
	HeaderLabel string              `json:"header_label"`
	Cells       []calendar.CellView `json:"cells"`
	Prev        model.DateKey       `json:"prev"`
	Next        model.DateKey       `json:"next"`
	Today       model.DateKey       `json:"today"`
	Selected    *model.DateKey      `json:"selected,omitempty"`
	SelectedDay *calendar.DayDetail `json:"selected_day,omitempty"`
}

type CalendarService interface {
	GetScreen(ctx context.Context, query ScreenQuery) (*Screen, error)
	GetDay(ctx context.Context, date string) (*calendar.DayDetail, error)
}

type calendarService struct {
	bookings BookingReader
	rules    *validation.Rules
	cfg      *config.Config
}

func NewCalendarService(bookings BookingReader, cfg *config.Config) CalendarService {
	return &calendarService{
		bookings: bookings,
		rules:    validation.NewRules(),
		cfg:      cfg,
	}
}

func (s *calendarService) GetScreen(ctx context.Context, query ScreenQuery) (*Screen, error) {
	now := s.cfg.Now()

	view, err := s.resolveView(query, now)
	if err != nil {
		return nil, err
	}

	grid, err := view.Grid()
	if err != nil {
		return nil, apperrors.Internal("Failed to build calendar grid", err)
	}

	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to load bookings for calendar", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	agenda := calendar.AggregateByDate(bookings)

	screen := &Screen{
		Mode:        view.Mode,
		Reference:   model.DateKeyOf(view.Reference),
		HeaderLabel: grid.HeaderLabel,
		Cells:       calendar.Annotate(grid, agenda, view.Selected, now),
		Prev:        model.DateKeyOf(view.Prev().Reference),
		Next:        model.DateKeyOf(view.Next().Reference),
		Today:       model.DateKeyOf(now),
	}
	if view.Selected != nil {
		key := model.DateKeyOf(*view.Selected)
		detail, err := calendar.BuildDayDetail(key, bookings, s.cfg.Location)
		if err != nil {
			return nil, apperrors.Internal("Failed to build day detail", err)
		}
		screen.Selected = &key
		screen.SelectedDay = &detail
	}
	return screen, nil
}

func (s *calendarService) GetDay(ctx context.Context, date string) (*calendar.DayDetail, error) {
	key, err := s.rules.Date("date", date)
	if err != nil {
		return nil, validation.ToAppError(err)
	}

	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to load bookings for day detail", "date", key, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	detail, err := calendar.BuildDayDetail(key, bookings, s.cfg.Location)
	if err != nil {
		return nil, apperrors.Internal("Failed to build day detail", err)
	}
	return &detail, nil
}

func (s *calendarService) resolveView(query ScreenQuery, now time.Time) (calendar.View, error) {
	mode := calendar.ModeMonth
	if query.Mode != "" {
		parsed, err := calendar.ParseMode(query.Mode)
		if err != nil {
			return calendar.View{}, apperrors.Validation("mode must be one of Month, Week, Day", map[string]any{
				"field": "mode",
				"code":  string(validation.CodeInvalidChoice),
			})
		}
		mode = parsed
	}

	ref := now
	if query.Date != "" {
		day, err := s.day("date", query.Date)
		if err != nil {
			return calendar.View{}, err
		}
		ref = day
	}
	view := calendar.NewView(ref, mode)

	if query.Selected == "" {
		return view, nil
	}
	selected, err := s.day("selected", query.Selected)
	if err != nil {
		return calendar.View{}, err
	}
	view, err = view.Select(selected)
	if errors.Is(err, calendar.ErrOutsideRange) {
		return calendar.View{}, apperrors.Validation(err.Error(), map[string]any{
			"field": "selected",
			"code":  string(validation.CodeOutOfRange),
		})
	}
	return view, err
}

func (s *calendarService) day(field, value string) (time.Time, error) {
	key, err := s.rules.Date(field, value)
	if err != nil {
		return time.Time{}, validation.ToAppError(err)
	}
	day, err := key.In(s.cfg.Location)
	if err != nil {
		return time.Time{}, apperrors.Internal("Failed to resolve date", err)
	}
	return day, nil
}
