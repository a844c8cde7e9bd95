package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	bookingsrepository "handyhub/internal/bookings/repository"
	"handyhub/internal/calendar"
	"handyhub/internal/store"
	"handyhub/pkg/config"
	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/logger"
	"handyhub/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) CalendarService {
	t.Helper()
	cfg := &config.Config{
		Log:      logger.New(logger.Config{Level: "error", Output: &bytes.Buffer{}, Service: "test"}),
		Location: time.UTC,
		Clock:    func() time.Time { return testNow },
	}
	s := store.NewSeeded(testNow, time.UTC)
	return NewCalendarService(bookingsrepository.NewMemoryBookingRepository(s), cfg)
}

func TestGetScreen_DefaultsToCurrentMonth(t *testing.T) {
	screen, err := newTestService(t).GetScreen(context.Background(), ScreenQuery{})
	require.NoError(t, err)

	assert.Equal(t, calendar.ModeMonth, screen.Mode)
	assert.Equal(t, "January 2026", screen.HeaderLabel)
	assert.Equal(t, model.DateKey("2026-01-15"), screen.Today)
	assert.Equal(t, model.DateKey("2025-12-01"), screen.Prev)
	assert.Equal(t, model.DateKey("2026-02-01"), screen.Next)
	// January 1, 2026 is a Thursday.
	require.Len(t, screen.Cells, 4+31)
	assert.True(t, screen.Cells[0].Blank)

	booked := map[model.DateKey]bool{}
	for _, c := range screen.Cells {
		if c.Booked {
			booked[c.Date] = true
		}
		if c.Date == "2026-01-15" {
			assert.True(t, c.Today)
		}
	}
	assert.Equal(t, map[model.DateKey]bool{"2026-01-25": true, "2026-01-28": true}, booked)
}

func TestGetScreen_WeekWithSelection(t *testing.T) {
	screen, err := newTestService(t).GetScreen(context.Background(), ScreenQuery{
		Date:     "2026-01-28",
		Mode:     "week",
		Selected: "2026-01-28",
	})
	require.NoError(t, err)

	assert.Equal(t, calendar.ModeWeek, screen.Mode)
	assert.Equal(t, "Jan 25 - Jan 31, 2026", screen.HeaderLabel)
	require.Len(t, screen.Cells, 7)
	assert.True(t, screen.Cells[3].Selected)
	assert.Equal(t, model.DateKey("2026-01-21"), screen.Prev)
	assert.Equal(t, model.DateKey("2026-02-04"), screen.Next)

	require.NotNil(t, screen.SelectedDay)
	assert.Equal(t, "1 event", screen.SelectedDay.CountLabel)
	assert.Equal(t, "Lawn Mowing 10:00 AM - 11:00 AM", screen.SelectedDay.Events[0].Title)
}

func TestGetScreen_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		query     ScreenQuery
		wantField string
	}{
		{name: "unknown mode", query: ScreenQuery{Mode: "Year"}, wantField: "mode"},
		{name: "bad date", query: ScreenQuery{Date: "2026-13-01"}, wantField: "date"},
		{name: "bad selection", query: ScreenQuery{Selected: "tomorrow"}, wantField: "selected"},
		{name: "selection outside view", query: ScreenQuery{Date: "2026-01-15", Mode: "Day", Selected: "2026-01-16"}, wantField: "selected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(t).GetScreen(context.Background(), tt.query)

			appErr := apperrors.AsAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.CodeValidation, appErr.Code)
			assert.Equal(t, tt.wantField, appErr.Details["field"])
		})
	}
}

func TestGetDay(t *testing.T) {
	svc := newTestService(t)

	detail, err := svc.GetDay(context.Background(), "2026-01-25")
	require.NoError(t, err)
	assert.Equal(t, "Sunday, January 25, 2026", detail.HeaderLabel)
	require.Len(t, detail.Bookings, 1)
	assert.Equal(t, "1", detail.Bookings[0].ID)
	assert.False(t, detail.Empty)

	empty, err := svc.GetDay(context.Background(), "2026-01-26")
	require.NoError(t, err)
	assert.True(t, empty.Empty)
	assert.Equal(t, "No events scheduled", empty.CountLabel)

	_, err = svc.GetDay(context.Background(), "26-01-2026")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}
