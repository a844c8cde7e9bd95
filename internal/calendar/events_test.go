package calendar

import (
	"testing"
	"time"

	"handyhub/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookings = []model.Booking{
	{ID: "1", Date: "2026-01-25", Time: "1:00 PM - 2:00 PM", JobTitle: "Gardening"},
	{ID: "2", Date: "2026-01-25", Time: "3:00 PM - 4:00 PM"},
	{ID: "3", Date: "2026-01-28", Time: "10:00 AM - 11:00 AM", JobTitle: "Lawn Mowing"},
}

func TestAggregateByDate(t *testing.T) {
	agenda := AggregateByDate(bookings)

	require.Len(t, agenda, 2)
	assert.Len(t, agenda["2026-01-25"], 2)
	assert.Len(t, agenda["2026-01-28"], 1)

	assert.Equal(t, []EventSummary{
		{Title: "Gardening 1:00 PM - 2:00 PM", Time: "1:00 PM - 2:00 PM"},
		{Title: "Job 3:00 PM - 4:00 PM", Time: "3:00 PM - 4:00 PM"},
	}, agenda["2026-01-25"])

	assert.True(t, agenda.IsBooked("2026-01-28"))
	assert.False(t, agenda.IsBooked("2026-01-26"))
}

func TestAggregateByDate_Empty(t *testing.T) {
	agenda := AggregateByDate(nil)
	assert.Empty(t, agenda)
	assert.False(t, agenda.IsBooked("2026-01-25"))
}

func TestBuildDayDetail(t *testing.T) {
	detail, err := BuildDayDetail("2026-01-25", bookings, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "Sunday, January 25, 2026", detail.HeaderLabel)
	assert.False(t, detail.Empty)
	assert.Equal(t, "2 events", detail.CountLabel)
	require.Len(t, detail.Bookings, 2)
	assert.Equal(t, "1", detail.Bookings[0].ID)
	assert.Equal(t, "2", detail.Bookings[1].ID)

	detail, err = BuildDayDetail("2026-01-28", bookings, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "1 event", detail.CountLabel)
}

func TestBuildDayDetail_NoEvents(t *testing.T) {
	detail, err := BuildDayDetail("2026-01-26", bookings, time.UTC)
	require.NoError(t, err)

	assert.True(t, detail.Empty)
	assert.Equal(t, "No events scheduled", detail.CountLabel)
	assert.NotNil(t, detail.Bookings)
	assert.Empty(t, detail.Bookings)
}

func TestAnnotate(t *testing.T) {
	g, err := BuildGrid(date(2026, time.January, 1), ModeMonth)
	require.NoError(t, err)
	selected := date(2026, time.January, 28)

	cells := Annotate(g, AggregateByDate(bookings), &selected, date(2026, time.January, 25))

	require.Len(t, cells, 35)
	for _, c := range cells[:4] {
		assert.True(t, c.Blank)
	}

	jan25 := cells[4+24]
	assert.Equal(t, model.DateKey("2026-01-25"), jan25.Date)
	assert.True(t, jan25.Booked)
	assert.True(t, jan25.Today)
	assert.Len(t, jan25.Events, 2)

	jan28 := cells[4+27]
	assert.True(t, jan28.Selected)
	assert.True(t, jan28.Booked)

	assert.False(t, cells[4].Booked)
}
