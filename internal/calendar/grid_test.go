package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildGrid_MonthJanuary2026(t *testing.T) {
	g, err := BuildGrid(date(2026, time.January, 15), ModeMonth)
	require.NoError(t, err)

	assert.Len(t, g.Cells, 35)
	assert.Equal(t, 4, g.LeadingBlanks())
	assert.Len(t, g.Days(), 31)
	assert.Equal(t, "January 2026", g.HeaderLabel)

	first := g.Cells[4]
	require.NotNil(t, first)
	assert.Equal(t, time.Thursday, first.Weekday())
	assert.Equal(t, 1, first.Day())
	assert.Equal(t, 31, g.Cells[len(g.Cells)-1].Day())
}

func TestBuildGrid_MonthCompleteness(t *testing.T) {
	for year := 2023; year <= 2028; year++ {
		for month := time.January; month <= time.December; month++ {
			g, err := BuildGrid(date(year, month, 10), ModeMonth)
			require.NoError(t, err)

			firstOfMonth := date(year, month, 1)
			daysInMonth := date(year, month+1, 0).Day()
			lead := int(firstOfMonth.Weekday())

			assert.Equal(t, lead, g.LeadingBlanks(), "%d-%02d", year, month)
			assert.Len(t, g.Cells, lead+daysInMonth, "%d-%02d", year, month)
			for i, c := range g.Cells[lead:] {
				require.NotNil(t, c)
				assert.Equal(t, i+1, c.Day())
			}
		}
	}
}

func TestBuildGrid_LeapFebruary(t *testing.T) {
	g, err := BuildGrid(date(2024, time.February, 1), ModeMonth)
	require.NoError(t, err)
	assert.Len(t, g.Days(), 29)

	g, err = BuildGrid(date(2026, time.February, 1), ModeMonth)
	require.NoError(t, err)
	assert.Len(t, g.Days(), 28)
	assert.Equal(t, 0, g.LeadingBlanks())
}

func TestBuildGrid_WeekAlignment(t *testing.T) {
	start := date(2025, time.December, 20)
	for i := 0; i < 30; i++ {
		ref := start.AddDate(0, 0, i).Add(13*time.Hour + 45*time.Minute)
		g, err := BuildGrid(ref, ModeWeek)
		require.NoError(t, err)

		require.Len(t, g.Cells, 7)
		assert.Equal(t, time.Sunday, g.Cells[0].Weekday(), ref.String())
		assert.Equal(t, 0, g.Cells[0].Hour())
		assert.False(t, ref.Before(*g.Cells[0]))
		assert.True(t, ref.Before(g.Cells[6].AddDate(0, 0, 1)))
		for j := 1; j < 7; j++ {
			assert.Equal(t, g.Cells[j-1].AddDate(0, 0, 1), *g.Cells[j])
		}
	}
}

func TestBuildGrid_WeekLabels(t *testing.T) {
	g, err := BuildGrid(date(2026, time.January, 7), ModeWeek)
	require.NoError(t, err)
	assert.Equal(t, "Jan 4 - Jan 10, 2026", g.HeaderLabel)

	g, err = BuildGrid(date(2026, time.January, 1), ModeWeek)
	require.NoError(t, err)
	assert.Equal(t, "Dec 28, 2025 - Jan 3, 2026", g.HeaderLabel)
}

func TestBuildGrid_Day(t *testing.T) {
	ref := time.Date(2026, time.January, 25, 9, 30, 0, 0, time.UTC)
	g, err := BuildGrid(ref, ModeDay)
	require.NoError(t, err)

	require.Len(t, g.Cells, 1)
	assert.Equal(t, ref, *g.Cells[0])
	assert.Equal(t, "Sunday, January 25, 2026", g.HeaderLabel)
}

func TestBuildGrid_UnknownMode(t *testing.T) {
	_, err := BuildGrid(date(2026, time.January, 1), Mode("Year"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"Month": ModeMonth, "week": ModeWeek, " DAY ": ModeDay} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("Year")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
