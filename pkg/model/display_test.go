package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageTimeLabel(t *testing.T) {
	now := time.Date(2026, time.January, 25, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"earlier today", time.Date(2026, time.January, 25, 10, 30, 0, 0, time.UTC), "10:30 AM"},
		{"midnight today", time.Date(2026, time.January, 25, 0, 0, 0, 0, time.UTC), "12:00 AM"},
		{"yesterday", time.Date(2026, time.January, 24, 21, 0, 0, 0, time.UTC), "Yesterday"},
		{"older", time.Date(2026, time.January, 20, 9, 0, 0, 0, time.UTC), "Jan 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageTimeLabel(tt.at, now))
		})
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, time.January, 25, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", TimeAgo(now.Add(-10*time.Second), now))
	assert.Equal(t, "1 minute ago", TimeAgo(now.Add(-time.Minute), now))
	assert.Equal(t, "2 hours ago", TimeAgo(now.Add(-2*time.Hour), now))
	assert.Equal(t, "1 day ago", TimeAgo(now.Add(-26*time.Hour), now))
	assert.Equal(t, "2 days ago", TimeAgo(now.Add(-48*time.Hour), now))
}

func TestProviderFromBusiness(t *testing.T) {
	rate := 45.0
	b := Business{
		ID:       "b1",
		Name:     "Shayfer Gardening LLC",
		Location: "Sherman Oaks, CA",
		Category: "Gardening",
		Services: []string{"Lawn mowing"},
	}

	p := ProviderFromBusiness(b, &rate)

	assert.Equal(t, "user-b1", p.UserID)
	assert.Equal(t, b.Name, p.BusinessName)
	assert.Equal(t, b.Location, p.ServiceArea)
	assert.Equal(t, []string{"Lawn mowing"}, p.Skills)
	assert.Empty(t, p.Photos)

	p.Skills[0] = "changed"
	assert.Equal(t, "Lawn mowing", b.Services[0])
}
