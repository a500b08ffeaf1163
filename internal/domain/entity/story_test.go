package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoryExpiry(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)

	t.Run("morning creation expires at end of same day", func(t *testing.T) {
		created := time.Date(2026, 3, 10, 9, 30, 0, 0, loc)
		expiry := StoryExpiry(created)

		assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999_000_000, loc), expiry)
	})

	t.Run("late creation still expires at the fixed cutoff", func(t *testing.T) {
		created := time.Date(2026, 3, 10, 23, 58, 0, 0, loc)
		expiry := StoryExpiry(created)

		assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999_000_000, loc), expiry)
		assert.Less(t, expiry.Sub(created), 2*time.Minute)
	})
}

func TestStoryExpired(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	created := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	story := &Story{ExpiresAt: StoryExpiry(created)}

	assert.False(t, story.Expired(time.Date(2026, 3, 10, 23, 59, 30, 0, loc)))
	assert.True(t, story.Expired(time.Date(2026, 3, 11, 0, 0, 0, 0, loc)))
	assert.True(t, story.Expired(story.ExpiresAt), "cutoff instant itself counts as expired")
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	start, end := DayBounds(time.Date(2026, 3, 10, 15, 45, 12, 0, loc))

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999_000_000, loc), end)
}

func TestStoryCTR(t *testing.T) {
	tests := []struct {
		name   string
		views  int64
		clicks int64
		want   float64
	}{
		{name: "zero views yields zero", views: 0, clicks: 5, want: 0},
		{name: "no clicks", views: 100, clicks: 0, want: 0},
		{name: "whole percentage", views: 200, clicks: 50, want: 25},
		{name: "rounds to two decimals", views: 3, clicks: 1, want: 33.33},
		{name: "rounds up", views: 6, clicks: 1, want: 16.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			story := &Story{ViewCount: tt.views, ClickCount: tt.clicks}
			assert.InDelta(t, tt.want, story.CTR(), 0.001)
		})
	}
}
