package entity

import (
	"time"

	"github.com/google/uuid"
)

// Story is an ephemeral daily offer. It is the only entity with real
// destruction semantics: stories are hard-deleted by their owner or by the
// periodic sweeps, and an expired story is treated as gone at read time even
// while the row still exists.
type Story struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BusinessID *uuid.UUID
	CityID     uuid.UUID
	Type       string // e.g. "OFFER", "ANNOUNCEMENT".
	Title      string
	Image      string
	Link       string
	ProductID  *uuid.UUID // Optional link to one product...
	ServiceID  *uuid.UUID // ...or one service, never both.
	ViewCount  int64
	ClickCount int64
	ExpiresAt  time.Time // Always end-of-day of the creation date.
	CreatedAt  time.Time
}

// Expired reports whether the story's liveness window has closed at the
// given instant. Liveness is recomputed on every read; the sweeps only
// reclaim storage.
func (s *Story) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// CTR returns the click-through rate as a percentage, rounded to two
// decimals. Zero views yields zero, not a division error.
func (s *Story) CTR() float64 {
	if s.ViewCount == 0 {
		return 0
	}

	ctr := float64(s.ClickCount) / float64(s.ViewCount) * 100

	return float64(int64(ctr*100+0.5)) / 100
}

// StoryExpiry returns the fixed expiration instant for a story created at t:
// 23:59:59.999 of t's calendar day in t's location. A story created at 23:58
// still expires at the same cutoff; the window is not a rolling 24 hours.
func StoryExpiry(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())
}

// DayBounds returns the inclusive start and end instants of t's calendar day
// in t's location, used to count a user's stories for the daily quota.
func DayBounds(t time.Time) (start, end time.Time) {
	year, month, day := t.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end = time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())

	return start, end
}
