package model

import (
	"eikaiwa/shared/constant"
	"time"
)

// IsSlotAvailable reports whether a candidate lesson starting at start for
// durationMinutes avoids every booking in existing. Intervals are half-open:
// [a,b) and [c,d) conflict iff a < d && c < b, so a lesson ending exactly when
// another starts does not conflict, while identical starts always do.
//
// This check is advisory only. It holds no lock; the storage-layer uniqueness
// constraint on the start timestamp is the race backstop.
func IsSlotAvailable(start time.Time, durationMinutes int, existing []Booking) bool {
	if durationMinutes <= 0 {
		durationMinutes = constant.DefaultLessonDurationMinutes
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	for _, booking := range existing {
		if booking.Status == constant.BookingStatusCancelled {
			continue
		}

		if start.Before(booking.End()) && booking.Date.Before(end) {
			return false
		}
	}

	return true
}
