package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eikaiwa/internal/domains/booking/model"
	"eikaiwa/shared/constant"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 7, hour, minute, 0, 0, time.UTC)
}

func booked(start time.Time, durationMinutes int, status string) model.Booking {
	return model.Booking{
		ID:              "existing",
		Date:            start,
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func TestIsSlotAvailable(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		duration int
		existing []model.Booking
		want     bool
	}{
		{
			name:     "no existing bookings",
			start:    at(10, 0),
			duration: 60,
			existing: nil,
			want:     true,
		},
		{
			name:     "identical slot conflicts",
			start:    at(10, 0),
			duration: 60,
			existing: []model.Booking{booked(at(10, 0), 60, constant.BookingStatusConfirmed)},
			want:     false,
		},
		{
			name:     "back to back after does not conflict",
			start:    at(11, 0),
			duration: 60,
			existing: []model.Booking{booked(at(10, 0), 60, constant.BookingStatusConfirmed)},
			want:     true,
		},
		{
			name:     "back to back before does not conflict",
			start:    at(9, 0),
			duration: 60,
			existing: []model.Booking{booked(at(10, 0), 60, constant.BookingStatusConfirmed)},
			want:     true,
		},
		{
			name:     "candidate contained in existing conflicts",
			start:    at(10, 30),
			duration: 30,
			existing: []model.Booking{booked(at(10, 0), 60, constant.BookingStatusConfirmed)},
			want:     false,
		},
		{
			name:     "candidate containing existing conflicts",
			start:    at(9, 0),
			duration: 180,
			existing: []model.Booking{booked(at(10, 0), 60, constant.BookingStatusConfirmed)},
			want:     false,
		},
		{
			name:     "partial overlap at tail conflicts",
			start:    at(10, 30),
			duration: 60,
			existing: []model.Booking{booked(at(10, 0), 60, constant.BookingStatusConfirmed)},
			want:     false,
		},
		{
			name:     "cancelled booking does not block",
			start:    at(10, 0),
			duration: 60,
			existing: []model.Booking{booked(at(10, 0), 60, constant.BookingStatusCancelled)},
			want:     true,
		},
		{
			name:     "pending booking still blocks",
			start:    at(10, 0),
			duration: 60,
			existing: []model.Booking{booked(at(10, 0), 60, constant.BookingStatusPending)},
			want:     false,
		},
		{
			name:     "zero duration falls back to the default lesson length",
			start:    at(10, 30),
			duration: 0,
			existing: []model.Booking{booked(at(11, 0), 60, constant.BookingStatusConfirmed)},
			want:     false,
		},
		{
			name:     "existing without stored duration defaults to one hour",
			start:    at(10, 30),
			duration: 30,
			existing: []model.Booking{booked(at(10, 0), 0, constant.BookingStatusConfirmed)},
			want:     false,
		},
		{
			name:  "one conflict among many is enough",
			start: at(12, 0),
			// 12:00-13:00 against 09:00, 12:00 and 15:00 lessons
			duration: 60,
			existing: []model.Booking{
				booked(at(9, 0), 60, constant.BookingStatusConfirmed),
				booked(at(12, 0), 60, constant.BookingStatusConfirmed),
				booked(at(15, 0), 60, constant.BookingStatusConfirmed),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.IsSlotAvailable(tt.start, tt.duration, tt.existing)
			assert.Equal(t, tt.want, got)
		})
	}
}
