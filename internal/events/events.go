package events

import "time"

const (
	KeyBookingCreated   = "booking.created"
	KeyBookingCancelled = "booking.cancelled"
)

// BookingCreated is published after a booking row is committed. Consumers send
// the confirmation mail; a consumer failure never affects the booking itself.
type BookingCreated struct {
	BookingID        string    `json:"booking_id"`
	Date             time.Time `json:"date"`
	DurationMinutes  int       `json:"duration_minutes"`
	ParticipantCount int       `json:"participant_count"`
	CustomerName     string    `json:"customer_name"`
	CustomerKana     string    `json:"customer_kana"`
	CustomerEmail    string    `json:"customer_email"`
	FinalPrice       int64     `json:"final_price"`
	Status           string    `json:"status"`
}

type BookingCancelled struct {
	BookingID     string    `json:"booking_id"`
	Date          time.Time `json:"date"`
	CustomerEmail string    `json:"customer_email"`
}
