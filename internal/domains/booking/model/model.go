package model

import (
	"eikaiwa/shared/constant"
	"eikaiwa/shared/model"
	"time"
)

const (
	TableName  = "lesson_bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldDate             = "date"
	FieldDurationMinutes  = "duration_minutes"
	FieldParticipantCount = "participant_count"
	FieldCustomerName     = "customer_name"
	FieldCustomerKana     = "customer_kana"
	FieldCustomerEmail    = "customer_email"
	FieldRegularPrice     = "regular_price"
	FieldDiscountAmount   = "discount_amount"
	FieldFinalPrice       = "final_price"
	FieldStatus           = "status"
	FieldPaymentIntentID  = "payment_intent_id"
	FieldCreatedBy        = "created_by"
)

type Booking struct {
	ID               string    `db:"id"`
	Date             time.Time `db:"date"`
	DurationMinutes  int       `db:"duration_minutes"`
	ParticipantCount int       `db:"participant_count"`
	CustomerName     string    `db:"customer_name"`
	CustomerKana     string    `db:"customer_kana"`
	CustomerEmail    string    `db:"customer_email"`
	RegularPrice     int64     `db:"regular_price"`
	DiscountAmount   int64     `db:"discount_amount"`
	FinalPrice       int64     `db:"final_price"`
	Status           string    `db:"status"`
	PaymentIntentID  *string   `db:"payment_intent_id"`
	model.Metadata
}

// Duration returns the lesson length, defaulting when the row predates the column.
func (b Booking) Duration() time.Duration {
	minutes := b.DurationMinutes
	if minutes <= 0 {
		minutes = constant.DefaultLessonDurationMinutes
	}

	return time.Duration(minutes) * time.Minute
}

// End returns the exclusive end of the booking interval.
func (b Booking) End() time.Time {
	return b.Date.Add(b.Duration())
}
