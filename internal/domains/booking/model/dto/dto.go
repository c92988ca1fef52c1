package dto

import (
	contentModel "eikaiwa/internal/domains/content/model"
	"eikaiwa/internal/domains/booking/model"
	"eikaiwa/shared"
	"eikaiwa/shared/constant"
	gDto "eikaiwa/shared/dto"
	gModel "eikaiwa/shared/model"
	"eikaiwa/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Date             string `json:"date"               validate:"required"`
	StartTime        string `json:"start_time"         validate:"required,clock"`
	DurationMinutes  int    `json:"duration_minutes"   validate:"omitempty,gt=0"`
	ParticipantCount int    `json:"participant_count"  validate:"required,gte=1"`
	CustomerName     string `json:"customer_name"      validate:"required,max=100"`
	CustomerKana     string `json:"customer_kana"      validate:"required,kana,max=100"`
	CustomerEmail    string `json:"customer_email"     validate:"required,email,max=100"`
	PlanID           string `json:"plan_id"            validate:"required"`
	PaymentMethodID  string `json:"payment_method_id"  validate:"required"`
}

// Start parses the requested lesson start in the application timezone.
func (c *CreateBookingRequest) Start() (time.Time, error) {
	return timezone.Parse(constant.CalendarFormat+" "+constant.ClockFormat, c.Date+" "+c.StartTime)
}

func (c *CreateBookingRequest) Duration() int {
	if c.DurationMinutes <= 0 {
		return constant.DefaultLessonDurationMinutes
	}

	return c.DurationMinutes
}

func (c *CreateBookingRequest) ToModel(user string, start time.Time, plan contentModel.Plan, paymentIntentID string) model.Booking {
	intentID := paymentIntentID

	return model.Booking{
		ID:               uuid.NewString(),
		Date:             start,
		DurationMinutes:  c.Duration(),
		ParticipantCount: c.ParticipantCount,
		CustomerName:     c.CustomerName,
		CustomerKana:     c.CustomerKana,
		CustomerEmail:    c.CustomerEmail,
		RegularPrice:     plan.RegularPrice,
		DiscountAmount:   plan.DiscountAmount,
		FinalPrice:       plan.FinalPrice(),
		Status:           constant.BookingStatusConfirmed,
		PaymentIntentID:  &intentID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID               string `json:"id"`
	Date             string `json:"date"`
	StartTime        string `json:"start_time"`
	DurationMinutes  int    `json:"duration_minutes"`
	ParticipantCount int    `json:"participant_count"`
	CustomerName     string `json:"customer_name"`
	CustomerKana     string `json:"customer_kana"`
	CustomerEmail    string `json:"customer_email"`
	RegularPrice     int64  `json:"regular_price"`
	DiscountAmount   int64  `json:"discount_amount"`
	FinalPrice       int64  `json:"final_price"`
	Status           string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Date = timezone.Format(booking.Date, constant.CalendarFormat)
	r.StartTime = timezone.Format(booking.Date, constant.ClockFormat)
	r.DurationMinutes = booking.DurationMinutes
	r.ParticipantCount = booking.ParticipantCount
	r.CustomerName = booking.CustomerName
	r.CustomerKana = booking.CustomerKana
	r.CustomerEmail = booking.CustomerEmail
	r.RegularPrice = booking.RegularPrice
	r.DiscountAmount = booking.DiscountAmount
	r.FinalPrice = booking.FinalPrice
	r.Status = booking.Status
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityCheckResponse struct {
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Available       bool   `json:"available"`
}
