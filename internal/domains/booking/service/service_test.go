package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"eikaiwa/config"
	kafkaMocks "eikaiwa/infras/kafka/mocks"
	"eikaiwa/infras/otel/mocks"
	"eikaiwa/infras/payment"
	paymentMocks "eikaiwa/infras/payment/mocks"
	availModel "eikaiwa/internal/domains/availability/model"
	availMocks "eikaiwa/internal/domains/availability/mocks"
	bookingMocks "eikaiwa/internal/domains/booking/mocks"
	"eikaiwa/internal/domains/booking/model"
	"eikaiwa/internal/domains/booking/model/dto"
	"eikaiwa/internal/domains/booking/service"
	contentMocks "eikaiwa/internal/domains/content/mocks"
	contentModel "eikaiwa/internal/domains/content/model"
	cacheMocks "eikaiwa/shared/cache/mocks"
	"eikaiwa/shared/constant"
	"eikaiwa/shared/failure"
	"eikaiwa/shared/timezone"
)

// 2030-01-07 is a Monday, far enough out that the past-start check never trips.
const (
	testDate = "2030-01-07"
	testSlot = "10:00"
)

var weekdayHours = []availModel.WeeklyEntry{
	{
		Day:    "monday",
		Ranges: []availModel.TimeRange{{Start: "09:00", End: "18:00"}},
	},
}

var trialPlan = contentModel.Plan{
	ID:           "plan-trial",
	Name:         "Trial Lesson",
	RegularPrice: 5000,
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Date:             testDate,
		StartTime:        testSlot,
		ParticipantCount: 1,
		CustomerName:     "Hanako Yamada",
		CustomerKana:     "ヤマダ ハナコ",
		CustomerEmail:    "hanako@example.com",
		PlanID:           trialPlan.ID,
		PaymentMethodID:  "pm_card",
	}
}

func confirmedAt(clock string) model.Booking {
	start, _ := timezone.Parse(constant.CalendarFormat+" "+constant.ClockFormat, testDate+" "+clock)

	return model.Booking{
		ID:              "existing",
		Date:            start,
		DurationMinutes: 60,
		Status:          constant.BookingStatusConfirmed,
	}
}

type bookingMockSet struct {
	repo         *bookingMocks.MockBooking
	availability *availMocks.MockAvailability
	content      *contentMocks.MockContent
	payment      *paymentMocks.MockClient
	kafka        *kafkaMocks.MockClient
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:         bookingMocks.NewMockBooking(ctrl),
		availability: availMocks.NewMockAvailability(ctrl),
		content:      contentMocks.NewMockContent(ctrl),
		payment:      paymentMocks.NewMockClient(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Fire-and-forget notifications run on their own goroutine; the tests only
	// assert the synchronous pipeline.
	set.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.External.LookupTimeoutSeconds = 5

	svc := service.New(set.repo, set.availability, set.content, set.payment, set.kafka, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestBookingService_Create(t *testing.T) {
	succeededIntent := payment.Intent{ID: "pi_1", Status: payment.IntentStatusSucceeded}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(set bookingMockSet)
		wantErr   error
	}{
		{
			name: "successful booking",
			req:  validRequest(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil)
				set.repo.EXPECT().GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
				set.content.EXPECT().GetPlan(gomock.Any(), trialPlan.ID).Return(trialPlan, nil)
				set.payment.EXPECT().
					CreateIntent(gomock.Any(), int64(5000), "jpy", gomock.Any(), "hanako@example.com").
					Return(payment.Intent{ID: "pi_1", Status: "requires_confirmation"}, nil)
				set.payment.EXPECT().ConfirmIntent(gomock.Any(), "pi_1", "pm_card").Return(succeededIntent, nil)
				set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "two participants multiply the charge",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.ParticipantCount = 2

				return req
			}(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil)
				set.repo.EXPECT().GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
				set.content.EXPECT().GetPlan(gomock.Any(), trialPlan.ID).Return(trialPlan, nil)
				set.payment.EXPECT().
					CreateIntent(gomock.Any(), int64(10000), "jpy", gomock.Any(), gomock.Any()).
					Return(payment.Intent{ID: "pi_1"}, nil)
				set.payment.EXPECT().ConfirmIntent(gomock.Any(), "pi_1", "pm_card").Return(succeededIntent, nil)
				set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "slot off the weekly grid is rejected before payment",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.StartTime = "19:00"

				return req
			}(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil)
			},
			wantErr: failure.BadRequestFromString("requested time is outside lesson hours"),
		},
		{
			name: "weekly table lookup failure fails closed",
			req:  validRequest(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(nil, errors.New("cms down"))
			},
			wantErr: failure.SlotLookupError,
		},
		{
			name: "occupied slot is rejected before payment",
			req:  validRequest(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil)
				set.repo.EXPECT().
					GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{confirmedAt(testSlot)}, nil)
			},
			wantErr: failure.SlotTakenError,
		},
		{
			name: "bookings lookup failure fails closed, never proceeds to payment",
			req:  validRequest(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil)
				set.repo.EXPECT().
					GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: failure.SlotLookupError,
		},
		{
			name: "payment that does not succeed rejects the booking",
			req:  validRequest(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil)
				set.repo.EXPECT().GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				set.content.EXPECT().GetPlan(gomock.Any(), trialPlan.ID).Return(trialPlan, nil)
				set.payment.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(payment.Intent{ID: "pi_1"}, nil)
				set.payment.EXPECT().
					ConfirmIntent(gomock.Any(), "pi_1", "pm_card").
					Return(payment.Intent{ID: "pi_1", Status: "requires_action"}, nil)
			},
			wantErr: failure.BadRequestFromString("payment was not completed"),
		},
		{
			name: "slot taken between payment and persist",
			req:  validRequest(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil)

				gomock.InOrder(
					set.repo.EXPECT().GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil),
					set.repo.EXPECT().
						GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).
						Return([]model.Booking{confirmedAt(testSlot)}, nil),
				)

				set.content.EXPECT().GetPlan(gomock.Any(), trialPlan.ID).Return(trialPlan, nil)
				set.payment.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(payment.Intent{ID: "pi_1"}, nil)
				set.payment.EXPECT().ConfirmIntent(gomock.Any(), "pi_1", "pm_card").Return(succeededIntent, nil)
			},
			wantErr: failure.SlotTakenError,
		},
		{
			name: "unique violation at insert surfaces as slot taken",
			req:  validRequest(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil)
				set.repo.EXPECT().GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
				set.content.EXPECT().GetPlan(gomock.Any(), trialPlan.ID).Return(trialPlan, nil)
				set.payment.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(payment.Intent{ID: "pi_1"}, nil)
				set.payment.EXPECT().ConfirmIntent(gomock.Any(), "pi_1", "pm_card").Return(succeededIntent, nil)
				set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.SlotTakenError)
			},
			wantErr: failure.SlotTakenError,
		},
		{
			name: "unknown plan is rejected",
			req:  validRequest(),
			setupMock: func(set bookingMockSet) {
				set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil)
				set.repo.EXPECT().GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				set.content.EXPECT().
					GetPlan(gomock.Any(), trialPlan.ID).
					Return(contentModel.Plan{}, failure.NotFound("plan not found"))
			},
			wantErr: failure.NotFound("plan not found"),
		},
		{
			name: "past start is rejected outright",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.Date = "2020-01-06"

				return req
			}(),
			setupMock: func(set bookingMockSet) {},
			wantErr:   failure.BadRequestFromString("lesson start must be in the future"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, testDate, res.Date)
			assert.Equal(t, testSlot, res.StartTime)
			assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
			assert.Equal(t, trialPlan.FinalPrice(), res.FinalPrice)
		})
	}
}

// A duplicate submission of the same slot must lose, whether the first booking
// is already visible to the guard or only surfaces as the storage unique
// violation.
func TestBookingService_CreateDuplicateSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	succeededIntent := payment.Intent{ID: "pi_1", Status: payment.IntentStatusSucceeded}

	var stored []model.Booking

	set.availability.EXPECT().GetWeekly(gomock.Any()).Return(weekdayHours, nil).Times(2)
	set.repo.EXPECT().
		GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time, time.Time) ([]model.Booking, error) {
			return stored, nil
		}).
		AnyTimes()
	set.content.EXPECT().GetPlan(gomock.Any(), trialPlan.ID).Return(trialPlan, nil)
	set.payment.EXPECT().
		CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(payment.Intent{ID: "pi_1"}, nil)
	set.payment.EXPECT().ConfirmIntent(gomock.Any(), "pi_1", "pm_card").Return(succeededIntent, nil)
	set.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			stored = append(stored, booking)

			return nil
		})

	first, err := svc.Create(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	// Second submission for the identical slot: the guard now sees the first
	// booking and rejects before any payment call.
	_, err = svc.Create(context.Background(), validRequest())
	assert.Equal(t, failure.SlotTakenError, err)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	start, err := timezone.Parse(constant.CalendarFormat+" "+constant.ClockFormat, testDate+" "+testSlot)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		setupMock func(set bookingMockSet)
		want      bool
		wantErr   error
	}{
		{
			name: "free slot",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			want: true,
		},
		{
			name: "occupied slot",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{confirmedAt(testSlot)}, nil)
			},
			want: false,
		},
		{
			name: "lookup failure reports unavailable through an error",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			want:    false,
			wantErr: failure.SlotLookupError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			got, err := svc.CheckAvailability(context.Background(), start, 60)

			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set bookingMockSet)
		wantErr   bool
	}{
		{
			name: "cancel existing booking",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedAt(testSlot), nil)
				set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown booking",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			req := dto.UpdateBookingStatusRequest{Status: constant.BookingStatusCancelled}
			err := svc.UpdateStatus(context.Background(), req, "existing")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
