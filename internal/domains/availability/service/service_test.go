package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"eikaiwa/config"
	"eikaiwa/infras/cms"
	cmsMocks "eikaiwa/infras/cms/mocks"
	"eikaiwa/infras/otel/mocks"
	"eikaiwa/internal/domains/availability/model"
	"eikaiwa/internal/domains/availability/service"
	bookingMocks "eikaiwa/internal/domains/booking/mocks"
	bookingModel "eikaiwa/internal/domains/booking/model"
	cacheMocks "eikaiwa/shared/cache/mocks"
	"eikaiwa/shared/constant"
	"eikaiwa/shared/failure"
	"eikaiwa/shared/timezone"
)

var mondayHours = []model.WeeklyEntry{
	{
		Day:    "monday",
		Ranges: []model.TimeRange{{Start: "10:00", End: "13:00"}},
	},
}

func newAvailabilityService(ctrl *gomock.Controller) (service.Availability, *cmsMocks.MockClient, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	mockCMS := cmsMocks.NewMockClient(ctrl)
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockCMS, mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockCMS, mockRepo, mockCache
}

func expectCMSWeekly(mockCMS *cmsMocks.MockClient, entries []model.WeeklyEntry, err error) {
	mockCMS.EXPECT().
		GetList(gomock.Any(), model.CMSEndpoint, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) error {
			if err != nil {
				return err
			}

			list, _ := out.(*cms.ListResponse[model.WeeklyEntry])
			list.Contents = entries
			list.TotalCount = len(entries)

			return nil
		})
}

func cacheMiss(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
}

func TestAvailabilityService_GetWeekly(t *testing.T) {
	t.Run("cms fetch on cache miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockCMS, _, mockCache := newAvailabilityService(ctrl)

		cacheMiss(mockCache)
		expectCMSWeekly(mockCMS, mondayHours, nil)

		entries, err := svc.GetWeekly(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, mondayHours, entries)
	})

	t.Run("cache hit skips the cms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, mockCache := newAvailabilityService(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				entries, _ := value.(*[]model.WeeklyEntry)
				*entries = mondayHours

				return nil
			})

		entries, err := svc.GetWeekly(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, mondayHours, entries)
	})

	t.Run("cms failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockCMS, _, mockCache := newAvailabilityService(ctrl)

		cacheMiss(mockCache)
		expectCMSWeekly(mockCMS, nil, errors.New("cms down"))

		_, err := svc.GetWeekly(context.Background())

		assert.Error(t, err)
	})
}

func TestAvailabilityService_GetOpenSlots(t *testing.T) {
	bookedAt := func(clock string) bookingModel.Booking {
		start, _ := timezone.Parse(constant.CalendarFormat+" "+constant.ClockFormat, "2026-09-07 "+clock)

		return bookingModel.Booking{
			ID:              "existing",
			Date:            start,
			DurationMinutes: 60,
			Status:          constant.BookingStatusConfirmed,
		}
	}

	tests := []struct {
		name      string
		existing  []bookingModel.Booking
		lookupErr error
		want      []string
		wantErr   error
	}{
		{
			name: "all slots open",
			want: []string{"10:00", "11:00", "12:00"},
		},
		{
			name:     "booked hour removed",
			existing: []bookingModel.Booking{bookedAt("11:00")},
			want:     []string{"10:00", "12:00"},
		},
		{
			name:     "cancelled booking does not hide its slot",
			existing: []bookingModel.Booking{{ID: "x", Date: bookedAt("11:00").Date, Status: constant.BookingStatusCancelled}},
			want:     []string{"10:00", "11:00", "12:00"},
		},
		{
			name:      "lookup failure hides everything",
			lookupErr: errors.New("connection refused"),
			wantErr:   failure.SlotLookupError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockCMS, mockRepo, mockCache := newAvailabilityService(ctrl)

			cacheMiss(mockCache)
			expectCMSWeekly(mockCMS, mondayHours, nil)
			mockRepo.EXPECT().
				GetAllInRange(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.existing, tt.lookupErr)

			res, err := svc.GetOpenSlots(context.Background(), monday)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "2026-09-07", res.Date)
			assert.Equal(t, tt.want, res.Slots)
		})
	}
}

func TestAvailabilityService_GetOpenSlotsEmptyDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCMS, _, mockCache := newAvailabilityService(ctrl)

	cacheMiss(mockCache)
	expectCMSWeekly(mockCMS, mondayHours, nil)

	// Sunday has no entry; no bookings lookup should happen at all.
	res, err := svc.GetOpenSlots(context.Background(), monday.AddDate(0, 0, -1))

	assert.NoError(t, err)
	assert.Empty(t, res.Slots)
}

func TestAvailabilityService_GetWeeklySchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCMS, _, mockCache := newAvailabilityService(ctrl)

	cacheMiss(mockCache)
	expectCMSWeekly(mockCMS, mondayHours, nil)

	res, err := svc.GetWeeklySchedule(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Entries, 1)
	assert.Equal(t, "monday", res.Entries[0].Day)
	assert.Equal(t, "10:00", res.Entries[0].Ranges[0].Start)
}
