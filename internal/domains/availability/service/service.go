package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"eikaiwa/config"
	"eikaiwa/infras/cms"
	"eikaiwa/infras/otel"
	"eikaiwa/internal/domains/availability/model"
	"eikaiwa/internal/domains/availability/model/dto"
	bookingModel "eikaiwa/internal/domains/booking/model"
	bookingRepo "eikaiwa/internal/domains/booking/repository"
	"eikaiwa/shared/cache"
	"eikaiwa/shared/constant"
	"eikaiwa/shared/failure"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetWeekly = "availability:weekly"
)

type Availability interface {
	GetWeekly(ctx context.Context) ([]model.WeeklyEntry, error)
	GetWeeklySchedule(ctx context.Context) (dto.WeeklyScheduleResponse, error)
	GetOpenSlots(ctx context.Context, date time.Time) (dto.SlotsResponse, error)
}

type serviceImpl struct {
	cms         cms.Client
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(cmsClient cms.Client, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		cms:         cmsClient,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// GetWeekly returns the CMS weekly table, cached per the configured TTL so one
// booking session reads the CMS at most once.
func (s *serviceImpl) GetWeekly(ctx context.Context) (entries []model.WeeklyEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWeekly")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetWeekly, &entries)
	if err == nil {
		return entries, nil
	}

	var list cms.ListResponse[model.WeeklyEntry]
	if err = s.cms.GetList(ctx, model.CMSEndpoint, nil, &list); err != nil {
		log.Error().Err(err).Msg("failed to fetch weekly availability from CMS")

		return nil, fmt.Errorf("failed to fetch weekly availability: %w", err)
	}

	entries = list.Contents

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetWeekly, entries, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save weekly availability to cache")
		}
	}()

	return entries, nil
}

func (s *serviceImpl) GetWeeklySchedule(ctx context.Context) (res dto.WeeklyScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWeeklySchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	entries, err := s.GetWeekly(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(entries)

	return res, nil
}

// GetOpenSlots expands the weekly table for the date and removes starts whose
// hour is already taken by an existing booking. When the bookings lookup fails
// the whole call fails; the picker must not show unverified slots.
func (s *serviceImpl) GetOpenSlots(ctx context.Context, date time.Time) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOpenSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Date = date.Format(constant.CalendarFormat)

	entries, err := s.GetWeekly(ctx)
	if err != nil {
		return res, err
	}

	slots := ExpandSlots(date, entries)
	if len(slots) == 0 {
		res.Slots = []string{}

		return res, nil
	}

	dayStart, err := SlotStart(date, "00:00")
	if err != nil {
		return res, fmt.Errorf("failed to anchor date: %w", err)
	}

	existing, err := s.bookingRepo.GetAllInRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for slot picker")

		return res, failure.SlotLookupError //nolint:wrapcheck
	}

	res.Slots = filterOpen(date, slots, existing)

	return res, nil
}

func filterOpen(date time.Time, slots []string, existing []bookingModel.Booking) []string {
	open := make([]string, 0, len(slots))

	for _, slot := range slots {
		start, err := SlotStart(date, slot)
		if err != nil {
			continue
		}

		if bookingModel.IsSlotAvailable(start, constant.SlotIntervalMinutes, existing) {
			open = append(open, slot)
		}
	}

	return open
}
