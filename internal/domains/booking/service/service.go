package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Booking=MockBookingService

import (
	"context"
	"eikaiwa/config"
	"eikaiwa/infras/kafka"
	"eikaiwa/infras/otel"
	"eikaiwa/infras/payment"
	availService "eikaiwa/internal/domains/availability/service"
	"eikaiwa/internal/domains/booking/model"
	"eikaiwa/internal/domains/booking/model/dto"
	"eikaiwa/internal/domains/booking/repository"
	contentService "eikaiwa/internal/domains/content/service"
	"eikaiwa/internal/events"
	"eikaiwa/shared"
	"eikaiwa/shared/cache"
	"eikaiwa/shared/constant"
	gDto "eikaiwa/shared/dto"
	"eikaiwa/shared/failure"
	"eikaiwa/shared/timezone"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	paymentCurrency = "jpy"

	defaultLookupTimeoutSeconds = 10
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CheckAvailability(ctx context.Context, start time.Time, durationMinutes int) (bool, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	availability availService.Availability
	content      contentService.Content
	payment      payment.Client
	kafka        kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	availability availService.Availability,
	content contentService.Content,
	paymentClient payment.Client,
	kafkaClient kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		content:      content,
		payment:      paymentClient,
		kafka:        kafkaClient,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create runs the submission pipeline in a deliberate order: validate the
// requested slot, charge, guard-check again, persist, then notify. The
// expensive, hard-to-reverse steps come after every cheap check that could
// still reject the request, and notifications come only after the row is
// committed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.ContextGuest
	}

	start, err := req.Start()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) //nolint:wrapcheck
	}

	if !start.After(timezone.Now()) {
		return res, failure.BadRequestFromString("lesson start must be in the future") //nolint:wrapcheck
	}

	lookupCtx, cancel := s.lookupContext(ctx)
	defer cancel()

	entries, err := s.availability.GetWeekly(lookupCtx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load weekly availability")

		return res, failure.SlotLookupError //nolint:wrapcheck
	}

	if !slices.Contains(availService.ExpandSlots(start, entries), req.StartTime) {
		return res, failure.BadRequestFromString("requested time is outside lesson hours") //nolint:wrapcheck
	}

	available, err := s.checkWindow(lookupCtx, start, req.Duration())
	if err != nil {
		return res, failure.SlotLookupError //nolint:wrapcheck
	}

	if !available {
		return res, failure.SlotTakenError //nolint:wrapcheck
	}

	plan, err := s.content.GetPlan(ctx, req.PlanID)
	if err != nil {
		log.Error().Err(err).Str("plan_id", req.PlanID).Msg("failed to resolve lesson plan")

		return res, err
	}

	amount := plan.FinalPrice() * int64(req.ParticipantCount)
	description := fmt.Sprintf("%s lesson on %s %s", plan.Name, req.Date, req.StartTime)

	intent, err := s.payment.CreateIntent(ctx, amount, paymentCurrency, description, req.CustomerEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to create payment intent")

		return res, fmt.Errorf("failed to create payment intent: %w", err)
	}

	intent, err = s.payment.ConfirmIntent(ctx, intent.ID, req.PaymentMethodID)
	if err != nil {
		log.Error().Err(err).Str("payment_intent", intent.ID).Msg("failed to confirm payment intent")

		return res, fmt.Errorf("failed to confirm payment: %w", err)
	}

	if intent.Status != payment.IntentStatusSucceeded {
		return res, failure.BadRequestFromString("payment was not completed") //nolint:wrapcheck
	}

	// The guard holds no lock, so re-check right before the write. The unique
	// index on the start timestamp is the final backstop either way.
	available, err = s.checkWindow(lookupCtx, start, req.Duration())
	if err != nil {
		log.Warn().Str("payment_intent", intent.ID).Msg("availability re-check failed after capture, needs reconciliation")

		return res, failure.SlotLookupError //nolint:wrapcheck
	}

	if !available {
		log.Warn().Str("payment_intent", intent.ID).Msg("slot taken after capture, needs reconciliation")

		return res, failure.SlotTakenError //nolint:wrapcheck
	}

	booking := req.ToModel(user, start, plan, intent.ID)

	if err = s.repo.Insert(ctx, booking); err != nil {
		if errors.Is(err, failure.SlotTakenError) {
			log.Warn().Str("payment_intent", intent.ID).Msg("duplicate slot at insert after capture, needs reconciliation")

			return res, err
		}

		log.Error().Err(err).Str("payment_intent", intent.ID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.notifyCreated(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

// CheckAvailability is the single-candidate wrapper used by the booking form.
// A failed lookup reports unavailable through an error, never a silent true.
func (s *serviceImpl) CheckAvailability(ctx context.Context, start time.Time, durationMinutes int) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()

	lookupCtx, cancel := s.lookupContext(ctx)
	defer cancel()

	available, err := s.checkWindow(lookupCtx, start, durationMinutes)
	if err != nil {
		scope.TraceError(err)

		return false, failure.SlotLookupError //nolint:wrapcheck
	}

	return available, nil
}

func (s *serviceImpl) checkWindow(ctx context.Context, start time.Time, durationMinutes int) (bool, error) {
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, timezone.GetLocation())

	existing, err := s.repo.GetAllInRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		log.Error().Err(err).Msg("failed to load existing bookings for conflict check")

		return false, fmt.Errorf("failed to load existing bookings: %w", err)
	}

	return model.IsSlotAvailable(start, durationMinutes, existing), nil
}

func (s *serviceImpl) lookupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.cfg.External.LookupTimeoutSeconds
	if timeout <= 0 {
		timeout = defaultLookupTimeoutSeconds
	}

	return context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
}

func (s *serviceImpl) notifyCreated(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := kafka.Message{
			Key: events.KeyBookingCreated,
			Value: events.BookingCreated{
				BookingID:        booking.ID,
				Date:             booking.Date,
				DurationMinutes:  booking.DurationMinutes,
				ParticipantCount: booking.ParticipantCount,
				CustomerName:     booking.CustomerName,
				CustomerKana:     booking.CustomerKana,
				CustomerEmail:    booking.CustomerEmail,
				FinalPrice:       booking.FinalPrice,
				Status:           booking.Status,
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, event); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking created event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if req.Status == constant.BookingStatusCancelled {
			event := kafka.Message{
				Key: events.KeyBookingCancelled,
				Value: events.BookingCancelled{
					BookingID:     booking.ID,
					Date:          booking.Date,
					CustomerEmail: booking.CustomerEmail,
				},
			}

			if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, event); err != nil {
				log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking cancelled event")
			}
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}
