package availability

import (
	"eikaiwa/infras/otel"
	"eikaiwa/internal/domains/availability/service"
	"eikaiwa/shared/constant"
	"eikaiwa/shared/failure"
	"eikaiwa/shared/timezone"
	"eikaiwa/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/weekly", handler.GetWeeklySchedule)
		routerGroup.Get("/slots", handler.GetOpenSlots)
	})
}

// GetWeeklySchedule returns the CMS-authored weekly lesson hours.
// @Summary Get the weekly schedule
// @Description Retrieve the weekly lesson hours as authored in the CMS.
// @Tags Availability
// @Produce json
// @Success 200 {object} dto.WeeklyScheduleResponse
// @Failure 500 {object} response.Error
// @Router /v1/availability/weekly [get]
func (handler *Handler) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeeklySchedule")
	defer scope.End()

	schedule, err := handler.service.GetWeeklySchedule(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get weekly schedule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, schedule)
}

// GetOpenSlots returns the bookable start times for one date.
// @Summary Get open slots for a date
// @Description Expand the weekly hours for the given date and remove starts already taken.
// @Tags Availability
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} dto.SlotsResponse
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/availability/slots [get]
func (handler *Handler) GetOpenSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOpenSlots")
	defer scope.End()

	raw := r.URL.Query().Get(constant.RequestParamDate)

	date, err := timezone.Parse(constant.CalendarFormat, raw)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid date parameter, expected YYYY-MM-DD"))

		return
	}

	slots, err := handler.service.GetOpenSlots(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get open slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Open slots retrieved for " + raw)

	response.WithJSON(w, http.StatusOK, slots)
}
