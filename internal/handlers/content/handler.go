package content

import (
	"eikaiwa/infras/otel"
	"eikaiwa/internal/domains/content/service"
	"eikaiwa/shared/constant"
	"eikaiwa/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/content", func(routerGroup chi.Router) {
		routerGroup.Get("/pages", handler.GetPages)
		routerGroup.Get("/pages/{slug}", handler.GetPage)
		routerGroup.Get("/news", handler.GetNews)
		routerGroup.Get("/plans", handler.GetPlans)
	})
}

// GetPages lists the CMS marketing pages.
// @Summary Get all pages
// @Tags Content
// @Produce json
// @Success 200 {object} dto.GetPagesResponse
// @Failure 500 {object} response.Error
// @Router /v1/content/pages [get]
func (handler *Handler) GetPages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPages")
	defer scope.End()

	pages, err := handler.service.GetPages(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pages)
}

// GetPage returns one marketing page by slug.
// @Summary Get a page by slug
// @Tags Content
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} dto.PageResponse
// @Failure 404 {object} response.Error
// @Router /v1/content/pages/{slug} [get]
func (handler *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPage")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	page, err := handler.service.GetPage(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slug", slug).Msg("failed to get page")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, page)
}

// GetNews lists the published announcements.
// @Summary Get news
// @Tags Content
// @Produce json
// @Success 200 {object} dto.GetNewsResponse
// @Failure 500 {object} response.Error
// @Router /v1/content/news [get]
func (handler *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNews")
	defer scope.End()

	news, err := handler.service.GetNews(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get news")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, news)
}

// GetPlans lists the lesson plans with their CMS-managed pricing.
// @Summary Get lesson plans
// @Tags Content
// @Produce json
// @Success 200 {object} dto.GetPlansResponse
// @Failure 500 {object} response.Error
// @Router /v1/content/plans [get]
func (handler *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlans")
	defer scope.End()

	plans, err := handler.service.GetPlans(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, plans)
}
