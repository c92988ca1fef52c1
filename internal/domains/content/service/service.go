package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"eikaiwa/config"
	"eikaiwa/infras/cms"
	"eikaiwa/infras/otel"
	"eikaiwa/internal/domains/content/model"
	"eikaiwa/internal/domains/content/model/dto"
	"eikaiwa/shared/cache"
	"eikaiwa/shared/constant"
	"eikaiwa/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPages = "content:pages"
	cacheGetNews  = "content:news"
	cacheGetPlans = "content:plans"
)

type Content interface {
	GetPages(ctx context.Context) (dto.GetPagesResponse, error)
	GetPage(ctx context.Context, slug string) (dto.PageResponse, error)
	GetNews(ctx context.Context) (dto.GetNewsResponse, error)
	GetPlans(ctx context.Context) (dto.GetPlansResponse, error)
	GetPlan(ctx context.Context, id string) (model.Plan, error)
}

type serviceImpl struct {
	cms   cms.Client
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cmsClient cms.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Content {
	return &serviceImpl{
		cms:   cmsClient,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetPages(ctx context.Context) (res dto.GetPagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPages")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetPages, &res)
	if err == nil {
		return res, nil
	}

	var list cms.ListResponse[model.Page]
	if err = s.cms.GetList(ctx, model.PagesEndpoint, nil, &list); err != nil {
		log.Error().Err(err).Msg("failed to fetch pages from CMS")

		return res, fmt.Errorf("failed to fetch pages: %w", err)
	}

	res.FromModels(list.Contents)

	s.saveCache(ctx, cacheGetPages, res)

	return res, nil
}

func (s *serviceImpl) GetPage(ctx context.Context, slug string) (res dto.PageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPage")
	defer scope.End()
	defer scope.TraceIfError(err)

	pages, err := s.GetPages(ctx)
	if err != nil {
		return res, err
	}

	for _, page := range pages.Pages {
		if page.Slug == slug {
			return page, nil
		}
	}

	return res, failure.NotFound("page not found") //nolint:wrapcheck
}

func (s *serviceImpl) GetNews(ctx context.Context) (res dto.GetNewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetNews")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetNews, &res)
	if err == nil {
		return res, nil
	}

	var list cms.ListResponse[model.News]
	if err = s.cms.GetList(ctx, model.NewsEndpoint, nil, &list); err != nil {
		log.Error().Err(err).Msg("failed to fetch news from CMS")

		return res, fmt.Errorf("failed to fetch news: %w", err)
	}

	res.FromModels(list.Contents)

	s.saveCache(ctx, cacheGetNews, res)

	return res, nil
}

func (s *serviceImpl) GetPlans(ctx context.Context) (res dto.GetPlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPlans")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetPlans, &res)
	if err == nil {
		return res, nil
	}

	plans, err := s.fetchPlans(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(plans)

	s.saveCache(ctx, cacheGetPlans, res)

	return res, nil
}

func (s *serviceImpl) GetPlan(ctx context.Context, id string) (res model.Plan, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	plans, err := s.fetchPlans(ctx)
	if err != nil {
		return res, err
	}

	for _, plan := range plans {
		if plan.ID == id {
			return plan, nil
		}
	}

	return res, failure.NotFound("plan not found") //nolint:wrapcheck
}

func (s *serviceImpl) fetchPlans(ctx context.Context) ([]model.Plan, error) {
	var list cms.ListResponse[model.Plan]
	if err := s.cms.GetList(ctx, model.PlansEndpoint, nil, &list); err != nil {
		log.Error().Err(err).Msg("failed to fetch plans from CMS")

		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}

	return list.Contents, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save content to cache")
		}
	}()
}
