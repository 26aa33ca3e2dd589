package service

import (
	"context"
	"fmt"

	"lemon/config"
	"lemon/infras/otel"
	"lemon/internal/domains/content/model"
	"lemon/internal/domains/content/model/dto"
	"lemon/internal/domains/content/repository"
	"lemon/shared"
	"lemon/shared/cache"
	"lemon/shared/constant"
	gDto "lemon/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetMenu         = "content:menu"
	cacheGetSpecials     = "content:specials"
	cacheGetTestimonials = "content:testimonials"
)

// Content serves the marketing pages. Results are cached per locale; the
// tables change rarely and only through staff tooling.
type Content interface {
	GetMenu(ctx context.Context, locale string) ([]dto.MenuItemResponse, error)
	GetSpecials(ctx context.Context, locale string) ([]dto.SpecialResponse, error)
	GetTestimonials(ctx context.Context, locale string) ([]dto.TestimonialResponse, error)
}

type serviceImpl struct {
	repo  repository.Content
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Content, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Content {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetMenu(ctx context.Context, locale string) (res []dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMenu, locale)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for menu")

		return res, nil
	}

	models, err := s.repo.GetMenuItems(ctx, gDto.QueryParams{SortBy: model.MenuItemTableName + "." + model.FieldID, SortDir: gDto.SortDirAsc})
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	res = make([]dto.MenuItemResponse, 0, len(models))

	for _, mod := range models {
		var item dto.MenuItemResponse
		item.FromModel(mod, locale)

		res = append(res, item)
	}

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetSpecials(ctx context.Context, locale string) (res []dto.SpecialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSpecials")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSpecials, locale)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for specials")

		return res, nil
	}

	models, err := s.repo.GetSpecials(ctx, gDto.QueryParams{SortBy: model.SpecialTableName + "." + model.FieldID, SortDir: gDto.SortDirAsc})
	if err != nil {
		log.Error().Err(err).Msg("failed to get specials")

		return nil, fmt.Errorf("failed to get specials: %w", err)
	}

	res = make([]dto.SpecialResponse, 0, len(models))

	for _, mod := range models {
		var item dto.SpecialResponse
		item.FromModel(mod, locale)

		res = append(res, item)
	}

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetTestimonials(ctx context.Context, locale string) (res []dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTestimonials")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTestimonials, locale)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for testimonials")

		return res, nil
	}

	models, err := s.repo.GetTestimonials(ctx, gDto.QueryParams{SortBy: model.TestimonialTableName + "." + model.FieldID, SortDir: gDto.SortDirAsc})
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonials")

		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}

	res = make([]dto.TestimonialResponse, 0, len(models))

	for _, mod := range models {
		var item dto.TestimonialResponse
		item.FromModel(mod, locale)

		res = append(res, item)
	}

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) saveToCache(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save content to cache")
		}
	}()
}
