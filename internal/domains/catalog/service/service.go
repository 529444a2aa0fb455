package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/availability_mock.go -package=mocks

import (
	"context"
	"fmt"
	"parkside/config"
	"parkside/infras/commerce"
	"parkside/infras/otel"
	"parkside/internal/domains/catalog/model"
	"parkside/internal/domains/catalog/model/dto"
	"parkside/shared"
	"parkside/shared/cache"
	"parkside/shared/constant"
	"parkside/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheAvailabilityIndex = "availability:index"
)

type Availability interface {
	Calendar(ctx context.Context) (dto.AvailabilityResponse, error)
	SlotsForDate(ctx context.Context, dateKey string) (dto.DateSlotsResponse, error)
	Slot(ctx context.Context, variantID string) (model.AvailabilitySlot, error)
	InvalidateIndex(ctx context.Context)
}

type serviceImpl struct {
	commerce commerce.Commerce
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(commerceClient commerce.Commerce, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		commerce: commerceClient,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Calendar(ctx context.Context) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	index, err := s.index(ctx)
	if err != nil {
		return res, err
	}

	res.FromIndex(index)

	return res, nil
}

func (s *serviceImpl) SlotsForDate(ctx context.Context, dateKey string) (res dto.DateSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SlotsForDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if dateKey != model.AnyDaySKU {
		if _, err = model.ParseDateKey(dateKey); err != nil {
			return res, failure.InvalidDateKeyParam // nolint:wrapcheck
		}
	}

	index, err := s.index(ctx)
	if err != nil {
		return res, err
	}

	slots, ok := index[dateKey]
	if !ok {
		return res, failure.NotFound("no bookable slots for that date") // nolint:wrapcheck
	}

	res.FromModels(dateKey, slots)

	return res, nil
}

func (s *serviceImpl) Slot(ctx context.Context, variantID string) (res model.AvailabilitySlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slot")
	defer scope.End()
	defer scope.TraceIfError(err)

	index, err := s.index(ctx)
	if err != nil {
		return res, err
	}

	for _, slots := range index {
		for _, slot := range slots {
			if slot.VariantID == variantID {
				return slot, nil
			}
		}
	}

	return res, failure.NotFound("variant is not a bookable party room slot") // nolint:wrapcheck
}

// InvalidateIndex drops the cached availability index so the next read rebuilds
// it from the commerce catalog. A submitted booking consumes inventory on the
// platform, which leaves the cached index stale until its TTL.
func (s *serviceImpl) InvalidateIndex(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".InvalidateIndex")
	defer scope.End()

	shared.InvalidateCaches(ctx, s.cache, cacheAvailabilityIndex)
}

// index returns the cached availability index, rebuilding it from the commerce
// catalog on a miss.
func (s *serviceImpl) index(ctx context.Context) (index model.AvailabilityIndex, err error) {
	cacheKey := shared.BuildCacheKey(cacheAvailabilityIndex, s.cfg.Commerce.Collection)

	err = s.cache.Get(ctx, cacheKey, &index)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability index")

		return index, nil
	}

	products, err := s.commerce.PartyRoomProducts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch party room products")

		return nil, fmt.Errorf("failed to fetch party room products: %w", err)
	}

	index = model.BuildIndex(products)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, index, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability index to cache")
		}
	}()

	return index, nil
}
