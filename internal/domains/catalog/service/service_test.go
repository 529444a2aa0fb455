package service_test

import (
	"context"
	"errors"
	"parkside/config"
	"parkside/infras/commerce"
	commerceMocks "parkside/infras/commerce/mocks"
	otelMocks "parkside/infras/otel/mocks"
	"parkside/internal/domains/catalog/model"
	"parkside/internal/domains/catalog/service"
	cacheMocks "parkside/shared/cache/mocks"
	"parkside/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testFixture struct {
	commerce *commerceMocks.MockCommerce
	cache    *cacheMocks.MockRedisCache
	svc      service.Availability
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Commerce.Collection = "party-rooms"
	cfg.Cache.TTL = 300

	commerceMock := commerceMocks.NewMockCommerce(ctrl)
	cacheMock := cacheMocks.NewMockRedisCache(ctrl)

	return &testFixture{
		commerce: commerceMock,
		cache:    cacheMock,
		svc:      service.New(commerceMock, cfg, cacheMock, otelMocks.NewOtel()),
	}
}

func catalogProducts() []commerce.Product {
	return []commerce.Product{{
		ID:     "gid://product/1",
		Handle: "party-room-bookings",
		Variants: []commerce.Variant{
			{
				ID:               "gid://variant/1",
				Title:            "Carousel Party Room / 2-4pm",
				SKU:              "06142502",
				AvailableForSale: true,
				Price:            commerce.Price{Amount: "32.00"},
			},
			{
				ID:               "gid://variant/2",
				Title:            "Midway Party Room",
				SKU:              model.AnyDaySKU,
				AvailableForSale: true,
				Price:            commerce.Price{Amount: "32.00"},
			},
		},
	}}
}

// expectIndexRebuild wires a cache miss followed by a catalog fetch. The async
// cache write may or may not land before the test ends.
func (f *testFixture) expectIndexRebuild(ctx context.Context) {
	f.cache.EXPECT().
		Get(ctx, "availability:index:party-rooms", gomock.Any()).
		Return(errors.New("cache miss"))
	f.commerce.EXPECT().
		PartyRoomProducts(ctx).
		Return(catalogProducts(), nil)
	f.cache.EXPECT().
		Save(gomock.Any(), "availability:index:party-rooms", gomock.Any(), 300).
		Return(nil).
		AnyTimes()
}

func TestCalendar(t *testing.T) {
	ctx := context.Background()

	t.Run("rebuilds the index on a cache miss", func(t *testing.T) {
		f := newFixture(t)

		f.expectIndexRebuild(ctx)

		res, err := f.svc.Calendar(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalDays)
		// ANYDAY entries come after dated ones.
		assert.Equal(t, "061425", res.Dates[0].DateKey)
		assert.Equal(t, model.AnyDaySKU, res.Dates[1].DateKey)
	})

	t.Run("serves from the cache on a hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(ctx, "availability:index:party-rooms", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*model.AvailabilityIndex) = model.BuildIndex(catalogProducts())
				return nil
			})

		res, err := f.svc.Calendar(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalDays)
	})

	t.Run("fails when the catalog cannot be fetched", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(ctx, "availability:index:party-rooms", gomock.Any()).
			Return(errors.New("cache miss"))
		f.commerce.EXPECT().
			PartyRoomProducts(ctx).
			Return(nil, errors.New("upstream down"))

		_, err := f.svc.Calendar(ctx)

		assert.Error(t, err)
	})
}

func TestSlotsForDate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns slots for a dated key", func(t *testing.T) {
		f := newFixture(t)

		f.expectIndexRebuild(ctx)

		res, err := f.svc.SlotsForDate(ctx, "061425")

		require.NoError(t, err)
		assert.Equal(t, "2025-06-14", res.Date)
		require.Len(t, res.Slots, 1)
		assert.Equal(t, "Carousel Party Room", res.Slots[0].RoomName)
	})

	t.Run("accepts the ANYDAY sentinel", func(t *testing.T) {
		f := newFixture(t)

		f.expectIndexRebuild(ctx)

		res, err := f.svc.SlotsForDate(ctx, model.AnyDaySKU)

		require.NoError(t, err)
		assert.Empty(t, res.Date)
		require.Len(t, res.Slots, 1)
	})

	t.Run("rejects a malformed date key", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SlotsForDate(ctx, "2025-06-14")

		assert.ErrorIs(t, err, failure.InvalidDateKeyParam)
	})

	t.Run("reports a date with no slots", func(t *testing.T) {
		f := newFixture(t)

		f.expectIndexRebuild(ctx)

		_, err := f.svc.SlotsForDate(ctx, "010130")

		assert.Error(t, err)
	})
}

func TestInvalidateIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("clears every cached index entry", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Clear(ctx, "availability:index:*").Return(nil)

		f.svc.InvalidateIndex(ctx)
	})

	t.Run("swallows cache failures", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Clear(ctx, "availability:index:*").Return(errors.New("redis down"))

		f.svc.InvalidateIndex(ctx)
	})
}

func TestSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("finds a slot by variant ID", func(t *testing.T) {
		f := newFixture(t)

		f.expectIndexRebuild(ctx)

		slot, err := f.svc.Slot(ctx, "gid://variant/1")

		require.NoError(t, err)
		assert.Equal(t, "Carousel Party Room", slot.RoomName)
		assert.Equal(t, 2, slot.StartHour)
	})

	t.Run("reports an unknown variant", func(t *testing.T) {
		f := newFixture(t)

		f.expectIndexRebuild(ctx)

		_, err := f.svc.Slot(ctx, "gid://variant/99")

		assert.Error(t, err)
	})
}
