package service_test

import (
	"context"
	"parkside/config"
	otelMocks "parkside/infras/otel/mocks"
	"parkside/internal/domains/hours/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) service.Hours {
	t.Helper()

	cfg := &config.Config{}
	cfg.Park.Hours.Weekday = "11am - 7pm"
	cfg.Park.Hours.Weekend = "10am - 9pm"
	cfg.Park.Hours.WinterWeekday = "12pm - 6pm"
	cfg.Park.Hours.WinterWeekend = "11am - 7pm"

	return service.New(cfg, otelMocks.NewOtel())
}

func TestWeekly(t *testing.T) {
	svc := newTestService(t)

	schedule := svc.Weekly(context.Background())

	assert.Equal(t, 11, schedule.Weekday.OpenHour)
	assert.Equal(t, 19, schedule.Weekday.CloseHour)
	assert.Equal(t, 21, schedule.Weekend.CloseHour)
	assert.Equal(t, 12, schedule.WinterWeekday.OpenHour)
}

func TestForDate(t *testing.T) {
	svc := newTestService(t)

	t.Run("summer weekday uses the weekday schedule", func(t *testing.T) {
		// 2025-06-18 is a Wednesday.
		day, err := svc.ForDate(context.Background(), "2025-06-18")

		require.NoError(t, err)
		assert.Equal(t, 11, day.OpenHour)
		assert.Equal(t, 19, day.CloseHour)
	})

	t.Run("summer weekend uses the weekend schedule", func(t *testing.T) {
		// 2025-06-21 is a Saturday.
		day, err := svc.ForDate(context.Background(), "2025-06-21")

		require.NoError(t, err)
		assert.Equal(t, 10, day.OpenHour)
		assert.Equal(t, 21, day.CloseHour)
	})

	t.Run("winter weekday uses the winter schedule", func(t *testing.T) {
		// 2025-01-15 is a Wednesday.
		day, err := svc.ForDate(context.Background(), "2025-01-15")

		require.NoError(t, err)
		assert.Equal(t, 12, day.OpenHour)
		assert.Equal(t, 18, day.CloseHour)
	})

	t.Run("winter weekend uses the winter weekend schedule", func(t *testing.T) {
		// 2025-12-13 is a Saturday.
		day, err := svc.ForDate(context.Background(), "2025-12-13")

		require.NoError(t, err)
		assert.Equal(t, 11, day.OpenHour)
		assert.Equal(t, 19, day.CloseHour)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := svc.ForDate(context.Background(), "06/18/2025")

		assert.Error(t, err)
	})
}

func TestClosingHour(t *testing.T) {
	svc := newTestService(t)

	summerWeekday := time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC)
	summerWeekend := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	winterWeekday := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 19, svc.ClosingHour(summerWeekday))
	assert.Equal(t, 21, svc.ClosingHour(summerWeekend))
	assert.Equal(t, 18, svc.ClosingHour(winterWeekday))
}
