package model_test

import (
	"parkside/internal/domains/hours/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHours(t *testing.T) {
	t.Run("parses a standard range", func(t *testing.T) {
		schedule, err := model.ParseHours("11am - 7pm")

		require.NoError(t, err)
		assert.Equal(t, 11, schedule.OpenHour)
		assert.Equal(t, 19, schedule.CloseHour)
		assert.Equal(t, "11am - 7pm", schedule.Label)
	})

	t.Run("parses a range without spaces and with minutes", func(t *testing.T) {
		schedule, err := model.ParseHours("11:30am-7:30pm")

		require.NoError(t, err)
		assert.Equal(t, 11, schedule.OpenHour)
		assert.Equal(t, 19, schedule.CloseHour)
	})

	t.Run("treats 12pm as noon", func(t *testing.T) {
		schedule, err := model.ParseHours("12pm - 6pm")

		require.NoError(t, err)
		assert.Equal(t, 12, schedule.OpenHour)
		assert.Equal(t, 18, schedule.CloseHour)
	})

	t.Run("treats 12am as midnight open", func(t *testing.T) {
		schedule, err := model.ParseHours("12am - 5am")

		require.NoError(t, err)
		assert.Equal(t, 0, schedule.OpenHour)
		assert.Equal(t, 5, schedule.CloseHour)
	})

	t.Run("accepts uppercase meridiems", func(t *testing.T) {
		schedule, err := model.ParseHours("10AM - 9PM")

		require.NoError(t, err)
		assert.Equal(t, 10, schedule.OpenHour)
		assert.Equal(t, 21, schedule.CloseHour)
	})

	t.Run("fails when only one time is present", func(t *testing.T) {
		_, err := model.ParseHours("11am onwards")

		assert.Error(t, err)
	})

	t.Run("fails when closing precedes opening", func(t *testing.T) {
		_, err := model.ParseHours("7pm - 11am")

		assert.Error(t, err)
	})

	t.Run("fails on empty text", func(t *testing.T) {
		_, err := model.ParseHours("")

		assert.Error(t, err)
	})
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, model.IsWeekend(saturday))
	assert.True(t, model.IsWeekend(sunday))
	assert.False(t, model.IsWeekend(monday))
}
