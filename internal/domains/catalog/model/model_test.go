package model_test

import (
	"parkside/infras/commerce"
	"parkside/internal/domains/catalog/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partyRoomProduct() commerce.Product {
	return commerce.Product{
		ID:     "gid://product/1",
		Title:  "Party Room Bookings",
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
				Title:            "Turning Point Room / 5-7pm",
				SKU:              "061425",
				AvailableForSale: false,
				Price:            commerce.Price{Amount: "30.00"},
			},
			{
				ID:               "gid://variant/3",
				Title:            "Large Party Room / 2-4pm",
				SKU:              "07042514",
				AvailableForSale: true,
				Price:            commerce.Price{Amount: "32.00"},
			},
			{
				ID:               "gid://variant/4",
				Title:            "Midway Party Room",
				SKU:              model.AnyDaySKU,
				AvailableForSale: true,
				Price:            commerce.Price{Amount: "32.00"},
			},
			{
				ID:               "gid://variant/5",
				Title:            "Gift Card",
				SKU:              "GIFT-100",
				AvailableForSale: true,
				Price:            commerce.Price{Amount: "100.00"},
			},
		},
	}
}

func TestBuildIndex(t *testing.T) {
	index := model.BuildIndex([]commerce.Product{partyRoomProduct()})

	t.Run("groups slots by decoded date key", func(t *testing.T) {
		require.Contains(t, index, "061425")
		assert.Len(t, index["061425"], 2)
		require.Contains(t, index, "070425")
		assert.Len(t, index["070425"], 1)
	})

	t.Run("keeps the ANYDAY sentinel as its own key", func(t *testing.T) {
		require.Contains(t, index, model.AnyDaySKU)

		slot := index[model.AnyDaySKU][0]
		assert.Equal(t, model.AnyDayPlaceholder, slot.Date)
		assert.Equal(t, "Midway Party Room", slot.RoomName)
		assert.Empty(t, slot.TimeSlot)
	})

	t.Run("skips variants without a decodable date", func(t *testing.T) {
		for _, slots := range index {
			for _, slot := range slots {
				assert.NotEqual(t, "gid://variant/5", slot.VariantID)
			}
		}
	})

	t.Run("splits room name and time slot from the title", func(t *testing.T) {
		slot := index["061425"][0]

		assert.Equal(t, "Carousel Party Room", slot.RoomName)
		assert.Equal(t, "2-4pm", slot.TimeSlot)
	})

	t.Run("decodes the start hour suffix", func(t *testing.T) {
		assert.Equal(t, 2, index["061425"][0].StartHour)
		assert.Equal(t, 14, index["070425"][0].StartHour)
		assert.Equal(t, model.NoStartHour, index["061425"][1].StartHour)
	})

	t.Run("carries availability and price through", func(t *testing.T) {
		assert.True(t, index["061425"][0].AvailableForSale)
		assert.False(t, index["061425"][1].AvailableForSale)
		assert.Equal(t, "32.00", index["061425"][0].Price.String())
	})

	t.Run("decodes dates into the 2000s", func(t *testing.T) {
		assert.Equal(t, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), index["061425"][0].Date)
	})
}

func TestSplitVariantTitle(t *testing.T) {
	t.Run("splits on the separator", func(t *testing.T) {
		room, slot := model.SplitVariantTitle("Large Party Room / 2-4pm")

		assert.Equal(t, "Large Party Room", room)
		assert.Equal(t, "2-4pm", slot)
	})

	t.Run("treats a bare title as a room name", func(t *testing.T) {
		room, slot := model.SplitVariantTitle("Midway Party Room")

		assert.Equal(t, "Midway Party Room", room)
		assert.Empty(t, slot)
	})
}
