package dto

import (
	"parkside/internal/domains/catalog/model"
	"parkside/shared/constant"
	"parkside/shared/money"
)

type SlotResponse struct {
	VariantID        string      `json:"variant_id"`
	Title            string      `json:"title"`
	Handle           string      `json:"handle"`
	RoomName         string      `json:"room_name"`
	TimeSlot         string      `json:"time_slot"`
	AvailableForSale bool        `json:"available_for_sale"`
	Price            money.Cents `json:"price"`
}

func (r *SlotResponse) FromModel(slot model.AvailabilitySlot) {
	r.VariantID = slot.VariantID
	r.Title = slot.Title
	r.Handle = slot.Handle
	r.RoomName = slot.RoomName
	r.TimeSlot = slot.TimeSlot
	r.AvailableForSale = slot.AvailableForSale
	r.Price = slot.Price
}

type DateSlotsResponse struct {
	DateKey string         `json:"date_key"`
	Date    string         `json:"date,omitempty"`
	Slots   []SlotResponse `json:"slots"`
}

func (r *DateSlotsResponse) FromModels(dateKey string, slots []model.AvailabilitySlot) {
	r.DateKey = dateKey

	if dateKey != model.AnyDaySKU && len(slots) > 0 {
		r.Date = slots[0].Date.Format(constant.DateOnlyFormat)
	}

	r.Slots = make([]SlotResponse, len(slots))
	for i, slot := range slots {
		r.Slots[i].FromModel(slot)
	}
}

type AvailabilityResponse struct {
	Dates     []DateSlotsResponse `json:"dates"`
	TotalDays int                 `json:"total_days"`
}

// FromIndex flattens the index into chronological order, ANYDAY entries last.
func (r *AvailabilityResponse) FromIndex(index model.AvailabilityIndex) {
	keys := make([]string, 0, len(index))
	for key := range index {
		keys = append(keys, key)
	}

	model.SortDateKeys(keys)

	r.Dates = make([]DateSlotsResponse, len(keys))
	for i, key := range keys {
		r.Dates[i].FromModels(key, index[key])
	}

	r.TotalDays = len(keys)
}
