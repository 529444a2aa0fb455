package model

import (
	"parkside/infras/commerce"
	"parkside/shared/money"
	"strings"
	"time"
)

const (
	EntityName = "availability"

	titleSeparator = " / "
)

// AvailabilitySlot is one bookable room/time combination derived from a product
// variant. Slots are transient: the index is rebuilt from the commerce catalog
// whenever the cache entry lapses, never persisted.
type AvailabilitySlot struct {
	VariantID        string      `json:"variant_id"`
	Title            string      `json:"title"`
	Handle           string      `json:"handle"`
	RoomName         string      `json:"room_name"`
	TimeSlot         string      `json:"time_slot"`
	AvailableForSale bool        `json:"available_for_sale"`
	Date             time.Time   `json:"date"`
	DateKey          string      `json:"date_key"`
	StartHour        int         `json:"start_hour"`
	Price            money.Cents `json:"price"`
}

// AvailabilityIndex maps a MMDDYY date key (or the ANYDAY sentinel) to the slots
// bookable on that date, in catalog order. Duplicate date/room/time combinations
// are kept as-is.
type AvailabilityIndex map[string][]AvailabilitySlot

// BuildIndex scans the catalog's variants and groups bookable slots by decoded
// date key. Variants whose SKU carries no decodable date are skipped silently.
func BuildIndex(products []commerce.Product) AvailabilityIndex {
	index := AvailabilityIndex{}

	for _, product := range products {
		for _, variant := range product.Variants {
			slot, ok := slotFromVariant(product, variant)
			if !ok {
				continue
			}

			index[slot.DateKey] = append(index[slot.DateKey], slot)
		}
	}

	return index
}

func slotFromVariant(product commerce.Product, variant commerce.Variant) (AvailabilitySlot, bool) {
	var (
		date time.Time
		key  string
	)

	if variant.SKU == AnyDaySKU {
		date = AnyDayPlaceholder
		key = AnyDaySKU
	} else {
		var ok bool

		key, ok = DateKeyFromSKU(variant.SKU)
		if !ok {
			return AvailabilitySlot{}, false
		}

		var err error

		date, err = ParseDateKey(key)
		if err != nil {
			return AvailabilitySlot{}, false
		}
	}

	roomName, timeSlot := SplitVariantTitle(variant.Title)

	startHour, ok := StartHourFromSKU(variant.SKU)
	if !ok {
		startHour = NoStartHour
	}

	price, err := money.Parse(variant.Price.Amount)
	if err != nil {
		price = 0
	}

	return AvailabilitySlot{
		VariantID:        variant.ID,
		Title:            variant.Title,
		Handle:           product.Handle,
		RoomName:         roomName,
		TimeSlot:         timeSlot,
		AvailableForSale: variant.AvailableForSale,
		Date:             date,
		DateKey:          key,
		StartHour:        startHour,
		Price:            price,
	}, true
}

// SplitVariantTitle separates a "<Room> / <TimeSlot>" variant title. Titles with
// no separator are treated as a bare room name.
func SplitVariantTitle(title string) (roomName, timeSlot string) {
	roomName, timeSlot, found := strings.Cut(title, titleSeparator)
	if !found {
		return title, ""
	}

	return roomName, timeSlot
}
