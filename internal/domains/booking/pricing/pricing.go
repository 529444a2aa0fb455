// Package pricing computes the itemized party cost. It is a pure function of
// the wizard form and the park's closing hour; callers invoke it on demand
// whenever the form changes, there is no reactive machinery.
package pricing

import (
	"parkside/internal/domains/booking/model"
	catalogModel "parkside/internal/domains/catalog/model"
	"parkside/shared/money"
)

// TaxBasisPoints is the sales tax applied to the subtotal, 8.25%.
const TaxBasisPoints = 825

const (
	// assumePMThreshold: slot start hours below 8 are afternoon times recorded
	// without the 12-hour offset.
	assumePMThreshold = 8

	lastHoursWindowMin = 1
	lastHoursWindowMax = 3
)

var (
	rateLastHours     = money.FromDollars(18)
	rateWinterTurning = money.FromDollars(26)
	rateWinterOther   = money.FromDollars(28)

	priceFoodPerPerson  = money.Cents(700)
	pricePepperoniPizza = money.Cents(2299)
	priceCheesePizza    = money.Cents(1999)
	priceHalfAndHalf    = money.Cents(2299)
	priceDrinkPitcher   = money.Cents(799)
)

// LineItem is one row of the itemized estimate.
type LineItem struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    money.Cents `json:"price"`
	Total    money.Cents `json:"total"`
}

// EstimatedCost is the deterministic, idempotent result of pricing a form.
type EstimatedCost struct {
	Subtotal money.Cents `json:"subtotal"`
	Tax      money.Cents `json:"tax"`
	Total    money.Cents `json:"total"`
	Items    []LineItem  `json:"itemized_costs"`
}

// ComputeCost prices the form against the park's closing hour for the party
// date. closingHour is a structured 24-hour value; pass 0 when unknown, which
// disables the late-day discount.
func ComputeCost(form model.BookingForm, closingHour int) EstimatedCost {
	rate := perGuestRate(form, closingHour)

	items := []LineItem{{
		Name:     form.Room.Room,
		Quantity: form.Participants,
		Price:    rate,
		Total:    rate.Mul(form.Participants),
	}}

	if form.FoodPackage {
		items = append(items, LineItem{
			Name:     "Pizza & Drinks Package",
			Quantity: form.Participants,
			Price:    priceFoodPerPerson,
			Total:    priceFoodPerPerson.Mul(form.Participants),
		})
	}

	pizzas := []struct {
		name  string
		qty   int
		price money.Cents
	}{
		{"Pepperoni Pizza", form.PepperoniPizzas, pricePepperoniPizza},
		{"Cheese Pizza", form.CheesePizzas, priceCheesePizza},
		{"Half & Half Pizza", form.HalfAndHalfPizzas, priceHalfAndHalf},
	}

	for _, pizza := range pizzas {
		if pizza.qty > 0 {
			items = append(items, LineItem{
				Name:     pizza.name,
				Quantity: pizza.qty,
				Price:    pizza.price,
				Total:    pizza.price.Mul(pizza.qty),
			})
		}
	}

	for _, pitcher := range form.Pitchers {
		if pitcher.Quantity > 0 {
			items = append(items, LineItem{
				Name:     pitcher.Flavor + " Pitcher",
				Quantity: pitcher.Quantity,
				Price:    priceDrinkPitcher,
				Total:    priceDrinkPitcher.Mul(pitcher.Quantity),
			})
		}
	}

	subtotal := money.Cents(0)
	for _, item := range items {
		subtotal += item.Total
	}

	tax := subtotal.Percent(TaxBasisPoints)

	return EstimatedCost{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		Items:    items,
	}
}

// perGuestRate picks the per-person room rate. The late-day discount outranks
// seasonal rates; winter rates outrank the summer default.
func perGuestRate(form model.BookingForm, closingHour int) money.Cents {
	start := form.StartHour
	if start >= 0 && start < assumePMThreshold {
		start += 12
	}

	if start >= 0 && closingHour > 0 {
		hoursLeft := closingHour - start
		if hoursLeft > lastHoursWindowMin && hoursLeft <= lastHoursWindowMax {
			return rateLastHours
		}
	}

	// The ANYDAY placeholder date is not a calendar date and never selects a
	// seasonal rate.
	if form.DateKey != catalogModel.AnyDaySKU && catalogModel.IsWinter(form.Date) {
		if form.Room.IsTurningPoint() {
			return rateWinterTurning
		}

		return rateWinterOther
	}

	return form.Room.BaseRate
}
