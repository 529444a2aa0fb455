package dto

import (
	"parkside/internal/domains/booking/model"
	"parkside/internal/domains/booking/pricing"
	catalogModel "parkside/internal/domains/catalog/model"
	"parkside/shared/constant"
)

type StartSessionRequest struct {
	VariantID string `json:"variant_id" validate:"required"`
}

// UpdateSessionRequest merges into the wizard form; only provided fields change.
type UpdateSessionRequest struct {
	PartyType         *string          `json:"party_type"           validate:"omitempty,oneof=Birthday Team Company Other"`
	BirthdayChildName *string          `json:"birthday_child_name"  validate:"omitempty,max=100"`
	BirthdayChildAge  *string          `json:"birthday_child_age"   validate:"omitempty,max=10"`
	TeamName          *string          `json:"team_name"            validate:"omitempty,max=100"`
	TeamActivity      *string          `json:"team_activity"        validate:"omitempty,max=100"`
	CompanyName       *string          `json:"company_name"         validate:"omitempty,max=100"`
	OtherDescription  *string          `json:"other_description"    validate:"omitempty,max=500"`
	Participants      *int             `json:"participants"         validate:"omitempty,min=0"`
	FoodPackage       *bool            `json:"food_package"`
	Drinks            *[]string        `json:"drinks"`
	PepperoniPizzas   *int             `json:"pepperoni_pizzas"     validate:"omitempty,min=0"`
	CheesePizzas      *int             `json:"cheese_pizzas"        validate:"omitempty,min=0"`
	HalfAndHalfPizzas *int             `json:"half_and_half_pizzas" validate:"omitempty,min=0"`
	Pitchers          *[]model.Pitcher `json:"pitchers"`
	Phone             *string          `json:"phone"                validate:"omitempty,phone"`
	AckPartyRules     *bool            `json:"ack_party_rules"`
	AckDepositPolicy  *bool            `json:"ack_deposit_policy"`
	AckOutsideFood    *bool            `json:"ack_outside_food"`
}

// ApplyTo merges the provided fields into the form.
func (u *UpdateSessionRequest) ApplyTo(form *model.BookingForm) {
	if u.PartyType != nil {
		form.PartyType = model.PartyType(*u.PartyType)
	}
	if u.BirthdayChildName != nil {
		form.BirthdayChildName = *u.BirthdayChildName
	}
	if u.BirthdayChildAge != nil {
		form.BirthdayChildAge = *u.BirthdayChildAge
	}
	if u.TeamName != nil {
		form.TeamName = *u.TeamName
	}
	if u.TeamActivity != nil {
		form.TeamActivity = *u.TeamActivity
	}
	if u.CompanyName != nil {
		form.CompanyName = *u.CompanyName
	}
	if u.OtherDescription != nil {
		form.OtherDescription = *u.OtherDescription
	}
	if u.Participants != nil {
		form.Participants = *u.Participants
	}
	if u.FoodPackage != nil {
		form.FoodPackage = *u.FoodPackage
	}
	if u.Drinks != nil {
		form.Drinks = *u.Drinks
	}
	if u.PepperoniPizzas != nil {
		form.PepperoniPizzas = *u.PepperoniPizzas
	}
	if u.CheesePizzas != nil {
		form.CheesePizzas = *u.CheesePizzas
	}
	if u.HalfAndHalfPizzas != nil {
		form.HalfAndHalfPizzas = *u.HalfAndHalfPizzas
	}
	if u.Pitchers != nil {
		form.Pitchers = *u.Pitchers
	}
	if u.Phone != nil {
		form.Phone = *u.Phone
	}
	if u.AckPartyRules != nil {
		form.AckPartyRules = *u.AckPartyRules
	}
	if u.AckDepositPolicy != nil {
		form.AckDepositPolicy = *u.AckDepositPolicy
	}
	if u.AckOutsideFood != nil {
		form.AckOutsideFood = *u.AckOutsideFood
	}
}

type SessionResponse struct {
	ID       string                `json:"id"`
	RoomName string                `json:"room_name"`
	TimeSlot string                `json:"time_slot"`
	Date     string                `json:"date,omitempty"`
	Step     int                   `json:"step"`
	Form     model.BookingForm     `json:"form"`
	Estimate pricing.EstimatedCost `json:"estimate"`
}

func (r *SessionResponse) FromModel(form model.BookingForm, estimate pricing.EstimatedCost) {
	r.ID = form.ID
	r.RoomName = form.RoomName
	r.TimeSlot = form.TimeSlot

	if form.DateKey != "" && form.DateKey != catalogModel.AnyDaySKU {
		r.Date = form.Date.Format(constant.DateOnlyFormat)
	}

	r.Step = form.Step
	r.Form = form
	r.Estimate = estimate
}

type EstimateResponse struct {
	pricing.EstimatedCost
}

type SubmitResponse struct {
	CartID      string `json:"cart_id"`
	CheckoutURL string `json:"checkout_url"`
}
