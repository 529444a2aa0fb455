package model

import (
	"fmt"
	"parkside/infras/commerce"
	catalogModel "parkside/internal/domains/catalog/model"
	"parkside/shared/timezone"
	"strconv"
	"strings"
	"time"
)

const (
	EntityName = "booking"
)

// PartyType selects which detail fields step one requires.
type PartyType string

const (
	PartyTypeBirthday PartyType = "Birthday"
	PartyTypeTeam     PartyType = "Team"
	PartyTypeCompany  PartyType = "Company"
	PartyTypeOther    PartyType = "Other"
)

// Wizard steps, linear with no branching.
const (
	StepPartyDetails = iota + 1
	StepGuestCount
	StepPizzaAndDrinks
	StepAddOns
	StepContactAndAck
	StepReviewAndBook
)

const (
	FirstStep = StepPartyDetails
	FinalStep = StepReviewAndBook

	// MaxDrinkChoices caps the included drink flavors; a fourth selection is
	// rejected with a user-correctable error.
	MaxDrinkChoices = 3
)

// Pitcher is a drink-pitcher add-on line, one per flavor.
type Pitcher struct {
	Flavor   string `json:"flavor"`
	Quantity int    `json:"quantity"`
}

// BookingForm is the wizard state for one booking session. It lives in the
// session cache under a TTL and is discarded on submission; there is no draft
// recovery.
type BookingForm struct {
	ID        string    `json:"id"`
	VariantID string    `json:"variant_id"`
	DateKey   string    `json:"date_key"`
	Date      time.Time `json:"date"`
	RoomName  string    `json:"room_name"`
	TimeSlot  string    `json:"time_slot"`
	StartHour int       `json:"start_hour"`

	Room RoomDetails `json:"room"`

	PartyType         PartyType `json:"party_type"`
	BirthdayChildName string    `json:"birthday_child_name"`
	BirthdayChildAge  string    `json:"birthday_child_age"`
	TeamName          string    `json:"team_name"`
	TeamActivity      string    `json:"team_activity"`
	CompanyName       string    `json:"company_name"`
	OtherDescription  string    `json:"other_description"`

	Participants int `json:"participants"`

	FoodPackage       bool      `json:"food_package"`
	Drinks            []string  `json:"drinks"`
	PepperoniPizzas   int       `json:"pepperoni_pizzas"`
	CheesePizzas      int       `json:"cheese_pizzas"`
	HalfAndHalfPizzas int       `json:"half_and_half_pizzas"`
	Pitchers          []Pitcher `json:"pitchers"`

	Phone            string `json:"phone"`
	AckPartyRules    bool   `json:"ack_party_rules"`
	AckDepositPolicy bool   `json:"ack_deposit_policy"`
	AckOutsideFood   bool   `json:"ack_outside_food"`

	Step      int       `json:"step"`
	CreatedAt time.Time `json:"created_at"`
}

// NewForm starts a wizard session for a selected slot.
func NewForm(id string, slot catalogModel.AvailabilitySlot, room RoomDetails) BookingForm {
	return BookingForm{
		ID:        id,
		VariantID: slot.VariantID,
		DateKey:   slot.DateKey,
		Date:      slot.Date,
		RoomName:  slot.RoomName,
		TimeSlot:  slot.TimeSlot,
		StartHour: slot.StartHour,
		Room:      room,
		Step:      FirstStep,
		CreatedAt: timezone.Now(),
	}
}

// CanProceed reports whether the given step's gate passes, and if not, the
// user-facing message explaining what is missing. Backward navigation is never
// validated.
func (f *BookingForm) CanProceed(step int) (bool, string) {
	switch step {
	case StepPartyDetails:
		return f.partyDetailsComplete()
	case StepGuestCount:
		if f.Participants < f.Room.MinParticipants {
			return false, fmt.Sprintf("%s requires at least %d guests", f.Room.Room, f.Room.MinParticipants)
		}

		return true, ""
	case StepPizzaAndDrinks:
		return f.drinksComplete()
	case StepAddOns:
		return true, ""
	case StepContactAndAck:
		if f.Phone == "" {
			return false, "a contact phone number is required"
		}

		if !f.AckPartyRules || !f.AckDepositPolicy || !f.AckOutsideFood {
			return false, "all three acknowledgements must be checked"
		}

		return true, ""
	case StepReviewAndBook:
		return false, "already at the final step"
	default:
		return false, "unknown step"
	}
}

func (f *BookingForm) partyDetailsComplete() (bool, string) {
	switch f.PartyType {
	case PartyTypeBirthday:
		if f.BirthdayChildName == "" || f.BirthdayChildAge == "" {
			return false, "birthday parties need the child's name and age"
		}
	case PartyTypeTeam:
		if f.TeamName == "" || f.TeamActivity == "" {
			return false, "team parties need the team name and activity"
		}
	case PartyTypeCompany:
		if f.CompanyName == "" {
			return false, "company parties need the company name"
		}
	case PartyTypeOther:
		if f.OtherDescription == "" {
			return false, "please describe your event"
		}
	default:
		return false, "please select a party type"
	}

	return true, ""
}

func (f *BookingForm) drinksComplete() (bool, string) {
	// Midway and Turning Point parties only need a drink choice when the
	// per-person pizza package is added; every other room always needs one.
	if f.Room.DrinkRequiredOnlyWithFood() {
		if f.FoodPackage && len(f.Drinks) == 0 {
			return false, "choose a drink to go with the pizza package"
		}

		return true, ""
	}

	if len(f.Drinks) == 0 {
		return false, "choose at least one drink for your party"
	}

	return true, ""
}

// CartLine flattens the completed form into the single-line cart payload. Only
// fields with nonzero values become attributes.
func (f *BookingForm) CartLine() commerce.CartLineInput {
	attrs := []commerce.Attribute{
		{Key: "Room", Value: f.RoomName},
		{Key: "Time Slot", Value: f.TimeSlot},
		{Key: "Party Type", Value: string(f.PartyType)},
		{Key: "Number of Participants", Value: strconv.Itoa(f.Participants)},
		{Key: "Contact Phone", Value: f.Phone},
	}

	if f.DateKey != catalogModel.AnyDaySKU {
		attrs = append(attrs, commerce.Attribute{Key: "Party Date", Value: f.Date.Format("2006-01-02")})
	}

	optional := []commerce.Attribute{
		{Key: "Birthday Child", Value: f.BirthdayChildName},
		{Key: "Birthday Age", Value: f.BirthdayChildAge},
		{Key: "Team Name", Value: f.TeamName},
		{Key: "Team Activity", Value: f.TeamActivity},
		{Key: "Company Name", Value: f.CompanyName},
		{Key: "Party Description", Value: f.OtherDescription},
		{Key: "Drink Choices", Value: strings.Join(f.Drinks, ", ")},
	}

	for _, attr := range optional {
		if attr.Value != "" {
			attrs = append(attrs, attr)
		}
	}

	if f.FoodPackage {
		attrs = append(attrs, commerce.Attribute{Key: "Pizza & Drinks Package", Value: "Yes"})
	}

	counts := []struct {
		key string
		qty int
	}{
		{"Pepperoni Pizzas", f.PepperoniPizzas},
		{"Cheese Pizzas", f.CheesePizzas},
		{"Half & Half Pizzas", f.HalfAndHalfPizzas},
	}

	for _, count := range counts {
		if count.qty > 0 {
			attrs = append(attrs, commerce.Attribute{Key: count.key, Value: strconv.Itoa(count.qty)})
		}
	}

	for _, pitcher := range f.Pitchers {
		if pitcher.Quantity > 0 {
			attrs = append(attrs, commerce.Attribute{
				Key:   pitcher.Flavor + " Pitchers",
				Value: strconv.Itoa(pitcher.Quantity),
			})
		}
	}

	return commerce.CartLineInput{
		MerchandiseID: f.VariantID,
		Quantity:      1,
		Attributes:    attrs,
	}
}
