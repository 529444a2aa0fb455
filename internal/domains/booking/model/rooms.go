package model

import (
	"parkside/shared/money"
	"strings"
)

// RoomDetails is a party room's booking policy: minimum party size and the
// summer per-guest rate.
type RoomDetails struct {
	Room            string      `json:"room"`
	MinParticipants int         `json:"min_participants"`
	BaseRate        money.Cents `json:"base_rate"`
}

var (
	roomLarge    = RoomDetails{Room: "Large Party Room", MinParticipants: 10, BaseRate: money.FromDollars(32)}
	roomMidway   = RoomDetails{Room: "Midway Party Room", MinParticipants: 25, BaseRate: money.FromDollars(32)}
	roomTurning  = RoomDetails{Room: "Turning Point Room", MinParticipants: 75, BaseRate: money.FromDollars(30)}
	roomCarousel = RoomDetails{Room: "Carousel Party Room", MinParticipants: 8, BaseRate: money.FromDollars(32)}
)

// Classify maps a variant's room name to its booking policy by case-sensitive
// substring match, in fixed priority: Large, then Midway, then Turning. Any
// other name falls back to the Carousel policy; matched is false for that
// fallback so callers can flag names the table has never seen.
func Classify(roomName string) (details RoomDetails, matched bool) {
	switch {
	case strings.Contains(roomName, "Large"):
		return roomLarge, true
	case strings.Contains(roomName, "Midway"):
		return roomMidway, true
	case strings.Contains(roomName, "Turning"):
		return roomTurning, true
	default:
		return roomCarousel, false
	}
}

// IsTurningPoint reports whether this policy is the Turning Point room, which
// has its own winter rate.
func (r RoomDetails) IsTurningPoint() bool {
	return strings.Contains(r.Room, "Turning")
}

// DrinkRequiredOnlyWithFood reports whether the room relaxes the drink-choice
// gate to apply only when the per-person pizza package is selected.
func (r RoomDetails) DrinkRequiredOnlyWithFood() bool {
	return strings.Contains(r.Room, "Midway") || strings.Contains(r.Room, "Turning")
}
