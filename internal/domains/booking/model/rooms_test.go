package model_test

import (
	"parkside/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		roomName    string
		wantRoom    string
		wantMinimum int
		wantMatched bool
	}{
		{
			name:        "large room",
			roomName:    "Large Party Room",
			wantRoom:    "Large Party Room",
			wantMinimum: 10,
			wantMatched: true,
		},
		{
			name:        "midway room",
			roomName:    "Midway Party Room",
			wantRoom:    "Midway Party Room",
			wantMinimum: 25,
			wantMatched: true,
		},
		{
			name:        "turning point room",
			roomName:    "Turning Point Room",
			wantRoom:    "Turning Point Room",
			wantMinimum: 75,
			wantMatched: true,
		},
		{
			name:        "carousel room falls through to the default",
			roomName:    "Carousel Party Room",
			wantRoom:    "Carousel Party Room",
			wantMinimum: 8,
			wantMatched: false,
		},
		{
			// Large outranks Turning when a name matches both.
			name:        "priority order is fixed",
			roomName:    "Turning Point Large Room",
			wantRoom:    "Large Party Room",
			wantMinimum: 10,
			wantMatched: true,
		},
		{
			name:        "unknown name uses the default policy",
			roomName:    "Secret VIP Suite",
			wantRoom:    "Carousel Party Room",
			wantMinimum: 8,
			wantMatched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, matched := model.Classify(tt.roomName)

			assert.Equal(t, tt.wantRoom, details.Room)
			assert.Equal(t, tt.wantMinimum, details.MinParticipants)
			assert.Equal(t, tt.wantMatched, matched)
		})
	}
}

func TestRoomDetailsPredicates(t *testing.T) {
	large, _ := model.Classify("Large Party Room")
	midway, _ := model.Classify("Midway Party Room")
	turning, _ := model.Classify("Turning Point Room")
	carousel, _ := model.Classify("Carousel Party Room")

	assert.False(t, large.IsTurningPoint())
	assert.True(t, turning.IsTurningPoint())

	assert.False(t, large.DrinkRequiredOnlyWithFood())
	assert.True(t, midway.DrinkRequiredOnlyWithFood())
	assert.True(t, turning.DrinkRequiredOnlyWithFood())
	assert.False(t, carousel.DrinkRequiredOnlyWithFood())
}

func TestBaseRates(t *testing.T) {
	large, _ := model.Classify("Large Party Room")
	turning, _ := model.Classify("Turning Point Room")

	assert.Equal(t, "32.00", large.BaseRate.String())
	assert.Equal(t, "30.00", turning.BaseRate.String())
}
