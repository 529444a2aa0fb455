package money_test

import (
	"encoding/json"
	"parkside/shared/money"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    money.Cents
		wantErr bool
	}{
		{"whole dollars with cents", "32.00", 3200, false},
		{"cents only", "7.99", 799, false},
		{"no fraction", "22", 2200, false},
		{"single fraction digit", "5.5", 550, false},
		{"extra fraction digits truncated", "19.999", 1999, false},
		{"negative", "-3.25", -325, false},
		{"surrounding whitespace", " 12.50 ", 1250, false},
		{"empty", "", 0, true},
		{"garbage", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCents_Percent(t *testing.T) {
	tests := []struct {
		name     string
		subtotal money.Cents
		bps      int64
		want     money.Cents
	}{
		{"carousel example", 25600, 825, 2112},   // $256 -> $21.12
		{"turning winter example", 260000, 825, 21450}, // $2600 -> $214.50
		{"rounds half up", 1000, 825, 83},        // 82.5 cents -> 83
		{"zero", 0, 825, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.subtotal.Percent(tt.bps))
		})
	}
}

func TestCents_String(t *testing.T) {
	assert.Equal(t, "256.00", money.FromDollars(256).String())
	assert.Equal(t, "21.12", money.Cents(2112).String())
	assert.Equal(t, "0.05", money.Cents(5).String())
	assert.Equal(t, "-3.25", money.Cents(-325).String())
}

func TestCents_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(money.Cents(2112))
	assert.NoError(t, err)
	assert.Equal(t, `"21.12"`, string(data))

	var c money.Cents
	assert.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, money.Cents(2112), c)
}
