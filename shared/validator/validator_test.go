package validator_test

import (
	"parkside/shared/validator"
	"strings"
	"testing"
)

type inquiryTestStruct struct {
	Name    string `validate:"required"       json:"name"`
	Email   string `validate:"required,email" json:"email"`
	Phone   string `validate:"omitempty,phone" json:"phone"`
	DateKey string `validate:"omitempty,datekey" json:"date_key"`
	Topic   string `validate:"oneof=general parties season-passes" json:"topic"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        inquiryTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: inquiryTestStruct{
				Name:    "Jamie Rivers",
				Email:   "jamie@example.com",
				Phone:   "(555) 867-5309",
				DateKey: "081525",
				Topic:   "parties",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: inquiryTestStruct{
				Email: "jamie@example.com",
				Topic: "general",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: inquiryTestStruct{
				Name:  "Jamie Rivers",
				Email: "not-an-email",
				Topic: "general",
			},
			expectError: true,
		},
		{
			name: "invalid phone",
			data: inquiryTestStruct{
				Name:  "Jamie Rivers",
				Email: "jamie@example.com",
				Phone: "call me",
				Topic: "general",
			},
			expectError: true,
		},
		{
			name: "short date key",
			data: inquiryTestStruct{
				Name:    "Jamie Rivers",
				Email:   "jamie@example.com",
				DateKey: "0815",
				Topic:   "general",
			},
			expectError: true,
		},
		{
			name: "invalid topic",
			data: inquiryTestStruct{
				Name:  "Jamie Rivers",
				Email: "jamie@example.com",
				Topic: "pricing",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	body := strings.NewReader(`{"name":"Jamie","email":"jamie@example.com","topic":"general"}`)

	var data inquiryTestStruct
	if err := validator.Validate(body, &data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if data.Name != "Jamie" {
		t.Errorf("expected decoded name 'Jamie', got %q", data.Name)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"name":`)

	var data inquiryTestStruct
	if err := validator.Validate(body, &data); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("081525", "datekey"); err != nil {
		t.Errorf("expected valid date key, got %v", err)
	}

	if err := validator.ValidateVar("ANYDAY", "datekey"); err != nil {
		t.Errorf("expected ANYDAY to pass the datekey tag, got %v", err)
	}

	for _, bad := range []string{"2025-06-14", "0815", "anyday", "08152a"} {
		if err := validator.ValidateVar(bad, "datekey"); err == nil {
			t.Errorf("expected %q to fail the datekey tag", bad)
		}
	}
}
