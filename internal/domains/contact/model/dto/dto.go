package dto

import (
	"parkside/internal/domains/contact/model"
	"time"

	"github.com/google/uuid"
)

type InquiryRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,phone"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
	// Website is a honeypot. The rendered form hides it, so a value here
	// means a bot filled it.
	Website string `json:"website" validate:"omitempty"`
}

func (r *InquiryRequest) ToModel(id uuid.UUID, clientIP string) model.Inquiry {
	return model.Inquiry{
		ID:         id,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Subject:    r.Subject,
		Message:    r.Message,
		ClientIP:   clientIP,
		ReceivedAt: time.Now().UTC(),
	}
}

type InquiryResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}
