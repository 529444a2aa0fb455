package model_test

import (
	"parkside/internal/domains/contact/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSpam(t *testing.T) {
	tests := []struct {
		name     string
		honeypot string
		subject  string
		message  string
		want     bool
	}{
		{
			name:    "legitimate inquiry passes",
			subject: "Birthday party for 12 kids",
			message: "Hi, we would like to book the Carousel Room for June 14th.",
			want:    false,
		},
		{
			name:     "filled honeypot is spam",
			honeypot: "https://example.com",
			subject:  "Party",
			message:  "Looks real otherwise",
			want:     true,
		},
		{
			name:    "two links are still fine",
			subject: "Question",
			message: "See http://a.example and http://b.example for details",
			want:    false,
		},
		{
			name:    "three links are spam",
			subject: "Question",
			message: "http://a.example http://b.example http://c.example",
			want:    true,
		},
		{
			name:    "banned phrase is spam",
			subject: "Great offer",
			message: "We provide the best SEO service for your park website",
			want:    true,
		},
		{
			name:    "banned phrase in subject is spam",
			subject: "Crypto Investment opportunity",
			message: "Hello",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spam, reason := model.IsSpam(tt.honeypot, tt.subject, tt.message)

			assert.Equal(t, tt.want, spam)
			if tt.want {
				assert.NotEmpty(t, reason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}
