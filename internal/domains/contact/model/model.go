package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Inquiry is a contact-form submission as accepted by the service, after the
// spam screen has let it through.
type Inquiry struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ClientIP   string    `json:"client_ip"`
	ReceivedAt time.Time `json:"received_at"`
}

const maxLinksAllowed = 2

// Phrases that only show up in the link-farm spam this form attracts.
var bannedPhrases = []string{
	"seo service",
	"backlink",
	"crypto investment",
	"guaranteed ranking",
	"work from home",
}

// IsSpam screens a submission with the same heuristics the storefront used: a
// filled honeypot field, too many links, or a known spam phrase. Spam is
// dropped quietly so bots get no signal their submission was rejected.
func IsSpam(honeypot, subject, message string) (bool, string) {
	if strings.TrimSpace(honeypot) != "" {
		return true, "honeypot field filled"
	}

	combined := strings.ToLower(subject + " " + message)

	if strings.Count(combined, "http") > maxLinksAllowed {
		return true, "too many links"
	}

	for _, phrase := range bannedPhrases {
		if strings.Contains(combined, phrase) {
			return true, "banned phrase: " + phrase
		}
	}

	return false, ""
}
