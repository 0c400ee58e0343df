package utils

import (
	"strings"

	"github.com/google/uuid"
)

// MaskEmail hides the middle of the local part: "jordan@x.com" -> "j****n@x.com".
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email
	}
	local, domain := email[:at], email[at:]
	switch {
	case len(local) <= 2:
		return strings.Repeat("*", len(local)) + domain
	default:
		return local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:] + domain
	}
}

// MaskDigits keeps only the last four digits: "4242424242424242" -> "**** **** **** 4242".
func MaskDigits(digits string) string {
	digits = strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, digits)
	if len(digits) <= 4 {
		return digits
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

// NewOrderNumber returns a short human-readable order reference.
func NewOrderNumber() string {
	return "SO-" + strings.ToUpper(uuid.NewString()[:8])
}
