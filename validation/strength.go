package validation

import (
	"strings"
	"unicode"
)

// Strength is a display-oriented password strength rating. Score is the count
// of satisfied checks (0-5); Label and Color come from a fixed ordered table.
type Strength struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var strengthTable = []struct {
	label string
	color string
}{
	{"Very Weak", "#d32f2f"},
	{"Very Weak", "#d32f2f"},
	{"Weak", "#f57c00"},
	{"Fair", "#fbc02d"},
	{"Strong", "#689f38"},
	{"Very Strong", "#388e3c"},
}

// CalculatePasswordStrength sums five independent checks: length >= 8,
// length >= 12, mixed case, at least one digit, at least one special
// character. The score never decreases when an additional check passes.
func CalculatePasswordStrength(password string) Strength {
	score := 0
	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}
	hasLower := strings.IndexFunc(password, unicode.IsLower) >= 0
	hasUpper := strings.IndexFunc(password, unicode.IsUpper) >= 0
	if hasLower && hasUpper {
		score++
	}
	if strings.IndexFunc(password, unicode.IsDigit) >= 0 {
		score++
	}
	if hasSpecialChar(password) {
		score++
	}

	return Strength{
		Score: score,
		Label: strengthTable[score].label,
		Color: strengthTable[score].color,
	}
}
