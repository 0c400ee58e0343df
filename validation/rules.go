package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	emailRX  = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	nameRX   = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	postalRX = regexp.MustCompile(`^\d{5}$`)
	phoneRX  = regexp.MustCompile(`^(0\d{9}|\+94\d{9})$`)
	cvvRX    = regexp.MustCompile(`^\d{3,4}$`)
	expiryRX = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	digitRX  = regexp.MustCompile(`^\d+$`)
)

const (
	maxEmailLength    = 254
	minNameLength     = 2
	maxNameLength     = 50
	minPasswordLength = 8
	minCardDigits     = 13
	maxCardDigits     = 19
	// minPasswordCategories of lowercase/uppercase/digit/special must be
	// present or the password is rejected as too weak.
	minPasswordCategories = 3
)

// Every rule returns an empty string when the value is valid. Rules are pure,
// synchronous and never panic; absence of a message is the only success
// signal.

func ValidateEmail(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Email is required"
	}
	if len(value) > maxEmailLength {
		return fmt.Sprintf("Email must be at most %d characters", maxEmailLength)
	}
	if !emailRX.MatchString(value) {
		return "Enter a valid email address"
	}
	return ""
}

func ValidateName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Name is required"
	}
	if len(value) < minNameLength || len(value) > maxNameLength {
		return fmt.Sprintf("Name must be %d-%d characters", minNameLength, maxNameLength)
	}
	if !nameRX.MatchString(value) {
		return "Name may only contain letters, spaces, hyphens and apostrophes"
	}
	return ""
}

func ValidatePassword(value string) string {
	if value == "" {
		return "Password is required"
	}
	if len(value) < minPasswordLength {
		return fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	}
	categories := 0
	if strings.IndexFunc(value, unicode.IsLower) >= 0 {
		categories++
	}
	if strings.IndexFunc(value, unicode.IsUpper) >= 0 {
		categories++
	}
	if strings.IndexFunc(value, unicode.IsDigit) >= 0 {
		categories++
	}
	if hasSpecialChar(value) {
		categories++
	}
	if categories < minPasswordCategories {
		return "Password is too weak: use a mix of upper and lower case letters, digits and symbols"
	}
	return ""
}

func ValidateConfirmPassword(password, confirm string) string {
	if confirm == "" {
		return "Please confirm your password"
	}
	if confirm != password {
		return "Passwords do not match"
	}
	return ""
}

func ValidateCardNumber(value string) string {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(value))
	if digits == "" {
		return "Card number is required"
	}
	if !digitRX.MatchString(digits) {
		return "Card number may only contain digits"
	}
	if len(digits) < minCardDigits || len(digits) > maxCardDigits {
		return fmt.Sprintf("Card number must be %d-%d digits", minCardDigits, maxCardDigits)
	}
	return ""
}

// ValidateExpiry checks a MM/YY expiry against the current date.
func ValidateExpiry(value string) string {
	return ValidateExpiryAt(value, time.Now())
}

// ValidateExpiryAt is the clock-injected form of ValidateExpiry.
func ValidateExpiryAt(value string, now time.Time) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Expiry date is required"
	}
	m := expiryRX.FindStringSubmatch(value)
	if m == nil {
		return "Expiry must be in MM/YY format"
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return "Expiry month must be between 01 and 12"
	}
	year += 2000
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return "Card has expired"
	}
	return ""
}

func ValidateCVV(value string) string {
	if strings.TrimSpace(value) == "" {
		return "CVV is required"
	}
	if !cvvRX.MatchString(value) {
		return "CVV must be 3 or 4 digits"
	}
	return ""
}

func ValidatePostalCode(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Postal code is required"
	}
	if !postalRX.MatchString(value) {
		return "Postal code must be exactly 5 digits"
	}
	return ""
}

func ValidatePhone(value string) string {
	value = strings.ReplaceAll(strings.TrimSpace(value), " ", "")
	if value == "" {
		return "Phone number is required"
	}
	if !phoneRX.MatchString(value) {
		return "Enter a valid phone number (0XXXXXXXXX or +94XXXXXXXXX)"
	}
	return ""
}

func ValidateRequired(label string) func(string) string {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return label + " is required"
		}
		return ""
	}
}

func ValidateTerms(accepted bool) string {
	if !accepted {
		return "You must accept the terms and conditions"
	}
	return ""
}

func hasSpecialChar(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) >= 0
}
