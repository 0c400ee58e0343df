package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// --------------------- ValidateEmail ---------------------
func TestValidateEmail_Valid(t *testing.T) {
	for _, email := range []string{
		"user@example.com",
		"first.last@sub.domain.lk",
		"a+tag@host.io",
	} {
		assert.Empty(t, ValidateEmail(email), email)
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	assert.Equal(t, "Email is required", ValidateEmail(""))
	assert.Equal(t, "Email is required", ValidateEmail("   "))
	assert.Equal(t, "Enter a valid email address", ValidateEmail("not-an-email"))
	assert.Equal(t, "Enter a valid email address", ValidateEmail("user@"))
	assert.Equal(t, "Enter a valid email address", ValidateEmail("@example.com"))
}

func TestValidateEmail_TooLong(t *testing.T) {
	long := strings.Repeat("a", 250) + "@x.com"
	assert.Equal(t, "Email must be at most 254 characters", ValidateEmail(long))
}

func TestValidateEmail_IdempotentOnTrimmedInput(t *testing.T) {
	// The same value always produces the same message.
	first := ValidateEmail(" user@example.com ")
	second := ValidateEmail(" user@example.com ")
	assert.Equal(t, first, second)
	assert.Empty(t, first)
}

// --------------------- ValidateName ---------------------
func TestValidateName(t *testing.T) {
	assert.Empty(t, ValidateName("Jo"))
	assert.Empty(t, ValidateName("Anne-Marie O'Neil"))
	assert.Equal(t, "Name is required", ValidateName(""))
	assert.Equal(t, "Name must be 2-50 characters", ValidateName("J"))
	assert.Equal(t, "Name must be 2-50 characters", ValidateName(strings.Repeat("a", 51)))
	assert.Equal(t, "Name may only contain letters, spaces, hyphens and apostrophes", ValidateName("R2D2"))
}

// --------------------- ValidatePassword ---------------------
func TestValidatePassword(t *testing.T) {
	assert.Equal(t, "Password is required", ValidatePassword(""))
	assert.Equal(t, "Password must be at least 8 characters", ValidatePassword("Aa1!"))

	// Only two character categories present.
	msg := ValidatePassword("aaaaaaaa1")
	assert.Contains(t, msg, "too weak")

	// Three categories are enough.
	assert.Empty(t, ValidatePassword("Aa1aaaaa"))
	assert.Empty(t, ValidatePassword("Aa1!aaaa"))
}

func TestValidateConfirmPassword(t *testing.T) {
	assert.Equal(t, "Please confirm your password", ValidateConfirmPassword("secret", ""))
	assert.Equal(t, "Passwords do not match", ValidateConfirmPassword("secret", "other"))
	assert.Empty(t, ValidateConfirmPassword("secret", "secret"))
}

// --------------------- ValidateCardNumber ---------------------
func TestValidateCardNumber(t *testing.T) {
	assert.Empty(t, ValidateCardNumber("4242424242424242"))
	assert.Empty(t, ValidateCardNumber("4242 4242 4242 4242"))
	assert.Empty(t, ValidateCardNumber("4242-4242-4242-4242"))
	assert.Equal(t, "Card number is required", ValidateCardNumber(""))
	assert.Equal(t, "Card number may only contain digits", ValidateCardNumber("4242abcd"))
	assert.Equal(t, "Card number must be 13-19 digits", ValidateCardNumber("424242424242"))
	assert.Equal(t, "Card number must be 13-19 digits", ValidateCardNumber("42424242424242424242"))
}

// --------------------- ValidateExpiry ---------------------
func TestValidateExpiryAt(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Expiry date is required", ValidateExpiryAt("", now))
	assert.Equal(t, "Expiry must be in MM/YY format", ValidateExpiryAt("6/26", now))
	assert.Equal(t, "Expiry must be in MM/YY format", ValidateExpiryAt("06-26", now))
	assert.Equal(t, "Expiry month must be between 01 and 12", ValidateExpiryAt("13/27", now))
	assert.Equal(t, "Expiry month must be between 01 and 12", ValidateExpiryAt("00/27", now))

	assert.Equal(t, "Card has expired", ValidateExpiryAt("05/26", now))
	assert.Equal(t, "Card has expired", ValidateExpiryAt("12/25", now))

	// Current month is still valid.
	assert.Empty(t, ValidateExpiryAt("06/26", now))
	assert.Empty(t, ValidateExpiryAt("01/30", now))
}

// --------------------- ValidateCVV ---------------------
func TestValidateCVV(t *testing.T) {
	assert.Empty(t, ValidateCVV("123"))
	assert.Empty(t, ValidateCVV("1234"))
	assert.Equal(t, "CVV is required", ValidateCVV(""))
	assert.Equal(t, "CVV must be 3 or 4 digits", ValidateCVV("12"))
	assert.Equal(t, "CVV must be 3 or 4 digits", ValidateCVV("12a"))
}

// --------------------- ValidatePostalCode ---------------------
func TestValidatePostalCode(t *testing.T) {
	assert.Empty(t, ValidatePostalCode("10250"))
	assert.Equal(t, "Postal code is required", ValidatePostalCode(""))
	assert.Equal(t, "Postal code must be exactly 5 digits", ValidatePostalCode("1025"))
	assert.Equal(t, "Postal code must be exactly 5 digits", ValidatePostalCode("102500"))
	assert.Equal(t, "Postal code must be exactly 5 digits", ValidatePostalCode("1025a"))
}

// --------------------- ValidatePhone ---------------------
func TestValidatePhone(t *testing.T) {
	assert.Empty(t, ValidatePhone("0771234567"))
	assert.Empty(t, ValidatePhone("+94771234567"))
	assert.Empty(t, ValidatePhone("077 123 4567"))
	assert.Equal(t, "Phone number is required", ValidatePhone(""))
	assert.NotEmpty(t, ValidatePhone("12345"))
	assert.NotEmpty(t, ValidatePhone("+1771234567"))
}

// --------------------- ValidateRequired / ValidateTerms ---------------------
func TestValidateRequired(t *testing.T) {
	rule := ValidateRequired("City")
	assert.Equal(t, "City is required", rule(""))
	assert.Equal(t, "City is required", rule("   "))
	assert.Empty(t, rule("Colombo"))
}

func TestValidateTerms(t *testing.T) {
	assert.Equal(t, "You must accept the terms and conditions", ValidateTerms(false))
	assert.Empty(t, ValidateTerms(true))
}

// --------------------- Validator ---------------------
func TestValidator_FirstErrorWins(t *testing.T) {
	v := New()
	v.AddError("email", "first")
	v.AddError("email", "second")
	assert.Equal(t, "first", v.Errors["email"])
	assert.False(t, v.Valid())
}

func TestValidator_CheckAndField(t *testing.T) {
	v := New()
	v.Check(true, "ok_field", "never recorded")
	v.Field("email", "user@example.com", ValidateEmail)
	assert.True(t, v.Valid())

	v.Field("email", "", ValidateEmail)
	assert.False(t, v.Valid())
	assert.Equal(t, "Email is required", v.Errors["email"])
}
