package forms

import (
	"testing"

	"github.com/heliomart/solarstore-go/validation"
	"github.com/stretchr/testify/assert"
)

func newSignupForm() *Form {
	f := New()
	f.Value("first_name", validation.ValidateName)
	f.Value("email", validation.ValidateEmail)
	f.Value("password", validation.ValidatePassword)
	f.Rule("confirm_password", func(values map[string]string) string {
		return validation.ValidateConfirmPassword(values["password"], values["confirm_password"])
	})
	f.DependsOn("password", "confirm_password")
	return f
}

func TestForm_PristineFieldShowsNoError(t *testing.T) {
	f := newSignupForm()

	f.Change("email", "not-an-email")
	assert.Empty(t, f.FieldError("email"))
	assert.False(t, f.Touched("email"))
}

func TestForm_BlurValidates(t *testing.T) {
	f := newSignupForm()

	f.Change("email", "not-an-email")
	f.Blur("email")
	assert.True(t, f.Touched("email"))
	assert.Equal(t, "Enter a valid email address", f.FieldError("email"))

	// Once touched, further changes revalidate immediately.
	f.Change("email", "user@example.com")
	assert.Empty(t, f.FieldError("email"))
}

func TestForm_DependentRevalidation(t *testing.T) {
	f := newSignupForm()

	f.Change("password", "Aa1!aaaa")
	f.Change("confirm_password", "Aa1!aaaa")
	f.Blur("password")
	f.Blur("confirm_password")
	assert.Empty(t, f.FieldError("confirm_password"))

	// Editing the password re-runs the touched confirm rule.
	f.Change("password", "Aa1!bbbb")
	assert.Equal(t, "Passwords do not match", f.FieldError("confirm_password"))

	f.Change("confirm_password", "Aa1!bbbb")
	assert.Empty(t, f.FieldError("confirm_password"))
}

func TestForm_SubmitTouchesEverything(t *testing.T) {
	f := newSignupForm()

	errs := f.Submit()
	assert.NotEmpty(t, errs)
	assert.True(t, f.Touched("first_name"))
	assert.True(t, f.Touched("email"))
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])
	assert.False(t, f.Valid())
}

func TestForm_SubmitValidSignup(t *testing.T) {
	f := newSignupForm().SetValues(map[string]string{
		"first_name":       "Jo",
		"email":            "jo@example.com",
		"password":         "Aa1!aaaa",
		"confirm_password": "Aa1!aaaa",
	})

	errs := f.Submit()
	assert.Empty(t, errs)
	assert.True(t, f.Valid())
}

func TestForm_GeneralErrorClearedByChange(t *testing.T) {
	f := newSignupForm()

	f.SetGeneralError("invalid email or password")
	assert.Equal(t, "invalid email or password", f.GeneralError())

	f.Change("email", "jo@example.com")
	assert.Empty(t, f.GeneralError())
}

func TestForm_SetValuesDoesNotTouch(t *testing.T) {
	f := newSignupForm().SetValues(map[string]string{"email": "bad"})

	assert.Equal(t, "bad", f.Get("email"))
	assert.False(t, f.Touched("email"))
	assert.Empty(t, f.FieldError("email"))
}
