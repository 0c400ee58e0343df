package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/heliomart/solarstore-go/config"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/forms"
	"github.com/heliomart/solarstore-go/middleware"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/types"
	"github.com/heliomart/solarstore-go/utils"
	"github.com/heliomart/solarstore-go/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	// Structured reset-token error kinds; handlers must dispatch on these
	// rather than matching message substrings.
	ErrResetTokenInvalid = errors.New("password reset link is invalid")
	ErrResetTokenExpired = errors.New("password reset link has expired")
)

const resetTokenTTL = time.Hour

type AuthService struct {
	repos *repositories.Repos
}

func NewAuthService(repos *repositories.Repos) *AuthService {
	return &AuthService{repos: repos}
}

// newRegisterForm wires the signup field rules, including the password ->
// confirm_password dependency.
func newRegisterForm() *forms.Form {
	f := forms.New()
	f.Value("first_name", validation.ValidateName)
	f.Value("last_name", validation.ValidateName)
	f.Value("email", validation.ValidateEmail)
	f.Value("password", validation.ValidatePassword)
	f.Rule("confirm_password", func(values map[string]string) string {
		return validation.ValidateConfirmPassword(values["password"], values["confirm_password"])
	})
	f.Rule("agree_to_terms", func(values map[string]string) string {
		return validation.ValidateTerms(values["agree_to_terms"] == "true")
	})
	f.DependsOn("password", "confirm_password")
	return f
}

func (s *AuthService) Register(input dto.RegisterInput) (models.User, error) {
	form := newRegisterForm().SetValues(map[string]string{
		"first_name":       input.FirstName,
		"last_name":        input.LastName,
		"email":            input.Email,
		"password":         input.Password,
		"confirm_password": input.ConfirmPassword,
		"agree_to_terms":   boolString(input.AgreeToTerms),
	})
	if fieldErrors := form.Submit(); len(fieldErrors) > 0 {
		return models.User{}, fieldErrors
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	_, err := s.repos.User.GetUserByEmail(email)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Password:  string(hashed),
	}
	if err := s.repos.User.SaveUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.repos.User.GetUserByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Email, user.IsAdmin, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// ForgotPassword issues a purpose-scoped reset token. The response is the
// same whether or not the account exists, so the endpoint cannot be used to
// enumerate accounts; the token only leaves through the mail channel.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	if msg := validation.ValidateEmail(email); msg != "" {
		return "", validation.FieldErrors{"email": msg}
	}

	masked := utils.MaskEmail(strings.TrimSpace(strings.ToLower(email)))

	user, err := s.repos.User.GetUserByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return masked, nil
		}
		return "", err
	}

	token, err := s.generateResetToken(user.UID)
	if err != nil {
		return "", err
	}

	SendResetToken(user.Email, token)

	return masked, nil
}

// SendResetToken delivers the reset link out of band. Mail delivery is an
// external concern; the default only logs that a token was issued.
var SendResetToken = func(email, token string) {
	log.Printf("password reset token issued for %s (expires in %s)", utils.MaskEmail(email), resetTokenTTL)
}

func (s *AuthService) ResetPassword(input dto.ResetPasswordInput) error {
	// Advisory shape check before the real verification: a JWT has exactly
	// three dot-separated segments.
	if len(strings.Split(input.Token, ".")) != 3 {
		return ErrResetTokenInvalid
	}

	v := validation.New()
	v.Field("new_password", input.NewPassword, validation.ValidatePassword)
	v.Check(validation.ValidateConfirmPassword(input.NewPassword, input.ConfirmPassword) == "", "confirm_password",
		validation.ValidateConfirmPassword(input.NewPassword, input.ConfirmPassword))
	if !v.Valid() {
		return v.Errors
	}

	claims, err := s.parseResetToken(input.Token)
	if err != nil {
		return err
	}

	user, err := s.repos.User.GetUserByID(claims.UserID)
	if err != nil {
		return ErrResetTokenInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	user.Password = string(hashed)
	return s.repos.User.SaveUser(&user)
}

func (s *AuthService) generateResetToken(userID uint) (string, error) {
	claims := &types.ResetClaims{
		UserID:  userID,
		Purpose: types.PurposePasswordReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JwtSecret))
}

func (s *AuthService) parseResetToken(tokenStr string) (*types.ResetClaims, error) {
	claims := &types.ResetClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrResetTokenExpired
		}
		return nil, ErrResetTokenInvalid
	}
	if !token.Valid || claims.Purpose != types.PurposePasswordReset {
		return nil, ErrResetTokenInvalid
	}
	return claims, nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
