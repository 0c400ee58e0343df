package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/heliomart/solarstore-go/config"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/middleware"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/repositories/mock_repositories"
	"github.com/heliomart/solarstore-go/types"
	"github.com/heliomart/solarstore-go/validation"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupAuthServiceMocks(t *testing.T) (*AuthService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{
		User: mockUser,
	}
	svc := NewAuthService(repos)
	return svc, mockUser
}

func validRegisterInput() dto.RegisterInput {
	return dto.RegisterInput{
		FirstName:       "Jo",
		LastName:        "Perera",
		Email:           "jo@example.com",
		Password:        "Aa1!aaaa",
		ConfirmPassword: "Aa1!aaaa",
		AgreeToTerms:    true,
	}
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("jo@example.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, "jo@example.com", u.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Aa1!aaaa")))
		return nil
	})

	user, err := svc.Register(validRegisterInput())
	assert.NoError(t, err)
	assert.Equal(t, "Jo", user.FirstName)
}

func TestRegister_FieldErrors(t *testing.T) {
	svc, _ := setupAuthServiceMocks(t)

	input := dto.RegisterInput{
		FirstName:       "J",
		LastName:        "Perera",
		Email:           "not-an-email",
		Password:        "weak",
		ConfirmPassword: "different",
		AgreeToTerms:    false,
	}
	_, err := svc.Register(input)

	var fieldErrors validation.FieldErrors
	assert.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "first_name")
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "password")
	assert.Contains(t, fieldErrors, "confirm_password")
	assert.Contains(t, fieldErrors, "agree_to_terms")
}

func TestRegister_MismatchedConfirm(t *testing.T) {
	svc, _ := setupAuthServiceMocks(t)

	input := validRegisterInput()
	input.ConfirmPassword = "Aa1!bbbb"
	_, err := svc.Register(input)

	var fieldErrors validation.FieldErrors
	assert.ErrorAs(t, err, &fieldErrors)
	assert.Equal(t, "Passwords do not match", fieldErrors["confirm_password"])
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("jo@example.com").Return(models.User{UID: 7}, nil)

	_, err := svc.Register(validRegisterInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_EmailNormalized(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("jo@example.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	input := validRegisterInput()
	input.Email = "  JO@Example.com "
	user, err := svc.Register(input)
	assert.NoError(t, err)
	assert.Equal(t, "jo@example.com", user.Email)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Aa1!aaaa"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Email: "jo@example.com", Password: string(hashed)}
	mockUser.EXPECT().GetUserByEmail("jo@example.com").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(uid uint, email string, isAdmin bool, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login("jo@example.com", "Aa1!aaaa")
	assert.NoError(t, err)
	assert.Equal(t, "jo@example.com", u.Email)
	assert.Equal(t, "token123", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Aa1!aaaa"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Email: "jo@example.com", Password: string(hashed)}
	mockUser.EXPECT().GetUserByEmail("jo@example.com").Return(user, nil)

	_, token, err := svc.Login("jo@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)
	mockUser.EXPECT().GetUserByEmail("nobody@example.com").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- ForgotPassword ---------------------
func TestForgotPassword_UnknownAccountStillMasked(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)
	mockUser.EXPECT().GetUserByEmail("ghost@example.com").Return(models.User{}, gorm.ErrRecordNotFound)

	masked, err := svc.ForgotPassword("ghost@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "g***t@example.com", masked)
}

func TestForgotPassword_IssuesToken(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	user := models.User{UID: 42, Email: "jo@example.com"}
	mockUser.EXPECT().GetUserByEmail("jo@example.com").Return(user, nil)

	var sentToken string
	oldSend := SendResetToken
	SendResetToken = func(email, token string) { sentToken = token }
	defer func() { SendResetToken = oldSend }()

	masked, err := svc.ForgotPassword("jo@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "**@example.com", masked)
	assert.NotEmpty(t, sentToken)

	claims, err := svc.parseResetToken(sentToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, types.PurposePasswordReset, claims.Purpose)
}

func TestForgotPassword_InvalidEmail(t *testing.T) {
	svc, _ := setupAuthServiceMocks(t)

	_, err := svc.ForgotPassword("nonsense")
	var fieldErrors validation.FieldErrors
	assert.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "email")
}

// --------------------- ResetPassword ---------------------
func TestResetPassword_Success(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	token, err := svc.generateResetToken(42)
	assert.NoError(t, err)

	existing := models.User{UID: 42, Email: "jo@example.com", Password: "old"}
	mockUser.EXPECT().GetUserByID(uint(42)).Return(existing, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Bb2@bbbb")))
		return nil
	})

	err = svc.ResetPassword(dto.ResetPasswordInput{
		Token:           token,
		NewPassword:     "Bb2@bbbb",
		ConfirmPassword: "Bb2@bbbb",
	})
	assert.NoError(t, err)
}

func TestResetPassword_MalformedToken(t *testing.T) {
	svc, _ := setupAuthServiceMocks(t)

	err := svc.ResetPassword(dto.ResetPasswordInput{
		Token:           "not-a-jwt",
		NewPassword:     "Bb2@bbbb",
		ConfirmPassword: "Bb2@bbbb",
	})
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	svc, _ := setupAuthServiceMocks(t)

	claims := &types.ResetClaims{
		UserID:  42,
		Purpose: types.PurposePasswordReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JwtSecret))
	assert.NoError(t, err)

	err = svc.ResetPassword(dto.ResetPasswordInput{
		Token:           token,
		NewPassword:     "Bb2@bbbb",
		ConfirmPassword: "Bb2@bbbb",
	})
	assert.ErrorIs(t, err, ErrResetTokenExpired)
}

func TestResetPassword_WrongPurpose(t *testing.T) {
	svc, _ := setupAuthServiceMocks(t)

	claims := &types.ResetClaims{
		UserID:  42,
		Purpose: "something_else",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JwtSecret))
	assert.NoError(t, err)

	err = svc.ResetPassword(dto.ResetPasswordInput{
		Token:           token,
		NewPassword:     "Bb2@bbbb",
		ConfirmPassword: "Bb2@bbbb",
	})
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPassword_WeakNewPassword(t *testing.T) {
	svc, _ := setupAuthServiceMocks(t)

	token, err := svc.generateResetToken(42)
	assert.NoError(t, err)

	err = svc.ResetPassword(dto.ResetPasswordInput{
		Token:           token,
		NewPassword:     "weak",
		ConfirmPassword: "weak",
	})
	var fieldErrors validation.FieldErrors
	assert.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "new_password")
}

func TestResetPassword_UnknownUser(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	token, err := svc.generateResetToken(99)
	assert.NoError(t, err)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(models.User{}, errors.New("not found"))

	err = svc.ResetPassword(dto.ResetPasswordInput{
		Token:           token,
		NewPassword:     "Bb2@bbbb",
		ConfirmPassword: "Bb2@bbbb",
	})
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}
