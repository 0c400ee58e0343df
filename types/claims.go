package types

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// ResetClaims is the payload of a password-reset token. Purpose must equal
// PurposePasswordReset or the token is rejected.
type ResetClaims struct {
	UserID  uint   `json:"user_id"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

const PurposePasswordReset = "password_reset"
