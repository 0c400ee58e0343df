package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/response"
	"github.com/heliomart/solarstore-go/services"
	"github.com/heliomart/solarstore-go/utils"
	"github.com/heliomart/solarstore-go/validation"
)

type AuthHandler struct {
	service *services.AuthService
	audit   repositories.AuditRepo
}

func NewAuthHandler(service *services.AuthService, audit repositories.AuditRepo) *AuthHandler {
	return &AuthHandler{service: service, audit: audit}
}

// Register godoc
// @Summary Create a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.RegisterInput true "Registration info"
// @Success 201 {object} response.MessageResponse "Account created"
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	user, err := h.service.Register(input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if logErr := utils.LogAudit(c, user.UID, "register", "user", user.Email, nil, nil, "account created", h.audit); logErr != nil {
		fmt.Printf("[LogAudit] error: %v\n", logErr)
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "Account created successfully"})
}

// Login godoc
// @Summary Customer login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	user, token, err := h.service.Login(input.Email, input.Password)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:     token,
		UID:       user.UID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsAdmin:   user.IsAdmin,
	})
}

// ForgotPassword godoc
// @Summary Request a password reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.ForgotPasswordInput true "Account email"
// @Success 200 {object} response.ForgotPasswordResponse
// @Router /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input dto.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	masked, err := h.service.ForgotPassword(input.Email)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ForgotPasswordResponse{
		Message:     "If that account exists, a reset link has been sent",
		MaskedEmail: masked,
	})
}

// ResetPassword godoc
// @Summary Reset password with an emailed token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.ResetPasswordInput true "Token and new password"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse "Invalid or expired link"
// @Router /reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if err := h.service.ResetPassword(input); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password has been reset"})
}

// PasswordStrength godoc
// @Summary Score a candidate password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} validation.Strength
// @Router /password-strength [post]
func (h *AuthHandler) PasswordStrength(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	c.JSON(http.StatusOK, validation.CalculatePasswordStrength(input.Password))
}
