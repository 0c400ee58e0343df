package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/response"
	"github.com/heliomart/solarstore-go/services"
	"github.com/heliomart/solarstore-go/utils"
)

type PaymentMethodHandler struct {
	service *services.PaymentMethodService
	audit   repositories.AuditRepo
}

func NewPaymentMethodHandler(service *services.PaymentMethodService, audit repositories.AuditRepo) *PaymentMethodHandler {
	return &PaymentMethodHandler{service: service, audit: audit}
}

// ListPaymentMethods godoc
// @Summary List saved payment methods
// @Tags payment-methods
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /payment-methods [get]
func (h *PaymentMethodHandler) ListPaymentMethods(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	methods, err := h.service.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: methods})
}

// AddPaymentMethod godoc
// @Summary Save a payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param input body dto.PaymentMethodInput true "Typed payment method"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Validation failure or variant mismatch"
// @Router /payment-methods [post]
func (h *PaymentMethodHandler) AddPaymentMethod(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	method, err := h.service.Add(uid, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "add_payment_method", "payment_method", "", nil, method, "payment method added", h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: method})
}

// UpdatePaymentMethod godoc
// @Summary Update a payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param id path int true "Payment method ID"
// @Param input body dto.PaymentMethodInput true "Typed payment method"
// @Success 200 {object} response.SuccessResponse
// @Router /payment-methods/{id} [put]
func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	methodID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid payment method id"})
		return
	}

	var input dto.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	method, err := h.service.Update(uid, methodID, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: method})
}

// SetDefaultPaymentMethod godoc
// @Summary Make a payment method the default
// @Tags payment-methods
// @Param id path int true "Payment method ID"
// @Success 200 {object} response.MessageResponse
// @Router /payment-methods/{id}/default [post]
func (h *PaymentMethodHandler) SetDefaultPaymentMethod(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	methodID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid payment method id"})
		return
	}

	if err := h.service.SetAsDefault(uid, methodID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Default payment method updated"})
}

// DeletePaymentMethod godoc
// @Summary Delete a payment method
// @Tags payment-methods
// @Param id path int true "Payment method ID"
// @Success 204
// @Router /payment-methods/{id} [delete]
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	methodID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid payment method id"})
		return
	}

	if err := h.service.Remove(uid, methodID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "delete_payment_method", "payment_method", "", nil, nil, "payment method deleted", h.audit)
	c.Status(http.StatusNoContent)
}
