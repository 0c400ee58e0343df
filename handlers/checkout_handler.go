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

type CheckoutHandler struct {
	service *services.CheckoutService
	audit   repositories.AuditRepo
}

func NewCheckoutHandler(service *services.CheckoutService, audit repositories.AuditRepo) *CheckoutHandler {
	return &CheckoutHandler{service: service, audit: audit}
}

// ShippingOptions godoc
// @Summary List selectable shipping options
// @Tags checkout
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /checkout/shipping-options [get]
func (h *CheckoutHandler) ShippingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessResponse{Data: h.service.ShippingOptions()})
}

// Quote godoc
// @Summary Price the selected cart items
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body dto.QuoteInput true "Selected item ids and shipping option"
// @Success 200 {object} dto.QuoteResponse
// @Router /checkout/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	quote, err := h.service.Quote(uid, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// PlaceOrder godoc
// @Summary Place an order from selected cart items
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body dto.PlaceOrderInput true "Selection, address, shipping and payment"
// @Success 201 {object} dto.PlaceOrderResponse
// @Failure 400 {object} response.ErrorResponse "Empty selection or stock conflict"
// @Router /checkout [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.PlaceOrder(c.Request.Context(), uid, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "place_order", "order", result.Order.OrderNumber, nil, result.Order, "order placed", h.audit)
	c.JSON(http.StatusCreated, result)
}
