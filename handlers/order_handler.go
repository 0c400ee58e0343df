package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/response"
	"github.com/heliomart/solarstore-go/services"
	"github.com/heliomart/solarstore-go/utils"
)

type OrderHandler struct {
	service *services.OrderService
	audit   repositories.AuditRepo
}

func NewOrderHandler(service *services.OrderService, audit repositories.AuditRepo) *OrderHandler {
	return &OrderHandler{service: service, audit: audit}
}

// ListOrders godoc
// @Summary Order history, newest first
// @Tags orders
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {object} response.SuccessResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	orders, err := h.service.ListOrders(uid, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: orders})
}

// GetOrder godoc
// @Summary Fetch one order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.OrderView
// @Failure 404 {object} response.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid order id"})
		return
	}

	view, err := h.service.GetOrder(uid, orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelOrder godoc
// @Summary Cancel a pending or processing order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.OrderView
// @Failure 400 {object} response.ErrorResponse "Order can no longer be cancelled"
// @Failure 409 {object} response.ErrorResponse "Another action on this order is in progress"
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid order id"})
		return
	}

	view, err := h.service.CancelOrder(uid, orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "cancel_order", "order", view.Order.OrderNumber, nil, view.Order, "order cancelled", h.audit)
	c.JSON(http.StatusOK, view)
}
