package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/response"
	"github.com/heliomart/solarstore-go/services"
	"github.com/heliomart/solarstore-go/utils"
)

type CartHandler struct {
	service *services.CartService
}

func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// GetCart godoc
// @Summary List the authenticated user's cart
// @Tags cart
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.service.Items(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: items})
}

// AddItem godoc
// @Summary Add a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param input body dto.AddCartItemInput true "Product and quantity"
// @Success 201 {object} dto.CartItemView
// @Failure 400 {object} response.ErrorResponse "Out of stock or unavailable"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.AddCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.service.AddItem(uid, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// UpdateItem godoc
// @Summary Change a cart item's quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param input body dto.UpdateCartItemInput true "New quantity"
// @Success 200 {object} dto.CartItemView
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid cart item id"})
		return
	}

	var input dto.UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.service.UpdateItem(uid, itemID, input.Quantity)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemoveItem godoc
// @Summary Remove a cart item
// @Tags cart
// @Param id path int true "Cart item ID"
// @Success 204
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid cart item id"})
		return
	}

	if err := h.service.RemoveItem(uid, itemID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
