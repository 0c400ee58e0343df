package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/response"
	"github.com/heliomart/solarstore-go/services"
	"github.com/heliomart/solarstore-go/utils"
)

type ProductHandler struct {
	service *services.ProductService
}

func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts godoc
// @Summary Browse the catalog
// @Tags products
// @Produce json
// @Param categoryName query string false "Category filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ProductListResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var input dto.ProductSearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	list, err := h.service.ListProducts(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// SearchProducts godoc
// @Summary Advanced product search
// @Tags products
// @Produce json
// @Param keyword query string false "Keyword in name or description"
// @Param categoryName query string false "Category filter"
// @Param min_price query number false "Minimum sale price"
// @Param max_price query number false "Maximum sale price"
// @Param in_stock query bool false "Only in-stock products"
// @Param sort query string false "price_asc, price_desc or newest"
// @Success 200 {object} dto.ProductListResponse
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	h.ListProducts(c)
}

// GetProduct godoc
// @Summary Fetch one product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductView
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid product id"})
		return
	}

	view, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Product not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}
