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

type AddressHandler struct {
	service *services.AddressService
	audit   repositories.AuditRepo
}

func NewAddressHandler(service *services.AddressService, audit repositories.AuditRepo) *AddressHandler {
	return &AddressHandler{service: service, audit: audit}
}

// ListAddresses godoc
// @Summary List saved addresses
// @Tags addresses
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /addresses [get]
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	addresses, err := h.service.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: addresses})
}

// AddAddress godoc
// @Summary Save a new address
// @Tags addresses
// @Accept json
// @Produce json
// @Param input body dto.AddressInput true "Address"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Validation failure or address limit"
// @Router /addresses [post]
func (h *AddressHandler) AddAddress(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	address, err := h.service.Add(uid, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "add_address", "address", "", nil, address, "address added", h.audit)
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: address})
}

// UpdateAddress godoc
// @Summary Update a saved address
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param input body dto.AddressInput true "Address"
// @Success 200 {object} response.SuccessResponse
// @Router /addresses/{id} [put]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	addressID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid address id"})
		return
	}

	var input dto.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	address, err := h.service.Update(uid, addressID, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: address})
}

// SetDefaultAddress godoc
// @Summary Make an address the default
// @Tags addresses
// @Param id path int true "Address ID"
// @Success 200 {object} response.MessageResponse
// @Router /addresses/{id}/default [post]
func (h *AddressHandler) SetDefaultAddress(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	addressID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid address id"})
		return
	}

	if err := h.service.SetAsDefault(uid, addressID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Default address updated"})
}

// DeleteAddress godoc
// @Summary Delete a saved address
// @Tags addresses
// @Param id path int true "Address ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse "Last address or default address"
// @Router /addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	addressID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid address id"})
		return
	}

	if err := h.service.Remove(uid, addressID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "delete_address", "address", "", nil, nil, "address deleted", h.audit)
	c.Status(http.StatusNoContent)
}
