package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliomart/solarstore-go/pricing"
	"github.com/heliomart/solarstore-go/response"
	"github.com/heliomart/solarstore-go/services"
	"github.com/heliomart/solarstore-go/validation"
)

// abortWithServiceError maps service error kinds onto HTTP statuses. Field
// validation failures carry their per-field map; everything else goes through
// the plain error envelope.
func abortWithServiceError(c *gin.Context, err error) {
	var fieldErrors validation.FieldErrors
	if errors.As(err, &fieldErrors) {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: fieldErrors,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrResetTokenInvalid),
		errors.Is(err, services.ErrResetTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrAddressNotFound),
		errors.Is(err, services.ErrPaymentMethodNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrActionInFlight):
		status = http.StatusConflict
	case errors.Is(err, services.ErrProductUnavailable),
		errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrAddressLimit),
		errors.Is(err, services.ErrLastAddress),
		errors.Is(err, services.ErrDefaultAddress),
		errors.Is(err, services.ErrLastPaymentMethod),
		errors.Is(err, services.ErrDefaultPaymentMethod),
		errors.Is(err, services.ErrVariantMismatch),
		errors.Is(err, services.ErrOrderNotCancellable),
		errors.Is(err, services.ErrEmptySelection),
		errors.Is(err, pricing.ErrUnknownShippingOption):
		status = http.StatusBadRequest
	}

	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
