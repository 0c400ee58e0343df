package dto

import (
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/payment"
	"github.com/heliomart/solarstore-go/pricing"
)

// QuoteInput selects cart items by id, mirroring the comma-separated items
// query parameter the storefront passes into checkout.
type QuoteInput struct {
	Items          string `json:"items" binding:"required" example:"3,7,12"`
	ShippingOption string `json:"shipping_option" binding:"required" example:"standard"`
}

type QuoteResponse struct {
	Quote pricing.Quote     `json:"quote"`
	Items []models.CartItem `json:"items"`
}

type PlaceOrderInput struct {
	Items          string `json:"items" binding:"required"`
	ShippingOption string `json:"shipping_option" binding:"required"`
	AddressID      uint   `json:"address_id" binding:"required"`
	PaymentType    string `json:"payment_type" binding:"required,oneof=card bank digital"`
}

type PlaceOrderResponse struct {
	Order    models.Order      `json:"order"`
	Redirect *payment.Redirect `json:"redirect,omitempty"`
}
