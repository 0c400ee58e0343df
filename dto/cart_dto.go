package dto

import "github.com/heliomart/solarstore-go/models"

type AddCartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemView reports whether the stored quantity was clamped to available
// stock during reconciliation.
type CartItemView struct {
	Item     models.CartItem `json:"item"`
	Adjusted bool            `json:"adjusted"`
}
