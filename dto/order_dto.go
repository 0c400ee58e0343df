package dto

import "github.com/heliomart/solarstore-go/models"

// OrderView carries the cancellability flag so clients never have to infer it
// from the status string.
type OrderView struct {
	Order     models.Order `json:"order"`
	CanCancel bool         `json:"can_cancel"`
}

func NewOrderView(order models.Order) OrderView {
	return OrderView{
		Order:     order,
		CanCancel: models.CanCancelOrder(order.Status),
	}
}
