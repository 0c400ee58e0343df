package handlers

import (
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/services"
)

type Handlers struct {
	Auth          *AuthHandler
	Product       *ProductHandler
	Cart          *CartHandler
	Checkout      *CheckoutHandler
	Address       *AddressHandler
	PaymentMethod *PaymentMethodHandler
	Order         *OrderHandler
	OrderStream   *OrderStreamHandler
	Audit         *AuditHandler
}

func New(svc *services.Services, audit repositories.AuditRepo) *Handlers {
	return &Handlers{
		Auth:          NewAuthHandler(svc.Auth, audit),
		Product:       NewProductHandler(svc.Product),
		Cart:          NewCartHandler(svc.Cart),
		Checkout:      NewCheckoutHandler(svc.Checkout, audit),
		Address:       NewAddressHandler(svc.Address, audit),
		PaymentMethod: NewPaymentMethodHandler(svc.PaymentMethod, audit),
		Order:         NewOrderHandler(svc.Order, audit),
		OrderStream:   NewOrderStreamHandler(svc.Order),
		Audit:         NewAuditHandler(svc.Audit),
	}
}
