package services

import (
	"github.com/heliomart/solarstore-go/payment"
	"github.com/heliomart/solarstore-go/repositories"
)

type Services struct {
	Auth          *AuthService
	Product       *ProductService
	Cart          *CartService
	Address       *AddressService
	PaymentMethod *PaymentMethodService
	Order         *OrderService
	Checkout      *CheckoutService
	Audit         *AuditService
}

func New(repos *repositories.Repos, gateway payment.Gateway) *Services {
	locks := newActionLocks()
	return &Services{
		Auth:          NewAuthService(repos),
		Product:       NewProductService(repos),
		Cart:          NewCartService(repos),
		Address:       NewAddressService(repos, locks),
		PaymentMethod: NewPaymentMethodService(repos),
		Order:         NewOrderService(repos, locks),
		Checkout:      NewCheckoutService(repos, gateway, locks),
		Audit:         NewAuditService(repos),
	}
}
