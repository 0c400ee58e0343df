package repositories

type Repos struct {
	User          UserRepo
	Product       ProductRepo
	Cart          CartRepo
	Address       AddressRepo
	PaymentMethod PaymentMethodRepo
	Order         OrderRepo
	Audit         AuditRepo
}

func New() *Repos {
	return &Repos{
		User:          &DBUserRepo{},
		Product:       &DBProductRepo{},
		Cart:          &DBCartRepo{},
		Address:       &DBAddressRepo{},
		PaymentMethod: &DBPaymentMethodRepo{},
		Order:         &DBOrderRepo{},
		Audit:         &DBAuditRepo{},
	}
}
