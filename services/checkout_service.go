package services

import (
	"context"
	"errors"

	"github.com/heliomart/solarstore-go/config"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/payment"
	"github.com/heliomart/solarstore-go/pricing"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/utils"
	"gorm.io/gorm"
)

var (
	ErrEmptySelection    = errors.New("no cart items selected")
	ErrInsufficientStock = errors.New("one or more items are no longer in stock")
)

type CheckoutService struct {
	repos   *repositories.Repos
	gateway payment.Gateway
	locks   *actionLocks
}

func NewCheckoutService(repos *repositories.Repos, gateway payment.Gateway, locks *actionLocks) *CheckoutService {
	return &CheckoutService{repos: repos, gateway: gateway, locks: locks}
}

func (s *CheckoutService) ShippingOptions() []pricing.ShippingOption {
	return pricing.ShippingOptions()
}

// Quote recomputes the breakdown for the selected cart items. Items outside
// the selection are excluded from the subtotal.
func (s *CheckoutService) Quote(uid uint, input dto.QuoteInput) (dto.QuoteResponse, error) {
	itemIDs, err := utils.ParseIDList(input.Items)
	if err != nil {
		return dto.QuoteResponse{}, err
	}

	items, err := s.repos.Cart.ItemsByIDs(uid, itemIDs)
	if err != nil {
		return dto.QuoteResponse{}, err
	}

	lineItems := make([]pricing.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, pricing.LineItem{
			UnitPrice: item.Product.SalePrice,
			Quantity:  item.Quantity,
			Selected:  true,
		})
	}

	quote, err := pricing.ComputeQuote(lineItems, input.ShippingOption)
	if err != nil {
		return dto.QuoteResponse{}, err
	}
	return dto.QuoteResponse{Quote: quote, Items: items}, nil
}

// PlaceOrder recomputes the quote server-side, snapshots the line items,
// decrements stock, clears the purchased cart rows and, for card payments,
// hands the shopper off to the gateway. ctx aborts the gateway call when the
// request dies.
func (s *CheckoutService) PlaceOrder(ctx context.Context, uid uint, input dto.PlaceOrderInput) (dto.PlaceOrderResponse, error) {
	address, err := s.repos.Address.GetByID(uid, input.AddressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PlaceOrderResponse{}, ErrAddressNotFound
		}
		return dto.PlaceOrderResponse{}, err
	}

	quoted, err := s.Quote(uid, dto.QuoteInput{Items: input.Items, ShippingOption: input.ShippingOption})
	if err != nil {
		return dto.PlaceOrderResponse{}, err
	}
	if quoted.Quote.Empty {
		return dto.PlaceOrderResponse{}, ErrEmptySelection
	}

	order := models.Order{
		UID:            uid,
		OrderNumber:    utils.NewOrderNumber(),
		Status:         models.OrderStatusPending,
		AID:            address.AID,
		ShippingOption: input.ShippingOption,
		PaymentType:    input.PaymentType,
		Subtotal:       quoted.Quote.Subtotal,
		Tax:            quoted.Quote.Tax,
		ShippingFee:    quoted.Quote.ShippingFee,
		Total:          quoted.Quote.Total,
	}

	cartItemIDs := make([]uint, 0, len(quoted.Items))
	for _, item := range quoted.Items {
		cartItemIDs = append(cartItemIDs, item.CIID)
		order.Items = append(order.Items, models.OrderItem{
			PID:       item.PID,
			Name:      item.Product.Name,
			UnitPrice: item.Product.SalePrice,
			Quantity:  item.Quantity,
			LineTotal: item.Product.SalePrice * float64(item.Quantity),
		})
	}

	if err := s.repos.Order.CreateWithItems(&order, cartItemIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PlaceOrderResponse{}, ErrInsufficientStock
		}
		return dto.PlaceOrderResponse{}, err
	}

	resp := dto.PlaceOrderResponse{Order: order}

	if input.PaymentType == string(models.PaymentTypeCard) {
		user, err := s.repos.User.GetUserByID(uid)
		if err != nil {
			return dto.PlaceOrderResponse{}, err
		}
		redirect, err := s.gateway.SubmitPaymentRequest(ctx, payment.Request{
			OrderNumber:   order.OrderNumber,
			Amount:        order.Total,
			Currency:      "LKR",
			CustomerEmail: user.Email,
			FirstName:     user.FirstName,
			LastName:      user.LastName,
			CustomFields:  []string{order.OrderNumber, config.Issuer},
		})
		if err != nil {
			return dto.PlaceOrderResponse{}, err
		}
		resp.Redirect = redirect
	}

	return resp, nil
}
