package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/payment"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeGateway struct {
	lastRequest payment.Request
	redirect    *payment.Redirect
	err         error
}

func (g *fakeGateway) SubmitPaymentRequest(ctx context.Context, req payment.Request) (*payment.Redirect, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.lastRequest = req
	return g.redirect, g.err
}

type checkoutMocks struct {
	cart    *mock_repositories.MockCartRepo
	address *mock_repositories.MockAddressRepo
	order   *mock_repositories.MockOrderRepo
	user    *mock_repositories.MockUserRepo
	gateway *fakeGateway
}

func setupCheckoutServiceMocks(t *testing.T) (*CheckoutService, checkoutMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := checkoutMocks{
		cart:    mock_repositories.NewMockCartRepo(ctrl),
		address: mock_repositories.NewMockAddressRepo(ctrl),
		order:   mock_repositories.NewMockOrderRepo(ctrl),
		user:    mock_repositories.NewMockUserRepo(ctrl),
		gateway: &fakeGateway{redirect: &payment.Redirect{URL: "https://gateway.example/hosted"}},
	}
	repos := &repositories.Repos{
		Cart:    m.cart,
		Address: m.address,
		Order:   m.order,
		User:    m.user,
	}
	svc := NewCheckoutService(repos, m.gateway, newActionLocks())
	return svc, m
}

func selectedCartItems() []models.CartItem {
	return []models.CartItem{
		{CIID: 3, UID: 1, PID: 10, Quantity: 2, Product: models.Product{PID: 10, Name: "Panel 450W", SalePrice: 50000, Stock: 5}},
		{CIID: 7, UID: 1, PID: 11, Quantity: 1, Product: models.Product{PID: 11, Name: "Charge Controller", SalePrice: 30000, Stock: 2}},
	}
}

// --------------------- Quote ---------------------
func TestQuote_TotalIdentity(t *testing.T) {
	svc, m := setupCheckoutServiceMocks(t)

	m.cart.EXPECT().ItemsByIDs(uint(1), []uint{3, 7}).Return(selectedCartItems(), nil)

	resp, err := svc.Quote(1, dto.QuoteInput{Items: "3,7", ShippingOption: "express"})
	assert.NoError(t, err)
	assert.Equal(t, 130000.0, resp.Quote.Subtotal)
	assert.InDelta(t, resp.Quote.Subtotal+resp.Quote.Tax+resp.Quote.ShippingFee, resp.Quote.Total, 0.001)
	assert.Len(t, resp.Items, 2)
}

func TestQuote_EmptySelection(t *testing.T) {
	svc, m := setupCheckoutServiceMocks(t)

	m.cart.EXPECT().ItemsByIDs(uint(1), []uint(nil)).Return(nil, nil)

	resp, err := svc.Quote(1, dto.QuoteInput{Items: "", ShippingOption: "standard"})
	assert.NoError(t, err)
	assert.True(t, resp.Quote.Empty)
}

func TestQuote_BadIDList(t *testing.T) {
	svc, _ := setupCheckoutServiceMocks(t)

	_, err := svc.Quote(1, dto.QuoteInput{Items: "3,x", ShippingOption: "standard"})
	assert.Error(t, err)
}

// --------------------- PlaceOrder ---------------------
func placeOrderInput(paymentType string) dto.PlaceOrderInput {
	return dto.PlaceOrderInput{
		Items:          "3,7",
		ShippingOption: "express",
		AddressID:      9,
		PaymentType:    paymentType,
	}
}

func TestPlaceOrder_BankTransferSkipsGateway(t *testing.T) {
	svc, m := setupCheckoutServiceMocks(t)

	m.address.EXPECT().GetByID(uint(1), uint(9)).Return(models.Address{AID: 9, UID: 1}, nil)
	m.cart.EXPECT().ItemsByIDs(uint(1), []uint{3, 7}).Return(selectedCartItems(), nil)
	m.order.EXPECT().CreateWithItems(gomock.Any(), []uint{3, 7}).DoAndReturn(func(order *models.Order, ids []uint) error {
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, 100000.0, order.Items[0].LineTotal)
		assert.InDelta(t, order.Subtotal+order.Tax+order.ShippingFee, order.Total, 0.001)
		return nil
	})

	resp, err := svc.PlaceOrder(context.Background(), 1, placeOrderInput("bank"))
	assert.NoError(t, err)
	assert.Nil(t, resp.Redirect)
	assert.NotEmpty(t, resp.Order.OrderNumber)
}

func TestPlaceOrder_CardGoesThroughGateway(t *testing.T) {
	svc, m := setupCheckoutServiceMocks(t)

	m.address.EXPECT().GetByID(uint(1), uint(9)).Return(models.Address{AID: 9, UID: 1}, nil)
	m.cart.EXPECT().ItemsByIDs(uint(1), []uint{3, 7}).Return(selectedCartItems(), nil)
	m.order.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).Return(nil)
	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{UID: 1, Email: "jo@example.com", FirstName: "Jo", LastName: "Perera"}, nil)

	resp, err := svc.PlaceOrder(context.Background(), 1, placeOrderInput("card"))
	assert.NoError(t, err)
	assert.NotNil(t, resp.Redirect)
	assert.Equal(t, "https://gateway.example/hosted", resp.Redirect.URL)
	assert.Equal(t, "LKR", m.gateway.lastRequest.Currency)
	assert.Equal(t, resp.Order.Total, m.gateway.lastRequest.Amount)
	assert.Equal(t, "jo@example.com", m.gateway.lastRequest.CustomerEmail)
}

func TestPlaceOrder_UnknownAddress(t *testing.T) {
	svc, m := setupCheckoutServiceMocks(t)

	m.address.EXPECT().GetByID(uint(1), uint(9)).Return(models.Address{}, gorm.ErrRecordNotFound)

	_, err := svc.PlaceOrder(context.Background(), 1, placeOrderInput("bank"))
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestPlaceOrder_EmptySelection(t *testing.T) {
	svc, m := setupCheckoutServiceMocks(t)

	m.address.EXPECT().GetByID(uint(1), uint(9)).Return(models.Address{AID: 9}, nil)
	m.cart.EXPECT().ItemsByIDs(uint(1), []uint{3, 7}).Return(nil, nil)

	_, err := svc.PlaceOrder(context.Background(), 1, placeOrderInput("bank"))
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestPlaceOrder_StockConflict(t *testing.T) {
	svc, m := setupCheckoutServiceMocks(t)

	m.address.EXPECT().GetByID(uint(1), uint(9)).Return(models.Address{AID: 9}, nil)
	m.cart.EXPECT().ItemsByIDs(uint(1), []uint{3, 7}).Return(selectedCartItems(), nil)
	m.order.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).Return(gorm.ErrRecordNotFound)

	_, err := svc.PlaceOrder(context.Background(), 1, placeOrderInput("bank"))
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestPlaceOrder_GatewayFailureSurfaces(t *testing.T) {
	svc, m := setupCheckoutServiceMocks(t)
	m.gateway.redirect = nil
	m.gateway.err = errors.New("gateway unreachable")

	m.address.EXPECT().GetByID(uint(1), uint(9)).Return(models.Address{AID: 9}, nil)
	m.cart.EXPECT().ItemsByIDs(uint(1), []uint{3, 7}).Return(selectedCartItems(), nil)
	m.order.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).Return(nil)
	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{UID: 1}, nil)

	_, err := svc.PlaceOrder(context.Background(), 1, placeOrderInput("card"))
	assert.EqualError(t, err, "gateway unreachable")
}

func TestPlaceOrder_CancelledContextAbortsGatewayCall(t *testing.T) {
	svc, m := setupCheckoutServiceMocks(t)

	m.address.EXPECT().GetByID(uint(1), uint(9)).Return(models.Address{AID: 9}, nil)
	m.cart.EXPECT().ItemsByIDs(uint(1), []uint{3, 7}).Return(selectedCartItems(), nil)
	m.order.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).Return(nil)
	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{UID: 1}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.PlaceOrder(ctx, 1, placeOrderInput("card"))
	assert.ErrorIs(t, err, context.Canceled)
}
