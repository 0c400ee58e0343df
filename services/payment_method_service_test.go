package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/repositories/mock_repositories"
	"github.com/heliomart/solarstore-go/validation"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupPaymentMethodServiceMocks(t *testing.T) (*PaymentMethodService, *mock_repositories.MockPaymentMethodRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockMethod := mock_repositories.NewMockPaymentMethodRepo(ctrl)
	repos := &repositories.Repos{
		PaymentMethod: mockMethod,
	}
	svc := NewPaymentMethodService(repos)
	return svc, mockMethod
}

func futureExpiry() string {
	return time.Now().AddDate(2, 0, 0).Format("01/06")
}

func validCardInput() dto.PaymentMethodInput {
	return dto.PaymentMethodInput{
		Type: "card",
		Card: &dto.CardMethodInput{
			CardNumber: "4242 4242 4242 4242",
			ExpiryDate: futureExpiry(),
			CVV:        "123",
			HolderName: "Jo Perera",
		},
	}
}

// --------------------- Add ---------------------
func TestAddPaymentMethod_CardStoredMasked(t *testing.T) {
	svc, mockMethod := setupPaymentMethodServiceMocks(t)

	mockMethod.EXPECT().CountByUser(uint(1)).Return(int64(0), nil)
	mockMethod.EXPECT().Save(gomock.Any()).DoAndReturn(func(m *models.PaymentMethod) error {
		var details models.CardDetails
		assert.NoError(t, json.Unmarshal(m.Details, &details))
		assert.Equal(t, "**** **** **** 4242", details.MaskedNumber)
		assert.Equal(t, "visa", details.Brand)
		assert.True(t, m.IsDefault)
		return nil
	})

	method, err := svc.Add(1, validCardInput())
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentTypeCard, method.Type)
}

func TestAddPaymentMethod_VariantMismatch(t *testing.T) {
	svc, _ := setupPaymentMethodServiceMocks(t)

	input := dto.PaymentMethodInput{Type: "card", Bank: &dto.BankMethodInput{BankName: "BOC"}}
	_, err := svc.Add(1, input)
	assert.ErrorIs(t, err, ErrVariantMismatch)
}

func TestAddPaymentMethod_ExpiredCard(t *testing.T) {
	svc, _ := setupPaymentMethodServiceMocks(t)

	input := validCardInput()
	input.Card.ExpiryDate = "01/20"
	_, err := svc.Add(1, input)

	var fieldErrors validation.FieldErrors
	assert.ErrorAs(t, err, &fieldErrors)
	assert.Equal(t, "Card has expired", fieldErrors["expiry_date"])
}

func TestAddPaymentMethod_Bank(t *testing.T) {
	svc, mockMethod := setupPaymentMethodServiceMocks(t)

	mockMethod.EXPECT().CountByUser(uint(1)).Return(int64(1), nil)
	mockMethod.EXPECT().Save(gomock.Any()).DoAndReturn(func(m *models.PaymentMethod) error {
		var details models.BankDetails
		assert.NoError(t, json.Unmarshal(m.Details, &details))
		assert.Equal(t, "**** **** **** 6789", details.MaskedAccount)
		assert.False(t, m.IsDefault)
		return nil
	})

	input := dto.PaymentMethodInput{
		Type: "bank",
		Bank: &dto.BankMethodInput{
			BankName:      "Bank of Ceylon",
			Branch:        "Colombo 03",
			AccountNumber: "123456789",
			HolderName:    "Jo Perera",
		},
	}
	method, err := svc.Add(1, input)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentTypeBank, method.Type)
}

func TestAddPaymentMethod_Digital(t *testing.T) {
	svc, mockMethod := setupPaymentMethodServiceMocks(t)

	mockMethod.EXPECT().CountByUser(uint(1)).Return(int64(1), nil)
	mockMethod.EXPECT().Save(gomock.Any()).Return(nil)

	input := dto.PaymentMethodInput{
		Type:    "digital",
		Digital: &dto.DigitalMethodInput{Provider: "frimi", Handle: "jo@example.com"},
	}
	method, err := svc.Add(1, input)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentTypeDigital, method.Type)
}

func TestAddPaymentMethod_UnknownType(t *testing.T) {
	svc, _ := setupPaymentMethodServiceMocks(t)

	_, err := svc.Add(1, dto.PaymentMethodInput{Type: "crypto"})
	assert.ErrorIs(t, err, ErrVariantMismatch)
}

// --------------------- Update ---------------------
func TestUpdatePaymentMethod_NotFound(t *testing.T) {
	svc, mockMethod := setupPaymentMethodServiceMocks(t)
	mockMethod.EXPECT().GetByID(uint(1), uint(4)).Return(models.PaymentMethod{}, gorm.ErrRecordNotFound)

	_, err := svc.Update(1, 4, validCardInput())
	assert.ErrorIs(t, err, ErrPaymentMethodNotFound)
}

// --------------------- Remove ---------------------
func TestRemovePaymentMethod_LastOne(t *testing.T) {
	svc, mockMethod := setupPaymentMethodServiceMocks(t)

	mockMethod.EXPECT().GetByID(uint(1), uint(4)).Return(models.PaymentMethod{PMID: 4}, nil)
	mockMethod.EXPECT().CountByUser(uint(1)).Return(int64(1), nil)

	assert.ErrorIs(t, svc.Remove(1, 4), ErrLastPaymentMethod)
}

func TestRemovePaymentMethod_Default(t *testing.T) {
	svc, mockMethod := setupPaymentMethodServiceMocks(t)

	mockMethod.EXPECT().GetByID(uint(1), uint(4)).Return(models.PaymentMethod{PMID: 4, IsDefault: true}, nil)
	mockMethod.EXPECT().CountByUser(uint(1)).Return(int64(2), nil)

	assert.ErrorIs(t, svc.Remove(1, 4), ErrDefaultPaymentMethod)
}

func TestRemovePaymentMethod_Success(t *testing.T) {
	svc, mockMethod := setupPaymentMethodServiceMocks(t)

	mockMethod.EXPECT().GetByID(uint(1), uint(4)).Return(models.PaymentMethod{PMID: 4}, nil)
	mockMethod.EXPECT().CountByUser(uint(1)).Return(int64(2), nil)
	mockMethod.EXPECT().Delete(uint(1), uint(4)).Return(nil)

	assert.NoError(t, svc.Remove(1, 4))
}

// --------------------- detectCardBrand ---------------------
func TestDetectCardBrand(t *testing.T) {
	assert.Equal(t, "visa", detectCardBrand("4242 4242 4242 4242"))
	assert.Equal(t, "mastercard", detectCardBrand("5500000000000004"))
	assert.Equal(t, "amex", detectCardBrand("340000000000009"))
	assert.Equal(t, "card", detectCardBrand("6011000000000004"))
}
