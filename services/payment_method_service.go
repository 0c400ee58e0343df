package services

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/utils"
	"github.com/heliomart/solarstore-go/validation"
	"gorm.io/gorm"
)

var (
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrLastPaymentMethod     = errors.New("cannot delete the last remaining payment method")
	ErrDefaultPaymentMethod  = errors.New("cannot delete the default payment method, set another default first")
	ErrVariantMismatch       = errors.New("payment method details do not match the declared type")
)

type PaymentMethodService struct {
	repos *repositories.Repos
}

func NewPaymentMethodService(repos *repositories.Repos) *PaymentMethodService {
	return &PaymentMethodService{repos: repos}
}

func (s *PaymentMethodService) List(uid uint) ([]models.PaymentMethod, error) {
	return s.repos.PaymentMethod.ListByUser(uid)
}

func (s *PaymentMethodService) Add(uid uint, input dto.PaymentMethodInput) (models.PaymentMethod, error) {
	details, err := buildMethodDetails(input)
	if err != nil {
		return models.PaymentMethod{}, err
	}

	count, err := s.repos.PaymentMethod.CountByUser(uid)
	if err != nil {
		return models.PaymentMethod{}, err
	}

	method := models.PaymentMethod{
		UID:       uid,
		Type:      models.PaymentMethodType(input.Type),
		Details:   details,
		IsDefault: count == 0 || input.IsDefault,
	}
	if err := s.repos.PaymentMethod.Save(&method); err != nil {
		return models.PaymentMethod{}, err
	}
	if input.IsDefault && count > 0 {
		if err := s.repos.PaymentMethod.SetDefault(uid, method.PMID); err != nil {
			return models.PaymentMethod{}, err
		}
	}
	return method, nil
}

func (s *PaymentMethodService) Update(uid, methodID uint, input dto.PaymentMethodInput) (models.PaymentMethod, error) {
	method, err := s.repos.PaymentMethod.GetByID(uid, methodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PaymentMethod{}, ErrPaymentMethodNotFound
		}
		return models.PaymentMethod{}, err
	}

	details, err := buildMethodDetails(input)
	if err != nil {
		return models.PaymentMethod{}, err
	}

	method.Type = models.PaymentMethodType(input.Type)
	method.Details = details
	if err := s.repos.PaymentMethod.Save(&method); err != nil {
		return models.PaymentMethod{}, err
	}
	if input.IsDefault && !method.IsDefault {
		if err := s.repos.PaymentMethod.SetDefault(uid, method.PMID); err != nil {
			return models.PaymentMethod{}, err
		}
		method.IsDefault = true
	}
	return method, nil
}

func (s *PaymentMethodService) SetAsDefault(uid, methodID uint) error {
	if _, err := s.repos.PaymentMethod.GetByID(uid, methodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentMethodNotFound
		}
		return err
	}
	return s.repos.PaymentMethod.SetDefault(uid, methodID)
}

func (s *PaymentMethodService) Remove(uid, methodID uint) error {
	method, err := s.repos.PaymentMethod.GetByID(uid, methodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentMethodNotFound
		}
		return err
	}

	count, err := s.repos.PaymentMethod.CountByUser(uid)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastPaymentMethod
	}
	if method.IsDefault {
		return ErrDefaultPaymentMethod
	}

	return s.repos.PaymentMethod.Delete(uid, methodID)
}

// buildMethodDetails validates the variant matching the declared type and
// serializes it. Card numbers are stored masked; the full number never
// reaches the database.
func buildMethodDetails(input dto.PaymentMethodInput) ([]byte, error) {
	v := validation.New()

	switch models.PaymentMethodType(input.Type) {
	case models.PaymentTypeCard:
		if input.Card == nil {
			return nil, ErrVariantMismatch
		}
		v.Field("card_number", input.Card.CardNumber, validation.ValidateCardNumber)
		v.Field("expiry_date", input.Card.ExpiryDate, validation.ValidateExpiry)
		v.Field("cvv", input.Card.CVV, validation.ValidateCVV)
		v.Field("holder_name", input.Card.HolderName, validation.ValidateName)
		if !v.Valid() {
			return nil, v.Errors
		}
		month, year := parseExpiry(input.Card.ExpiryDate)
		return json.Marshal(models.CardDetails{
			MaskedNumber: utils.MaskDigits(input.Card.CardNumber),
			Brand:        detectCardBrand(input.Card.CardNumber),
			ExpiryMonth:  month,
			ExpiryYear:   year,
			HolderName:   strings.TrimSpace(input.Card.HolderName),
		})

	case models.PaymentTypeBank:
		if input.Bank == nil {
			return nil, ErrVariantMismatch
		}
		v.Field("bank_name", input.Bank.BankName, validation.ValidateRequired("Bank name"))
		v.Field("account_number", input.Bank.AccountNumber, validation.ValidateRequired("Account number"))
		v.Field("holder_name", input.Bank.HolderName, validation.ValidateName)
		if !v.Valid() {
			return nil, v.Errors
		}
		return json.Marshal(models.BankDetails{
			BankName:      strings.TrimSpace(input.Bank.BankName),
			Branch:        strings.TrimSpace(input.Bank.Branch),
			MaskedAccount: utils.MaskDigits(input.Bank.AccountNumber),
			HolderName:    strings.TrimSpace(input.Bank.HolderName),
		})

	case models.PaymentTypeDigital:
		if input.Digital == nil {
			return nil, ErrVariantMismatch
		}
		v.Field("provider", input.Digital.Provider, validation.ValidateRequired("Provider"))
		v.Field("handle", input.Digital.Handle, validation.ValidateRequired("Handle"))
		if !v.Valid() {
			return nil, v.Errors
		}
		return json.Marshal(models.DigitalDetails{
			Provider: strings.TrimSpace(input.Digital.Provider),
			Handle:   strings.TrimSpace(input.Digital.Handle),
		})

	default:
		return nil, ErrVariantMismatch
	}
}

func parseExpiry(value string) (month, year int) {
	parts := strings.SplitN(strings.TrimSpace(value), "/", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	month, _ = strconv.Atoi(parts[0])
	year, _ = strconv.Atoi(parts[1])
	return month, year + 2000
}

func detectCardBrand(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, number)
	switch {
	case strings.HasPrefix(digits, "4"):
		return "visa"
	case strings.HasPrefix(digits, "5"):
		return "mastercard"
	case strings.HasPrefix(digits, "3"):
		return "amex"
	default:
		return "card"
	}
}
