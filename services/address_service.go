package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/forms"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/validation"
	"gorm.io/gorm"
)

var (
	ErrAddressLimit    = fmt.Errorf("Maximum address limit reached (%d addresses)", models.MaxAddressesPerUser)
	ErrAddressNotFound = errors.New("address not found")
	ErrLastAddress     = errors.New("cannot delete the last remaining address")
	ErrDefaultAddress  = errors.New("cannot delete the default address, set another default first")
)

type AddressService struct {
	repos *repositories.Repos
	locks *actionLocks
}

func NewAddressService(repos *repositories.Repos, locks *actionLocks) *AddressService {
	return &AddressService{repos: repos, locks: locks}
}

func newAddressForm() *forms.Form {
	f := forms.New()
	f.Value("full_name", validation.ValidateName)
	f.Value("phone", validation.ValidatePhone)
	f.Value("line1", validation.ValidateRequired("Address line"))
	f.Value("city", validation.ValidateRequired("City"))
	f.Value("postal_code", validation.ValidatePostalCode)
	return f
}

func validateAddressInput(input dto.AddressInput) validation.FieldErrors {
	form := newAddressForm().SetValues(map[string]string{
		"full_name":   input.FullName,
		"phone":       input.Phone,
		"line1":       input.Line1,
		"city":        input.City,
		"postal_code": input.PostalCode,
	})
	return form.Submit()
}

func (s *AddressService) List(uid uint) ([]models.Address, error) {
	return s.repos.Address.ListByUser(uid)
}

func (s *AddressService) Add(uid uint, input dto.AddressInput) (models.Address, error) {
	count, err := s.repos.Address.CountByUser(uid)
	if err != nil {
		return models.Address{}, err
	}
	if count >= models.MaxAddressesPerUser {
		return models.Address{}, ErrAddressLimit
	}

	if fieldErrors := validateAddressInput(input); len(fieldErrors) > 0 {
		return models.Address{}, fieldErrors
	}

	address := models.Address{
		UID:        uid,
		FullName:   strings.TrimSpace(input.FullName),
		Phone:      strings.TrimSpace(input.Phone),
		Line1:      strings.TrimSpace(input.Line1),
		Line2:      strings.TrimSpace(input.Line2),
		City:       strings.TrimSpace(input.City),
		PostalCode: strings.TrimSpace(input.PostalCode),
		// The first saved address becomes the default automatically.
		IsDefault: count == 0 || input.IsDefault,
	}
	if err := s.repos.Address.Save(&address); err != nil {
		return models.Address{}, err
	}
	if input.IsDefault && count > 0 {
		if err := s.repos.Address.SetDefault(uid, address.AID); err != nil {
			return models.Address{}, err
		}
	}
	return address, nil
}

func (s *AddressService) Update(uid, addressID uint, input dto.AddressInput) (models.Address, error) {
	address, err := s.repos.Address.GetByID(uid, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Address{}, ErrAddressNotFound
		}
		return models.Address{}, err
	}

	if fieldErrors := validateAddressInput(input); len(fieldErrors) > 0 {
		return models.Address{}, fieldErrors
	}

	address.FullName = strings.TrimSpace(input.FullName)
	address.Phone = strings.TrimSpace(input.Phone)
	address.Line1 = strings.TrimSpace(input.Line1)
	address.Line2 = strings.TrimSpace(input.Line2)
	address.City = strings.TrimSpace(input.City)
	address.PostalCode = strings.TrimSpace(input.PostalCode)

	if err := s.repos.Address.Save(&address); err != nil {
		return models.Address{}, err
	}
	if input.IsDefault && !address.IsDefault {
		if err := s.repos.Address.SetDefault(uid, address.AID); err != nil {
			return models.Address{}, err
		}
		address.IsDefault = true
	}
	return address, nil
}

func (s *AddressService) SetAsDefault(uid, addressID uint) error {
	if _, err := s.repos.Address.GetByID(uid, addressID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAddressNotFound
		}
		return err
	}
	return s.repos.Address.SetDefault(uid, addressID)
}

// Remove deletes an address unless it is the last one or still the default.
func (s *AddressService) Remove(uid, addressID uint) error {
	if err := s.locks.TryLock("address", addressID); err != nil {
		return err
	}
	defer s.locks.Unlock("address", addressID)

	address, err := s.repos.Address.GetByID(uid, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAddressNotFound
		}
		return err
	}

	count, err := s.repos.Address.CountByUser(uid)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastAddress
	}
	if address.IsDefault {
		return ErrDefaultAddress
	}

	return s.repos.Address.Delete(uid, addressID)
}
