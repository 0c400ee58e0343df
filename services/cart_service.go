package services

import (
	"errors"

	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/repositories"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrCartItemNotFound   = errors.New("cart item not found")
)

type CartService struct {
	repos *repositories.Repos
}

func NewCartService(repos *repositories.Repos) *CartService {
	return &CartService{repos: repos}
}

func (s *CartService) Items(uid uint) ([]models.CartItem, error) {
	return s.repos.Cart.ItemsByUser(uid)
}

// AddItem merges quantities with any existing row for the same product and
// clamps the result to available stock. Adjusted reports that a clamp
// happened so the client can tell the shopper.
func (s *CartService) AddItem(uid uint, input dto.AddCartItemInput) (dto.CartItemView, error) {
	product, err := s.repos.Product.GetProductByID(input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CartItemView{}, ErrProductNotFound
		}
		return dto.CartItemView{}, err
	}
	if !product.Active {
		return dto.CartItemView{}, ErrProductUnavailable
	}
	if product.Stock <= 0 {
		return dto.CartItemView{}, ErrOutOfStock
	}

	requested := input.Quantity
	item, err := s.repos.Cart.ItemByProduct(uid, product.PID)
	switch {
	case err == nil:
		requested += item.Quantity
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{UID: uid, PID: product.PID}
	default:
		return dto.CartItemView{}, err
	}

	adjusted := false
	if requested > product.Stock {
		requested = product.Stock
		adjusted = true
	}
	item.Quantity = requested

	if err := s.repos.Cart.SaveItem(&item); err != nil {
		return dto.CartItemView{}, err
	}
	item.Product = product
	return dto.CartItemView{Item: item, Adjusted: adjusted}, nil
}

// UpdateItem sets a new quantity, clamped to 1..stock.
func (s *CartService) UpdateItem(uid, itemID uint, quantity int) (dto.CartItemView, error) {
	item, err := s.repos.Cart.ItemByID(uid, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CartItemView{}, ErrCartItemNotFound
		}
		return dto.CartItemView{}, err
	}

	product, err := s.repos.Product.GetProductByID(item.PID)
	if err != nil {
		return dto.CartItemView{}, err
	}
	if product.Stock <= 0 {
		return dto.CartItemView{}, ErrOutOfStock
	}

	adjusted := false
	if quantity > product.Stock {
		quantity = product.Stock
		adjusted = true
	}
	if quantity < 1 {
		quantity = 1
	}
	item.Quantity = quantity

	if err := s.repos.Cart.SaveItem(&item); err != nil {
		return dto.CartItemView{}, err
	}
	item.Product = product
	return dto.CartItemView{Item: item, Adjusted: adjusted}, nil
}

func (s *CartService) RemoveItem(uid, itemID uint) error {
	if _, err := s.repos.Cart.ItemByID(uid, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	return s.repos.Cart.DeleteItem(uid, itemID)
}
