package services

import (
	"errors"

	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/repositories"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
)

type OrderService struct {
	repos *repositories.Repos
	locks *actionLocks
}

func NewOrderService(repos *repositories.Repos, locks *actionLocks) *OrderService {
	return &OrderService{repos: repos, locks: locks}
}

func (s *OrderService) ListOrders(uid uint, status string) ([]dto.OrderView, error) {
	orders, err := s.repos.Order.ListByUser(uid, status)
	if err != nil {
		return nil, err
	}
	views := make([]dto.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, dto.NewOrderView(order))
	}
	return views, nil
}

func (s *OrderService) GetOrder(uid, orderID uint) (dto.OrderView, error) {
	order, err := s.repos.Order.GetByID(uid, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.OrderView{}, ErrOrderNotFound
		}
		return dto.OrderView{}, err
	}
	return dto.NewOrderView(order), nil
}

// CancelOrder flips a still-cancellable order to cancelled and restocks its
// items. The per-order lock rejects a duplicate cancel racing this one.
func (s *OrderService) CancelOrder(uid, orderID uint) (dto.OrderView, error) {
	if err := s.locks.TryLock("order", orderID); err != nil {
		return dto.OrderView{}, err
	}
	defer s.locks.Unlock("order", orderID)

	order, err := s.repos.Order.GetByID(uid, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.OrderView{}, ErrOrderNotFound
		}
		return dto.OrderView{}, err
	}

	if !models.CanCancelOrder(order.Status) {
		return dto.OrderView{}, ErrOrderNotCancellable
	}

	order.Status = models.OrderStatusCancelled
	if err := s.repos.Order.Save(&order); err != nil {
		return dto.OrderView{}, err
	}
	if err := s.repos.Order.RestockItems(&order); err != nil {
		return dto.OrderView{}, err
	}

	return dto.NewOrderView(order), nil
}
