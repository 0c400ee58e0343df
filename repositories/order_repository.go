package repositories

import (
	"github.com/heliomart/solarstore-go/db"
	"github.com/heliomart/solarstore-go/models"
	"gorm.io/gorm"
)

type OrderRepo interface {
	ListByUser(uid uint, status string) ([]models.Order, error)
	GetByID(uid, orderID uint) (models.Order, error)
	Save(order *models.Order) error
	// CreateWithItems persists the order, its line items, the stock
	// decrement and the cart cleanup atomically.
	CreateWithItems(order *models.Order, purchasedCartItemIDs []uint) error
	// RestockItems returns cancelled quantities to product stock.
	RestockItems(order *models.Order) error
}

type DBOrderRepo struct{}

func (r *DBOrderRepo) ListByUser(uid uint, status string) ([]models.Order, error) {
	query := db.DB.Preload("Items").Where("u_id = ?", uid)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	err := query.Order("create_at desc").Find(&orders).Error
	return orders, err
}

func (r *DBOrderRepo) GetByID(uid, orderID uint) (models.Order, error) {
	var order models.Order
	err := db.DB.Preload("Items").Where("u_id = ? AND o_id = ?", uid, orderID).First(&order).Error
	return order, err
}

func (r *DBOrderRepo) Save(order *models.Order) error {
	return db.DB.Save(order).Error
}

func (r *DBOrderRepo) CreateWithItems(order *models.Order, purchasedCartItemIDs []uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			result := tx.Model(&models.Product{}).
				Where("p_id = ? AND stock >= ?", item.PID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(purchasedCartItemIDs) > 0 {
			if err := tx.Where("u_id = ? AND ci_id IN ?", order.UID, purchasedCartItemIDs).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBOrderRepo) RestockItems(order *models.Order) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			if err := tx.Model(&models.Product{}).
				Where("p_id = ?", item.PID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
