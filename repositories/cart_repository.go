package repositories

import (
	"github.com/heliomart/solarstore-go/db"
	"github.com/heliomart/solarstore-go/models"
)

type CartRepo interface {
	ItemsByUser(uid uint) ([]models.CartItem, error)
	ItemByID(uid, itemID uint) (models.CartItem, error)
	ItemByProduct(uid, pid uint) (models.CartItem, error)
	ItemsByIDs(uid uint, ids []uint) ([]models.CartItem, error)
	SaveItem(item *models.CartItem) error
	DeleteItem(uid, itemID uint) error
	DeleteItems(uid uint, ids []uint) error
}

type DBCartRepo struct{}

func (r *DBCartRepo) ItemsByUser(uid uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.DB.Preload("Product").Where("u_id = ?", uid).Order("create_at asc").Find(&items).Error
	return items, err
}

func (r *DBCartRepo) ItemByID(uid, itemID uint) (models.CartItem, error) {
	var item models.CartItem
	err := db.DB.Preload("Product").Where("u_id = ? AND ci_id = ?", uid, itemID).First(&item).Error
	return item, err
}

func (r *DBCartRepo) ItemByProduct(uid, pid uint) (models.CartItem, error) {
	var item models.CartItem
	err := db.DB.Where("u_id = ? AND p_id = ?", uid, pid).First(&item).Error
	return item, err
}

func (r *DBCartRepo) ItemsByIDs(uid uint, ids []uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.DB.Preload("Product").Where("u_id = ? AND ci_id IN ?", uid, ids).Find(&items).Error
	return items, err
}

func (r *DBCartRepo) SaveItem(item *models.CartItem) error {
	return db.DB.Save(item).Error
}

func (r *DBCartRepo) DeleteItem(uid, itemID uint) error {
	return db.DB.Where("u_id = ? AND ci_id = ?", uid, itemID).Delete(&models.CartItem{}).Error
}

func (r *DBCartRepo) DeleteItems(uid uint, ids []uint) error {
	return db.DB.Where("u_id = ? AND ci_id IN ?", uid, ids).Delete(&models.CartItem{}).Error
}
