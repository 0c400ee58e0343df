package repositories

import (
	"github.com/heliomart/solarstore-go/db"
	"github.com/heliomart/solarstore-go/models"
	"gorm.io/gorm"
)

type PaymentMethodRepo interface {
	ListByUser(uid uint) ([]models.PaymentMethod, error)
	GetByID(uid, methodID uint) (models.PaymentMethod, error)
	CountByUser(uid uint) (int64, error)
	Save(method *models.PaymentMethod) error
	Delete(uid, methodID uint) error
	SetDefault(uid, methodID uint) error
}

type DBPaymentMethodRepo struct{}

func (r *DBPaymentMethodRepo) ListByUser(uid uint) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := db.DB.Where("u_id = ?", uid).Order("create_at asc").Find(&methods).Error
	return methods, err
}

func (r *DBPaymentMethodRepo) GetByID(uid, methodID uint) (models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := db.DB.Where("u_id = ? AND pm_id = ?", uid, methodID).First(&method).Error
	return method, err
}

func (r *DBPaymentMethodRepo) CountByUser(uid uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.PaymentMethod{}).Where("u_id = ?", uid).Count(&count).Error
	return count, err
}

func (r *DBPaymentMethodRepo) Save(method *models.PaymentMethod) error {
	return db.DB.Save(method).Error
}

func (r *DBPaymentMethodRepo) Delete(uid, methodID uint) error {
	return db.DB.Where("u_id = ? AND pm_id = ?", uid, methodID).Delete(&models.PaymentMethod{}).Error
}

func (r *DBPaymentMethodRepo) SetDefault(uid, methodID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PaymentMethod{}).Where("u_id = ?", uid).Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.PaymentMethod{}).Where("u_id = ? AND pm_id = ?", uid, methodID).Update("is_default", true).Error
	})
}
