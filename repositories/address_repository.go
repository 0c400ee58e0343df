package repositories

import (
	"github.com/heliomart/solarstore-go/db"
	"github.com/heliomart/solarstore-go/models"
	"gorm.io/gorm"
)

type AddressRepo interface {
	ListByUser(uid uint) ([]models.Address, error)
	GetByID(uid, addressID uint) (models.Address, error)
	CountByUser(uid uint) (int64, error)
	Save(address *models.Address) error
	Delete(uid, addressID uint) error
	// SetDefault reassigns the default flag to the given address in one
	// transaction, clearing it everywhere else first.
	SetDefault(uid, addressID uint) error
}

type DBAddressRepo struct{}

func (r *DBAddressRepo) ListByUser(uid uint) ([]models.Address, error) {
	var addresses []models.Address
	err := db.DB.Where("u_id = ?", uid).Order("create_at asc").Find(&addresses).Error
	return addresses, err
}

func (r *DBAddressRepo) GetByID(uid, addressID uint) (models.Address, error) {
	var address models.Address
	err := db.DB.Where("u_id = ? AND a_id = ?", uid, addressID).First(&address).Error
	return address, err
}

func (r *DBAddressRepo) CountByUser(uid uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Address{}).Where("u_id = ?", uid).Count(&count).Error
	return count, err
}

func (r *DBAddressRepo) Save(address *models.Address) error {
	return db.DB.Save(address).Error
}

func (r *DBAddressRepo) Delete(uid, addressID uint) error {
	return db.DB.Where("u_id = ? AND a_id = ?", uid, addressID).Delete(&models.Address{}).Error
}

func (r *DBAddressRepo) SetDefault(uid, addressID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).Where("u_id = ?", uid).Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Address{}).Where("u_id = ? AND a_id = ?", uid, addressID).Update("is_default", true).Error
	})
}
