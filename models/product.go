package models

import "time"

type ProductCategory string

const (
	CategoryPanels      ProductCategory = "solar-panels"
	CategoryInverters   ProductCategory = "inverters"
	CategoryBatteries   ProductCategory = "batteries"
	CategoryControllers ProductCategory = "charge-controllers"
	CategoryAccessories ProductCategory = "accessories"
)

type Product struct {
	PID         uint      `gorm:"primaryKey;column:p_id" json:"p_id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;not null;index" json:"category"`
	Brand       string    `gorm:"size:80" json:"brand"`
	UnitPrice   float64   `gorm:"not null" json:"unit_price"`
	SalePrice   float64   `gorm:"not null" json:"sale_price"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	ImageKey    string    `gorm:"size:300" json:"-"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
