package models

import "time"

// MaxAddressesPerUser caps how many saved addresses a single account may hold.
const MaxAddressesPerUser = 5

type Address struct {
	AID        uint      `gorm:"primaryKey;column:a_id" json:"a_id"`
	UID        uint      `gorm:"column:u_id;not null;index" json:"u_id"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	Phone      string    `gorm:"size:20;not null" json:"phone"`
	Line1      string    `gorm:"size:150;not null" json:"line1"`
	Line2      string    `gorm:"size:150" json:"line2"`
	City       string    `gorm:"size:80;not null" json:"city"`
	PostalCode string    `gorm:"size:10;not null" json:"postal_code"`
	IsDefault  bool      `gorm:"default:false" json:"is_default"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt  time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
