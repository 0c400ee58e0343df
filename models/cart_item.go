package models

import "time"

type CartItem struct {
	CIID      uint      `gorm:"primaryKey;column:ci_id" json:"ci_id"`
	UID       uint      `gorm:"column:u_id;not null;uniqueIndex:idx_cart_user_product" json:"u_id"`
	PID       uint      `gorm:"column:p_id;not null;uniqueIndex:idx_cart_user_product" json:"p_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   Product   `gorm:"foreignKey:PID;references:PID" json:"product"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
