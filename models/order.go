package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// CanCancelOrder reports whether an order in the given status may still be
// cancelled by the customer. Shipped and later statuses are final.
func CanCancelOrder(status OrderStatus) bool {
	return status == OrderStatusPending || status == OrderStatusProcessing
}

type Order struct {
	OID            uint        `gorm:"primaryKey;column:o_id" json:"o_id"`
	UID            uint        `gorm:"column:u_id;not null;index" json:"u_id"`
	OrderNumber    string      `gorm:"size:30;not null;unique" json:"order_number"`
	Status         OrderStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	AID            uint        `gorm:"column:a_id;not null" json:"a_id"`
	ShippingOption string      `gorm:"size:20;not null" json:"shipping_option"`
	PaymentType    string      `gorm:"size:20;not null" json:"payment_type"`
	Subtotal       float64     `gorm:"not null" json:"subtotal"`
	Tax            float64     `gorm:"not null" json:"tax"`
	ShippingFee    float64     `gorm:"not null" json:"shipping_fee"`
	Total          float64     `gorm:"not null" json:"total"`
	Items          []OrderItem `gorm:"foreignKey:OID;references:OID" json:"items"`
	CreatedAt      time.Time   `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt      time.Time   `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

// OrderItem snapshots name and price at purchase time so later catalog edits
// do not rewrite order history.
type OrderItem struct {
	OIID      uint    `gorm:"primaryKey;column:oi_id" json:"oi_id"`
	OID       uint    `gorm:"column:o_id;not null;index" json:"o_id"`
	PID       uint    `gorm:"column:p_id;not null" json:"p_id"`
	Name      string  `gorm:"size:150;not null" json:"name"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	LineTotal float64 `gorm:"not null" json:"line_total"`
}
