package models

import (
	"time"

	"gorm.io/datatypes"
)

type PaymentMethodType string

const (
	PaymentTypeCard    PaymentMethodType = "card"
	PaymentTypeBank    PaymentMethodType = "bank"
	PaymentTypeDigital PaymentMethodType = "digital"
)

// PaymentMethod is a tagged union keyed by Type. Details holds exactly one of
// CardDetails, BankDetails or DigitalDetails as JSON, matching Type.
type PaymentMethod struct {
	PMID      uint              `gorm:"primaryKey;column:pm_id" json:"pm_id"`
	UID       uint              `gorm:"column:u_id;not null;index" json:"u_id"`
	Type      PaymentMethodType `gorm:"size:20;not null" json:"type"`
	Details   datatypes.JSON    `gorm:"not null" json:"details"`
	IsDefault bool              `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time         `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time         `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

type CardDetails struct {
	MaskedNumber string `json:"masked_number"`
	Brand        string `json:"brand"`
	ExpiryMonth  int    `json:"expiry_month"`
	ExpiryYear   int    `json:"expiry_year"`
	HolderName   string `json:"holder_name"`
}

type BankDetails struct {
	BankName      string `json:"bank_name"`
	Branch        string `json:"branch"`
	MaskedAccount string `json:"masked_account"`
	HolderName    string `json:"holder_name"`
}

type DigitalDetails struct {
	Provider string `json:"provider"`
	Handle   string `json:"handle"`
}
