package models

import "time"

type AuditLog struct {
	ALID         uint      `gorm:"primaryKey;column:al_id" json:"al_id"`
	UserID       uint      `gorm:"column:u_id;index" json:"u_id"`
	Action       string    `gorm:"size:50;not null" json:"action"`
	ResourceType string    `gorm:"size:50;not null" json:"resource_type"`
	ResourceID   string    `gorm:"size:50" json:"resource_id"`
	OldData      []byte    `gorm:"type:jsonb" json:"old_data"`
	NewData      []byte    `gorm:"type:jsonb" json:"new_data"`
	IPAddress    string    `gorm:"size:45" json:"ip_address"`
	UserAgent    string    `gorm:"size:255" json:"user_agent"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
