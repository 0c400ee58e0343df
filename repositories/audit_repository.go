package repositories

import (
	"time"

	"github.com/heliomart/solarstore-go/db"
	"github.com/heliomart/solarstore-go/models"
)

type AuditQueryParams struct {
	UserID       uint
	Action       string
	ResourceType string
	From         time.Time
	To           time.Time
	Limit        int
}

type AuditRepo interface {
	Insert(entry *models.AuditLog) error
	GetAuditLogs(params AuditQueryParams) ([]models.AuditLog, error)
}

type DBAuditRepo struct{}

func (r *DBAuditRepo) Insert(entry *models.AuditLog) error {
	return db.DB.Create(entry).Error
}

func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]models.AuditLog, error) {
	query := db.DB.Model(&models.AuditLog{})

	if params.UserID != 0 {
		query = query.Where("u_id = ?", params.UserID)
	}
	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.ResourceType != "" {
		query = query.Where("resource_type = ?", params.ResourceType)
	}
	if !params.From.IsZero() {
		query = query.Where("create_at >= ?", params.From)
	}
	if !params.To.IsZero() {
		query = query.Where("create_at <= ?", params.To)
	}

	limit := params.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var logs []models.AuditLog
	err := query.Order("create_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}
