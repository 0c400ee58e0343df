package services

import (
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/repositories"
)

type AuditService struct {
	repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{repos: repos}
}

func (s *AuditService) QueryAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	return s.repos.Audit.GetAuditLogs(params)
}
