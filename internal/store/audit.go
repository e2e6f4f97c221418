package store

import (
	"context"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

	"gorm.io/gorm"
)

type auditStore struct {
	db *gorm.DB
}

func (s *auditStore) Create(ctx context.Context, record *models.AuditRecord) error {
	return mapErr(s.db.WithContext(ctx).Create(record).Error)
}

func (s *auditStore) ListRecent(ctx context.Context, limit int) ([]models.AuditRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	records := make([]models.AuditRecord, 0)
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	return records, mapErr(err)
}
