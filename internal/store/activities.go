package store

import (
	"context"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

	"gorm.io/gorm"
)

type activityStore struct {
	db *gorm.DB
}

func (s *activityStore) Create(ctx context.Context, activity *models.Activity) error {
	return mapErr(s.db.WithContext(ctx).Create(activity).Error)
}

func (s *activityStore) ListActive(ctx context.Context) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category, name").
		Find(&activities).Error
	return activities, mapErr(err)
}
