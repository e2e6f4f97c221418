package store

import (
	"context"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type commissionGoalStore struct {
	db *gorm.DB
}

func (s *commissionGoalStore) Upsert(ctx context.Context, goal *models.GrossCommissionGoal) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "year"}},
		DoUpdates: clause.Assignments(map[string]any{
			"annual_target": goal.AnnualTarget,
			"updated_at":    time.Now(),
		}),
	}).Create(goal).Error
	return mapErr(err)
}

func (s *commissionGoalStore) Create(ctx context.Context, goal *models.GrossCommissionGoal) error {
	return mapErr(s.db.WithContext(ctx).Create(goal).Error)
}

func (s *commissionGoalStore) GetForYear(ctx context.Context, userID int64, year int) (models.GrossCommissionGoal, error) {
	var goal models.GrossCommissionGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ?", userID, year).
		First(&goal).Error
	return goal, mapErr(err)
}
