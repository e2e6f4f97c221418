package store

import (
	"context"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type goalStore struct {
	db *gorm.DB
}

// Upsert writes the goal as a single INSERT ... ON CONFLICT DO UPDATE so
// two racing submissions for the same (user, activity, year, month) key
// converge on the last applied value without a duplicate row.
func (s *goalStore) Upsert(ctx context.Context, goal *models.MonthlyGoal) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "activity_id"}, {Name: "year"}, {Name: "month"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"goal_value": goal.GoalValue,
			"updated_at": time.Now(),
		}),
	}).Create(goal).Error
	return mapErr(err)
}

func (s *goalStore) Create(ctx context.Context, goal *models.MonthlyGoal) error {
	return mapErr(s.db.WithContext(ctx).Create(goal).Error)
}

func (s *goalStore) ListForMonth(ctx context.Context, userID int64, year, month int) ([]models.GoalWithActivity, error) {
	goals := make([]models.GoalWithActivity, 0)
	err := s.db.WithContext(ctx).
		Model(&models.MonthlyGoal{}).
		Select("monthly_goals.*, activities.name AS activity_name, activities.category AS category").
		Joins("JOIN activities ON activities.id = monthly_goals.activity_id").
		Where("monthly_goals.user_id = ? AND monthly_goals.year = ? AND monthly_goals.month = ?", userID, year, month).
		Find(&goals).Error
	return goals, mapErr(err)
}
