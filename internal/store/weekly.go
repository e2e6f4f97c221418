package store

import (
	"context"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type weeklyStore struct {
	db *gorm.DB
}

// Upsert records a week's count. Re-submitting the same (user, activity,
// week start) overwrites the count and refreshes the entry timestamp; it
// never produces a second row.
func (s *weeklyStore) Upsert(ctx context.Context, entry *models.WeeklyActivityEntry) error {
	now := time.Now()
	entry.EntryDate = now
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "activity_id"}, {Name: "week_start_date"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"count_value":   entry.CountValue,
			"week_end_date": entry.WeekEndDate,
			"entry_date":    now,
		}),
	}).Create(entry).Error
	return mapErr(err)
}

func (s *weeklyStore) ListForWeek(ctx context.Context, userID int64, weekStart string) ([]models.WeeklyEntryWithActivity, error) {
	entries := make([]models.WeeklyEntryWithActivity, 0)
	err := s.db.WithContext(ctx).
		Model(&models.WeeklyActivityEntry{}).
		Select("weekly_activities.*, activities.name AS activity_name, activities.category AS category").
		Joins("JOIN activities ON activities.id = weekly_activities.activity_id").
		Where("weekly_activities.user_id = ? AND weekly_activities.week_start_date = ?", userID, weekStart).
		Find(&entries).Error
	return entries, mapErr(err)
}
