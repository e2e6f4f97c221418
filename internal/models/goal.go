package models

import "time"

// MonthlyGoal is a target count for one activity in one calendar month.
// Exactly one row exists per (user, activity, year, month); re-submitting
// the same period overwrites the value instead of adding a row.
type MonthlyGoal struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:idx_monthly_goal_period,priority:1" json:"user_id"`
	ActivityID int64     `gorm:"not null;uniqueIndex:idx_monthly_goal_period,priority:2" json:"activity_id"`
	Year       int       `gorm:"not null;uniqueIndex:idx_monthly_goal_period,priority:3" json:"year"`
	Month      int       `gorm:"not null;uniqueIndex:idx_monthly_goal_period,priority:4" json:"month"`
	GoalValue  int       `gorm:"not null;default:0" json:"goal_value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User     User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Activity Activity `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// GoalWithActivity is a MonthlyGoal joined with its activity's name and
// category, the shape the goal listing endpoints return.
type GoalWithActivity struct {
	MonthlyGoal
	ActivityName string `gorm:"column:activity_name" json:"activity_name"`
	Category     string `gorm:"column:category" json:"category"`
}
