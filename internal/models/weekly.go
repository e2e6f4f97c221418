package models

import "time"

// WeeklyActivityEntry is the count of one activity performed during one
// week. One row per (user, activity, week start); a week may be
// re-submitted, which overwrites the count and refreshes EntryDate.
// Week boundaries are YYYY-MM-DD strings as submitted by the client.
type WeeklyActivityEntry struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	UserID        int64     `gorm:"not null;uniqueIndex:idx_weekly_entry,priority:1" json:"user_id"`
	ActivityID    int64     `gorm:"not null;uniqueIndex:idx_weekly_entry,priority:2" json:"activity_id"`
	WeekStartDate string    `gorm:"size:10;not null;uniqueIndex:idx_weekly_entry,priority:3" json:"week_start_date"`
	WeekEndDate   string    `gorm:"size:10;not null" json:"week_end_date"`
	CountValue    int       `gorm:"not null;default:0" json:"count_value"`
	EntryDate     time.Time `json:"entry_date"`
	CreatedAt     time.Time `json:"created_at"`

	User     User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Activity Activity `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the table named after the submission ("weekly
// activities") rather than the gorm default pluralization.
func (WeeklyActivityEntry) TableName() string {
	return "weekly_activities"
}

// WeeklyEntryWithActivity is a WeeklyActivityEntry joined with its
// activity's name and category.
type WeeklyEntryWithActivity struct {
	WeeklyActivityEntry
	ActivityName string `gorm:"column:activity_name" json:"activity_name"`
	Category     string `gorm:"column:category" json:"category"`
}
