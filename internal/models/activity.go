package models

import "time"

// Activity is one entry of the office's activity catalog, e.g.
// "Door Knocks" in category "Cold Calling". The catalog is seeded at
// first run; admins may add entries but existing ones are never edited.
type Activity struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Category  string    `gorm:"size:64;index;not null" json:"category"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
