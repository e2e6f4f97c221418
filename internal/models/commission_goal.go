package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GrossCommissionGoal is a user's annual commission income target.
// Only the annual figure is stored; quarterly and monthly targets are
// derived on every read so they can never drift from it.
type GrossCommissionGoal struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	UserID       int64           `gorm:"not null;uniqueIndex:idx_commission_goal_year,priority:1" json:"user_id"`
	Year         int             `gorm:"not null;uniqueIndex:idx_commission_goal_year,priority:2" json:"year"`
	AnnualTarget decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"annual_target"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
