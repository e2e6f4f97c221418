package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes sale from rental commission.
type TransactionType string

const (
	TransactionSale   TransactionType = "sale"
	TransactionRental TransactionType = "rental"
)

func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionRental
}

// CommissionTransaction is one earned commission amount. Transactions are
// append-only facts: there is no update path, aggregates are recomputed
// from the rows.
type CommissionTransaction struct {
	ID                   int64           `gorm:"primaryKey" json:"id"`
	UserID               int64           `gorm:"not null;index:idx_commission_user_period,priority:1" json:"user_id"`
	Amount               decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	TransactionType      TransactionType `gorm:"size:16;not null" json:"transaction_type"`
	TransactionReference string          `gorm:"size:64" json:"transaction_reference"`
	TransactionMonth     int             `gorm:"not null;index:idx_commission_user_period,priority:3" json:"transaction_month"`
	TransactionYear      int             `gorm:"not null;index:idx_commission_user_period,priority:2" json:"transaction_year"`
	PropertyAddress      string          `gorm:"size:255" json:"property_address"`
	Notes                string          `gorm:"type:text" json:"notes"`
	CreatedAt            time.Time       `json:"created_at"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
