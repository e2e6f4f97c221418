package store

import (
	"context"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionStore struct {
	db *gorm.DB
}

func (s *transactionStore) Create(ctx context.Context, tx *models.CommissionTransaction) error {
	return mapErr(s.db.WithContext(ctx).Create(tx).Error)
}

func (s *transactionStore) List(ctx context.Context, userID int64, year, month int) ([]models.CommissionTransaction, error) {
	q := s.db.WithContext(ctx).
		Where("user_id = ? AND transaction_year = ?", userID, year)
	if month > 0 {
		q = q.Where("transaction_month = ?", month)
	}
	txs := make([]models.CommissionTransaction, 0)
	err := q.Order("created_at DESC").Find(&txs).Error
	return txs, mapErr(err)
}

// SumForYear totals a user's commission for the year. Amounts are summed
// as decimals in Go rather than with SQL SUM, which in sqlite would
// coerce the DECIMAL column through floats. No rows means zero.
func (s *transactionStore) SumForYear(ctx context.Context, userID int64, year int) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := s.db.WithContext(ctx).
		Model(&models.CommissionTransaction{}).
		Where("user_id = ? AND transaction_year = ?", userID, year).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, mapErr(err)
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}
