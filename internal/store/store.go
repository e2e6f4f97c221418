// Package store holds the repository layer: one interface per entity so
// handlers and reports can be wired against fakes, with gorm-backed
// implementations underneath. All constraint enforcement (uniqueness,
// foreign keys, cascades) lives in the schema; this layer only maps the
// resulting failures onto ErrNotFound/ErrConflict.
package store

import (
	"context"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetActiveByUsername(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListActiveAgents(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, email, fullName string, isActive bool) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type ActivityStore interface {
	Create(ctx context.Context, activity *models.Activity) error
	ListActive(ctx context.Context) ([]models.Activity, error)
}

type GoalStore interface {
	// Upsert sets the goal value for the entry's (user, activity, year,
	// month) key as a single atomic statement.
	Upsert(ctx context.Context, goal *models.MonthlyGoal) error
	Create(ctx context.Context, goal *models.MonthlyGoal) error
	ListForMonth(ctx context.Context, userID int64, year, month int) ([]models.GoalWithActivity, error)
}

type CommissionGoalStore interface {
	Upsert(ctx context.Context, goal *models.GrossCommissionGoal) error
	Create(ctx context.Context, goal *models.GrossCommissionGoal) error
	// GetForYear returns ErrNotFound when the user has no stored target;
	// translating that into a zero placeholder is the caller's concern.
	GetForYear(ctx context.Context, userID int64, year int) (models.GrossCommissionGoal, error)
}

type WeeklyStore interface {
	Upsert(ctx context.Context, entry *models.WeeklyActivityEntry) error
	ListForWeek(ctx context.Context, userID int64, weekStart string) ([]models.WeeklyEntryWithActivity, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.CommissionTransaction) error
	// List returns a user's transactions for a year, newest first;
	// month 0 means the whole year.
	List(ctx context.Context, userID int64, year, month int) ([]models.CommissionTransaction, error)
	SumForYear(ctx context.Context, userID int64, year int) (decimal.Decimal, error)
}

type AuditStore interface {
	Create(ctx context.Context, record *models.AuditRecord) error
	ListRecent(ctx context.Context, limit int) ([]models.AuditRecord, error)
}

// Stores bundles the per-entity repositories over one database handle.
type Stores struct {
	Users           UserStore
	Activities      ActivityStore
	Goals           GoalStore
	CommissionGoals CommissionGoalStore
	Weekly          WeeklyStore
	Transactions    TransactionStore
	Audit           AuditStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Users:           &userStore{db: db},
		Activities:      &activityStore{db: db},
		Goals:           &goalStore{db: db},
		CommissionGoals: &commissionGoalStore{db: db},
		Weekly:          &weeklyStore{db: db},
		Transactions:    &transactionStore{db: db},
		Audit:           &auditStore{db: db},
	}
}
