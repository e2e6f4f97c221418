// Package report computes commission aggregates and composes the
// role-dependent dashboard.
package report

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/scope"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/targets"

	"github.com/shopspring/decimal"
)

// Aggregator sums commission transactions and builds office rollups.
type Aggregator struct {
	users           store.UserStore
	goals           store.GoalStore
	commissionGoals store.CommissionGoalStore
	transactions    store.TransactionStore
}

func NewAggregator(s *store.Stores) *Aggregator {
	return &Aggregator{
		users:           s.Users,
		goals:           s.Goals,
		commissionGoals: s.CommissionGoals,
		transactions:    s.Transactions,
	}
}

// YearTotal is a user's summed commission for the year; zero when the
// user has no transactions.
func (a *Aggregator) YearTotal(ctx context.Context, userID int64, year int) (decimal.Decimal, error) {
	return a.transactions.SumForYear(ctx, userID, year)
}

// AgentYearTotal pairs an agent with their yearly commission total.
type AgentYearTotal struct {
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	Total    decimal.Decimal `json:"total"`
}

// OfficeOverview lists every active agent with their total for the year.
// A failing per-agent sum is logged and degraded to a zero total so one
// bad row cannot take down the whole report; inactive agents are
// excluded. Entry order follows the roster (full name) but is not a
// contract.
func (a *Aggregator) OfficeOverview(ctx context.Context, year int) ([]AgentYearTotal, error) {
	agents, err := a.users.ListActiveAgents(ctx)
	if err != nil {
		return nil, err
	}

	overview := make([]AgentYearTotal, 0, len(agents))
	for _, agent := range agents {
		total, err := a.transactions.SumForYear(ctx, agent.ID, year)
		if err != nil {
			log.Printf("office overview: commission sum for agent %d: %v", agent.ID, err)
			total = decimal.Zero
		}
		overview = append(overview, AgentYearTotal{
			UserID:   agent.ID,
			Username: agent.Username,
			FullName: agent.FullName,
			Total:    total,
		})
	}
	return overview, nil
}

// CommissionGoalView is a stored annual target together with the figures
// derived from it. Derived values are computed here on every read and
// never persisted.
type CommissionGoalView struct {
	UserID          int64           `json:"user_id"`
	Year            int             `json:"year"`
	AnnualTarget    decimal.Decimal `json:"annual_target"`
	QuarterlyTarget decimal.Decimal `json:"quarterly_target"`
	MonthlyTarget   decimal.Decimal `json:"monthly_target"`
}

// NewCommissionGoalView derives the quarterly/monthly figures for a
// stored goal.
func NewCommissionGoalView(userID int64, year int, annual decimal.Decimal) CommissionGoalView {
	derived := targets.Derive(annual)
	return CommissionGoalView{
		UserID:          userID,
		Year:            year,
		AnnualTarget:    annual,
		QuarterlyTarget: derived.Quarterly,
		MonthlyTarget:   derived.Monthly,
	}
}

// AgentDashboard is what an agent sees: their current month's goals,
// their commission goal for the current year (zero placeholder when none
// is stored), and their year-to-date commission total.
type AgentDashboard struct {
	Year            int                       `json:"year"`
	Month           int                       `json:"month"`
	Goals           []models.GoalWithActivity `json:"goals"`
	CommissionGoal  CommissionGoalView        `json:"commission_goal"`
	TotalCommission decimal.Decimal           `json:"total_commission"`
}

// OfficeDashboard is the admin/manager view: the active agent roster
// with yearly totals.
type OfficeDashboard struct {
	Year   int              `json:"year"`
	Agents []AgentYearTotal `json:"agents"`
}

// DashboardView holds exactly one of the two role-dependent shapes,
// resolved once per request instead of branching on role throughout.
type DashboardView struct {
	Agent  *AgentDashboard
	Office *OfficeDashboard
}

// Dashboard resolves the view for the caller. The period is taken from
// the supplied wall-clock time, never from caller input. For the agent
// branch, a failing sub-query degrades that section to its zero value
// rather than failing the whole dashboard.
func (a *Aggregator) Dashboard(ctx context.Context, caller scope.Identity, now time.Time) (DashboardView, error) {
	year := now.Year()
	month := int(now.Month())

	if caller.Role.CanActForOthers() {
		agents, err := a.OfficeOverview(ctx, year)
		if err != nil {
			return DashboardView{}, err
		}
		return DashboardView{Office: &OfficeDashboard{Year: year, Agents: agents}}, nil
	}

	goals, err := a.goals.ListForMonth(ctx, caller.UserID, year, month)
	if err != nil {
		log.Printf("dashboard: goals for user %d: %v", caller.UserID, err)
		goals = nil
	}
	if goals == nil {
		goals = []models.GoalWithActivity{}
	}

	annual := decimal.Zero
	if goal, err := a.commissionGoals.GetForYear(ctx, caller.UserID, year); err == nil {
		annual = goal.AnnualTarget
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("dashboard: commission goal for user %d: %v", caller.UserID, err)
	}

	total, err := a.transactions.SumForYear(ctx, caller.UserID, year)
	if err != nil {
		log.Printf("dashboard: commission total for user %d: %v", caller.UserID, err)
		total = decimal.Zero
	}

	return DashboardView{Agent: &AgentDashboard{
		Year:            year,
		Month:           month,
		Goals:           goals,
		CommissionGoal:  NewCommissionGoalView(caller.UserID, year, annual),
		TotalCommission: total,
	}}, nil
}
