package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/config"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/database"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "tracker_test.db"),
	})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAgent(t *testing.T, s *Stores, username string) models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		FullName:     "Agent " + username,
		Role:         models.RoleAgent,
		IsActive:     true,
	}
	if err := s.Users.Create(context.Background(), &user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func seedActivity(t *testing.T, s *Stores, name string) models.Activity {
	t.Helper()
	activity := models.Activity{Name: name, Category: "Cold Calling", IsActive: true}
	if err := s.Activities.Create(context.Background(), &activity); err != nil {
		t.Fatalf("create activity %s: %v", name, err)
	}
	return activity
}

func TestGoalUpsertConvergesToOneRow(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	user := seedAgent(t, s, "alice")
	activity := seedActivity(t, s, "Door Knocks")

	first := models.MonthlyGoal{UserID: user.ID, ActivityID: activity.ID, Year: 2026, Month: 3, GoalValue: 10}
	if err := s.Goals.Upsert(ctx, &first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := models.MonthlyGoal{UserID: user.ID, ActivityID: activity.ID, Year: 2026, Month: 3, GoalValue: 25}
	if err := s.Goals.Upsert(ctx, &second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	goals, err := s.Goals.ListForMonth(ctx, user.ID, 2026, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("expected one row after re-submission, got %d", len(goals))
	}
	if goals[0].GoalValue != 25 {
		t.Fatalf("expected last value 25, got %d", goals[0].GoalValue)
	}
	if goals[0].ActivityName != "Door Knocks" {
		t.Fatalf("expected joined activity name, got %q", goals[0].ActivityName)
	}

	// another month stays independent
	other := models.MonthlyGoal{UserID: user.ID, ActivityID: activity.ID, Year: 2026, Month: 4, GoalValue: 7}
	if err := s.Goals.Upsert(ctx, &other); err != nil {
		t.Fatalf("other month: %v", err)
	}
	goals, _ = s.Goals.ListForMonth(ctx, user.ID, 2026, 3)
	if len(goals) != 1 || goals[0].GoalValue != 25 {
		t.Fatalf("march goal disturbed by april upsert: %+v", goals)
	}
}

func TestGoalDirectInsertConflict(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	user := seedAgent(t, s, "bob")
	activity := seedActivity(t, s, "Valuations")

	first := models.MonthlyGoal{UserID: user.ID, ActivityID: activity.ID, Year: 2026, Month: 1, GoalValue: 5}
	if err := s.Goals.Create(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := models.MonthlyGoal{UserID: user.ID, ActivityID: activity.ID, Year: 2026, Month: 1, GoalValue: 9}
	if err := s.Goals.Create(ctx, &dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	goals, _ := s.Goals.ListForMonth(ctx, user.ID, 2026, 1)
	if len(goals) != 1 || goals[0].GoalValue != 5 {
		t.Fatalf("original row disturbed by rejected insert: %+v", goals)
	}
}

func TestCommissionGoalUpsertAndLookup(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	user := seedAgent(t, s, "carol")

	if _, err := s.CommissionGoals.GetForYear(ctx, user.ID, 2026); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing year, got %v", err)
	}

	goal := models.GrossCommissionGoal{UserID: user.ID, Year: 2026, AnnualTarget: decimal.NewFromInt(120000)}
	if err := s.CommissionGoals.Upsert(ctx, &goal); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	revised := models.GrossCommissionGoal{UserID: user.ID, Year: 2026, AnnualTarget: decimal.NewFromInt(150000)}
	if err := s.CommissionGoals.Upsert(ctx, &revised); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := s.CommissionGoals.GetForYear(ctx, user.ID, 2026)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.AnnualTarget.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("expected 150000 after overwrite, got %s", got.AnnualTarget)
	}
}

func TestCommissionGoalDirectInsertConflict(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	user := seedAgent(t, s, "judy")

	first := models.GrossCommissionGoal{UserID: user.ID, Year: 2026, AnnualTarget: decimal.NewFromInt(90000)}
	if err := s.CommissionGoals.Create(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := models.GrossCommissionGoal{UserID: user.ID, Year: 2026, AnnualTarget: decimal.NewFromInt(10)}
	if err := s.CommissionGoals.Create(ctx, &dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	got, err := s.CommissionGoals.GetForYear(ctx, user.ID, 2026)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.AnnualTarget.Equal(decimal.NewFromInt(90000)) {
		t.Fatalf("original row disturbed by rejected insert: %s", got.AnnualTarget)
	}
}

func TestWeeklyUpsertOverwritesCount(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	user := seedAgent(t, s, "dave")
	activity := seedActivity(t, s, "Viewings")

	first := models.WeeklyActivityEntry{
		UserID: user.ID, ActivityID: activity.ID,
		WeekStartDate: "2026-08-24", WeekEndDate: "2026-08-30", CountValue: 3,
	}
	if err := s.Weekly.Upsert(ctx, &first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := models.WeeklyActivityEntry{
		UserID: user.ID, ActivityID: activity.ID,
		WeekStartDate: "2026-08-24", WeekEndDate: "2026-08-30", CountValue: 8,
	}
	if err := s.Weekly.Upsert(ctx, &second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	entries, err := s.Weekly.ListForWeek(ctx, user.ID, "2026-08-24")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one row, got %d", len(entries))
	}
	if entries[0].CountValue != 8 {
		t.Fatalf("expected overwritten count 8, got %d", entries[0].CountValue)
	}
	if entries[0].EntryDate.IsZero() {
		t.Fatal("entry date should be set on upsert")
	}
}

func TestTransactionSumForYear(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	user := seedAgent(t, s, "erin")

	amounts := []int64{1000, 2500, 500}
	for _, a := range amounts {
		tx := models.CommissionTransaction{
			UserID:           user.ID,
			Amount:           decimal.NewFromInt(a),
			TransactionType:  models.TransactionSale,
			TransactionMonth: 6,
			TransactionYear:  2026,
		}
		if err := s.Transactions.Create(ctx, &tx); err != nil {
			t.Fatalf("create tx: %v", err)
		}
	}
	// different year, must not leak into the sum
	other := models.CommissionTransaction{
		UserID: user.ID, Amount: decimal.NewFromInt(9999),
		TransactionType: models.TransactionRental, TransactionMonth: 1, TransactionYear: 2025,
	}
	if err := s.Transactions.Create(ctx, &other); err != nil {
		t.Fatalf("create other-year tx: %v", err)
	}

	total, err := s.Transactions.SumForYear(ctx, user.ID, 2026)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("expected 4000, got %s", total)
	}

	empty, err := s.Transactions.SumForYear(ctx, user.ID, 2030)
	if err != nil {
		t.Fatalf("sum empty year: %v", err)
	}
	if !empty.IsZero() {
		t.Fatalf("expected zero for empty year, got %s", empty)
	}
}

func TestTransactionListMonthFilter(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	user := seedAgent(t, s, "frank")

	for month, amount := range map[int]int64{3: 100, 4: 200} {
		tx := models.CommissionTransaction{
			UserID: user.ID, Amount: decimal.NewFromInt(amount),
			TransactionType: models.TransactionSale, TransactionMonth: month, TransactionYear: 2026,
		}
		if err := s.Transactions.Create(ctx, &tx); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	year, err := s.Transactions.List(ctx, user.ID, 2026, 0)
	if err != nil {
		t.Fatalf("list year: %v", err)
	}
	if len(year) != 2 {
		t.Fatalf("expected 2 rows for the year, got %d", len(year))
	}

	march, err := s.Transactions.List(ctx, user.ID, 2026, 3)
	if err != nil {
		t.Fatalf("list month: %v", err)
	}
	if len(march) != 1 || !march[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected only march's row, got %+v", march)
	}
}

func TestUserUniqueConflict(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	seedAgent(t, s, "grace")

	dup := models.User{
		Username: "grace", Email: "other@example.com",
		PasswordHash: "x", FullName: "Other Grace", Role: models.RoleAgent, IsActive: true,
	}
	if err := s.Users.Create(ctx, &dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate username, got %v", err)
	}
}

func TestUserDeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	user := seedAgent(t, s, "heidi")
	activity := seedActivity(t, s, "Show House")

	goal := models.MonthlyGoal{UserID: user.ID, ActivityID: activity.ID, Year: 2026, Month: 2, GoalValue: 4}
	if err := s.Goals.Upsert(ctx, &goal); err != nil {
		t.Fatalf("goal: %v", err)
	}
	tx := models.CommissionTransaction{
		UserID: user.ID, Amount: decimal.NewFromInt(500),
		TransactionType: models.TransactionSale, TransactionMonth: 2, TransactionYear: 2026,
	}
	if err := s.Transactions.Create(ctx, &tx); err != nil {
		t.Fatalf("tx: %v", err)
	}

	if err := s.Users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	goals, err := s.Goals.ListForMonth(ctx, user.ID, 2026, 2)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("goals should cascade on user delete, got %d rows", len(goals))
	}
	total, err := s.Transactions.SumForYear(ctx, user.ID, 2026)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if !total.IsZero() {
		t.Fatalf("transactions should cascade on user delete, got %s", total)
	}
}

func TestCreateInactiveUserStaysInactive(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))

	user := models.User{
		Username:     "mallory",
		Email:        "mallory@example.com",
		PasswordHash: "x",
		FullName:     "Agent mallory",
		Role:         models.RoleAgent,
		IsActive:     false,
	}
	if err := s.Users.Create(ctx, &user); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.IsActive {
		t.Fatal("explicitly inactive user persisted as active")
	}

	agents, err := s.Users.ListActiveAgents(ctx)
	if err != nil {
		t.Fatalf("list active agents: %v", err)
	}
	for _, a := range agents {
		if a.ID == user.ID {
			t.Fatal("inactive agent present in the active roster")
		}
	}
	if _, err := s.Users.GetActiveByUsername(ctx, "mallory"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("active-only lookup should miss, got %v", err)
	}
}

func TestCreateInactiveActivityNotListed(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))

	retired := models.Activity{Name: "Fax Blasts", Category: "Cold Calling", IsActive: false}
	if err := s.Activities.Create(ctx, &retired); err != nil {
		t.Fatalf("create: %v", err)
	}
	seedActivity(t, s, "Door Knocks")

	activities, err := s.Activities.ListActive(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(activities) != 1 || activities[0].Name != "Door Knocks" {
		t.Fatalf("inactive activity leaked into the active catalog: %+v", activities)
	}
}

func TestGetActiveByUsernameSkipsDeactivated(t *testing.T) {
	ctx := context.Background()
	s := New(newTestDB(t))
	user := seedAgent(t, s, "ivan")

	if _, err := s.Users.GetActiveByUsername(ctx, "ivan"); err != nil {
		t.Fatalf("active lookup: %v", err)
	}

	if err := s.Users.Update(ctx, user.ID, user.Email, user.FullName, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := s.Users.GetActiveByUsername(ctx, "ivan"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after deactivation, got %v", err)
	}
}
