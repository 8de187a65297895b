package testutil_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"users", "trades", "accounts", "expenses", "todos", "plans", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolation(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestAccount(t, first)

	var count int64
	second.Model(&models.Account{}).Count(&count)
	if count != 0 {
		t.Errorf("expected second database to be empty, found %d accounts", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}
	if user.Role != models.DefaultRole {
		t.Errorf("expected role %s, got %s", models.DefaultRole, user.Role)
	}

	account := testutil.CreateTestAccountWithBalance(t, db, decimal.NewFromInt(5000))
	if !account.Balance.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected balance 5000, got %s", account.Balance)
	}

	now := time.Now()
	expense := testutil.CreateTestExpense(t, db, account.ID, models.ExpenseTypeDebit, decimal.NewFromInt(25), now)
	if expense.AccountID != account.ID {
		t.Errorf("expected account %s, got %s", account.ID, expense.AccountID)
	}

	trade := testutil.CreateTestTrade(t, db, "AAPL", now)
	if trade.Side != models.TradeSideBuy {
		t.Errorf("expected BUY, got %s", trade.Side)
	}

	todo := testutil.CreateTestTodo(t, db, "Review journal", nil)
	if todo.Completed {
		t.Error("expected new todo to be open")
	}

	plan := testutil.CreateTestPlan(t, db, "2025-12-15", "09:30", "10:00")
	if plan.Date != "2025-12-15" {
		t.Errorf("expected plan date 2025-12-15, got %s", plan.Date)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrAccountNotFound, "custom message")
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
