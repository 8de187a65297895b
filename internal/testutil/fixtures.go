package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tradelog/internal/models"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and a unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithUsername(t, db, fmt.Sprintf("trader%d", nextID()))
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		Role:     models.DefaultRole,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates a cash account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, decimal.Zero)
}

// CreateTestAccountWithBalance creates a cash account with the given balance.
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, balance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		Type:     models.DefaultAccountType,
		Currency: models.DefaultCurrency,
		Balance:  balance,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestExpense inserts an expense row directly, without touching the
// account balance.
func CreateTestExpense(t *testing.T, db *gorm.DB, accountID string, expenseType models.ExpenseType, amount decimal.Decimal, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		AccountID: accountID,
		Amount:    amount,
		Type:      expenseType,
		Category:  "General",
		Date:      date.UTC(),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestTrade creates a BUY trade for symbol on the given date.
func CreateTestTrade(t *testing.T, db *gorm.DB, symbol string, date time.Time) *models.Trade {
	t.Helper()

	trade := &models.Trade{
		Symbol:     symbol,
		Side:       models.TradeSideBuy,
		Quantity:   decimal.NewFromInt(10),
		EntryPrice: decimal.RequireFromString("101.25"),
		Strategy:   "breakout",
		Date:       date.UTC(),
	}
	if err := db.Create(trade).Error; err != nil {
		t.Fatalf("failed to create test trade: %v", err)
	}
	return trade
}

// CreateTestTodo creates an open todo; dueDate may be nil.
func CreateTestTodo(t *testing.T, db *gorm.DB, title string, dueDate *time.Time) *models.Todo {
	t.Helper()

	todo := &models.Todo{
		Title:    title,
		Priority: "MEDIUM",
		DueDate:  dueDate,
	}
	if err := db.Create(todo).Error; err != nil {
		t.Fatalf("failed to create test todo: %v", err)
	}
	return todo
}

// CreateTestPlan creates a plan on date spanning startTime to endTime.
func CreateTestPlan(t *testing.T, db *gorm.DB, date, startTime, endTime string) *models.Plan {
	t.Helper()

	plan := &models.Plan{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Title:     fmt.Sprintf("Test Plan %d", nextID()),
		Type:      "Trading",
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create test plan: %v", err)
	}
	return plan
}
