package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
	"tradelog/internal/testutil"
)

// ExpenseServiceSuite exercises expense creation against a real database.
type ExpenseServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	accounts AccountServicer
	svc      ExpenseServicer
	ctx      context.Context
}

func TestExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}

// SetupTest runs before each test
func (s *ExpenseServiceSuite) SetupTest() {
	s.db = testutil.SetupTestDB(s.T())
	s.accounts = NewAccountService(s.db)
	s.svc = NewExpenseService(s.db, s.accounts)
	s.ctx = context.Background()
}

// TearDownTest runs after each test
func (s *ExpenseServiceSuite) TearDownTest() {
	testutil.TeardownTestDB(s.T(), s.db)
}

func (s *ExpenseServiceSuite) balanceOf(accountID string) decimal.Decimal {
	account, err := s.accounts.GetAccount(s.ctx, accountID)
	require.NoError(s.T(), err)
	return account.Balance
}

func (s *ExpenseServiceSuite) expenseCount() int64 {
	var count int64
	require.NoError(s.T(), s.db.Model(&models.Expense{}).Count(&count).Error)
	return count
}

func (s *ExpenseServiceSuite) TestDebitDecrementsBalance() {
	account := testutil.CreateTestAccountWithBalance(s.T(), s.db, decimal.NewFromInt(1000))

	expense, err := s.svc.CreateExpense(s.ctx, ExpenseInput{
		AccountID: account.ID,
		Amount:    decimal.RequireFromString("250.25"),
		Type:      models.ExpenseTypeDebit,
		Category:  "Food",
	})
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), expense.ID)
	assert.Equal(s.T(), models.ExpenseTypeDebit, expense.Type)

	testutil.AssertDecimal(s.T(), "749.75", s.balanceOf(account.ID))
}

func (s *ExpenseServiceSuite) TestCreditIncrementsBalance() {
	account := testutil.CreateTestAccountWithBalance(s.T(), s.db, decimal.NewFromInt(1000))

	_, err := s.svc.CreateExpense(s.ctx, ExpenseInput{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(500),
		Type:      models.ExpenseTypeCredit,
	})
	require.NoError(s.T(), err)

	testutil.AssertDecimal(s.T(), "1500", s.balanceOf(account.ID))
}

func (s *ExpenseServiceSuite) TestTypeDefaultsToDebit() {
	account := testutil.CreateTestAccountWithBalance(s.T(), s.db, decimal.NewFromInt(100))

	expense, err := s.svc.CreateExpense(s.ctx, ExpenseInput{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(40),
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ExpenseTypeDebit, expense.Type)

	testutil.AssertDecimal(s.T(), "60", s.balanceOf(account.ID))
}

func (s *ExpenseServiceSuite) TestLowercaseTypeIsAccepted() {
	account := testutil.CreateTestAccountWithBalance(s.T(), s.db, decimal.NewFromInt(100))

	expense, err := s.svc.CreateExpense(s.ctx, ExpenseInput{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(5),
		Type:      "credit",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ExpenseTypeCredit, expense.Type)
}

func (s *ExpenseServiceSuite) TestDateOnlyIsWidenedToMidnightUTC() {
	account := testutil.CreateTestAccount(s.T(), s.db)

	expense, err := s.svc.CreateExpense(s.ctx, ExpenseInput{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(1),
		Date:      "2025-12-15",
	})
	require.NoError(s.T(), err)
	assert.True(s.T(), expense.Date.Equal(time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)))
}

func (s *ExpenseServiceSuite) TestMissingAccountLeavesNoExpense() {
	_, err := s.svc.CreateExpense(s.ctx, ExpenseInput{
		AccountID: "0192f6a0-0000-7000-8000-000000000000",
		Amount:    decimal.NewFromInt(10),
	})
	testutil.AssertAppError(s.T(), err, "ACCOUNT_NOT_FOUND")
	assert.Zero(s.T(), s.expenseCount())
}

func (s *ExpenseServiceSuite) TestFailedInsertRollsBackBalance() {
	account := testutil.CreateTestAccountWithBalance(s.T(), s.db, decimal.NewFromInt(1000))

	err := s.db.Callback().Create().Before("gorm:create").Register("test:fail_expense_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "expenses" {
			_ = tx.AddError(errors.New("disk full"))
		}
	})
	require.NoError(s.T(), err)

	_, err = s.svc.CreateExpense(s.ctx, ExpenseInput{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(300),
	})
	testutil.AssertAppError(s.T(), err, "INTERNAL_ERROR")

	testutil.AssertDecimal(s.T(), "1000", s.balanceOf(account.ID))
	assert.Zero(s.T(), s.expenseCount())
}

func (s *ExpenseServiceSuite) TestOutOfRangeAmountLeavesBalanceUntouched() {
	account := testutil.CreateTestAccountWithBalance(s.T(), s.db, decimal.RequireFromString("999999999999"))

	_, err := s.svc.CreateExpense(s.ctx, ExpenseInput{
		AccountID: account.ID,
		Amount:    decimal.New(1, 13),
	})
	testutil.AssertAppError(s.T(), err, "AMOUNT_OUT_OF_RANGE")

	_, err = s.svc.CreateExpense(s.ctx, ExpenseInput{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(1),
		Type:      models.ExpenseTypeCredit,
	})
	testutil.AssertAppError(s.T(), err, "AMOUNT_OUT_OF_RANGE")

	testutil.AssertDecimal(s.T(), "999999999999", s.balanceOf(account.ID))
	assert.Zero(s.T(), s.expenseCount())

	_, err = s.svc.CreateExpense(s.ctx, ExpenseInput{AccountID: account.ID, Amount: decimal.NewFromInt(1)})
	require.NoError(s.T(), err)
	testutil.AssertDecimal(s.T(), "999999999998", s.balanceOf(account.ID))
}

func (s *ExpenseServiceSuite) TestRejectsInvalidInput() {
	account := testutil.CreateTestAccount(s.T(), s.db)

	cases := []struct {
		name string
		in   ExpenseInput
		code string
	}{
		{"missing account", ExpenseInput{Amount: decimal.NewFromInt(1)}, "INVALID_INPUT"},
		{"zero amount", ExpenseInput{AccountID: account.ID}, "INVALID_AMOUNT"},
		{"negative amount", ExpenseInput{AccountID: account.ID, Amount: decimal.NewFromInt(-5)}, "INVALID_AMOUNT"},
		{"overflowing amount", ExpenseInput{AccountID: account.ID, Amount: decimal.New(1, 400)}, "AMOUNT_OUT_OF_RANGE"},
		{"unknown type", ExpenseInput{AccountID: account.ID, Amount: decimal.NewFromInt(1), Type: "REFUND"}, "INVALID_EXPENSE_TYPE"},
		{"bad date", ExpenseInput{AccountID: account.ID, Amount: decimal.NewFromInt(1), Date: "15/12/2025"}, "INVALID_DATE"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.svc.CreateExpense(s.ctx, tc.in)
			testutil.AssertAppError(s.T(), err, tc.code)
		})
	}
	assert.Zero(s.T(), s.expenseCount())
}

func (s *ExpenseServiceSuite) TestConcurrentDebitsDoNotLoseUpdates() {
	account := testutil.CreateTestAccountWithBalance(s.T(), s.db, decimal.NewFromInt(1000))

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.CreateExpense(s.ctx, ExpenseInput{
				AccountID: account.ID,
				Amount:    decimal.NewFromInt(10),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(s.T(), err)
	}
	testutil.AssertDecimal(s.T(), "800", s.balanceOf(account.ID))
	assert.Equal(s.T(), int64(workers), s.expenseCount())
}

func (s *ExpenseServiceSuite) TestListFiltersByAccountNewestFirst() {
	first := testutil.CreateTestAccount(s.T(), s.db)
	second := testutil.CreateTestAccount(s.T(), s.db)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	older := testutil.CreateTestExpense(s.T(), s.db, first.ID, models.ExpenseTypeDebit, decimal.NewFromInt(5), base)
	newer := testutil.CreateTestExpense(s.T(), s.db, first.ID, models.ExpenseTypeCredit, decimal.NewFromInt(7), base.Add(48*time.Hour))
	testutil.CreateTestExpense(s.T(), s.db, second.ID, models.ExpenseTypeDebit, decimal.NewFromInt(9), base)

	page, err := s.svc.ListExpenses(s.ctx, ExpenseFilter{AccountID: first.ID}, pagination.PageRequest{})
	require.NoError(s.T(), err)
	require.Len(s.T(), page.Items, 2)
	assert.Equal(s.T(), int64(2), page.Total)
	assert.Equal(s.T(), newer.ID, page.Items[0].ID)
	assert.Equal(s.T(), older.ID, page.Items[1].ID)

	all, err := s.svc.ListExpenses(s.ctx, ExpenseFilter{}, pagination.PageRequest{Page: 1, PageSize: 2})
	require.NoError(s.T(), err)
	assert.Len(s.T(), all.Items, 2)
	assert.Equal(s.T(), int64(3), all.Total)
}

func (s *ExpenseServiceSuite) TestGetExpense() {
	account := testutil.CreateTestAccount(s.T(), s.db)
	expense := testutil.CreateTestExpense(s.T(), s.db, account.ID, models.ExpenseTypeDebit, decimal.NewFromInt(5), time.Now())

	got, err := s.svc.GetExpense(s.ctx, expense.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), expense.ID, got.ID)
	testutil.AssertDecimal(s.T(), "5", got.Amount)

	_, err = s.svc.GetExpense(s.ctx, "0192f6a0-0000-7000-8000-000000000000")
	assert.ErrorIs(s.T(), err, apperrors.ErrExpenseNotFound)
}
