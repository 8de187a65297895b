package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db             *gorm.DB
	accountService AccountServicer
	now            func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, accountService AccountServicer) ExpenseServicer {
	return &expenseService{
		db:             db,
		accountService: accountService,
		now:            time.Now,
	}
}

// ListExpenses returns expenses newest first, optionally for one account.
func (s *expenseService) ListExpenses(ctx context.Context, filter ExpenseFilter, page pagination.PageRequest) (*pagination.Page[models.Expense], error) {
	q := s.db.WithContext(ctx).Model(&models.Expense{})
	if filter.AccountID != "" {
		q = q.Where("account_id = ?", filter.AccountID)
	}
	return listPage[models.Expense](q, "date DESC, created_at DESC", page)
}

// GetExpense retrieves an expense by ID.
func (s *expenseService) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	return findByID[models.Expense](ctx, s.db, id, apperrors.ErrExpenseNotFound)
}

// CreateExpense records an expense and moves the linked account balance in
// one transaction: DEBIT subtracts the amount, CREDIT adds it. Either both
// writes commit or neither does.
func (s *expenseService) CreateExpense(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	if in.AccountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "accountId is required")
	}
	if !in.Amount.IsPositive() {
		return nil, apperrors.ErrNonPositiveAmount
	}
	if err := checkMoney("amount", in.Amount); err != nil {
		return nil, err
	}

	expenseType := models.ExpenseType(strings.ToUpper(string(in.Type)))
	switch expenseType {
	case "":
		expenseType = models.ExpenseTypeDebit
	case models.ExpenseTypeDebit, models.ExpenseTypeCredit:
	default:
		return nil, apperrors.ErrInvalidExpenseType
	}

	date := s.now().UTC()
	if in.Date != "" {
		parsed, err := NormalizeTimestamp(in.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	expense := &models.Expense{
		AccountID:   in.AccountID,
		Amount:      in.Amount,
		Type:        expenseType,
		Category:    in.Category,
		Description: in.Description,
		Date:        date,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.accountService.AdjustBalance(tx, expense.AccountID, expense.BalanceDelta()); err != nil {
			return err
		}
		if err := tx.Create(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}
