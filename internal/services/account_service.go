package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// ListAccounts returns accounts in creation order.
func (s *accountService) ListAccounts(ctx context.Context, page pagination.PageRequest) (*pagination.Page[models.Account], error) {
	q := s.db.WithContext(ctx).Model(&models.Account{})
	return listPage[models.Account](q, "created_at ASC, id ASC", page)
}

// GetAccount retrieves an account by ID.
func (s *accountService) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	return findByID[models.Account](ctx, s.db, id, apperrors.ErrAccountNotFound)
}

// CreateAccount creates an account, defaulting type and currency.
func (s *accountService) CreateAccount(ctx context.Context, in AccountInput) (*models.Account, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	if err := checkMoney("balance", in.Balance); err != nil {
		return nil, err
	}

	account := &models.Account{
		Name:     name,
		Type:     in.Type,
		Broker:   in.Broker,
		Currency: strings.ToUpper(in.Currency),
		Balance:  in.Balance,
	}
	if account.Type == "" {
		account.Type = models.DefaultAccountType
	}
	if account.Currency == "" {
		account.Currency = models.DefaultCurrency
	}

	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// UpdateAccount applies the supplied fields. Setting the balance directly is
// allowed; expenses adjust it relative to whatever it holds.
func (s *accountService) UpdateAccount(ctx context.Context, id string, fields AccountUpdateFields) (*models.Account, error) {
	updates := make(map[string]interface{})
	if fields.Name != nil {
		name := strings.TrimSpace(*fields.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name cannot be empty")
		}
		updates["name"] = name
	}
	if fields.Type != nil && *fields.Type != "" {
		updates["type"] = *fields.Type
	}
	if fields.Broker != nil {
		updates["broker"] = *fields.Broker
	}
	if fields.Currency != nil && *fields.Currency != "" {
		updates["currency"] = strings.ToUpper(*fields.Currency)
	}
	if fields.Balance != nil {
		if err := checkMoney("balance", *fields.Balance); err != nil {
			return nil, err
		}
		updates["balance"] = *fields.Balance
	}

	return updateByID[models.Account](ctx, s.db, id, updates, apperrors.ErrAccountNotFound)
}

// DeleteAccount removes an account. Accounts still referenced by expenses
// cannot be removed where the store enforces the foreign key.
func (s *accountService) DeleteAccount(ctx context.Context, id string) error {
	err := deleteByID[models.Account](ctx, s.db, id, apperrors.ErrAccountNotFound)
	if err != nil && errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.Wrap(apperrors.ErrAccountInUse, err)
	}
	return err
}

// AdjustBalance adds delta to the account balance in a single statement so
// concurrent adjustments never lose updates. It must run inside tx.
// Adjustments that would push the balance out of the storable range fail
// with AMOUNT_OUT_OF_RANGE.
func (s *accountService) AdjustBalance(tx *gorm.DB, accountID string, delta decimal.Decimal) error {
	if err := checkMoney("amount", delta); err != nil {
		return err
	}

	var current models.Account
	if err := tx.Select("id", "balance").Where("id = ?", accountID).Take(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := checkMoney("resulting balance", current.Balance.Add(delta)); err != nil {
		return err
	}

	result := tx.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
