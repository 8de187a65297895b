package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType selects the direction of the balance adjustment.
type ExpenseType string

const (
	// ExpenseTypeDebit decrements the linked account balance.
	ExpenseTypeDebit ExpenseType = "DEBIT"
	// ExpenseTypeCredit increments the linked account balance.
	ExpenseTypeCredit ExpenseType = "CREDIT"
)

// Expense is a money movement against an account.
type Expense struct {
	Base
	AccountID   string          `gorm:"type:uuid;not null;index" json:"accountId"`
	Account     *Account        `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"amount"`
	Type        ExpenseType     `gorm:"not null;default:'DEBIT'" json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}

// BalanceDelta returns the signed change the expense applies to its account.
func (e *Expense) BalanceDelta() decimal.Decimal {
	if e.Type == ExpenseTypeCredit {
		return e.Amount
	}
	return e.Amount.Neg()
}
