package models

import "github.com/shopspring/decimal"

// DefaultAccountType and DefaultCurrency apply when creation omits them.
const (
	DefaultAccountType = "CASH"
	DefaultCurrency    = "USD"
)

// Account represents a financial account. Its balance moves through direct
// updates or through expense creation.
type Account struct {
	Base
	Name     string          `gorm:"not null" json:"name"`
	Type     string          `gorm:"not null;default:'CASH'" json:"type"`
	Broker   string          `json:"broker"`
	Currency string          `gorm:"not null;default:'USD'" json:"currency"`
	Balance  decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0" json:"balance"`
}
