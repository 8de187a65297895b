package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeSide is the direction of a trade.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "BUY"
	TradeSideSell TradeSide = "SELL"
)

// Trade is a journal entry for a single position.
type Trade struct {
	Base
	Symbol     string           `gorm:"not null;index" json:"symbol"`
	Side       TradeSide        `gorm:"not null;default:'BUY'" json:"side"`
	Quantity   decimal.Decimal  `gorm:"type:numeric(20,8);not null;default:0" json:"quantity"`
	EntryPrice decimal.Decimal  `gorm:"type:numeric(20,8);not null;default:0" json:"entryPrice"`
	ExitPrice  *decimal.Decimal `gorm:"type:numeric(20,8)" json:"exitPrice,omitempty"`
	PnL        decimal.Decimal  `gorm:"column:pnl;type:numeric(20,8);not null;default:0" json:"pnl"`
	Strategy   string           `json:"strategy"`
	Notes      string           `json:"notes"`
	Date       time.Time        `gorm:"not null;index" json:"date"`
}
