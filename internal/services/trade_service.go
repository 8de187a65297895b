package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
)

// tradeService handles trade journal logic.
type tradeService struct {
	db *gorm.DB
}

// NewTradeService creates a new TradeServicer.
func NewTradeService(db *gorm.DB) TradeServicer {
	return &tradeService{db: db}
}

// ListTrades returns trades newest first.
func (s *tradeService) ListTrades(ctx context.Context, filter TradeFilter, page pagination.PageRequest) (*pagination.Page[models.Trade], error) {
	q := s.db.WithContext(ctx).Model(&models.Trade{})
	if filter.Symbol != "" {
		q = q.Where("symbol = ?", strings.ToUpper(filter.Symbol))
	}
	return listPage[models.Trade](q, "date DESC, created_at DESC", page)
}

// GetTrade retrieves a trade by ID.
func (s *tradeService) GetTrade(ctx context.Context, id string) (*models.Trade, error) {
	return findByID[models.Trade](ctx, s.db, id, apperrors.ErrTradeNotFound)
}

// CreateTrade records a trade. Symbols are stored upper-cased and the date
// defaults to now.
func (s *tradeService) CreateTrade(ctx context.Context, in TradeInput) (*models.Trade, error) {
	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "symbol is required")
	}

	side, err := normalizeSide(in.Side)
	if err != nil {
		return nil, err
	}
	if err := checkTradeAmounts(&in.Quantity, &in.EntryPrice, in.ExitPrice, &in.PnL); err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if in.Date != "" {
		if date, err = NormalizeTimestamp(in.Date); err != nil {
			return nil, err
		}
	}

	trade := &models.Trade{
		Symbol:     symbol,
		Side:       side,
		Quantity:   in.Quantity,
		EntryPrice: in.EntryPrice,
		ExitPrice:  in.ExitPrice,
		PnL:        in.PnL,
		Strategy:   in.Strategy,
		Notes:      in.Notes,
		Date:       date,
	}

	if err := s.db.WithContext(ctx).Create(trade).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return trade, nil
}

// UpdateTrade applies the supplied fields to a trade.
func (s *tradeService) UpdateTrade(ctx context.Context, id string, fields TradeUpdateFields) (*models.Trade, error) {
	if err := checkTradeAmounts(fields.Quantity, fields.EntryPrice, fields.ExitPrice, fields.PnL); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Symbol != nil {
		symbol := strings.ToUpper(strings.TrimSpace(*fields.Symbol))
		if symbol == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "symbol cannot be empty")
		}
		updates["symbol"] = symbol
	}
	if fields.Side != nil {
		side, err := normalizeSide(*fields.Side)
		if err != nil {
			return nil, err
		}
		updates["side"] = side
	}
	if fields.Quantity != nil {
		updates["quantity"] = *fields.Quantity
	}
	if fields.EntryPrice != nil {
		updates["entry_price"] = *fields.EntryPrice
	}
	if fields.ExitPrice != nil {
		updates["exit_price"] = *fields.ExitPrice
	}
	if fields.PnL != nil {
		updates["pnl"] = *fields.PnL
	}
	if fields.Strategy != nil {
		updates["strategy"] = *fields.Strategy
	}
	if fields.Notes != nil {
		updates["notes"] = *fields.Notes
	}
	if fields.Date != nil {
		date, err := NormalizeTimestamp(*fields.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = date
	}

	return updateByID[models.Trade](ctx, s.db, id, updates, apperrors.ErrTradeNotFound)
}

// DeleteTrade removes a trade.
func (s *tradeService) DeleteTrade(ctx context.Context, id string) error {
	return deleteByID[models.Trade](ctx, s.db, id, apperrors.ErrTradeNotFound)
}

func normalizeSide(side models.TradeSide) (models.TradeSide, error) {
	switch s := models.TradeSide(strings.ToUpper(string(side))); s {
	case "":
		return models.TradeSideBuy, nil
	case models.TradeSideBuy, models.TradeSideSell:
		return s, nil
	default:
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "side must be BUY or SELL")
	}
}

// checkTradeAmounts bounds the money fields that are set.
func checkTradeAmounts(quantity, entryPrice, exitPrice, pnl *decimal.Decimal) error {
	fields := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"quantity", quantity},
		{"entryPrice", entryPrice},
		{"exitPrice", exitPrice},
		{"pnl", pnl},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := checkMoney(f.name, *f.value); err != nil {
			return err
		}
	}
	return nil
}
