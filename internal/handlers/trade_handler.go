package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tradelog/internal/models"
	"tradelog/internal/services"
)

// TradeHandler handles trade journal requests.
type TradeHandler struct {
	tradeService services.TradeServicer
	auditService services.AuditServicer
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService services.TradeServicer, auditService services.AuditServicer) *TradeHandler {
	return &TradeHandler{tradeService: tradeService, auditService: auditService}
}

// CreateTradeRequest represents the request payload for recording a trade.
type CreateTradeRequest struct {
	Symbol     string           `json:"symbol" binding:"required,max=32"`
	Side       models.TradeSide `json:"side" binding:"omitempty,trade_side"`
	Quantity   decimal.Decimal  `json:"quantity" binding:"gte=0,lt=1000000000000"`
	EntryPrice decimal.Decimal  `json:"entryPrice" binding:"gte=0,lt=1000000000000"`
	ExitPrice  *decimal.Decimal `json:"exitPrice" binding:"omitempty,gte=0,lt=1000000000000"`
	PnL        decimal.Decimal  `json:"pnl" binding:"gt=-1000000000000,lt=1000000000000"`
	Strategy   string           `json:"strategy" binding:"max=100"`
	Notes      string           `json:"notes" binding:"max=2000"`
	Date       string           `json:"date" binding:"omitempty,iso_date"`
}

// UpdateTradeRequest represents the request payload for updating a trade.
// Absent fields are left unchanged.
type UpdateTradeRequest struct {
	Symbol     *string           `json:"symbol" binding:"omitempty,min=1,max=32"`
	Side       *models.TradeSide `json:"side" binding:"omitempty,trade_side"`
	Quantity   *decimal.Decimal  `json:"quantity" binding:"omitempty,gte=0,lt=1000000000000"`
	EntryPrice *decimal.Decimal  `json:"entryPrice" binding:"omitempty,gte=0,lt=1000000000000"`
	ExitPrice  *decimal.Decimal  `json:"exitPrice" binding:"omitempty,gte=0,lt=1000000000000"`
	PnL        *decimal.Decimal  `json:"pnl" binding:"omitempty,gt=-1000000000000,lt=1000000000000"`
	Strategy   *string           `json:"strategy" binding:"omitempty,max=100"`
	Notes      *string           `json:"notes" binding:"omitempty,max=2000"`
	Date       *string           `json:"date" binding:"omitempty,iso_date"`
}

// ListTradesQuery holds the trade listing filters.
type ListTradesQuery struct {
	Symbol string `form:"symbol" binding:"max=32"`
}

// ListTrades returns trades, newest first
// @Summary     List trades
// @Tags        trades
// @Produce     json
// @Security    BearerAuth
// @Param       symbol   query string false "Filter by symbol"
// @Param       page     query int    false "Page number"
// @Param       pageSize query int    false "Page size"
// @Success     200 {array}  models.Trade
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades [get]
func (h *TradeHandler) ListTrades(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var query ListTradesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	trades, err := h.tradeService.ListTrades(c.Request.Context(), services.TradeFilter{Symbol: query.Symbol}, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondWithList(c, trades)
}

// GetTrade returns one trade
// @Summary     Get a trade
// @Tags        trades
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trade ID"
// @Success     200 {object} models.Trade
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Router      /trades/{id} [get]
func (h *TradeHandler) GetTrade(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trade, err := h.tradeService.GetTrade(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}

// CreateTrade records a trade
// @Summary     Create a trade
// @Tags        trades
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTradeRequest true "Trade details"
// @Success     200 {object} models.Trade
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades [post]
func (h *TradeHandler) CreateTrade(c *gin.Context) {
	var req CreateTradeRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	trade, err := h.tradeService.CreateTrade(c.Request.Context(), services.TradeInput{
		Symbol:     req.Symbol,
		Side:       req.Side,
		Quantity:   req.Quantity,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		PnL:        req.PnL,
		Strategy:   req.Strategy,
		Notes:      req.Notes,
		Date:       req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}

// UpdateTrade updates a trade
// @Summary     Update a trade
// @Tags        trades
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Trade ID"
// @Param       request body UpdateTradeRequest true "Fields to change"
// @Success     200 {object} models.Trade
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Router      /trades/{id} [put]
func (h *TradeHandler) UpdateTrade(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTradeRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	trade, err := h.tradeService.UpdateTrade(c.Request.Context(), id, services.TradeUpdateFields{
		Symbol:     req.Symbol,
		Side:       req.Side,
		Quantity:   req.Quantity,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		PnL:        req.PnL,
		Strategy:   req.Strategy,
		Notes:      req.Notes,
		Date:       req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}

// DeleteTrade removes a trade
// @Summary     Delete a trade
// @Tags        trades
// @Security    BearerAuth
// @Param       id path string true "Trade ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Router      /trades/{id} [delete]
func (h *TradeHandler) DeleteTrade(c *gin.Context) {
	deleteRecord(c, h.auditService, "trade", h.tradeService.DeleteTrade)
}
