package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tradelog/internal/metrics"
	"tradelog/internal/models"
	"tradelog/internal/services"
)

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
	metrics        *metrics.Collector
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer, collector *metrics.Collector) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService, metrics: collector}
}

// CreateExpenseRequest represents the request payload for recording an
// expense. Amount accepts a JSON number or a numeric string.
type CreateExpenseRequest struct {
	AccountID   string             `json:"accountId" binding:"required,uuid"`
	Amount      decimal.Decimal    `json:"amount" binding:"gt=0,lt=1000000000000"`
	Type        models.ExpenseType `json:"type" binding:"omitempty,expense_type"`
	Category    string             `json:"category" binding:"max=100"`
	Description string             `json:"description" binding:"max=500"`
	Date        string             `json:"date" binding:"omitempty,iso_date"`
}

// ListExpensesQuery holds the expense listing filters.
type ListExpensesQuery struct {
	AccountID string `form:"accountId" binding:"omitempty,uuid"`
}

// ListExpenses returns expenses, newest first
// @Summary     List expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       accountId query string false "Filter by account"
// @Param       page      query int    false "Page number"
// @Param       pageSize  query int    false "Page size"
// @Success     200 {array}  models.Expense
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var query ListExpensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), services.ExpenseFilter{AccountID: query.AccountID}, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondWithList(c, expenses)
}

// GetExpense returns one expense
// @Summary     Get an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// CreateExpense records an expense and adjusts the account balance
// @Summary     Create an expense
// @Description DEBIT subtracts the amount from the account balance, CREDIT adds it. Both writes commit together.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), services.ExpenseInput{
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.metrics.ExpenseCreated(string(expense.Type))
	h.auditService.Log(identity.ID, services.AuditActionCreate, "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{
			"accountId": expense.AccountID,
			"amount":    expense.Amount.String(),
			"type":      string(expense.Type),
		})

	c.JSON(http.StatusOK, expense)
}
