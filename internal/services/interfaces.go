package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tradelog/internal/models"
	"tradelog/internal/pagination"
)

// UserServicer defines the contract for the credential store.
type UserServicer interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// TradeFilter narrows a trade listing.
type TradeFilter struct {
	Symbol string
}

// TradeInput holds the fields of a new trade. Date accepts YYYY-MM-DD or RFC 3339.
type TradeInput struct {
	Symbol     string
	Side       models.TradeSide
	Quantity   decimal.Decimal
	EntryPrice decimal.Decimal
	ExitPrice  *decimal.Decimal
	PnL        decimal.Decimal
	Strategy   string
	Notes      string
	Date       string
}

// TradeUpdateFields holds the optional fields of a trade update.
type TradeUpdateFields struct {
	Symbol     *string
	Side       *models.TradeSide
	Quantity   *decimal.Decimal
	EntryPrice *decimal.Decimal
	ExitPrice  *decimal.Decimal
	PnL        *decimal.Decimal
	Strategy   *string
	Notes      *string
	Date       *string
}

// TradeServicer defines the contract for trade journal records.
type TradeServicer interface {
	ListTrades(ctx context.Context, filter TradeFilter, page pagination.PageRequest) (*pagination.Page[models.Trade], error)
	GetTrade(ctx context.Context, id string) (*models.Trade, error)
	CreateTrade(ctx context.Context, in TradeInput) (*models.Trade, error)
	UpdateTrade(ctx context.Context, id string, fields TradeUpdateFields) (*models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error
}

// AccountInput holds the fields of a new account.
type AccountInput struct {
	Name     string
	Type     string
	Broker   string
	Currency string
	Balance  decimal.Decimal
}

// AccountUpdateFields holds the optional fields of an account update.
type AccountUpdateFields struct {
	Name     *string
	Type     *string
	Broker   *string
	Currency *string
	Balance  *decimal.Decimal
}

// AccountServicer defines the contract for account records.
type AccountServicer interface {
	ListAccounts(ctx context.Context, page pagination.PageRequest) (*pagination.Page[models.Account], error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	CreateAccount(ctx context.Context, in AccountInput) (*models.Account, error)
	UpdateAccount(ctx context.Context, id string, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(ctx context.Context, id string) error
	AdjustBalance(tx *gorm.DB, accountID string, delta decimal.Decimal) error
}

// ExpenseFilter narrows an expense listing.
type ExpenseFilter struct {
	AccountID string
}

// ExpenseInput holds the fields of a new expense. Type defaults to DEBIT and
// Date (YYYY-MM-DD or RFC 3339) defaults to now.
type ExpenseInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Type        models.ExpenseType
	Category    string
	Description string
	Date        string
}

// ExpenseServicer defines the contract for expense records.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context, filter ExpenseFilter, page pagination.PageRequest) (*pagination.Page[models.Expense], error)
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	CreateExpense(ctx context.Context, in ExpenseInput) (*models.Expense, error)
}

// TodoFilter narrows a todo listing.
type TodoFilter struct {
	Completed *bool
}

// TodoInput holds the fields of a new todo. DueDate is optional.
type TodoInput struct {
	Title       string
	Description string
	Completed   bool
	Priority    string
	DueDate     string
}

// TodoUpdateFields holds the optional fields of a todo patch.
type TodoUpdateFields struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	DueDate     *string
}

// TodoServicer defines the contract for todo records.
type TodoServicer interface {
	ListTodos(ctx context.Context, filter TodoFilter, page pagination.PageRequest) (*pagination.Page[models.Todo], error)
	GetTodo(ctx context.Context, id string) (*models.Todo, error)
	CreateTodo(ctx context.Context, in TodoInput) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id string, fields TodoUpdateFields) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}

// PlanInput holds the fields of a new plan.
type PlanInput struct {
	Date      string
	StartTime string
	EndTime   string
	Title     string
	Type      string
	Notes     string
}

// PlanUpdateFields holds the optional fields of a plan update.
type PlanUpdateFields struct {
	Date      *string
	StartTime *string
	EndTime   *string
	Title     *string
	Type      *string
	Notes     *string
}

// PlanServicer defines the contract for calendar plans.
type PlanServicer interface {
	ListPlans(ctx context.Context, date string, page pagination.PageRequest) (*pagination.Page[models.Plan], error)
	GetPlan(ctx context.Context, id string) (*models.Plan, error)
	CreatePlan(ctx context.Context, in PlanInput) (*models.Plan, error)
	UpdatePlan(ctx context.Context, id string, fields PlanUpdateFields) (*models.Plan, error)
	DeletePlan(ctx context.Context, id string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
