package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
	"tradelog/internal/services"
)

type mockExpenseService struct {
	listExpensesFn  func(filter services.ExpenseFilter, page pagination.PageRequest) (*pagination.Page[models.Expense], error)
	getExpenseFn    func(id string) (*models.Expense, error)
	createExpenseFn func(in services.ExpenseInput) (*models.Expense, error)
}

func (m *mockExpenseService) ListExpenses(_ context.Context, filter services.ExpenseFilter, page pagination.PageRequest) (*pagination.Page[models.Expense], error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(filter, page)
	}
	return pagination.NewPage[models.Expense](nil, 0), nil
}

func (m *mockExpenseService) GetExpense(_ context.Context, id string) (*models.Expense, error) {
	if m.getExpenseFn != nil {
		return m.getExpenseFn(id)
	}
	return nil, apperrors.ErrExpenseNotFound
}

func (m *mockExpenseService) CreateExpense(_ context.Context, in services.ExpenseInput) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(in)
	}
	return &models.Expense{AccountID: in.AccountID, Amount: in.Amount, Type: in.Type}, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

const testExpenseID = "0192f6a0-dddd-7000-8000-000000000004"

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/expenses", handler.ListExpenses)
	auth.POST("/expenses", handler.CreateExpense)
	auth.GET("/expenses/:id", handler.GetExpense)
	return r
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 200 and audits", func(t *testing.T) {
		var got services.ExpenseInput
		expenseSvc := &mockExpenseService{
			createExpenseFn: func(in services.ExpenseInput) (*models.Expense, error) {
				got = in
				return &models.Expense{
					Base:      models.Base{ID: testExpenseID},
					AccountID: in.AccountID,
					Amount:    in.Amount,
					Type:      models.ExpenseTypeDebit,
					Category:  in.Category,
					Date:      time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupExpenseRouter(NewExpenseHandler(expenseSvc, audit, nil))

		rec := doRequest(r, "POST", "/expenses",
			`{"accountId":"`+testAccountID+`","amount":150,"category":"food","date":"2025-12-15"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.AccountID != testAccountID || !got.Amount.Equal(decimal.NewFromInt(150)) || got.Type != "" {
			t.Errorf("unexpected input %+v", got)
		}

		result := parseJSON(t, rec)
		if result["type"] != "DEBIT" || result["amount"] != 150.0 {
			t.Errorf("unexpected response %v", result)
		}
		if result["date"] != "2025-12-15T00:00:00Z" {
			t.Errorf("expected widened date, got %v", result["date"])
		}

		if len(audit.entries) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
		}
		entry := audit.entries[0]
		if entry.action != services.AuditActionCreate || entry.resourceType != "expense" || entry.resourceID != testExpenseID {
			t.Errorf("unexpected audit entry %+v", entry)
		}
	})

	t.Run("returns 404 when the account is missing", func(t *testing.T) {
		expenseSvc := &mockExpenseService{
			createExpenseFn: func(services.ExpenseInput) (*models.Expense, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		audit := &mockAuditService{}
		r := setupExpenseRouter(NewExpenseHandler(expenseSvc, audit, nil))

		rec := doRequest(r, "POST", "/expenses", `{"accountId":"`+testAccountID+`","amount":10}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
		if len(audit.entries) != 0 {
			t.Error("failed create must not be audited")
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing accountId", `{"amount":10}`},
		{"non-uuid accountId", `{"accountId":"abc","amount":10}`},
		{"zero amount", `{"accountId":"` + testAccountID + `","amount":0}`},
		{"negative amount", `{"accountId":"` + testAccountID + `","amount":-5}`},
		{"amount at the storage limit", `{"accountId":"` + testAccountID + `","amount":1000000000000}`},
		{"overflowing amount", `{"accountId":"` + testAccountID + `","amount":1e400}`},
		{"unknown type", `{"accountId":"` + testAccountID + `","amount":5,"type":"REFUND"}`},
		{"malformed date", `{"accountId":"` + testAccountID + `","amount":5,"date":"yesterday"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}, nil))

			rec := doRequest(r, "POST", "/expenses", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestExpenseHandler_ListExpenses(t *testing.T) {
	var gotFilter services.ExpenseFilter
	expenseSvc := &mockExpenseService{
		listExpensesFn: func(filter services.ExpenseFilter, _ pagination.PageRequest) (*pagination.Page[models.Expense], error) {
			gotFilter = filter
			return pagination.NewPage([]models.Expense{{AccountID: filter.AccountID}}, 1), nil
		},
	}
	r := setupExpenseRouter(NewExpenseHandler(expenseSvc, &mockAuditService{}, nil))

	rec := doRequest(r, "GET", "/expenses?accountId="+testAccountID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.AccountID != testAccountID {
		t.Errorf("expected account filter, got %+v", gotFilter)
	}
	if items := parseJSONArray(t, rec); len(items) != 1 {
		t.Errorf("expected 1 expense, got %d", len(items))
	}

	rec = doRequest(r, "GET", "/expenses?accountId=nope", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed accountId, got %d", rec.Code)
	}
}

func TestExpenseHandler_GetExpense(t *testing.T) {
	r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}, nil))

	rec := doRequest(r, "GET", "/expenses/"+testExpenseID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "EXPENSE_NOT_FOUND")
}
