package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"tradelog/internal/models"
)

func accountBalance(t *testing.T, app *testApp, id, token string) float64 {
	t.Helper()
	rec := app.request("GET", "/api/accounts/"+id, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get account failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["balance"].(float64)
}

func TestExpenseFlow_DebitAndCreditMoveBalance(t *testing.T) {
	app := setupApp(t)
	token := app.signIn(t)

	accountID := app.create(t, "/api/accounts", `{"name":"Cash","balance":1000}`, token)

	rec := app.request("POST", "/api/expenses",
		fmt.Sprintf(`{"accountId":%q,"amount":150,"type":"DEBIT","category":"food","date":"2025-12-15"}`, accountID), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)
	if expense["date"] != "2025-12-15T00:00:00Z" {
		t.Errorf("expected date widened to midnight UTC, got %v", expense["date"])
	}
	if got := accountBalance(t, app, accountID, token); got != 850 {
		t.Fatalf("expected balance 850 after debit, got %v", got)
	}

	rec = app.request("POST", "/api/expenses",
		fmt.Sprintf(`{"accountId":%q,"amount":"200.25","type":"CREDIT"}`, accountID), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := accountBalance(t, app, accountID, token); got != 1050.25 {
		t.Fatalf("expected balance 1050.25 after credit, got %v", got)
	}

	rec = app.request("GET", "/api/expenses?accountId="+accountID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items := parseJSONArray(t, rec)
	if len(items) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(items))
	}
	// Newest date first; the credit defaulted to now.
	if items[0]["type"] != "CREDIT" || items[1]["type"] != "DEBIT" {
		t.Errorf("unexpected order: %v, %v", items[0]["type"], items[1]["type"])
	}
	if rec.Header().Get("X-Total-Count") != "2" {
		t.Errorf("expected X-Total-Count 2, got %q", rec.Header().Get("X-Total-Count"))
	}

	rec = app.request("GET", "/api/expenses/"+expense["id"].(string), "", token)
	if rec.Code != http.StatusOK || parseJSON(t, rec)["category"] != "food" {
		t.Errorf("expected stored expense, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestExpenseFlow_MissingAccountLeavesNoTrace(t *testing.T) {
	app := setupApp(t)
	token := app.signIn(t)

	rec := app.request("POST", "/api/expenses",
		`{"accountId":"0192f6a0-0000-7000-8000-00000000dead","amount":10}`, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "ACCOUNT_NOT_FOUND" {
		t.Errorf("expected ACCOUNT_NOT_FOUND, got %s", code)
	}

	var count int64
	app.DB.Model(&models.Expense{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no expense rows, got %d", count)
	}
}

func TestExpenseFlow_InvalidInputDoesNotTouchBalance(t *testing.T) {
	app := setupApp(t)
	token := app.signIn(t)
	accountID := app.create(t, "/api/accounts", `{"name":"Cash","balance":500}`, token)

	bodies := []string{
		fmt.Sprintf(`{"accountId":%q,"amount":0}`, accountID),
		fmt.Sprintf(`{"accountId":%q,"amount":-20}`, accountID),
		fmt.Sprintf(`{"accountId":%q,"amount":1e400}`, accountID),
		fmt.Sprintf(`{"accountId":%q,"amount":1000000000000}`, accountID),
		fmt.Sprintf(`{"accountId":%q,"amount":20,"type":"REFUND"}`, accountID),
		fmt.Sprintf(`{"accountId":%q,"amount":20,"date":"not-a-date"}`, accountID),
	}
	for _, body := range bodies {
		rec := app.request("POST", "/api/expenses", body, token)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %s, got %d", body, rec.Code)
		}
	}

	if got := accountBalance(t, app, accountID, token); got != 500 {
		t.Errorf("expected untouched balance 500, got %v", got)
	}
}

func TestExpenseFlow_ConcurrentDebits(t *testing.T) {
	app := setupApp(t)
	token := app.signIn(t)
	accountID := app.create(t, "/api/accounts", `{"name":"Cash","balance":1000}`, token)

	const n = 10
	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := app.request("POST", "/api/expenses",
				fmt.Sprintf(`{"accountId":%q,"amount":10}`, accountID), token)
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusOK {
			t.Fatalf("request %d failed with %d", i, code)
		}
	}

	var account models.Account
	if err := app.DB.First(&account, "id = ?", accountID).Error; err != nil {
		t.Fatal(err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(900)) {
		t.Errorf("expected balance 900, got %s", account.Balance)
	}
}

func TestAccountFlow_CRUD(t *testing.T) {
	app := setupApp(t)
	token := app.signIn(t)

	rec := app.request("POST", "/api/accounts", `{"name":"Brokerage","broker":"IBKR","currency":"eur"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for lowercase currency, got %d", rec.Code)
	}

	id := app.create(t, "/api/accounts", `{"name":"Brokerage","broker":"IBKR"}`, token)

	rec = app.request("GET", "/api/accounts/"+id, "", token)
	account := parseJSON(t, rec)
	if account["type"] != models.DefaultAccountType || account["currency"] != models.DefaultCurrency || account["balance"] != 0.0 {
		t.Errorf("expected defaults, got %v", account)
	}

	rec = app.request("PUT", "/api/accounts/"+id, `{"name":"Main brokerage","balance":2500}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)
	if updated["name"] != "Main brokerage" || updated["balance"] != 2500.0 || updated["broker"] != "IBKR" {
		t.Errorf("unexpected update result %v", updated)
	}

	rec = app.request("DELETE", "/api/accounts/"+id, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/accounts/"+id, "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/accounts/"+id, "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeated delete, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/accounts/not-a-uuid", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestAccountFlow_OutOfRangeBalanceIsRejected(t *testing.T) {
	app := setupApp(t)
	token := app.signIn(t)

	rec := app.request("POST", "/api/accounts", `{"name":"Huge","balance":1e400}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	id := app.create(t, "/api/accounts", `{"name":"Cash","balance":100}`, token)
	rec = app.request("PUT", "/api/accounts/"+id, `{"balance":-1e400}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := accountBalance(t, app, id, token); got != 100 {
		t.Errorf("expected untouched balance 100, got %v", got)
	}

	rec = app.request("GET", "/api/accounts", "", token)
	if rec.Code != http.StatusOK || len(parseJSONArray(t, rec)) != 1 {
		t.Errorf("expected one readable account, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestAccountFlow_DeleteWithExpensesConflicts(t *testing.T) {
	app := setupApp(t)
	token := app.signIn(t)
	accountID := app.create(t, "/api/accounts", `{"name":"Cash","balance":100}`, token)
	expenseID := app.create(t, "/api/expenses", fmt.Sprintf(`{"accountId":%q,"amount":10}`, accountID), token)

	rec := app.request("DELETE", "/api/accounts/"+accountID, "", token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "ACCOUNT_IN_USE" {
		t.Errorf("expected ACCOUNT_IN_USE, got %s", code)
	}

	if got := accountBalance(t, app, accountID, token); got != 90 {
		t.Errorf("expected balance 90, got %v", got)
	}
	rec = app.request("GET", "/api/expenses/"+expenseID, "", token)
	if rec.Code != http.StatusOK {
		t.Errorf("expected expense to survive, got %d", rec.Code)
	}
}
