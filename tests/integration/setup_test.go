package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"tradelog/internal/auth"
	"tradelog/internal/logger"
	"tradelog/internal/metrics"
	"tradelog/internal/server"
	"tradelog/internal/services"
	"tradelog/internal/testutil"
	"tradelog/internal/validator"
)

const testSecret = "integration-test-secret"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Tokens *auth.TokenService
}

type sqlPinger struct{ db *gorm.DB }

func (p sqlPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	accountService := services.NewAccountService(db)
	tokens := auth.NewTokenService(testSecret, time.Hour)
	reg := prometheus.NewRegistry()

	router := server.NewRouter(server.Dependencies{
		Users:          services.NewUserService(db, services.WithBcryptCost(4)),
		Trades:         services.NewTradeService(db),
		Accounts:       accountService,
		Expenses:       services.NewExpenseService(db, accountService),
		Todos:          services.NewTodoService(db),
		Plans:          services.NewPlanService(db),
		Audit:          services.NewAuditService(db),
		Tokens:         tokens,
		Database:       sqlPinger{db: db},
		Registry:       reg,
		Metrics:        metrics.New(reg),
		AllowedOrigins: []string{"*"},
		RequestTimeout: 5 * time.Second,
	})

	return &testApp{DB: db, Router: router, Tokens: tokens}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses a list response body.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// registerUser registers a new user.
func (app *testApp) registerUser(t *testing.T, username, password string) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/auth/register", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
}

// loginUser logs in and returns the bearer token.
func (app *testApp) loginUser(t *testing.T, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// signIn registers and logs in a fresh user.
func (app *testApp) signIn(t *testing.T) string {
	t.Helper()
	app.registerUser(t, "trader", "password123")
	return app.loginUser(t, "trader", "password123")
}

// create POSTs body to path and returns the id of the created record.
func (app *testApp) create(t *testing.T, path, body, token string) string {
	t.Helper()
	rec := app.request("POST", path, body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("create %s failed: %d %s", path, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(string)
}

// requestWithHeader sends a request with a raw Authorization header.
func (app *testApp) requestWithHeader(method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", authorization)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}
