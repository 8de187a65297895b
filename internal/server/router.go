// Package server assembles the HTTP router shared by the API binary and the
// integration tests.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tradelog/internal/auth"
	"tradelog/internal/handlers"
	"tradelog/internal/metrics"
	"tradelog/internal/middleware"
	"tradelog/internal/services"

	_ "tradelog/internal/docs" // Import swagger docs
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Users    services.UserServicer
	Trades   services.TradeServicer
	Accounts services.AccountServicer
	Expenses services.ExpenseServicer
	Todos    services.TodoServicer
	Plans    services.PlanServicer
	Audit    services.AuditServicer
	Tokens   *auth.TokenService
	Database handlers.Pinger

	// Registry backs /metrics; when nil the endpoint is not mounted.
	Registry *prometheus.Registry
	Metrics  *metrics.Collector

	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the Gin engine with global middleware, public routes and
// the token-protected resource routes under /api.
func NewRouter(deps Dependencies) *gin.Engine {
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens, deps.Audit, deps.Metrics)
	healthHandler := handlers.NewHealthHandler(deps.Database)
	tradeHandler := handlers.NewTradeHandler(deps.Trades, deps.Audit)
	accountHandler := handlers.NewAccountHandler(deps.Accounts, deps.Audit)
	expenseHandler := handlers.NewExpenseHandler(deps.Expenses, deps.Audit, deps.Metrics)
	todoHandler := handlers.NewTodoHandler(deps.Todos, deps.Audit)
	planHandler := handlers.NewPlanHandler(deps.Plans, deps.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics(deps.Metrics))
	router.Use(middleware.CORS(deps.AllowedOrigins))
	if deps.RequestTimeout > 0 {
		router.Use(middleware.Timeout(deps.RequestTimeout))
	}
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api")
	api.GET("/health", healthHandler.Health)

	// Public routes
	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	protected.GET("/auth/me", authHandler.Me)

	trades := protected.Group("/trades")
	trades.GET("", tradeHandler.ListTrades)
	trades.POST("", tradeHandler.CreateTrade)
	trades.GET("/:id", tradeHandler.GetTrade)
	trades.PUT("/:id", tradeHandler.UpdateTrade)
	trades.DELETE("/:id", tradeHandler.DeleteTrade)

	accounts := protected.Group("/accounts")
	accounts.GET("", accountHandler.ListAccounts)
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("/:id", accountHandler.GetAccount)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/:id", expenseHandler.GetExpense)

	todos := protected.Group("/todos")
	todos.GET("", todoHandler.ListTodos)
	todos.POST("", todoHandler.CreateTodo)
	todos.GET("/:id", todoHandler.GetTodo)
	todos.PATCH("/:id", todoHandler.UpdateTodo)
	todos.DELETE("/:id", todoHandler.DeleteTodo)

	plans := protected.Group("/plans")
	plans.GET("", planHandler.ListPlans)
	plans.POST("", planHandler.CreatePlan)
	plans.GET("/:id", planHandler.GetPlan)
	plans.PUT("/:id", planHandler.UpdatePlan)
	plans.DELETE("/:id", planHandler.DeletePlan)

	return router
}
