// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-hub/backend/internal/integration/entrypoint/controller"
	"github.com/finance-hub/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	accountController        *controller.AccountController
	categoryController       *controller.CategoryController
	transactionController    *controller.TransactionController
	recurringController      *controller.RecurringExpenseController
	reconciliationController *controller.ReconciliationController
	bankSyncController       *controller.BankSyncController
	budgetController         *controller.BudgetController
	investmentController     *controller.InvestmentController
	reportController         *controller.ReportController
	loginRateLimiter         *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringExpenseController,
	reconciliationController *controller.ReconciliationController,
	bankSyncController *controller.BankSyncController,
	budgetController *controller.BudgetController,
	investmentController *controller.InvestmentController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		accountController:        accountController,
		categoryController:       categoryController,
		transactionController:    transactionController,
		recurringController:      recurringController,
		reconciliationController: reconciliationController,
		bankSyncController:       bankSyncController,
		budgetController:         budgetController,
		investmentController:     investmentController,
		reportController:         reportController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
		}

		accounts := v1.Group("/accounts")
		accounts.Use(r.authMiddleware.Authenticate())
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.PUT("/:id", r.accountController.Update)
			accounts.DELETE("/:id", r.accountController.Delete)
		}

		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		transactions := v1.Group("/transactions")
		transactions.Use(r.authMiddleware.Authenticate())
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		recurring := v1.Group("/recurring-expenses")
		recurring.Use(r.authMiddleware.Authenticate())
		{
			recurring.GET("", r.recurringController.List)
			recurring.POST("", r.recurringController.Create)
			recurring.PUT("/:id", r.recurringController.Update)
			recurring.DELETE("/:id", r.recurringController.Delete)
		}

		reconciliation := v1.Group("/reconciliation")
		reconciliation.Use(r.authMiddleware.Authenticate())
		{
			reconciliation.POST("/run", r.reconciliationController.Run)
			reconciliation.GET("/checks", r.reconciliationController.ListChecks)
		}

		sync := v1.Group("/sync")
		sync.Use(r.authMiddleware.Authenticate())
		{
			sync.POST("", r.bankSyncController.Sync)
			sync.GET("/staging", r.bankSyncController.ListStaging)
			sync.POST("/staging/:id/approve", r.bankSyncController.Approve)
			sync.POST("/staging/:id/reject", r.bankSyncController.Reject)
		}

		budgets := v1.Group("/budgets")
		budgets.Use(r.authMiddleware.Authenticate())
		{
			budgets.POST("", r.budgetController.Create)
			budgets.GET("/status", r.budgetController.Status)
			budgets.PUT("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		holdings := v1.Group("/holdings")
		holdings.Use(r.authMiddleware.Authenticate())
		{
			holdings.GET("", r.investmentController.List)
			holdings.POST("", r.investmentController.Create)
			holdings.POST("/refresh-quotes", r.investmentController.RefreshQuotes)
			holdings.DELETE("/:id", r.investmentController.Delete)
		}

		reports := v1.Group("/reports")
		reports.Use(r.authMiddleware.Authenticate())
		{
			reports.POST("/monthly", r.reportController.SendMonthly)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
