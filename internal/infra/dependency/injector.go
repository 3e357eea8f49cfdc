// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-hub/backend/config"
	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/application/usecase/account"
	"github.com/finance-hub/backend/internal/application/usecase/auth"
	"github.com/finance-hub/backend/internal/application/usecase/banksync"
	"github.com/finance-hub/backend/internal/application/usecase/budget"
	"github.com/finance-hub/backend/internal/application/usecase/category"
	"github.com/finance-hub/backend/internal/application/usecase/investment"
	"github.com/finance-hub/backend/internal/application/usecase/reconciliation"
	"github.com/finance-hub/backend/internal/application/usecase/recurring"
	"github.com/finance-hub/backend/internal/application/usecase/report"
	"github.com/finance-hub/backend/internal/application/usecase/transaction"
	"github.com/finance-hub/backend/internal/infra/server/router"
	"github.com/finance-hub/backend/internal/integration/adapters"
	"github.com/finance-hub/backend/internal/integration/email"
	"github.com/finance-hub/backend/internal/integration/email/templates"
	"github.com/finance-hub/backend/internal/integration/entrypoint/controller"
	"github.com/finance-hub/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-hub/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	recurringRepo := persistence.NewRecurringExpenseRepository(db)
	reconciliationRepo := persistence.NewReconciliationRepository(db)
	stagingRepo := persistence.NewStagingRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	holdingRepo := persistence.NewHoldingRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	bankFeedClient := adapters.NewBankFeedClient(cfg.BankFeed)
	quoteService := adapters.NewCachedQuoteService(
		adapters.NewMarketDataClient(cfg.MarketData),
		redisClient,
		cfg.Redis.QuoteTTL,
	)
	clock := adapter.SystemClock{}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, categoryRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

	// Category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Recurring expense use cases
	createRecurringUseCase := recurring.NewCreateRecurringExpenseUseCase(recurringRepo)
	listRecurringUseCase := recurring.NewListRecurringExpensesUseCase(recurringRepo)
	updateRecurringUseCase := recurring.NewUpdateRecurringExpenseUseCase(recurringRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringExpenseUseCase(recurringRepo)

	// Reconciliation use cases
	runChecksUseCase := reconciliation.NewRunChecksUseCase(recurringRepo, transactionRepo, reconciliationRepo, clock)
	listChecksUseCase := reconciliation.NewListChecksUseCase(reconciliationRepo)

	// Bank sync use cases
	syncTransactionsUseCase := banksync.NewSyncTransactionsUseCase(accountRepo, transactionRepo, stagingRepo, bankFeedClient, clock)
	listStagingUseCase := banksync.NewListStagingUseCase(stagingRepo)
	approveStagingUseCase := banksync.NewApproveStagingUseCase(stagingRepo, transactionRepo)
	rejectStagingUseCase := banksync.NewRejectStagingUseCase(stagingRepo)

	// Budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	getBudgetStatusUseCase := budget.NewGetBudgetStatusUseCase(budgetRepo, categoryRepo, transactionRepo)

	// Investment use cases
	createHoldingUseCase := investment.NewCreateHoldingUseCase(holdingRepo)
	listHoldingsUseCase := investment.NewListHoldingsUseCase(holdingRepo)
	refreshQuotesUseCase := investment.NewRefreshQuotesUseCase(holdingRepo, quoteService)
	deleteHoldingUseCase := investment.NewDeleteHoldingUseCase(holdingRepo)

	// Report use case and email worker
	sendMonthlyReportUseCase := report.NewSendMonthlyReportUseCase(userRepo, transactionRepo, reconciliationRepo, emailQueueRepo)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	workerConfig := email.DefaultWorkerConfig()
	if cfg.Email.PollInterval > 0 {
		workerConfig.PollInterval = cfg.Email.PollInterval
	}
	if cfg.Email.BatchSize > 0 {
		workerConfig.BatchSize = cfg.Email.BatchSize
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, workerConfig)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(pingCtx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	recurringController := controller.NewRecurringExpenseController(
		createRecurringUseCase,
		listRecurringUseCase,
		updateRecurringUseCase,
		deleteRecurringUseCase,
	)

	reconciliationController := controller.NewReconciliationController(
		runChecksUseCase,
		listChecksUseCase,
	)

	bankSyncController := controller.NewBankSyncController(
		syncTransactionsUseCase,
		listStagingUseCase,
		approveStagingUseCase,
		rejectStagingUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		getBudgetStatusUseCase,
	)

	investmentController := controller.NewInvestmentController(
		createHoldingUseCase,
		listHoldingsUseCase,
		refreshQuotesUseCase,
		deleteHoldingUseCase,
	)

	reportController := controller.NewReportController(sendMonthlyReportUseCase)

	// Middleware. Test environments get a high limit so suites can hammer
	// the login endpoint.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		transactionController,
		recurringController,
		reconciliationController,
		bankSyncController,
		budgetController,
		investmentController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
