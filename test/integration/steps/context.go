// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finance-hub/backend/config"
	"github.com/finance-hub/backend/internal/infra/dependency"
	"github.com/finance-hub/backend/internal/integration/persistence/model"
	"github.com/finance-hub/backend/test/integration/mock"
)

// TestContext holds the per-scenario test state.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	accessToken string

	// ids maps aliases used in feature files to created resource IDs.
	ids map[string]string
}

var (
	suiteOnce sync.Once
	suiteDB   *mock.Db
	suiteRed  *redis.Client
	providers *mock.Providers
	engine    *gin.Engine
)

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

func setupSuite() {
	suiteOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")

		suiteDB = mock.NewDb([]any{
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.AccountModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
			&model.RecurringExpenseModel{},
			&model.ReconciliationCheckModel{},
			&model.StagingTransactionModel{},
			&model.SyncBatchModel{},
			&model.BudgetModel{},
			&model.HoldingModel{},
			&model.EmailQueueModel{},
		})
		suiteRed = mock.NewRedis()
		providers = mock.NewProviders()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = "integration-test-secret"
		cfg.Redis.QuoteTTL = time.Minute
		cfg.BankFeed.BaseURL = providers.URL()
		cfg.BankFeed.APIKey = "test-feed-key"
		cfg.BankFeed.Timeout = 5 * time.Second
		cfg.BankFeed.MaxRetries = 0
		cfg.MarketData.BaseURL = providers.URL()
		cfg.MarketData.APIKey = "test-market-key"
		cfg.MarketData.Timeout = 5 * time.Second
		cfg.MarketData.MaxRetries = 0
		cfg.Email.WorkerEnabled = false

		injector, err := dependency.NewInjector(cfg, suiteDB.DbConn, suiteRed)
		if err != nil {
			panic("failed to wire test dependencies: " + err.Error())
		}
		engine = injector.Router.Setup("test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(setupSuite)
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		setupSuite()

		if err := suiteDB.Reset(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(suiteRed); err != nil {
			return ctx, err
		}
		providers.Reset()

		tc := &TestContext{
			ids:    make(map[string]string),
			server: httptest.NewServer(engine),
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAuthSteps(ctx)
	registerLedgerSteps(ctx)
	registerReconciliationSteps(ctx)
	registerBankSyncSteps(ctx)
	registerInvestmentSteps(ctx)
	registerHTTPSteps(ctx)
}

// doJSON sends an authenticated JSON request and records the response.
func (tc *TestContext) doJSON(method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// parseResponse unmarshals the last response body into a generic map.
func (tc *TestContext) parseResponse() (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w. Body: %s", err, string(tc.responseBody))
	}
	return data, nil
}

// lookupID resolves an alias stored by a setup step.
func (tc *TestContext) lookupID(alias string) (string, error) {
	id, ok := tc.ids[alias]
	if !ok {
		return "", fmt.Errorf("no resource registered under alias %q", alias)
	}
	return id, nil
}
