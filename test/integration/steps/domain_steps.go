package steps

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/finance-hub/backend/test/integration/mock"
)

const testPassword = "Str0ngPass!234"

// resolveDate turns "today", "today-2" or "today+3" into a concrete
// 2006-01-02 date so scenarios exercising window-relative logic stay
// valid whenever the suite runs. Anything else passes through as-is.
func resolveDate(value string) string {
	if !strings.HasPrefix(value, "today") {
		return value
	}
	offset := 0
	if rest := strings.TrimPrefix(value, "today"); rest != "" {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return value
		}
		offset = n
	}
	return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
}

func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered and logged in as "([^"]*)"$`, iAmRegisteredAndLoggedInAs)
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, iLogInAsWithPassword)
}

func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have an account named "([^"]*)"$`, iHaveAnAccountNamed)
	ctx.Step(`^I have an account named "([^"]*)" connected to bank feed "([^"]*)"$`, iHaveAConnectedAccount)
	ctx.Step(`^I have an expense category named "([^"]*)"$`, iHaveAnExpenseCategoryNamed)
	ctx.Step(`^I have an? (expense|income) transaction "([^"]*)" of "([^"]*)" on "([^"]*)" in "([^"]*)"$`, iHaveATransaction)
	ctx.Step(`^I have an? (expense|income) transaction "([^"]*)" of "([^"]*)" on "([^"]*)" in "([^"]*)" categorized as "([^"]*)"$`, iHaveACategorizedTransaction)
}

func registerReconciliationSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have a recurring expense "([^"]*)" of "([^"]*)" due on day (\d+) in "([^"]*)" starting "([^"]*)"$`, iHaveARecurringExpense)
	ctx.Step(`^I run reconciliation for (\d+)/(\d+)$`, iRunReconciliationFor)
	ctx.Step(`^the check for "([^"]*)" in (\d+)/(\d+) should have status "([^"]*)"$`, theCheckShouldHaveStatus)
}

func registerBankSyncSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the bank feed "([^"]*)" returns:$`, theBankFeedReturns)
	ctx.Step(`^I sync account "([^"]*)"$`, iSyncAccount)
	ctx.Step(`^the staged transaction "([^"]*)" should have status "([^"]*)"$`, theStagedTransactionShouldHaveStatus)
	ctx.Step(`^the staged transaction "([^"]*)" should no longer be listed$`, theStagedTransactionShouldNoLongerBeListed)
	ctx.Step(`^I approve the staged transaction "([^"]*)"$`, iApproveTheStagedTransaction)
	ctx.Step(`^I reject the staged transaction "([^"]*)"$`, iRejectTheStagedTransaction)
}

func registerInvestmentSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the market price of "([^"]*)" is "([^"]*)"$`, theMarketPriceOfIs)
	ctx.Step(`^I have a holding of "([^"]*)" units of "([^"]*)" bought for "([^"]*)" in "([^"]*)"$`, iHaveAHolding)
}

func iAmRegisteredAndLoggedInAs(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	if err := tc.doJSON(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    email,
		"name":     "Test User",
		"password": testPassword,
	}); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	data, err := tc.parseResponse()
	if err != nil {
		return ctx, err
	}
	token, ok := data["access_token"].(string)
	if !ok || token == "" {
		return ctx, fmt.Errorf("no access token in registration response: %s", string(tc.responseBody))
	}
	tc.accessToken = token
	return SetTestContext(ctx, tc), nil
}

func aRegisteredUserWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	// Register without keeping the session token.
	savedToken := tc.accessToken
	tc.accessToken = ""
	err := tc.doJSON(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    email,
		"name":     "Test User",
		"password": password,
	})
	tc.accessToken = savedToken
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iLogInAsWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	if err := tc.doJSON(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode == http.StatusOK {
		data, err := tc.parseResponse()
		if err != nil {
			return ctx, err
		}
		if token, ok := data["access_token"].(string); ok {
			tc.accessToken = token
		}
	}
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) createAccount(name, connectionID string) error {
	if err := tc.doJSON(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":               name,
		"type":               "checking",
		"currency":           "USD",
		"bank_connection_id": connectionID,
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("account creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	data, err := tc.parseResponse()
	if err != nil {
		return err
	}
	id, ok := data["id"].(string)
	if !ok {
		return fmt.Errorf("account response has no id: %s", string(tc.responseBody))
	}
	tc.ids[name] = id
	return nil
}

func iHaveAnAccountNamed(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.createAccount(name, "")
}

func iHaveAConnectedAccount(ctx context.Context, name, connectionID string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.createAccount(name, connectionID)
}

func iHaveAnExpenseCategoryNamed(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.doJSON(http.MethodPost, "/api/v1/categories", map[string]any{
		"name": name,
		"type": "expense",
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("category creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	data, err := tc.parseResponse()
	if err != nil {
		return err
	}
	if id, ok := data["id"].(string); ok {
		tc.ids[name] = id
	}
	return nil
}

func iHaveATransaction(ctx context.Context, txnType, description, amount, date, accountName string) error {
	return createTransaction(ctx, txnType, description, amount, date, accountName, "")
}

func iHaveACategorizedTransaction(ctx context.Context, txnType, description, amount, date, accountName, categoryName string) error {
	return createTransaction(ctx, txnType, description, amount, date, accountName, categoryName)
}

func createTransaction(ctx context.Context, txnType, description, amount, date, accountName, categoryName string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	accountID, err := tc.lookupID(accountName)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	payload := map[string]any{
		"account_id":  accountID,
		"date":        resolveDate(date),
		"description": description,
		"amount":      value,
		"type":        txnType,
	}
	if categoryName != "" {
		categoryID, err := tc.lookupID(categoryName)
		if err != nil {
			return err
		}
		payload["category_id"] = categoryID
	}

	if err := tc.doJSON(http.MethodPost, "/api/v1/transactions", payload); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("transaction creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	data, err := tc.parseResponse()
	if err != nil {
		return err
	}
	if id, ok := data["id"].(string); ok {
		tc.ids[description] = id
	}
	return nil
}

func iHaveARecurringExpense(ctx context.Context, name, amount string, dayOfMonth int, accountName, startDate string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	accountID, err := tc.lookupID(accountName)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	if err := tc.doJSON(http.MethodPost, "/api/v1/recurring-expenses", map[string]any{
		"account_id":   accountID,
		"name":         name,
		"amount":       value,
		"day_of_month": dayOfMonth,
		"start_date":   startDate,
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("recurring expense creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	data, err := tc.parseResponse()
	if err != nil {
		return err
	}
	id, ok := data["id"].(string)
	if !ok {
		return fmt.Errorf("recurring expense response has no id: %s", string(tc.responseBody))
	}
	tc.ids[name] = id
	return nil
}

func iRunReconciliationFor(ctx context.Context, month, year int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.doJSON(http.MethodPost, "/api/v1/reconciliation/run", map[string]any{
		"year":  year,
		"month": month,
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("reconciliation run failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theCheckShouldHaveStatus(ctx context.Context, expenseName string, month, year int, expectedStatus string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	expenseID, err := tc.lookupID(expenseName)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("/api/v1/reconciliation/checks?year=%d&month=%d", year, month)
	if err := tc.doJSON(http.MethodGet, endpoint, nil); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("listing checks failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	data, err := tc.parseResponse()
	if err != nil {
		return err
	}
	checks, ok := data["checks"].([]any)
	if !ok {
		return fmt.Errorf("response has no checks array: %s", string(tc.responseBody))
	}

	for _, raw := range checks {
		check, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if check["recurring_expense_id"] != expenseID {
			continue
		}
		if status, _ := check["status"].(string); status != expectedStatus {
			return fmt.Errorf("check for %q has status %q, expected %q", expenseName, status, expectedStatus)
		}
		return nil
	}
	return fmt.Errorf("no check found for expense %q in %d/%d. Body: %s", expenseName, month, year, string(tc.responseBody))
}

func theBankFeedReturns(ctx context.Context, connectionID string, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("feed table needs a header row and at least one entry")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	var entries []mock.FeedEntry
	for _, row := range table.Rows[1:] {
		entry := mock.FeedEntry{Currency: "USD"}
		for i, cell := range row.Cells {
			switch header[i] {
			case "id":
				entry.ID = cell.Value
			case "booking_date":
				entry.BookingDate = resolveDate(cell.Value)
			case "description":
				entry.Description = cell.Value
			case "amount":
				entry.Amount = cell.Value
			case "currency":
				entry.Currency = cell.Value
			}
		}
		entries = append(entries, entry)
	}

	providers.SetFeed(connectionID, entries)
	return nil
}

func iSyncAccount(ctx context.Context, accountName string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	accountID, err := tc.lookupID(accountName)
	if err != nil {
		return err
	}
	return tc.doJSON(http.MethodPost, "/api/v1/sync", map[string]any{
		"account_id": accountID,
	})
}

// findStagedTransaction locates a staging row by description and returns it.
func (tc *TestContext) findStagedTransaction(description string) (map[string]any, error) {
	if err := tc.doJSON(http.MethodGet, "/api/v1/sync/staging", nil); err != nil {
		return nil, err
	}
	if tc.response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing staging failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	data, err := tc.parseResponse()
	if err != nil {
		return nil, err
	}
	staging, ok := data["staging"].([]any)
	if !ok {
		return nil, fmt.Errorf("response has no staging array: %s", string(tc.responseBody))
	}
	for _, raw := range staging {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if entry["description"] == description {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("no staged transaction with description %q. Body: %s", description, string(tc.responseBody))
}

func theStagedTransactionShouldHaveStatus(ctx context.Context, description, expectedStatus string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	entry, err := tc.findStagedTransaction(description)
	if err != nil {
		return err
	}
	if status, _ := entry["status"].(string); status != expectedStatus {
		return fmt.Errorf("staged transaction %q has status %q, expected %q", description, status, expectedStatus)
	}
	return nil
}

func theStagedTransactionShouldNoLongerBeListed(ctx context.Context, description string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	// Resolved rows leave the review queue.
	if _, err := tc.findStagedTransaction(description); err == nil {
		return fmt.Errorf("staged transaction %q is still listed", description)
	}
	return nil
}

func iApproveTheStagedTransaction(ctx context.Context, description string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	entry, err := tc.findStagedTransaction(description)
	if err != nil {
		return err
	}
	id, _ := entry["id"].(string)
	return tc.doJSON(http.MethodPost, "/api/v1/sync/staging/"+id+"/approve", map[string]any{})
}

func iRejectTheStagedTransaction(ctx context.Context, description string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	entry, err := tc.findStagedTransaction(description)
	if err != nil {
		return err
	}
	id, _ := entry["id"].(string)
	return tc.doJSON(http.MethodPost, "/api/v1/sync/staging/"+id+"/reject", nil)
}

func theMarketPriceOfIs(ctx context.Context, symbol, price string) error {
	providers.SetQuote(symbol, price)
	return nil
}

func iHaveAHolding(ctx context.Context, quantity, symbol, costBasis, accountName string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	accountID, err := tc.lookupID(accountName)
	if err != nil {
		return err
	}
	qty, err := strconv.ParseFloat(quantity, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}
	cost, err := strconv.ParseFloat(costBasis, 64)
	if err != nil {
		return fmt.Errorf("invalid cost basis %q: %w", costBasis, err)
	}

	if err := tc.doJSON(http.MethodPost, "/api/v1/holdings", map[string]any{
		"account_id": accountID,
		"symbol":     symbol,
		"quantity":   qty,
		"cost_basis": cost,
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("holding creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	data, err := tc.parseResponse()
	if err != nil {
		return err
	}
	if id, ok := data["id"].(string); ok {
		tc.ids[symbol] = id
	}
	return nil
}
