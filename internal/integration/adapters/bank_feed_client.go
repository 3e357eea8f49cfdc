// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/config"
	"github.com/finance-hub/backend/internal/application/adapter"
)

// feedDateFormat is the date layout the aggregator uses for booking dates.
const feedDateFormat = "2006-01-02"

// bankFeedClient implements the adapter.BankFeedClient interface against the
// bank aggregator's REST API.
type bankFeedClient struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

// NewBankFeedClient creates a new bank feed client instance.
func NewBankFeedClient(cfg config.BankFeedConfig) adapter.BankFeedClient {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.MaxRetries
	httpClient.HTTPClient.Timeout = cfg.Timeout
	httpClient.Logger = nil

	return &bankFeedClient{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// feedEntryPayload is the aggregator's wire format for one booked transaction.
type feedEntryPayload struct {
	ID          string `json:"id"`
	BookingDate string `json:"booking_date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

type feedResponse struct {
	Transactions []feedEntryPayload `json:"transactions"`
}

// FetchTransactions retrieves feed entries for a connected account booked
// within [startDate, endDate].
func (c *bankFeedClient) FetchTransactions(ctx context.Context, connectionID string, startDate, endDate time.Time) ([]adapter.FeedEntry, error) {
	endpoint := fmt.Sprintf("%s/connections/%s/transactions", c.baseURL, url.PathEscape(connectionID))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	query := req.URL.Query()
	query.Set("from", startDate.Format(feedDateFormat))
	query.Set("to", endDate.Format(feedDateFormat))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("feed request returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	entries := make([]adapter.FeedEntry, 0, len(payload.Transactions))
	for _, item := range payload.Transactions {
		entry, err := item.toFeedEntry()
		if err != nil {
			return nil, fmt.Errorf("invalid feed entry %s: %w", item.ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (p feedEntryPayload) toFeedEntry() (adapter.FeedEntry, error) {
	date, err := time.ParseInLocation(feedDateFormat, p.BookingDate, time.UTC)
	if err != nil {
		return adapter.FeedEntry{}, fmt.Errorf("bad booking date %q: %w", p.BookingDate, err)
	}

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return adapter.FeedEntry{}, fmt.Errorf("bad amount %q: %w", p.Amount, err)
	}

	return adapter.FeedEntry{
		ExternalID:  p.ID,
		Date:        date,
		Description: p.Description,
		Amount:      amount,
		Currency:    p.Currency,
	}, nil
}
