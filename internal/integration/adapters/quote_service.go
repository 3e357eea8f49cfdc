// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/config"
	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
)

// marketDataClient implements adapter.QuoteService against the market data
// provider's REST API.
type marketDataClient struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

// NewMarketDataClient creates a new market data client instance.
func NewMarketDataClient(cfg config.MarketDataConfig) adapter.QuoteService {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.MaxRetries
	httpClient.HTTPClient.Timeout = cfg.Timeout
	httpClient.Logger = nil

	return &marketDataClient{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

type quotePayload struct {
	Symbol   string `json:"symbol"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	AsOf     string `json:"as_of"`
}

// GetQuote returns the latest price for a symbol from the provider.
func (c *marketDataClient) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	endpoint := fmt.Sprintf("%s/quotes/%s", c.baseURL, url.PathEscape(symbol))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("quote request returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload quotePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}

	price, err := decimal.NewFromString(payload.Price)
	if err != nil {
		return nil, fmt.Errorf("bad quote price %q: %w", payload.Price, err)
	}

	asOf, err := time.Parse(time.RFC3339, payload.AsOf)
	if err != nil {
		asOf = time.Now().UTC()
	}

	return &entity.Quote{
		Symbol:   payload.Symbol,
		Price:    price,
		Currency: payload.Currency,
		AsOf:     asOf,
	}, nil
}

// cachedQuote is the Redis serialization of a quote.
type cachedQuote struct {
	Symbol   string          `json:"symbol"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	AsOf     time.Time       `json:"as_of"`
}

// cachedQuoteService wraps a QuoteService with a Redis read-through cache.
// Cache failures degrade to the upstream provider instead of failing the call.
type cachedQuoteService struct {
	upstream adapter.QuoteService
	redis    *redis.Client
	ttl      time.Duration
}

// NewCachedQuoteService wraps upstream with a Redis cache holding quotes for ttl.
func NewCachedQuoteService(upstream adapter.QuoteService, redisClient *redis.Client, ttl time.Duration) adapter.QuoteService {
	return &cachedQuoteService{
		upstream: upstream,
		redis:    redisClient,
		ttl:      ttl,
	}
}

func quoteCacheKey(symbol string) string {
	return "quote:" + symbol
}

// GetQuote returns the cached quote when present, otherwise fetches from the
// upstream provider and stores the result.
func (s *cachedQuoteService) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	key := quoteCacheKey(symbol)

	cached, err := s.redis.Get(ctx, key).Result()
	if err == nil {
		var stored cachedQuote
		if unmarshalErr := json.Unmarshal([]byte(cached), &stored); unmarshalErr == nil {
			return &entity.Quote{
				Symbol:   stored.Symbol,
				Price:    stored.Price,
				Currency: stored.Currency,
				AsOf:     stored.AsOf,
			}, nil
		}
		slog.Warn("Discarding unreadable cached quote", "symbol", symbol)
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("Quote cache read failed", "symbol", symbol, "error", err)
	}

	quote, err := s.upstream.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedQuote{
		Symbol:   quote.Symbol,
		Price:    quote.Price,
		Currency: quote.Currency,
		AsOf:     quote.AsOf,
	})
	if err == nil {
		if setErr := s.redis.Set(ctx, key, payload, s.ttl).Err(); setErr != nil {
			slog.Warn("Quote cache write failed", "symbol", symbol, "error", setErr)
		}
	}

	return quote, nil
}
