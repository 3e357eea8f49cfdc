package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
)

type countingQuoteService struct {
	calls  int
	quotes map[string]*entity.Quote
}

func (s *countingQuoteService) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	s.calls++
	return s.quotes[symbol], nil
}

func newQuoteTestSetup(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *countingQuoteService, adapter.QuoteService) {
	t.Helper()

	server := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})

	upstream := &countingQuoteService{
		quotes: map[string]*entity.Quote{
			"VWCE": {
				Symbol:   "VWCE",
				Price:    decimal.NewFromFloat(112.34),
				Currency: "EUR",
				AsOf:     time.Date(2025, 6, 2, 16, 0, 0, 0, time.UTC),
			},
		},
	}

	return server, upstream, NewCachedQuoteService(upstream, redisClient, ttl)
}

func TestCachedQuoteService(t *testing.T) {
	ctx := context.Background()

	t.Run("second lookup is served from cache", func(t *testing.T) {
		_, upstream, service := newQuoteTestSetup(t, 15*time.Minute)

		first, err := service.GetQuote(ctx, "VWCE")
		if err != nil {
			t.Fatalf("first lookup failed: %v", err)
		}
		second, err := service.GetQuote(ctx, "VWCE")
		if err != nil {
			t.Fatalf("second lookup failed: %v", err)
		}

		if upstream.calls != 1 {
			t.Errorf("expected 1 upstream call, got %d", upstream.calls)
		}
		if !first.Price.Equal(second.Price) {
			t.Errorf("cached price %s differs from fetched price %s", second.Price, first.Price)
		}
		if !second.AsOf.Equal(first.AsOf) {
			t.Errorf("cached quote lost its as-of timestamp")
		}
	})

	t.Run("expired cache entry triggers a refetch", func(t *testing.T) {
		server, upstream, service := newQuoteTestSetup(t, time.Minute)

		if _, err := service.GetQuote(ctx, "VWCE"); err != nil {
			t.Fatalf("first lookup failed: %v", err)
		}

		server.FastForward(2 * time.Minute)

		if _, err := service.GetQuote(ctx, "VWCE"); err != nil {
			t.Fatalf("lookup after expiry failed: %v", err)
		}
		if upstream.calls != 2 {
			t.Errorf("expected 2 upstream calls after expiry, got %d", upstream.calls)
		}
	})

	t.Run("unreadable cache entry falls back to upstream", func(t *testing.T) {
		server, upstream, service := newQuoteTestSetup(t, time.Minute)

		server.Set(quoteCacheKey("VWCE"), "not-json")

		quote, err := service.GetQuote(ctx, "VWCE")
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if upstream.calls != 1 {
			t.Errorf("expected upstream fallback, got %d calls", upstream.calls)
		}
		if quote.Symbol != "VWCE" {
			t.Errorf("unexpected symbol %s", quote.Symbol)
		}
	})
}
