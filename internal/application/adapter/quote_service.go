// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// QuoteService defines the interface for fetching market prices.
type QuoteService interface {
	// GetQuote returns the latest price for a symbol. Implementations may
	// serve cached quotes.
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}
