// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FeedEntry is one transaction as reported by the bank aggregator.
type FeedEntry struct {
	ExternalID  string
	Date        time.Time
	Description string
	Amount      decimal.Decimal // Signed: negative for debits
	Currency    string
}

// BankFeedClient defines the interface for the bank aggregator API.
type BankFeedClient interface {
	// FetchTransactions retrieves feed entries for a connected account
	// booked within [startDate, endDate].
	FetchTransactions(ctx context.Context, connectionID string, startDate, endDate time.Time) ([]FeedEntry, error)
}
