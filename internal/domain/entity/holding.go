// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding represents an investment position in a user's portfolio.
type Holding struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AccountID uuid.UUID
	Symbol    string
	Name      string
	Quantity  decimal.Decimal
	CostBasis decimal.Decimal // Total acquisition cost
	// LastPrice and LastPricedAt are refreshed from the market data provider.
	LastPrice    *decimal.Decimal
	LastPricedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewHolding creates a new Holding entity.
func NewHolding(userID, accountID uuid.UUID, symbol, name string, quantity, costBasis decimal.Decimal) *Holding {
	now := time.Now().UTC()

	return &Holding{
		ID:        uuid.New(),
		UserID:    userID,
		AccountID: accountID,
		Symbol:    symbol,
		Name:      name,
		Quantity:  quantity,
		CostBasis: costBasis,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarketValue returns the current market value of the holding, or zero when
// no price has been fetched yet.
func (h *Holding) MarketValue() decimal.Decimal {
	if h.LastPrice == nil {
		return decimal.Zero
	}
	return h.Quantity.Mul(*h.LastPrice)
}

// Quote represents a market price for a symbol at a point in time.
type Quote struct {
	Symbol   string
	Price    decimal.Decimal
	Currency string
	AsOf     time.Time
}
