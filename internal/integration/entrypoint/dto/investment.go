// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// CreateHoldingRequest represents the request body for holding creation.
type CreateHoldingRequest struct {
	AccountID string  `json:"account_id" binding:"required,uuid"`
	Symbol    string  `json:"symbol" binding:"required,min=1,max=20"`
	Name      string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Quantity  float64 `json:"quantity" binding:"required"`
	CostBasis float64 `json:"cost_basis" binding:"required"`
}

// HoldingResponse represents a single holding in API responses.
type HoldingResponse struct {
	ID           string     `json:"id"`
	AccountID    string     `json:"account_id"`
	Symbol       string     `json:"symbol"`
	Name         string     `json:"name,omitempty"`
	Quantity     string     `json:"quantity"`
	CostBasis    string     `json:"cost_basis"`
	LastPrice    *string    `json:"last_price,omitempty"`
	LastPricedAt *time.Time `json:"last_priced_at,omitempty"`
	MarketValue  string     `json:"market_value"`
	CreatedAt    time.Time  `json:"created_at"`
}

// HoldingListResponse represents the response for listing holdings.
type HoldingListResponse struct {
	Holdings   []HoldingResponse `json:"holdings"`
	TotalValue string            `json:"total_value"`
	TotalCost  string            `json:"total_cost"`
}

// RefreshQuotesResponse represents the outcome of a quote refresh run.
type RefreshQuotesResponse struct {
	Refreshed int `json:"refreshed"`
	Failed    int `json:"failed"`
}

// ToHoldingResponse converts a domain Holding entity to a HoldingResponse DTO.
func ToHoldingResponse(holding *entity.Holding) HoldingResponse {
	resp := HoldingResponse{
		ID:           holding.ID.String(),
		AccountID:    holding.AccountID.String(),
		Symbol:       holding.Symbol,
		Name:         holding.Name,
		Quantity:     holding.Quantity.String(),
		CostBasis:    holding.CostBasis.String(),
		MarketValue:  holding.MarketValue().String(),
		LastPricedAt: holding.LastPricedAt,
		CreatedAt:    holding.CreatedAt,
	}
	if holding.LastPrice != nil {
		lastPrice := holding.LastPrice.String()
		resp.LastPrice = &lastPrice
	}
	return resp
}
