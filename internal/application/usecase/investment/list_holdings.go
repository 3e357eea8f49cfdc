package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
)

// ListHoldingsInput represents the input for listing holdings.
type ListHoldingsInput struct {
	UserID uuid.UUID
}

// ListHoldingsOutput represents the portfolio with its aggregate value.
type ListHoldingsOutput struct {
	Holdings   []*entity.Holding
	TotalValue decimal.Decimal
	TotalCost  decimal.Decimal
}

// ListHoldingsUseCase handles portfolio listing logic.
type ListHoldingsUseCase struct {
	holdingRepo adapter.HoldingRepository
}

// NewListHoldingsUseCase creates a new ListHoldingsUseCase instance.
func NewListHoldingsUseCase(holdingRepo adapter.HoldingRepository) *ListHoldingsUseCase {
	return &ListHoldingsUseCase{holdingRepo: holdingRepo}
}

// Execute lists the user's holdings with portfolio totals. Holdings with
// no fetched price contribute zero to the total value.
func (uc *ListHoldingsUseCase) Execute(ctx context.Context, input ListHoldingsInput) (*ListHoldingsOutput, error) {
	holdings, err := uc.holdingRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	output := &ListHoldingsOutput{Holdings: holdings}
	for _, holding := range holdings {
		output.TotalValue = output.TotalValue.Add(holding.MarketValue())
		output.TotalCost = output.TotalCost.Add(holding.CostBasis)
	}

	return output, nil
}
