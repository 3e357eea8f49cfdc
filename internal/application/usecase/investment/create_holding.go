// Package investment contains portfolio management use cases.
package investment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// CreateHoldingInput represents the input for creating a holding.
type CreateHoldingInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Symbol    string
	Name      string
	Quantity  decimal.Decimal
	CostBasis decimal.Decimal
}

// CreateHoldingOutput represents the output of creating a holding.
type CreateHoldingOutput struct {
	Holding *entity.Holding
}

// CreateHoldingUseCase handles holding creation logic.
type CreateHoldingUseCase struct {
	holdingRepo adapter.HoldingRepository
}

// NewCreateHoldingUseCase creates a new CreateHoldingUseCase instance.
func NewCreateHoldingUseCase(holdingRepo adapter.HoldingRepository) *CreateHoldingUseCase {
	return &CreateHoldingUseCase{holdingRepo: holdingRepo}
}

// Execute performs the holding creation. Symbols are normalized to upper
// case so quote lookups and cache keys agree.
func (uc *CreateHoldingUseCase) Execute(ctx context.Context, input CreateHoldingInput) (*CreateHoldingOutput, error) {
	if !input.Quantity.IsPositive() {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be greater than zero",
			domainerror.ErrInvalidQuantity,
		)
	}

	symbol := strings.ToUpper(strings.TrimSpace(input.Symbol))
	holding := entity.NewHolding(input.UserID, input.AccountID, symbol, input.Name, input.Quantity, input.CostBasis)
	if err := uc.holdingRepo.Create(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}

	return &CreateHoldingOutput{Holding: holding}, nil
}
