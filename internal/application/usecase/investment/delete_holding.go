package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// DeleteHoldingInput represents the input for deleting a holding.
type DeleteHoldingInput struct {
	HoldingID uuid.UUID
	UserID    uuid.UUID
}

// DeleteHoldingUseCase handles holding deletion logic.
type DeleteHoldingUseCase struct {
	holdingRepo adapter.HoldingRepository
}

// NewDeleteHoldingUseCase creates a new DeleteHoldingUseCase instance.
func NewDeleteHoldingUseCase(holdingRepo adapter.HoldingRepository) *DeleteHoldingUseCase {
	return &DeleteHoldingUseCase{holdingRepo: holdingRepo}
}

// Execute performs the holding deletion.
func (uc *DeleteHoldingUseCase) Execute(ctx context.Context, input DeleteHoldingInput) error {
	holding, err := uc.holdingRepo.FindByID(ctx, input.HoldingID)
	if err != nil {
		return fmt.Errorf("failed to load holding: %w", err)
	}
	if holding == nil || holding.UserID != input.UserID {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeHoldingNotFound,
			"holding not found",
			domainerror.ErrHoldingNotFound,
		)
	}

	if err := uc.holdingRepo.Delete(ctx, holding.ID); err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	return nil
}
