package banksync

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
)

// ListStagingInput represents the input for listing the review queue.
type ListStagingInput struct {
	UserID uuid.UUID
}

// ListStagingOutput represents the pending review queue.
type ListStagingOutput struct {
	Staging []*entity.StagingTransaction
}

// ListStagingUseCase handles retrieval of pending staging transactions.
type ListStagingUseCase struct {
	stagingRepo adapter.StagingRepository
}

// NewListStagingUseCase creates a new ListStagingUseCase instance.
func NewListStagingUseCase(stagingRepo adapter.StagingRepository) *ListStagingUseCase {
	return &ListStagingUseCase{stagingRepo: stagingRepo}
}

// Execute lists the user's pending staging transactions, oldest first.
func (uc *ListStagingUseCase) Execute(ctx context.Context, input ListStagingInput) (*ListStagingOutput, error) {
	staging, err := uc.stagingRepo.FindPendingByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staging transactions: %w", err)
	}

	return &ListStagingOutput{Staging: staging}, nil
}
