package banksync

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
)

// RejectStagingInput represents the input for rejecting a staged transaction.
type RejectStagingInput struct {
	StagingID uuid.UUID
	UserID    uuid.UUID
}

// RejectStagingUseCase discards a staging transaction from the review
// queue. Nothing reaches the ledger.
type RejectStagingUseCase struct {
	stagingRepo adapter.StagingRepository
}

// NewRejectStagingUseCase creates a new RejectStagingUseCase instance.
func NewRejectStagingUseCase(stagingRepo adapter.StagingRepository) *RejectStagingUseCase {
	return &RejectStagingUseCase{stagingRepo: stagingRepo}
}

// Execute rejects the staging transaction.
func (uc *RejectStagingUseCase) Execute(ctx context.Context, input RejectStagingInput) error {
	staging, err := loadPendingStaging(ctx, uc.stagingRepo, input.StagingID, input.UserID)
	if err != nil {
		return err
	}

	staging.Status = entity.StagingStatusRejected
	if err := uc.stagingRepo.Update(ctx, staging); err != nil {
		return fmt.Errorf("failed to update staging transaction: %w", err)
	}

	return nil
}
