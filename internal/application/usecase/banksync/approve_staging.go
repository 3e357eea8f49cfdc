package banksync

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// ApproveStagingInput represents the input for approving a staged transaction.
type ApproveStagingInput struct {
	StagingID  uuid.UUID
	UserID     uuid.UUID
	CategoryID *uuid.UUID // Optional category assigned during review
}

// ApproveStagingOutput contains the ledger transaction created on approval.
type ApproveStagingOutput struct {
	Transaction *entity.Transaction
}

// ApproveStagingUseCase promotes a pending staging transaction into the
// ledger. The ledger row keeps the feed's external id, which is what the
// dedup pass and the reconciliation matcher key on later.
type ApproveStagingUseCase struct {
	stagingRepo     adapter.StagingRepository
	transactionRepo adapter.TransactionRepository
}

// NewApproveStagingUseCase creates a new ApproveStagingUseCase instance.
func NewApproveStagingUseCase(
	stagingRepo adapter.StagingRepository,
	transactionRepo adapter.TransactionRepository,
) *ApproveStagingUseCase {
	return &ApproveStagingUseCase{
		stagingRepo:     stagingRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute approves the staging transaction and writes the ledger row.
func (uc *ApproveStagingUseCase) Execute(ctx context.Context, input ApproveStagingInput) (*ApproveStagingOutput, error) {
	staging, err := loadPendingStaging(ctx, uc.stagingRepo, input.StagingID, input.UserID)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		staging.UserID,
		staging.AccountID,
		staging.Date,
		staging.Description,
		staging.Amount,
		staging.Type,
		input.CategoryID,
		"",
	)
	transaction.ExternalID = staging.ExternalID

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	staging.Status = entity.StagingStatusApproved
	if err := uc.stagingRepo.Update(ctx, staging); err != nil {
		return nil, fmt.Errorf("failed to update staging transaction: %w", err)
	}

	return &ApproveStagingOutput{Transaction: transaction}, nil
}

// loadPendingStaging fetches a staging transaction and verifies it belongs
// to the user and is still open for review. Duplicates stay reviewable so
// the user can overrule the matcher.
func loadPendingStaging(ctx context.Context, repo adapter.StagingRepository, stagingID, userID uuid.UUID) (*entity.StagingTransaction, error) {
	staging, err := repo.FindByID(ctx, stagingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staging transaction: %w", err)
	}
	if staging == nil || staging.UserID != userID {
		return nil, domainerror.NewBankSyncError(
			domainerror.ErrCodeStagingNotFound,
			"staging transaction not found",
			domainerror.ErrStagingTransactionNotFound,
		)
	}
	if staging.Status != entity.StagingStatusPending && staging.Status != entity.StagingStatusDuplicate {
		return nil, domainerror.NewBankSyncError(
			domainerror.ErrCodeStagingAlreadyResolved,
			"staging transaction already resolved",
			domainerror.ErrStagingAlreadyResolved,
		)
	}
	return staging, nil
}
