package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
)

// DeleteAccountInput represents the input for deleting an account.
type DeleteAccountInput struct {
	AccountID uuid.UUID
	UserID    uuid.UUID
}

// DeleteAccountUseCase handles account deletion logic. Accounts are
// soft-deleted; their transactions stay in the ledger.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	account, err := loadOwnedAccount(ctx, uc.accountRepo, input.AccountID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.accountRepo.Delete(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
