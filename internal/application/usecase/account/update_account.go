package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for updating an account.
// Nil pointer fields are left unchanged.
type UpdateAccountInput struct {
	AccountID   uuid.UUID
	UserID      uuid.UUID
	Name        *string
	Institution *string
	Active      *bool
}

// UpdateAccountOutput represents the output of updating an account.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := loadOwnedAccount(ctx, uc.accountRepo, input.AccountID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidAccountName,
				"account name is required",
				domainerror.ErrInvalidAccountName,
			)
		}
		account.Name = name
	}
	if input.Institution != nil {
		account.Institution = *input.Institution
	}
	if input.Active != nil {
		account.Active = *input.Active
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}

// loadOwnedAccount fetches an account and verifies it belongs to the user.
func loadOwnedAccount(ctx context.Context, repo adapter.AccountRepository, accountID, userID uuid.UUID) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	if account.UserID != userID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeAccountNotOwned,
			"account does not belong to user",
			domainerror.ErrAccountNotOwnedByUser,
		)
	}
	return account, nil
}
