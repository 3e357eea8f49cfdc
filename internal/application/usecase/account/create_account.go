// Package account contains account management use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// CreateAccountInput represents the input for creating an account.
type CreateAccountInput struct {
	UserID           uuid.UUID
	Name             string
	Type             entity.AccountType
	Institution      string
	Currency         string
	BankConnectionID string
}

// CreateAccountOutput represents the output of creating an account.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAccountName,
			"account name is required",
			domainerror.ErrInvalidAccountName,
		)
	}
	if !input.Type.IsValid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAccountType,
			fmt.Sprintf("invalid account type: %s", input.Type),
			domainerror.ErrInvalidAccountType,
		)
	}

	account := entity.NewAccount(input.UserID, name, input.Type, input.Institution, input.Currency)
	account.BankConnectionID = input.BankConnectionID

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}
