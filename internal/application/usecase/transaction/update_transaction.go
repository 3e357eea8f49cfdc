package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil pointer fields are left unchanged. ClearCategory removes the
// category assignment, which a nil CategoryID cannot express.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Date          *time.Time
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	CategoryID    *uuid.UUID
	ClearCategory bool
	Notes         *string
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := loadOwnedTransaction(ctx, uc.transactionRepo, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidDate,
				"transaction date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.Date = *input.Date
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Amount != nil {
		if input.Amount.IsZero() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidAmount,
				"transaction amount must be non-zero",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		transaction.Amount = input.Amount.Abs()
	}
	if input.Type != nil {
		if *input.Type != entity.TransactionTypeExpense && *input.Type != entity.TransactionTypeIncome {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidTransactionType,
				fmt.Sprintf("invalid transaction type: %s", *input.Type),
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}
	switch {
	case input.ClearCategory:
		transaction.CategoryID = nil
	case input.CategoryID != nil:
		transaction.CategoryID = input.CategoryID
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}

// loadOwnedTransaction fetches a transaction and verifies it belongs to the user.
func loadOwnedTransaction(ctx context.Context, repo adapter.TransactionRepository, transactionID, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if transaction == nil || transaction.UserID != userID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return transaction, nil
}
