package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID      uuid.UUID
	AccountID   *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	CategoryIDs []uuid.UUID
	Type        *entity.TransactionType
	Search      string
	Page        int
	Limit       int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Result *entity.TransactionListResult
	Totals *entity.TransactionTotals
}

// ListTransactionsUseCase handles filtered, paginated transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists transactions matching the filter, along with totals over
// the whole filtered set rather than just the returned page.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter := adapter.TransactionFilter{
		UserID:      input.UserID,
		AccountID:   input.AccountID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CategoryIDs: input.CategoryIDs,
		Type:        input.Type,
		Search:      input.Search,
	}

	pagination := adapter.TransactionPagination{
		Page:  input.Page,
		Limit: input.Limit,
	}
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Limit < 1 {
		pagination.Limit = defaultPageLimit
	}
	if pagination.Limit > maxPageLimit {
		pagination.Limit = maxPageLimit
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totals, err := uc.transactionRepo.GetTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate totals: %w", err)
	}

	return &ListTransactionsOutput{Result: result, Totals: totals}, nil
}
