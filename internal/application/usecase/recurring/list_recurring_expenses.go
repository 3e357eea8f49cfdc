package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
)

// ListRecurringExpensesInput represents the input for listing recurring expenses.
type ListRecurringExpensesInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListRecurringExpensesOutput represents the output of listing recurring expenses.
type ListRecurringExpensesOutput struct {
	Expenses []*entity.RecurringExpense
}

// ListRecurringExpensesUseCase handles recurring expense listing logic.
type ListRecurringExpensesUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewListRecurringExpensesUseCase creates a new ListRecurringExpensesUseCase instance.
func NewListRecurringExpensesUseCase(recurringRepo adapter.RecurringExpenseRepository) *ListRecurringExpensesUseCase {
	return &ListRecurringExpensesUseCase{recurringRepo: recurringRepo}
}

// Execute lists the user's recurring expense definitions.
func (uc *ListRecurringExpensesUseCase) Execute(ctx context.Context, input ListRecurringExpensesInput) (*ListRecurringExpensesOutput, error) {
	var (
		expenses []*entity.RecurringExpense
		err      error
	)
	if input.ActiveOnly {
		expenses, err = uc.recurringRepo.ListActive(ctx, input.UserID)
	} else {
		expenses, err = uc.recurringRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	return &ListRecurringExpensesOutput{Expenses: expenses}, nil
}
