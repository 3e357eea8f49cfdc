package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
)

// DeleteRecurringExpenseInput represents the input for deleting a
// recurring expense.
type DeleteRecurringExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteRecurringExpenseUseCase handles recurring expense deletion logic.
// Historical check records survive the deletion.
type DeleteRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewDeleteRecurringExpenseUseCase creates a new DeleteRecurringExpenseUseCase instance.
func NewDeleteRecurringExpenseUseCase(recurringRepo adapter.RecurringExpenseRepository) *DeleteRecurringExpenseUseCase {
	return &DeleteRecurringExpenseUseCase{recurringRepo: recurringRepo}
}

// Execute performs the recurring expense deletion.
func (uc *DeleteRecurringExpenseUseCase) Execute(ctx context.Context, input DeleteRecurringExpenseInput) error {
	expense, err := loadOwnedExpense(ctx, uc.recurringRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.recurringRepo.Delete(ctx, expense.ID); err != nil {
		return fmt.Errorf("failed to delete recurring expense: %w", err)
	}

	return nil
}
