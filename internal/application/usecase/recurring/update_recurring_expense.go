package recurring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// UpdateRecurringExpenseInput represents the input for updating a
// recurring expense. Nil pointer fields are left unchanged. ClearEndDate
// removes the end date, which a nil EndDate cannot express.
type UpdateRecurringExpenseInput struct {
	ExpenseID      uuid.UUID
	UserID         uuid.UUID
	Name           *string
	Amount         *decimal.Decimal
	DayOfMonth     *int
	EndDate        *time.Time
	ClearEndDate   bool
	Active         *bool
	MatchPattern   *string
	VariableAmount *bool
}

// UpdateRecurringExpenseOutput represents the output of updating a
// recurring expense.
type UpdateRecurringExpenseOutput struct {
	Expense *entity.RecurringExpense
}

// UpdateRecurringExpenseUseCase handles recurring expense update logic.
// Amendments only affect future reconciliation runs; stored check records
// keep whatever the engine derived at the time.
type UpdateRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewUpdateRecurringExpenseUseCase creates a new UpdateRecurringExpenseUseCase instance.
func NewUpdateRecurringExpenseUseCase(recurringRepo adapter.RecurringExpenseRepository) *UpdateRecurringExpenseUseCase {
	return &UpdateRecurringExpenseUseCase{recurringRepo: recurringRepo}
}

// Execute performs the recurring expense update.
func (uc *UpdateRecurringExpenseUseCase) Execute(ctx context.Context, input UpdateRecurringExpenseInput) (*UpdateRecurringExpenseOutput, error) {
	expense, err := loadOwnedExpense(ctx, uc.recurringRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}

	name := expense.Name
	if input.Name != nil {
		name = *input.Name
	}
	amount := expense.Amount
	if input.Amount != nil {
		amount = *input.Amount
	}
	dayOfMonth := expense.DayOfMonth
	if input.DayOfMonth != nil {
		dayOfMonth = *input.DayOfMonth
	}
	endDate := expense.EndDate
	switch {
	case input.ClearEndDate:
		endDate = nil
	case input.EndDate != nil:
		endDate = input.EndDate
	}

	if err := validateDefinition(name, amount, dayOfMonth, expense.StartDate, endDate); err != nil {
		return nil, err
	}

	expense.Name = strings.TrimSpace(name)
	expense.Amount = amount.Abs()
	expense.DayOfMonth = dayOfMonth
	expense.EndDate = endDate
	if input.Active != nil {
		expense.Active = *input.Active
	}
	if input.MatchPattern != nil {
		expense.MatchPattern = *input.MatchPattern
	}
	if input.VariableAmount != nil {
		expense.VariableAmount = *input.VariableAmount
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.recurringRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update recurring expense: %w", err)
	}

	return &UpdateRecurringExpenseOutput{Expense: expense}, nil
}

// loadOwnedExpense fetches a recurring expense and verifies it belongs to the user.
func loadOwnedExpense(ctx context.Context, repo adapter.RecurringExpenseRepository, expenseID, userID uuid.UUID) (*entity.RecurringExpense, error) {
	expense, err := repo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring expense: %w", err)
	}
	if expense == nil || expense.UserID != userID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring expense not found",
			domainerror.ErrRecurringExpenseNotFound,
		)
	}
	return expense, nil
}
