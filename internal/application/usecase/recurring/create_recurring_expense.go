// Package recurring contains recurring expense management use cases.
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

// CreateRecurringExpenseInput represents the input for creating a
// recurring expense definition.
type CreateRecurringExpenseInput struct {
	UserID         uuid.UUID
	AccountID      uuid.UUID
	CategoryID     *uuid.UUID
	Name           string
	Amount         decimal.Decimal
	DayOfMonth     int
	StartDate      time.Time
	EndDate        *time.Time
	MatchPattern   string
	VariableAmount bool
}

// CreateRecurringExpenseOutput represents the output of creating a
// recurring expense.
type CreateRecurringExpenseOutput struct {
	Expense *entity.RecurringExpense
}

// CreateRecurringExpenseUseCase handles recurring expense creation logic.
type CreateRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewCreateRecurringExpenseUseCase creates a new CreateRecurringExpenseUseCase instance.
func NewCreateRecurringExpenseUseCase(recurringRepo adapter.RecurringExpenseRepository) *CreateRecurringExpenseUseCase {
	return &CreateRecurringExpenseUseCase{recurringRepo: recurringRepo}
}

// Execute performs the recurring expense creation. Day 29-31 is allowed;
// the reconciliation engine clamps it to shorter months.
func (uc *CreateRecurringExpenseUseCase) Execute(ctx context.Context, input CreateRecurringExpenseInput) (*CreateRecurringExpenseOutput, error) {
	if err := validateDefinition(input.Name, input.Amount, input.DayOfMonth, input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	expense := entity.NewRecurringExpense(
		input.UserID,
		input.AccountID,
		input.CategoryID,
		strings.TrimSpace(input.Name),
		input.Amount,
		input.DayOfMonth,
		input.StartDate,
	)
	expense.EndDate = input.EndDate
	expense.MatchPattern = input.MatchPattern
	expense.VariableAmount = input.VariableAmount

	if err := uc.recurringRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create recurring expense: %w", err)
	}

	return &CreateRecurringExpenseOutput{Expense: expense}, nil
}

// validateDefinition checks the fields shared by create and update.
func validateDefinition(name string, amount decimal.Decimal, dayOfMonth int, startDate time.Time, endDate *time.Time) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringName,
			"recurring expense name is required",
			domainerror.ErrInvalidRecurringName,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"recurring expense amount must be greater than zero",
			domainerror.ErrInvalidRecurringAmount,
		)
	}
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidDayOfMonth,
			fmt.Sprintf("day of month %d is out of range", dayOfMonth),
			domainerror.ErrInvalidDayOfMonth,
		)
	}
	if endDate != nil && endDate.Before(startDate) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeEndDateBeforeStart,
			"end date must not precede start date",
			domainerror.ErrEndDateBeforeStartDate,
		)
	}
	return nil
}
