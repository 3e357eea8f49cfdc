package budget

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

// UpdateBudgetInput represents the input for updating a budget.
// Nil pointer fields are left unchanged.
type UpdateBudgetInput struct {
	BudgetID      uuid.UUID
	UserID        uuid.UUID
	LimitAmount   *decimal.Decimal
	AlertOnExceed *bool
}

// UpdateBudgetOutput represents the output of updating a budget.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := loadOwnedBudget(ctx, uc.budgetRepo, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.LimitAmount != nil {
		if !input.LimitAmount.IsPositive() {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeInvalidLimitAmount,
				"limit amount must be greater than zero",
				domainerror.ErrInvalidLimitAmount,
			)
		}
		budget.LimitAmount = *input.LimitAmount
	}
	if input.AlertOnExceed != nil {
		budget.AlertOnExceed = *input.AlertOnExceed
	}
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}

// loadOwnedBudget fetches a budget and verifies it belongs to the user.
func loadOwnedBudget(ctx context.Context, repo adapter.BudgetRepository, budgetID, userID uuid.UUID) (*entity.Budget, error) {
	budget, err := repo.FindByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}
	if budget == nil || budget.UserID != userID {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	return budget, nil
}
