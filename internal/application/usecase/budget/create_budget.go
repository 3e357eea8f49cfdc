// Package budget contains budget management use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for creating a budget.
type CreateBudgetInput struct {
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	LimitAmount   decimal.Decimal
	AlertOnExceed bool
}

// CreateBudgetOutput represents the output of creating a budget.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic. One budget per
// category and user.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if !input.LimitAmount.IsPositive() {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidLimitAmount,
			"limit amount must be greater than zero",
			domainerror.ErrInvalidLimitAmount,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if category == nil || category.UserID != input.UserID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	exists, err := uc.budgetRepo.ExistsByUserAndCategory(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeBudgetAlreadyExists,
			"a budget already exists for this category",
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.LimitAmount, input.AlertOnExceed)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}
