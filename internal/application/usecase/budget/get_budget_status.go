package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
)

// GetBudgetStatusInput represents the input for the budget status report.
type GetBudgetStatusInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 1-12
}

// GetBudgetStatusOutput represents the per-category budget status for one month.
type GetBudgetStatusOutput struct {
	Statuses []*entity.BudgetStatus
}

// GetBudgetStatusUseCase computes spending against each budget for a
// calendar month.
type GetBudgetStatusUseCase struct {
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetStatusUseCase creates a new GetBudgetStatusUseCase instance.
func NewGetBudgetStatusUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetStatusUseCase {
	return &GetBudgetStatusUseCase{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the status of every budget for the given month. Spending
// is the sum of expense magnitudes in the budget's category.
func (uc *GetBudgetStatusUseCase) Execute(ctx context.Context, input GetBudgetStatusInput) (*GetBudgetStatusOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	if len(budgets) == 0 {
		return &GetBudgetStatusOutput{}, nil
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	categoryByID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, category := range categories {
		categoryByID[category.ID] = category
	}

	month := time.Month(input.Month)
	monthStart := time.Date(input.Year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(input.Year, month, entity.DaysInMonth(input.Year, month), 0, 0, 0, 0, time.UTC)
	spentByCategory, err := uc.transactionRepo.SumExpensesByCategory(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum spending: %w", err)
	}

	statuses := make([]*entity.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent, ok := spentByCategory[budget.CategoryID]
		if !ok {
			spent = decimal.Zero
		}
		statuses = append(statuses, &entity.BudgetStatus{
			Budget:    budget,
			Category:  categoryByID[budget.CategoryID],
			Spent:     spent,
			Remaining: budget.LimitAmount.Sub(spent),
			Exceeded:  spent.GreaterThan(budget.LimitAmount),
		})
	}

	return &GetBudgetStatusOutput{Statuses: statuses}, nil
}
