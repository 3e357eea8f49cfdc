// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// ExistsByUserAndCategory checks if a budget exists for the category.
	ExistsByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete soft-deletes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
