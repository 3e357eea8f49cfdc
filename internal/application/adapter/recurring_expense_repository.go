// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// RecurringExpenseRepository defines the interface for recurring expense
// persistence operations.
type RecurringExpenseRepository interface {
	// Create creates a new recurring expense definition in the database.
	Create(ctx context.Context, expense *entity.RecurringExpense) error

	// FindByID retrieves a recurring expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error)

	// FindByUser retrieves all recurring expense definitions for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error)

	// ListActive retrieves all active recurring expense definitions for a user.
	ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error)

	// Update updates an existing recurring expense in the database.
	Update(ctx context.Context, expense *entity.RecurringExpense) error

	// Delete soft-deletes a recurring expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
