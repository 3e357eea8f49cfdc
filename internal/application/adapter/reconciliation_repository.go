// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// ReconciliationRepository defines the interface for reconciliation check
// persistence operations. The table carries a uniqueness constraint on
// (recurring_expense_id, month, year); Upsert relies on it.
type ReconciliationRepository interface {
	// Upsert inserts the check or, when a record already exists for the
	// (recurring expense, month, year) key, replaces its status and
	// matched fields. Last writer wins under the unique constraint.
	Upsert(ctx context.Context, check *entity.ReconciliationCheck) error

	// FindByUserAndPeriod retrieves all checks belonging to the user's
	// recurring expenses for the given month and year.
	FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, year, month int) ([]*entity.ReconciliationCheck, error)

	// FindByUser retrieves all checks belonging to the user's recurring
	// expenses, newest period first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ReconciliationCheck, error)
}
