// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID      uuid.UUID
	AccountID   *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	CategoryIDs []uuid.UUID
	Type        *entity.TransactionType
	Search      string // Case-insensitive description match
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindInDateRange retrieves all transactions for a user whose date falls
	// within [startDate, endDate] inclusive, ordered by date ascending.
	// Used by the reconciliation engine and bank-sync dedup, which need a
	// bounded in-memory window rather than a page.
	FindInDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error)

	// GetTotals calculates income/expense totals for transactions matching the filter.
	GetTotals(ctx context.Context, filter TransactionFilter) (*entity.TransactionTotals, error)

	// SumExpensesByCategory sums expense magnitudes per category for a user
	// within the date range. Used for budget status and monthly reports.
	SumExpensesByCategory(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (map[uuid.UUID]decimal.Decimal, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
