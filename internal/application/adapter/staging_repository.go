// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// StagingRepository defines the interface for the bank-sync staging queue.
type StagingRepository interface {
	// Create adds a staging transaction to the review queue.
	Create(ctx context.Context, staging *entity.StagingTransaction) error

	// FindByID retrieves a staging transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StagingTransaction, error)

	// FindPendingByUser retrieves pending staging transactions for a user,
	// oldest first.
	FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]*entity.StagingTransaction, error)

	// ExistsByExternalID checks whether a feed entry was already staged.
	ExistsByExternalID(ctx context.Context, accountID uuid.UUID, externalID string) (bool, error)

	// Update saves changes to a staging transaction.
	Update(ctx context.Context, staging *entity.StagingTransaction) error

	// CreateBatch records the outcome of one synchronization run.
	CreateBatch(ctx context.Context, batch *entity.SyncBatch) error
}
