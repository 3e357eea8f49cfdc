// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// HoldingRepository defines the interface for investment holding persistence.
type HoldingRepository interface {
	// Create creates a new holding in the database.
	Create(ctx context.Context, holding *entity.Holding) error

	// FindByID retrieves a holding by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Holding, error)

	// FindByUser retrieves all holdings for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Holding, error)

	// Update updates an existing holding in the database.
	Update(ctx context.Context, holding *entity.Holding) error

	// Delete soft-deletes a holding from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
