// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	"github.com/finance-hub/backend/internal/integration/persistence/model"
)

// holdingRepository implements the adapter.HoldingRepository interface.
type holdingRepository struct {
	db *gorm.DB
}

// NewHoldingRepository creates a new holding repository instance.
func NewHoldingRepository(db *gorm.DB) adapter.HoldingRepository {
	return &holdingRepository{
		db: db,
	}
}

// Create creates a new holding in the database.
func (r *holdingRepository) Create(ctx context.Context, holding *entity.Holding) error {
	holdingModel := model.HoldingFromEntity(holding)
	result := r.db.WithContext(ctx).Create(holdingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a holding by its ID. Returns nil when no holding exists.
func (r *holdingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Holding, error) {
	var holdingModel model.HoldingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&holdingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return holdingModel.ToEntity(), nil
}

// FindByUser retrieves all holdings for a given user, ordered by symbol.
func (r *holdingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Holding, error) {
	var holdingModels []model.HoldingModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("symbol ASC").
		Find(&holdingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	holdings := make([]*entity.Holding, len(holdingModels))
	for i, hm := range holdingModels {
		holdings[i] = hm.ToEntity()
	}
	return holdings, nil
}

// Update updates an existing holding in the database.
func (r *holdingRepository) Update(ctx context.Context, holding *entity.Holding) error {
	holdingModel := model.HoldingFromEntity(holding)
	result := r.db.WithContext(ctx).Save(holdingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a holding from the database.
func (r *holdingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.HoldingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
