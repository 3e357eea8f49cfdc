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

// stagingRepository implements the adapter.StagingRepository interface.
type stagingRepository struct {
	db *gorm.DB
}

// NewStagingRepository creates a new staging repository instance.
func NewStagingRepository(db *gorm.DB) adapter.StagingRepository {
	return &stagingRepository{
		db: db,
	}
}

// Create adds a staging transaction to the review queue.
func (r *stagingRepository) Create(ctx context.Context, staging *entity.StagingTransaction) error {
	stagingModel := model.StagingTransactionFromEntity(staging)
	result := r.db.WithContext(ctx).Create(stagingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a staging transaction by its ID. Returns nil when no
// staging transaction exists.
func (r *stagingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StagingTransaction, error) {
	var stagingModel model.StagingTransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&stagingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return stagingModel.ToEntity(), nil
}

// FindPendingByUser retrieves staging transactions still awaiting review,
// oldest first. Duplicate-flagged rows are included so the user can
// overrule the matcher.
func (r *stagingRepository) FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]*entity.StagingTransaction, error) {
	var stagingModels []model.StagingTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status IN ?", []string{
			string(entity.StagingStatusPending),
			string(entity.StagingStatusDuplicate),
		}).
		Order("date ASC, created_at ASC").
		Find(&stagingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	stagings := make([]*entity.StagingTransaction, len(stagingModels))
	for i, sm := range stagingModels {
		stagings[i] = sm.ToEntity()
	}
	return stagings, nil
}

// ExistsByExternalID checks whether a feed entry was already staged for the account.
func (r *stagingRepository) ExistsByExternalID(ctx context.Context, accountID uuid.UUID, externalID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.StagingTransactionModel{}).
		Where("account_id = ? AND external_id = ?", accountID, externalID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update saves changes to a staging transaction.
func (r *stagingRepository) Update(ctx context.Context, staging *entity.StagingTransaction) error {
	stagingModel := model.StagingTransactionFromEntity(staging)
	result := r.db.WithContext(ctx).Save(stagingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch records the outcome of one synchronization run.
func (r *stagingRepository) CreateBatch(ctx context.Context, batch *entity.SyncBatch) error {
	batchModel := model.SyncBatchFromEntity(batch)
	result := r.db.WithContext(ctx).Create(batchModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
