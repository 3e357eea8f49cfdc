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

// recurringExpenseRepository implements the adapter.RecurringExpenseRepository interface.
type recurringExpenseRepository struct {
	db *gorm.DB
}

// NewRecurringExpenseRepository creates a new recurring expense repository instance.
func NewRecurringExpenseRepository(db *gorm.DB) adapter.RecurringExpenseRepository {
	return &recurringExpenseRepository{
		db: db,
	}
}

// Create creates a new recurring expense definition in the database.
func (r *recurringExpenseRepository) Create(ctx context.Context, expense *entity.RecurringExpense) error {
	expenseModel := model.RecurringExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring expense by its ID. Returns nil when no
// expense exists.
func (r *recurringExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error) {
	var expenseModel model.RecurringExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByUser retrieves all recurring expense definitions for a user.
func (r *recurringExpenseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error) {
	var expenseModels []model.RecurringExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.RecurringExpense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// ListActive retrieves all active recurring expense definitions for a user.
func (r *recurringExpenseRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error) {
	var expenseModels []model.RecurringExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("name ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.RecurringExpense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Update updates an existing recurring expense in the database.
func (r *recurringExpenseRepository) Update(ctx context.Context, expense *entity.RecurringExpense) error {
	expenseModel := model.RecurringExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a recurring expense from the database. Reconciliation
// checks already recorded for it are kept.
func (r *recurringExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
