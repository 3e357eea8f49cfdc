// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	"github.com/finance-hub/backend/internal/integration/persistence/model"
)

// reconciliationRepository implements the adapter.ReconciliationRepository interface.
type reconciliationRepository struct {
	db *gorm.DB
}

// NewReconciliationRepository creates a new reconciliation repository instance.
func NewReconciliationRepository(db *gorm.DB) adapter.ReconciliationRepository {
	return &reconciliationRepository{
		db: db,
	}
}

// Upsert inserts the check or replaces the matched fields of the existing
// record for the same (recurring expense, month, year) key.
func (r *reconciliationRepository) Upsert(ctx context.Context, check *entity.ReconciliationCheck) error {
	checkModel := model.ReconciliationCheckFromEntity(check)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "recurring_expense_id"},
			{Name: "month"},
			{Name: "year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"status",
			"matched_transaction_id",
			"matched_date",
			"matched_amount",
			"checked_at",
		}),
	}).Create(checkModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserAndPeriod retrieves all checks belonging to the user's recurring
// expenses for the given month and year.
func (r *reconciliationRepository) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, year, month int) ([]*entity.ReconciliationCheck, error) {
	var checkModels []model.ReconciliationCheckModel
	result := r.db.WithContext(ctx).
		Joins("JOIN recurring_expenses ON recurring_expenses.id = reconciliation_checks.recurring_expense_id").
		Where("recurring_expenses.user_id = ?", userID).
		Where("reconciliation_checks.year = ? AND reconciliation_checks.month = ?", year, month).
		Order("reconciliation_checks.checked_at DESC").
		Find(&checkModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCheckEntities(checkModels), nil
}

// FindByUser retrieves all checks belonging to the user's recurring
// expenses, newest period first.
func (r *reconciliationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ReconciliationCheck, error) {
	var checkModels []model.ReconciliationCheckModel
	result := r.db.WithContext(ctx).
		Joins("JOIN recurring_expenses ON recurring_expenses.id = reconciliation_checks.recurring_expense_id").
		Where("recurring_expenses.user_id = ?", userID).
		Order("reconciliation_checks.year DESC, reconciliation_checks.month DESC").
		Find(&checkModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCheckEntities(checkModels), nil
}

func toCheckEntities(checkModels []model.ReconciliationCheckModel) []*entity.ReconciliationCheck {
	checks := make([]*entity.ReconciliationCheck, len(checkModels))
	for i, cm := range checkModels {
		checks[i] = cm.ToEntity()
	}
	return checks
}
