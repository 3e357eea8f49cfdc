// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/domain/entity"
	"github.com/finance-hub/backend/internal/domain/valueobject"
)

// ReconciliationCheckModel represents the reconciliation_checks table in
// the database. The composite unique index enforces at most one record per
// (recurring expense, month, year); Upsert relies on it.
type ReconciliationCheckModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecurringExpenseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_check_expense_period"`
	Month              int       `gorm:"not null;uniqueIndex:idx_check_expense_period"`
	Year               int       `gorm:"not null;uniqueIndex:idx_check_expense_period"`
	Status             string    `gorm:"type:varchar(10);not null;index"`

	MatchedTransactionID *uuid.UUID       `gorm:"type:uuid"`
	MatchedDate          *time.Time       `gorm:"type:date"`
	MatchedAmount        *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CheckedAt            time.Time        `gorm:"not null"`

	RecurringExpense   *RecurringExpenseModel `gorm:"foreignKey:RecurringExpenseID;references:ID"`
	MatchedTransaction *TransactionModel      `gorm:"foreignKey:MatchedTransactionID;references:ID"`
}

// TableName returns the table name for the ReconciliationCheckModel.
func (ReconciliationCheckModel) TableName() string {
	return "reconciliation_checks"
}

// ToEntity converts a ReconciliationCheckModel to a domain ReconciliationCheck entity.
func (m *ReconciliationCheckModel) ToEntity() *entity.ReconciliationCheck {
	return &entity.ReconciliationCheck{
		ID:                   m.ID,
		RecurringExpenseID:   m.RecurringExpenseID,
		Month:                m.Month,
		Year:                 m.Year,
		Status:               valueobject.CheckStatus(m.Status),
		MatchedTransactionID: m.MatchedTransactionID,
		MatchedDate:          m.MatchedDate,
		MatchedAmount:        m.MatchedAmount,
		CheckedAt:            m.CheckedAt,
	}
}

// ReconciliationCheckFromEntity creates a ReconciliationCheckModel from a domain entity.
func ReconciliationCheckFromEntity(check *entity.ReconciliationCheck) *ReconciliationCheckModel {
	return &ReconciliationCheckModel{
		ID:                   check.ID,
		RecurringExpenseID:   check.RecurringExpenseID,
		Month:                check.Month,
		Year:                 check.Year,
		Status:               string(check.Status),
		MatchedTransactionID: check.MatchedTransactionID,
		MatchedDate:          check.MatchedDate,
		MatchedAmount:        check.MatchedAmount,
		CheckedAt:            check.CheckedAt,
	}
}
