// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// RecurringExpenseModel represents the recurring_expenses table in the database.
type RecurringExpenseModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DayOfMonth     int             `gorm:"not null"`
	StartDate      time.Time       `gorm:"type:date;not null"`
	EndDate        *time.Time      `gorm:"type:date"`
	Active         bool            `gorm:"default:true;index"`
	MatchPattern   string          `gorm:"type:varchar(255)"`
	VariableAmount bool            `gorm:"default:false"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Account  *AccountModel  `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the RecurringExpenseModel.
func (RecurringExpenseModel) TableName() string {
	return "recurring_expenses"
}

// ToEntity converts a RecurringExpenseModel to a domain RecurringExpense entity.
func (m *RecurringExpenseModel) ToEntity() *entity.RecurringExpense {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.RecurringExpense{
		ID:             m.ID,
		UserID:         m.UserID,
		AccountID:      m.AccountID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		Amount:         m.Amount,
		DayOfMonth:     m.DayOfMonth,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Active:         m.Active,
		MatchPattern:   m.MatchPattern,
		VariableAmount: m.VariableAmount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// RecurringExpenseFromEntity creates a RecurringExpenseModel from a domain entity.
func RecurringExpenseFromEntity(expense *entity.RecurringExpense) *RecurringExpenseModel {
	var deletedAt gorm.DeletedAt
	if expense.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *expense.DeletedAt, Valid: true}
	}

	return &RecurringExpenseModel{
		ID:             expense.ID,
		UserID:         expense.UserID,
		AccountID:      expense.AccountID,
		CategoryID:     expense.CategoryID,
		Name:           expense.Name,
		Amount:         expense.Amount,
		DayOfMonth:     expense.DayOfMonth,
		StartDate:      expense.StartDate,
		EndDate:        expense.EndDate,
		Active:         expense.Active,
		MatchPattern:   expense.MatchPattern,
		VariableAmount: expense.VariableAmount,
		CreatedAt:      expense.CreatedAt,
		UpdatedAt:      expense.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}
