// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for a category.
type Budget struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	LimitAmount   decimal.Decimal
	AlertOnExceed bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, limitAmount decimal.Decimal, alertOnExceed bool) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:            uuid.New(),
		UserID:        userID,
		CategoryID:    categoryID,
		LimitAmount:   limitAmount,
		AlertOnExceed: alertOnExceed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// BudgetStatus represents a budget with spending for a given month.
type BudgetStatus struct {
	Budget    *Budget
	Category  *Category
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Exceeded  bool
}
