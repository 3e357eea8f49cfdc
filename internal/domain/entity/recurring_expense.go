// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringExpense represents a user-defined template for a periodic
// financial obligation (rent, subscriptions) expected once per month on a
// configured day.
type RecurringExpense struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	Amount     decimal.Decimal // Expected magnitude
	DayOfMonth int             // 1-31, clamped to month length at check time
	StartDate  time.Time
	EndDate    *time.Time
	Active     bool
	// MatchPattern overrides name-based description matching when set.
	MatchPattern string
	// VariableAmount marks obligations whose amount drifts month to month.
	// Reserved for tolerance widening.
	VariableAmount bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewRecurringExpense creates a new RecurringExpense entity.
func NewRecurringExpense(
	userID uuid.UUID,
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	name string,
	amount decimal.Decimal,
	dayOfMonth int,
	startDate time.Time,
) *RecurringExpense {
	now := time.Now().UTC()

	return &RecurringExpense{
		ID:         uuid.New(),
		UserID:     userID,
		AccountID:  accountID,
		CategoryID: categoryID,
		Name:       name,
		Amount:     amount.Abs(),
		DayOfMonth: dayOfMonth,
		StartDate:  startDate,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ExpectedDateIn returns the expected occurrence date for the given month,
// clamping DayOfMonth to the actual last day of that month (e.g. 31 resolves
// to 28 or 29 in February).
func (e *RecurringExpense) ExpectedDateIn(year int, month time.Month) time.Time {
	lastDay := DaysInMonth(year, month)
	day := e.DayOfMonth
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
