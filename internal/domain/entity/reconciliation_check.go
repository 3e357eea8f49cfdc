// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/domain/valueobject"
)

// ReconciliationCheck is the per-(expense, month, year) record stating
// whether a recurring expense's expected occurrence was found among actual
// transactions. At most one record exists per key; re-running a check
// overwrites the prior record.
//
// Invariant: Status is MATCHED if and only if MatchedTransactionID is set.
type ReconciliationCheck struct {
	ID                   uuid.UUID
	RecurringExpenseID   uuid.UUID
	Month                int // 1-12
	Year                 int
	Status               valueobject.CheckStatus
	MatchedTransactionID *uuid.UUID
	MatchedDate          *time.Time
	MatchedAmount        *decimal.Decimal
	CheckedAt            time.Time
}

// NewReconciliationCheck creates a check record for the given key and status.
func NewReconciliationCheck(expenseID uuid.UUID, year, month int, status valueobject.CheckStatus) *ReconciliationCheck {
	return &ReconciliationCheck{
		ID:                 uuid.New(),
		RecurringExpenseID: expenseID,
		Month:              month,
		Year:               year,
		Status:             status,
		CheckedAt:          time.Now().UTC(),
	}
}

// SetMatch records the matched transaction and flips the status to MATCHED.
func (c *ReconciliationCheck) SetMatch(transactionID uuid.UUID, date time.Time, amount decimal.Decimal) {
	c.Status = valueobject.CheckStatusMatched
	c.MatchedTransactionID = &transactionID
	c.MatchedDate = &date
	c.MatchedAmount = &amount
}
