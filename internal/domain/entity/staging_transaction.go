// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StagingStatus represents the review state of a bank-fed transaction.
type StagingStatus string

const (
	StagingStatusPending   StagingStatus = "pending"
	StagingStatusApproved  StagingStatus = "approved"
	StagingStatusRejected  StagingStatus = "rejected"
	StagingStatusDuplicate StagingStatus = "duplicate"
)

// StagingTransaction is a bank-fed transaction held in the review queue
// before becoming a ledger transaction.
type StagingTransaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal // Unsigned magnitude
	Type        TransactionType
	ExternalID  string // Aggregator-side identifier
	Status      StagingStatus
	// DuplicateOfID points at the ledger transaction the dedup matcher
	// considered the same real-world event.
	DuplicateOfID *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewStagingTransaction creates a new StagingTransaction in pending state.
func NewStagingTransaction(
	userID uuid.UUID,
	accountID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	externalID string,
) *StagingTransaction {
	now := time.Now().UTC()

	return &StagingTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		Date:        date,
		Description: description,
		Amount:      amount.Abs(),
		Type:        transactionType,
		ExternalID:  externalID,
		Status:      StagingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SyncBatch records the outcome of one bank-feed synchronization run.
type SyncBatch struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AccountID uuid.UUID
	Imported  int
	Duplicate int
	// LinkedTransactionIDs lists the ledger transactions the dedup pass
	// matched feed entries against.
	LinkedTransactionIDs []string
	RanAt                time.Time
}
