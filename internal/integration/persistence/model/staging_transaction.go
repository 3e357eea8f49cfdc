// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// StagingTransactionModel represents the staging_transactions table in the
// database. The composite unique index stops a feed entry from being staged
// twice for the same account.
type StagingTransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_staging_external"`
	ExternalID    string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_staging_external"`
	Date          time.Time       `gorm:"type:date;not null"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type          string          `gorm:"type:varchar(10);not null"`
	Status        string          `gorm:"type:varchar(10);not null;index"`
	DuplicateOfID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Account     *AccountModel     `gorm:"foreignKey:AccountID;references:ID"`
	DuplicateOf *TransactionModel `gorm:"foreignKey:DuplicateOfID;references:ID"`
}

// TableName returns the table name for the StagingTransactionModel.
func (StagingTransactionModel) TableName() string {
	return "staging_transactions"
}

// ToEntity converts a StagingTransactionModel to a domain StagingTransaction entity.
func (m *StagingTransactionModel) ToEntity() *entity.StagingTransaction {
	return &entity.StagingTransaction{
		ID:            m.ID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		Date:          m.Date,
		Description:   m.Description,
		Amount:        m.Amount,
		Type:          entity.TransactionType(m.Type),
		ExternalID:    m.ExternalID,
		Status:        entity.StagingStatus(m.Status),
		DuplicateOfID: m.DuplicateOfID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// StagingTransactionFromEntity creates a StagingTransactionModel from a domain entity.
func StagingTransactionFromEntity(staging *entity.StagingTransaction) *StagingTransactionModel {
	return &StagingTransactionModel{
		ID:            staging.ID,
		UserID:        staging.UserID,
		AccountID:     staging.AccountID,
		ExternalID:    staging.ExternalID,
		Date:          staging.Date,
		Description:   staging.Description,
		Amount:        staging.Amount,
		Type:          string(staging.Type),
		Status:        string(staging.Status),
		DuplicateOfID: staging.DuplicateOfID,
		CreatedAt:     staging.CreatedAt,
		UpdatedAt:     staging.UpdatedAt,
	}
}

// SyncBatchModel represents the sync_batches table in the database.
type SyncBatchModel struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID      `gorm:"type:uuid;not null;index"`
	AccountID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Imported             int            `gorm:"not null"`
	Duplicate            int            `gorm:"not null"`
	LinkedTransactionIDs pq.StringArray `gorm:"type:text[]"`
	RanAt                time.Time      `gorm:"not null"`
}

// TableName returns the table name for the SyncBatchModel.
func (SyncBatchModel) TableName() string {
	return "sync_batches"
}

// ToEntity converts a SyncBatchModel to a domain SyncBatch entity.
func (m *SyncBatchModel) ToEntity() *entity.SyncBatch {
	return &entity.SyncBatch{
		ID:                   m.ID,
		UserID:               m.UserID,
		AccountID:            m.AccountID,
		Imported:             m.Imported,
		Duplicate:            m.Duplicate,
		LinkedTransactionIDs: m.LinkedTransactionIDs,
		RanAt:                m.RanAt,
	}
}

// SyncBatchFromEntity creates a SyncBatchModel from a domain SyncBatch entity.
func SyncBatchFromEntity(batch *entity.SyncBatch) *SyncBatchModel {
	return &SyncBatchModel{
		ID:                   batch.ID,
		UserID:               batch.UserID,
		AccountID:            batch.AccountID,
		Imported:             batch.Imported,
		Duplicate:            batch.Duplicate,
		LinkedTransactionIDs: batch.LinkedTransactionIDs,
		RanAt:                batch.RanAt,
	}
}
