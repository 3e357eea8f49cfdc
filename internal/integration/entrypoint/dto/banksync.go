// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// SyncTransactionsRequest represents the request body for triggering a
// bank-feed synchronization.
type SyncTransactionsRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
}

// SyncTransactionsResponse represents the outcome of one synchronization run.
type SyncTransactionsResponse struct {
	Fetched   int `json:"fetched"`
	Imported  int `json:"imported"`
	Duplicate int `json:"duplicate"`
	Skipped   int `json:"skipped"`
}

// ApproveStagingRequest represents the request body for approving a staged
// transaction into the ledger.
type ApproveStagingRequest struct {
	CategoryID *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
}

// StagingTransactionResponse represents a staged transaction in API responses.
type StagingTransactionResponse struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	Date          string    `json:"date"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	ExternalID    string    `json:"external_id"`
	Status        string    `json:"status"`
	DuplicateOfID *string   `json:"duplicate_of_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// StagingListResponse represents the response for listing staged transactions.
type StagingListResponse struct {
	Staging []StagingTransactionResponse `json:"staging"`
}

// ToStagingTransactionResponse converts a domain StagingTransaction entity to a DTO.
func ToStagingTransactionResponse(staging *entity.StagingTransaction) StagingTransactionResponse {
	resp := StagingTransactionResponse{
		ID:          staging.ID.String(),
		AccountID:   staging.AccountID.String(),
		Date:        staging.Date.Format("2006-01-02"),
		Description: staging.Description,
		Amount:      staging.Amount.String(),
		Type:        string(staging.Type),
		ExternalID:  staging.ExternalID,
		Status:      string(staging.Status),
		CreatedAt:   staging.CreatedAt,
	}
	if staging.DuplicateOfID != nil {
		duplicateOfID := staging.DuplicateOfID.String()
		resp.DuplicateOfID = &duplicateOfID
	}
	return resp
}
