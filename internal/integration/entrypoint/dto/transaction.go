// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required,uuid"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Notes       string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date          *string  `json:"date,omitempty"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount        *float64 `json:"amount,omitempty"`
	Type          *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Notes         *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	AccountID   string                       `json:"account_id"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	Notes       string                       `json:"notes,omitempty"`
	ExternalID  string                       `json:"external_id,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
	Totals       TransactionTotalsResponse     `json:"totals"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          transaction.ID.String(),
		AccountID:   transaction.AccountID.String(),
		Date:        transaction.Date.Format("2006-01-02"),
		Description: transaction.Description,
		Amount:      transaction.Amount.String(),
		Type:        string(transaction.Type),
		Notes:       transaction.Notes,
		ExternalID:  transaction.ExternalID,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
	if transaction.CategoryID != nil {
		categoryID := transaction.CategoryID.String()
		resp.CategoryID = &categoryID
	}
	return resp
}

// ToTransactionWithCategoryResponse converts a transaction with its category.
func ToTransactionWithCategoryResponse(twc *entity.TransactionWithCategory) TransactionResponse {
	resp := ToTransactionResponse(twc.Transaction)
	if twc.Category != nil {
		resp.Category = &TransactionCategoryResponse{
			ID:    twc.Category.ID.String(),
			Name:  twc.Category.Name,
			Color: twc.Category.Color,
			Icon:  twc.Category.Icon,
			Type:  string(twc.Category.Type),
		}
	}
	return resp
}
