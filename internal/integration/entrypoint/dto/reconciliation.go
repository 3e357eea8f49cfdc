// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-hub/backend/internal/application/usecase/reconciliation"
	"github.com/finance-hub/backend/internal/domain/entity"
)

// RunChecksRequest represents the request body for triggering a
// reconciliation run.
type RunChecksRequest struct {
	Year  int `json:"year" binding:"required,min=1970"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// RunChecksSummaryResponse represents the outcome of one reconciliation run.
type RunChecksSummaryResponse struct {
	Checked int `json:"checked"`
	Matched int `json:"matched"`
	Pending int `json:"pending"`
	Missing int `json:"missing"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// ReconciliationCheckResponse represents a single check record in API responses.
type ReconciliationCheckResponse struct {
	ID                   string    `json:"id"`
	RecurringExpenseID   string    `json:"recurring_expense_id"`
	Month                int       `json:"month"`
	Year                 int       `json:"year"`
	Status               string    `json:"status"`
	MatchedTransactionID *string   `json:"matched_transaction_id,omitempty"`
	MatchedDate          *string   `json:"matched_date,omitempty"`
	MatchedAmount        *string   `json:"matched_amount,omitempty"`
	CheckedAt            time.Time `json:"checked_at"`
}

// ReconciliationCheckListResponse represents the response for listing checks.
type ReconciliationCheckListResponse struct {
	Checks []ReconciliationCheckResponse `json:"checks"`
}

// ToRunChecksSummaryResponse converts a run summary to its DTO.
func ToRunChecksSummaryResponse(summary reconciliation.RunChecksSummary) RunChecksSummaryResponse {
	return RunChecksSummaryResponse{
		Checked: summary.Checked,
		Matched: summary.Matched,
		Pending: summary.Pending,
		Missing: summary.Missing,
		Skipped: summary.Skipped,
		Failed:  summary.Failed,
	}
}

// ToReconciliationCheckResponse converts a domain ReconciliationCheck entity to a DTO.
func ToReconciliationCheckResponse(check *entity.ReconciliationCheck) ReconciliationCheckResponse {
	resp := ReconciliationCheckResponse{
		ID:                 check.ID.String(),
		RecurringExpenseID: check.RecurringExpenseID.String(),
		Month:              check.Month,
		Year:               check.Year,
		Status:             string(check.Status),
		CheckedAt:          check.CheckedAt,
	}
	if check.MatchedTransactionID != nil {
		matchedID := check.MatchedTransactionID.String()
		resp.MatchedTransactionID = &matchedID
	}
	if check.MatchedDate != nil {
		matchedDate := check.MatchedDate.Format("2006-01-02")
		resp.MatchedDate = &matchedDate
	}
	if check.MatchedAmount != nil {
		matchedAmount := check.MatchedAmount.String()
		resp.MatchedAmount = &matchedAmount
	}
	return resp
}
