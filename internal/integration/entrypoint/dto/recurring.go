// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// CreateRecurringExpenseRequest represents the request body for defining a
// recurring expense.
type CreateRecurringExpenseRequest struct {
	AccountID      string  `json:"account_id" binding:"required,uuid"`
	CategoryID     *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	Amount         float64 `json:"amount" binding:"required"`
	DayOfMonth     int     `json:"day_of_month" binding:"required,min=1,max=31"`
	StartDate      string  `json:"start_date" binding:"required"`
	EndDate        *string `json:"end_date,omitempty"`
	MatchPattern   string  `json:"match_pattern,omitempty" binding:"omitempty,max=255"`
	VariableAmount bool    `json:"variable_amount,omitempty"`
}

// UpdateRecurringExpenseRequest represents the request body for updating a
// recurring expense definition.
type UpdateRecurringExpenseRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount         *float64 `json:"amount,omitempty"`
	DayOfMonth     *int     `json:"day_of_month,omitempty" binding:"omitempty,min=1,max=31"`
	EndDate        *string  `json:"end_date,omitempty"`
	ClearEndDate   bool     `json:"clear_end_date,omitempty"`
	Active         *bool    `json:"active,omitempty"`
	MatchPattern   *string  `json:"match_pattern,omitempty" binding:"omitempty,max=255"`
	VariableAmount *bool    `json:"variable_amount,omitempty"`
}

// RecurringExpenseResponse represents a single recurring expense in API responses.
type RecurringExpenseResponse struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"account_id"`
	CategoryID     *string   `json:"category_id,omitempty"`
	Name           string    `json:"name"`
	Amount         string    `json:"amount"`
	DayOfMonth     int       `json:"day_of_month"`
	StartDate      string    `json:"start_date"`
	EndDate        *string   `json:"end_date,omitempty"`
	Active         bool      `json:"active"`
	MatchPattern   string    `json:"match_pattern,omitempty"`
	VariableAmount bool      `json:"variable_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RecurringExpenseListResponse represents the response for listing recurring expenses.
type RecurringExpenseListResponse struct {
	RecurringExpenses []RecurringExpenseResponse `json:"recurring_expenses"`
}

// ToRecurringExpenseResponse converts a domain RecurringExpense entity to a DTO.
func ToRecurringExpenseResponse(expense *entity.RecurringExpense) RecurringExpenseResponse {
	resp := RecurringExpenseResponse{
		ID:             expense.ID.String(),
		AccountID:      expense.AccountID.String(),
		Name:           expense.Name,
		Amount:         expense.Amount.String(),
		DayOfMonth:     expense.DayOfMonth,
		StartDate:      expense.StartDate.Format("2006-01-02"),
		Active:         expense.Active,
		MatchPattern:   expense.MatchPattern,
		VariableAmount: expense.VariableAmount,
		CreatedAt:      expense.CreatedAt,
		UpdatedAt:      expense.UpdatedAt,
	}
	if expense.CategoryID != nil {
		categoryID := expense.CategoryID.String()
		resp.CategoryID = &categoryID
	}
	if expense.EndDate != nil {
		endDate := expense.EndDate.Format("2006-01-02")
		resp.EndDate = &endDate
	}
	return resp
}
