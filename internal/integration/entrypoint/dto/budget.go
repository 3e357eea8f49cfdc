// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID    string  `json:"category_id" binding:"required,uuid"`
	LimitAmount   float64 `json:"limit_amount" binding:"required"`
	AlertOnExceed bool    `json:"alert_on_exceed,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	LimitAmount   *float64 `json:"limit_amount,omitempty"`
	AlertOnExceed *bool    `json:"alert_on_exceed,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"category_id"`
	LimitAmount   string    `json:"limit_amount"`
	AlertOnExceed bool      `json:"alert_on_exceed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BudgetStatusResponse represents a budget with its monthly spending status.
type BudgetStatusResponse struct {
	Budget    BudgetResponse    `json:"budget"`
	Category  *CategoryResponse `json:"category,omitempty"`
	Spent     string            `json:"spent"`
	Remaining string            `json:"remaining"`
	Exceeded  bool              `json:"exceeded"`
}

// BudgetStatusListResponse represents the response for the budget status endpoint.
type BudgetStatusListResponse struct {
	Year     int                    `json:"year"`
	Month    int                    `json:"month"`
	Statuses []BudgetStatusResponse `json:"statuses"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:            budget.ID.String(),
		CategoryID:    budget.CategoryID.String(),
		LimitAmount:   budget.LimitAmount.String(),
		AlertOnExceed: budget.AlertOnExceed,
		CreatedAt:     budget.CreatedAt,
		UpdatedAt:     budget.UpdatedAt,
	}
}

// ToBudgetStatusResponse converts a domain BudgetStatus to its DTO.
func ToBudgetStatusResponse(status *entity.BudgetStatus) BudgetStatusResponse {
	resp := BudgetStatusResponse{
		Budget:    ToBudgetResponse(status.Budget),
		Spent:     status.Spent.String(),
		Remaining: status.Remaining.String(),
		Exceeded:  status.Exceeded,
	}
	if status.Category != nil {
		category := ToCategoryResponse(status.Category)
		resp.Category = &category
	}
	return resp
}
