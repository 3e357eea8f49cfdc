// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name             string `json:"name" binding:"required,min=1,max=100"`
	Type             string `json:"type" binding:"required,oneof=checking savings credit_card investment"`
	Institution      string `json:"institution,omitempty" binding:"omitempty,max=100"`
	Currency         string `json:"currency,omitempty" binding:"omitempty,len=3"`
	BankConnectionID string `json:"bank_connection_id,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Institution *string `json:"institution,omitempty" binding:"omitempty,max=100"`
	Active      *bool   `json:"active,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Institution      string    `json:"institution,omitempty"`
	Currency         string    `json:"currency"`
	BankConnectionID string    `json:"bank_connection_id,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:               account.ID.String(),
		Name:             account.Name,
		Type:             string(account.Type),
		Institution:      account.Institution,
		Currency:         account.Currency,
		BankConnectionID: account.BankConnectionID,
		Active:           account.Active,
		CreatedAt:        account.CreatedAt,
		UpdatedAt:        account.UpdatedAt,
	}
}

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color,omitempty" binding:"omitempty,max=7"`
	Icon  string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Type  string `json:"type" binding:"required,oneof=expense income"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Color *string `json:"color,omitempty" binding:"omitempty,max=7"`
	Icon  *string `json:"icon,omitempty" binding:"omitempty,max=50"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		Type:      string(category.Type),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
