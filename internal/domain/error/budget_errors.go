// Package error defines domain-specific errors for the Finance Hub application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the category.
	ErrBudgetAlreadyExists = errors.New("a budget already exists for this category")

	// ErrInvalidLimitAmount is returned when the budget limit is not positive.
	ErrInvalidLimitAmount = errors.New("limit amount must be greater than zero")
)

// Investment domain errors.
var (
	// ErrHoldingNotFound is returned when a holding is not found in the system.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrInvalidQuantity is returned when the holding quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrQuoteUnavailable is returned when no quote could be fetched for a symbol.
	ErrQuoteUnavailable = errors.New("quote unavailable")
)

// PlanningErrorCode defines error codes for budget and investment errors.
// Format: PLN-XXYYYY.
type PlanningErrorCode string

const (
	ErrCodeBudgetNotFound      PlanningErrorCode = "PLN-010001"
	ErrCodeBudgetAlreadyExists PlanningErrorCode = "PLN-010002"
	ErrCodeInvalidLimitAmount  PlanningErrorCode = "PLN-010003"
	ErrCodeHoldingNotFound     PlanningErrorCode = "PLN-020001"
	ErrCodeInvalidQuantity     PlanningErrorCode = "PLN-020002"
	ErrCodeQuoteUnavailable    PlanningErrorCode = "PLN-020003"
)

// PlanningError represents a budget or investment error with code and message.
type PlanningError struct {
	Code    PlanningErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanningError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanningError) Unwrap() error {
	return e.Err
}

// NewPlanningError creates a new PlanningError with the given code and message.
func NewPlanningError(code PlanningErrorCode, message string, err error) *PlanningError {
	return &PlanningError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
