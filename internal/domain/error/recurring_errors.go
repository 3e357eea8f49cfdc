// Package error defines domain-specific errors for the Finance Hub application.
package error

import "errors"

// Recurring expense and reconciliation domain errors.
var (
	// ErrRecurringExpenseNotFound is returned when a recurring expense is not found.
	ErrRecurringExpenseNotFound = errors.New("recurring expense not found")

	// ErrRecurringExpenseNotOwned is returned when the recurring expense does not belong to the user.
	ErrRecurringExpenseNotOwned = errors.New("recurring expense does not belong to user")

	// ErrInvalidDayOfMonth is returned when the day of month is outside 1-31.
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")

	// ErrInvalidRecurringName is returned when the recurring expense name is empty.
	ErrInvalidRecurringName = errors.New("recurring expense name is required")

	// ErrInvalidRecurringAmount is returned when the expected amount is not positive.
	ErrInvalidRecurringAmount = errors.New("recurring expense amount must be greater than zero")

	// ErrEndDateBeforeStartDate is returned when the end date precedes the start date.
	ErrEndDateBeforeStartDate = errors.New("end date must not precede start date")

	// ErrInvalidCheckPeriod is returned when the reconciliation period is invalid.
	ErrInvalidCheckPeriod = errors.New("month must be between 1 and 12 and year must be positive")
)

// RecurringErrorCode defines error codes for recurring expense and
// reconciliation errors. Format: RCR-XXYYYY.
type RecurringErrorCode string

const (
	ErrCodeRecurringNotFound      RecurringErrorCode = "RCR-010001"
	ErrCodeRecurringNotOwned      RecurringErrorCode = "RCR-010002"
	ErrCodeInvalidDayOfMonth      RecurringErrorCode = "RCR-010003"
	ErrCodeInvalidRecurringAmount RecurringErrorCode = "RCR-010004"
	ErrCodeEndDateBeforeStart     RecurringErrorCode = "RCR-010005"
	ErrCodeInvalidRecurringName   RecurringErrorCode = "RCR-010006"
	ErrCodeInvalidCheckPeriod     RecurringErrorCode = "RCR-020001"
)

// RecurringError represents a recurring expense error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
