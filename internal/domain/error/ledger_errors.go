// Package error defines domain-specific errors for the Finance Hub application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNotOwnedByUser is returned when the account does not belong to the user.
	ErrAccountNotOwnedByUser = errors.New("account does not belong to user")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidAccountName is returned when the account name is empty.
	ErrInvalidAccountName = errors.New("account name is required")
)

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNotOwnedByUser is returned when the category does not belong to the user.
	ErrCategoryNotOwnedByUser = errors.New("category does not belong to user")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")
)

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is invalid.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")
)

// LedgerErrorCode defines error codes for account, category, and
// transaction errors. Format: LGR-XXYYYY.
type LedgerErrorCode string

const (
	ErrCodeAccountNotFound        LedgerErrorCode = "LGR-010001"
	ErrCodeAccountNotOwned        LedgerErrorCode = "LGR-010002"
	ErrCodeInvalidAccountType     LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidAccountName     LedgerErrorCode = "LGR-010004"
	ErrCodeCategoryNotFound       LedgerErrorCode = "LGR-020001"
	ErrCodeCategoryNotOwned       LedgerErrorCode = "LGR-020002"
	ErrCodeInvalidCategoryType    LedgerErrorCode = "LGR-020003"
	ErrCodeCategoryNameRequired   LedgerErrorCode = "LGR-020004"
	ErrCodeTransactionNotFound    LedgerErrorCode = "LGR-030001"
	ErrCodeInvalidTransactionType LedgerErrorCode = "LGR-030002"
	ErrCodeInvalidAmount          LedgerErrorCode = "LGR-030003"
	ErrCodeInvalidDate            LedgerErrorCode = "LGR-030004"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
