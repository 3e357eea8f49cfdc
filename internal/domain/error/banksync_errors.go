// Package error defines domain-specific errors for the Finance Hub application.
package error

import "errors"

// Bank sync domain errors.
var (
	// ErrStagingTransactionNotFound is returned when a staging transaction is not found.
	ErrStagingTransactionNotFound = errors.New("staging transaction not found")

	// ErrStagingAlreadyResolved is returned when approving or rejecting a
	// staging transaction that is no longer pending.
	ErrStagingAlreadyResolved = errors.New("staging transaction already resolved")

	// ErrAccountNotConnected is returned when syncing an account without a bank connection.
	ErrAccountNotConnected = errors.New("account has no bank connection")

	// ErrBankFeedUnavailable is returned when the aggregator API cannot be reached.
	ErrBankFeedUnavailable = errors.New("bank feed unavailable")
)

// BankSyncErrorCode defines error codes for bank sync errors.
// Format: SYNC-XXYYYY.
type BankSyncErrorCode string

const (
	ErrCodeStagingNotFound        BankSyncErrorCode = "SYNC-010001"
	ErrCodeStagingAlreadyResolved BankSyncErrorCode = "SYNC-010002"
	ErrCodeAccountNotConnected    BankSyncErrorCode = "SYNC-020001"
	ErrCodeBankFeedUnavailable    BankSyncErrorCode = "SYNC-020002"
)

// BankSyncError represents a bank sync error with code and message.
type BankSyncError struct {
	Code    BankSyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BankSyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BankSyncError) Unwrap() error {
	return e.Err
}

// NewBankSyncError creates a new BankSyncError with the given code and message.
func NewBankSyncError(code BankSyncErrorCode, message string, err error) *BankSyncError {
	return &BankSyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
