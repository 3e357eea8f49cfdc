// Package error defines domain-specific errors for the Finance Hub application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyRegistered is returned when registering with an email already in use.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a JWT token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrRefreshTokenNotFound is returned when a refresh token is unknown or revoked.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")

	// ErrWeakPassword is returned when a password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials      AuthErrorCode = "AUTH-010001"
	ErrCodeEmailAlreadyRegistered  AuthErrorCode = "AUTH-010002"
	ErrCodeUserNotFound            AuthErrorCode = "AUTH-010003"
	ErrCodeWeakPassword            AuthErrorCode = "AUTH-010004"
	ErrCodeInvalidEmail            AuthErrorCode = "AUTH-010005"
	ErrCodeMissingToken            AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken            AuthErrorCode = "AUTH-020002"
	ErrCodeRefreshTokenNotFound    AuthErrorCode = "AUTH-020003"
	ErrCodeRateLimited             AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
