// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-hub/backend/internal/domain/error"
	"github.com/finance-hub/backend/internal/integration/entrypoint/dto"
)

// respondError maps a domain error to an HTTP response. Errors that are not
// coded domain errors become a generic 500.
func respondError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(authErrorStatus(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(ledgerErrorStatus(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var recurringErr *domainerror.RecurringError
	if errors.As(err, &recurringErr) {
		ctx.JSON(recurringErrorStatus(recurringErr.Code), dto.ErrorResponse{
			Error: recurringErr.Message,
			Code:  string(recurringErr.Code),
		})
		return
	}

	var syncErr *domainerror.BankSyncError
	if errors.As(err, &syncErr) {
		ctx.JSON(bankSyncErrorStatus(syncErr.Code), dto.ErrorResponse{
			Error: syncErr.Message,
			Code:  string(syncErr.Code),
		})
		return
	}

	var planningErr *domainerror.PlanningError
	if errors.As(err, &planningErr) {
		ctx.JSON(planningErrorStatus(planningErr.Code), dto.ErrorResponse{
			Error: planningErr.Message,
			Code:  string(planningErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func authErrorStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailAlreadyRegistered:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeRefreshTokenNotFound:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func ledgerErrorStatus(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound,
		domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountNotOwned,
		domainerror.ErrCodeCategoryNotOwned:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidAccountType,
		domainerror.ErrCodeInvalidAccountName,
		domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeCategoryNameRequired,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func recurringErrorStatus(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRecurringNotOwned:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidDayOfMonth,
		domainerror.ErrCodeInvalidRecurringAmount,
		domainerror.ErrCodeEndDateBeforeStart,
		domainerror.ErrCodeInvalidRecurringName,
		domainerror.ErrCodeInvalidCheckPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func bankSyncErrorStatus(code domainerror.BankSyncErrorCode) int {
	switch code {
	case domainerror.ErrCodeStagingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeStagingAlreadyResolved,
		domainerror.ErrCodeAccountNotConnected:
		return http.StatusConflict
	case domainerror.ErrCodeBankFeedUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func planningErrorStatus(code domainerror.PlanningErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound,
		domainerror.ErrCodeHoldingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidLimitAmount,
		domainerror.ErrCodeInvalidQuantity:
		return http.StatusBadRequest
	case domainerror.ErrCodeQuoteUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondInvalidBody is the shared 400 for malformed request bodies.
func respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
	})
}

// respondUnauthorized is the shared 401 for requests without a resolved user.
func respondUnauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
