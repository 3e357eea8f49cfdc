package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/usecase/banksync"
	"github.com/finance-hub/backend/internal/integration/entrypoint/dto"
	"github.com/finance-hub/backend/internal/integration/entrypoint/middleware"
)

// BankSyncController handles bank synchronization and staging review endpoints.
type BankSyncController struct {
	syncUseCase    *banksync.SyncTransactionsUseCase
	listUseCase    *banksync.ListStagingUseCase
	approveUseCase *banksync.ApproveStagingUseCase
	rejectUseCase  *banksync.RejectStagingUseCase
}

// NewBankSyncController creates a new bank sync controller instance.
func NewBankSyncController(
	syncUseCase *banksync.SyncTransactionsUseCase,
	listUseCase *banksync.ListStagingUseCase,
	approveUseCase *banksync.ApproveStagingUseCase,
	rejectUseCase *banksync.RejectStagingUseCase,
) *BankSyncController {
	return &BankSyncController{
		syncUseCase:    syncUseCase,
		listUseCase:    listUseCase,
		approveUseCase: approveUseCase,
		rejectUseCase:  rejectUseCase,
	}
}

// Sync handles POST /sync requests. It pulls the account's bank feed into
// the staging area; nothing reaches the ledger until approved.
func (c *BankSyncController) Sync(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.SyncTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID"})
		return
	}

	output, err := c.syncUseCase.Execute(ctx.Request.Context(), banksync.SyncTransactionsInput{
		UserID:    userID,
		AccountID: accountID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SyncTransactionsResponse{
		Fetched:   output.Fetched,
		Imported:  output.Imported,
		Duplicate: output.Duplicate,
		Skipped:   output.Skipped,
	})
}

// ListStaging handles GET /sync/staging requests.
func (c *BankSyncController) ListStaging(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), banksync.ListStagingInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	staging := make([]dto.StagingTransactionResponse, len(output.Staging))
	for i, entry := range output.Staging {
		staging[i] = dto.ToStagingTransactionResponse(entry)
	}

	ctx.JSON(http.StatusOK, dto.StagingListResponse{Staging: staging})
}

// Approve handles POST /sync/staging/:id/approve requests.
func (c *BankSyncController) Approve(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	stagingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid staging transaction ID"})
		return
	}

	// The body is optional; approving without one keeps the transaction
	// uncategorized.
	var req dto.ApproveStagingRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(ctx)
			return
		}
	}

	input := banksync.ApproveStagingInput{
		StagingID: stagingID,
		UserID:    userID,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID"})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Reject handles POST /sync/staging/:id/reject requests.
func (c *BankSyncController) Reject(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	stagingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid staging transaction ID"})
		return
	}

	if err := c.rejectUseCase.Execute(ctx.Request.Context(), banksync.RejectStagingInput{
		StagingID: stagingID,
		UserID:    userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
