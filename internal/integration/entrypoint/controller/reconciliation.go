package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-hub/backend/internal/application/usecase/reconciliation"
	"github.com/finance-hub/backend/internal/integration/entrypoint/dto"
	"github.com/finance-hub/backend/internal/integration/entrypoint/middleware"
)

// ReconciliationController handles reconciliation endpoints.
type ReconciliationController struct {
	runChecksUseCase  *reconciliation.RunChecksUseCase
	listChecksUseCase *reconciliation.ListChecksUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	runChecksUseCase *reconciliation.RunChecksUseCase,
	listChecksUseCase *reconciliation.ListChecksUseCase,
) *ReconciliationController {
	return &ReconciliationController{
		runChecksUseCase:  runChecksUseCase,
		listChecksUseCase: listChecksUseCase,
	}
}

// Run handles POST /reconciliation/run requests. The run is idempotent;
// re-running a period replaces its check records.
func (c *ReconciliationController) Run(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.RunChecksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.runChecksUseCase.Execute(ctx.Request.Context(), reconciliation.RunChecksInput{
		UserID: userID,
		Year:   req.Year,
		Month:  req.Month,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRunChecksSummaryResponse(output.Summary))
}

// ListChecks handles GET /reconciliation/checks requests. Year and month
// query params scope the listing to one period; omitting both returns the
// user's full history.
func (c *ReconciliationController) ListChecks(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := reconciliation.ListChecksInput{UserID: userID}
	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year"})
			return
		}
		input.Year = year
	}
	if raw := ctx.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid month"})
			return
		}
		input.Month = month
	}

	output, err := c.listChecksUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	checks := make([]dto.ReconciliationCheckResponse, len(output.Checks))
	for i, check := range output.Checks {
		checks[i] = dto.ToReconciliationCheckResponse(check)
	}

	ctx.JSON(http.StatusOK, dto.ReconciliationCheckListResponse{Checks: checks})
}
