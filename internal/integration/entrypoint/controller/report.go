package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-hub/backend/internal/application/usecase/report"
	"github.com/finance-hub/backend/internal/integration/entrypoint/dto"
	"github.com/finance-hub/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles email reporting endpoints.
type ReportController struct {
	sendMonthlyUseCase *report.SendMonthlyReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(sendMonthlyUseCase *report.SendMonthlyReportUseCase) *ReportController {
	return &ReportController{sendMonthlyUseCase: sendMonthlyUseCase}
}

// SendMonthly handles POST /reports/monthly requests. Reports are queued
// for every opted-in user; delivery happens asynchronously.
func (c *ReportController) SendMonthly(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.SendMonthlyReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.sendMonthlyUseCase.Execute(ctx.Request.Context(), report.SendMonthlyReportInput{
		Year:  req.Year,
		Month: req.Month,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.SendMonthlyReportResponse{
		Queued: output.Queued,
		Failed: output.Failed,
	})
}
