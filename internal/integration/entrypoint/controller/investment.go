package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/usecase/investment"
	"github.com/finance-hub/backend/internal/integration/entrypoint/dto"
	"github.com/finance-hub/backend/internal/integration/entrypoint/middleware"
)

// InvestmentController handles investment holding endpoints.
type InvestmentController struct {
	createUseCase  *investment.CreateHoldingUseCase
	listUseCase    *investment.ListHoldingsUseCase
	refreshUseCase *investment.RefreshQuotesUseCase
	deleteUseCase  *investment.DeleteHoldingUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	createUseCase *investment.CreateHoldingUseCase,
	listUseCase *investment.ListHoldingsUseCase,
	refreshUseCase *investment.RefreshQuotesUseCase,
	deleteUseCase *investment.DeleteHoldingUseCase,
) *InvestmentController {
	return &InvestmentController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		refreshUseCase: refreshUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// Create handles POST /holdings requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateHoldingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), investment.CreateHoldingInput{
		UserID:    userID,
		AccountID: accountID,
		Symbol:    req.Symbol,
		Name:      req.Name,
		Quantity:  decimal.NewFromFloat(req.Quantity),
		CostBasis: decimal.NewFromFloat(req.CostBasis),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHoldingResponse(output.Holding))
}

// List handles GET /holdings requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investment.ListHoldingsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	holdings := make([]dto.HoldingResponse, len(output.Holdings))
	for i, holding := range output.Holdings {
		holdings[i] = dto.ToHoldingResponse(holding)
	}

	ctx.JSON(http.StatusOK, dto.HoldingListResponse{
		Holdings:   holdings,
		TotalValue: output.TotalValue.String(),
		TotalCost:  output.TotalCost.String(),
	})
}

// RefreshQuotes handles POST /holdings/refresh-quotes requests.
func (c *InvestmentController) RefreshQuotes(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.refreshUseCase.Execute(ctx.Request.Context(), investment.RefreshQuotesInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshQuotesResponse{
		Refreshed: output.Refreshed,
		Failed:    output.Failed,
	})
}

// Delete handles DELETE /holdings/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	holdingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid holding ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteHoldingInput{
		HoldingID: holdingID,
		UserID:    userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
