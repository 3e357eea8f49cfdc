package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/usecase/recurring"
	"github.com/finance-hub/backend/internal/integration/entrypoint/dto"
	"github.com/finance-hub/backend/internal/integration/entrypoint/middleware"
)

// RecurringExpenseController handles recurring expense endpoints.
type RecurringExpenseController struct {
	createUseCase *recurring.CreateRecurringExpenseUseCase
	listUseCase   *recurring.ListRecurringExpensesUseCase
	updateUseCase *recurring.UpdateRecurringExpenseUseCase
	deleteUseCase *recurring.DeleteRecurringExpenseUseCase
}

// NewRecurringExpenseController creates a new recurring expense controller instance.
func NewRecurringExpenseController(
	createUseCase *recurring.CreateRecurringExpenseUseCase,
	listUseCase *recurring.ListRecurringExpensesUseCase,
	updateUseCase *recurring.UpdateRecurringExpenseUseCase,
	deleteUseCase *recurring.DeleteRecurringExpenseUseCase,
) *RecurringExpenseController {
	return &RecurringExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /recurring-expenses requests.
func (c *RecurringExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateRecurringExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID"})
		return
	}

	startDate, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start_date, expected YYYY-MM-DD"})
		return
	}

	input := recurring.CreateRecurringExpenseInput{
		UserID:         userID,
		AccountID:      accountID,
		Name:           req.Name,
		Amount:         decimal.NewFromFloat(req.Amount),
		DayOfMonth:     req.DayOfMonth,
		StartDate:      startDate,
		MatchPattern:   req.MatchPattern,
		VariableAmount: req.VariableAmount,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID"})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.EndDate != nil {
		endDate, err := time.ParseInLocation(dateLayout, *req.EndDate, time.UTC)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end_date, expected YYYY-MM-DD"})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringExpenseResponse(output.Expense))
}

// List handles GET /recurring-expenses requests. Pass active=true to hide
// deactivated definitions.
func (c *RecurringExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRecurringExpensesInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active") == "true",
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	expenses := make([]dto.RecurringExpenseResponse, len(output.Expenses))
	for i, expense := range output.Expenses {
		expenses[i] = dto.ToRecurringExpenseResponse(expense)
	}

	ctx.JSON(http.StatusOK, dto.RecurringExpenseListResponse{RecurringExpenses: expenses})
}

// Update handles PUT /recurring-expenses/:id requests.
func (c *RecurringExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid recurring expense ID"})
		return
	}

	var req dto.UpdateRecurringExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := recurring.UpdateRecurringExpenseInput{
		ExpenseID:      expenseID,
		UserID:         userID,
		Name:           req.Name,
		DayOfMonth:     req.DayOfMonth,
		ClearEndDate:   req.ClearEndDate,
		Active:         req.Active,
		MatchPattern:   req.MatchPattern,
		VariableAmount: req.VariableAmount,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.EndDate != nil {
		endDate, err := time.ParseInLocation(dateLayout, *req.EndDate, time.UTC)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end_date, expected YYYY-MM-DD"})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringExpenseResponse(output.Expense))
}

// Delete handles DELETE /recurring-expenses/:id requests.
func (c *RecurringExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid recurring expense ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
