// Package reconciliation contains recurring-expense reconciliation use cases.
package reconciliation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
	"github.com/finance-hub/backend/internal/domain/matching"
	"github.com/finance-hub/backend/internal/domain/valueobject"
)

// fetchPaddingDays widens the transaction window around the target month.
// It must be at least the matcher date window, or occurrences booked a few
// days into the neighbouring month would be fetched out of existence.
const fetchPaddingDays = 10

// Compile-time guard for the padding/window coupling: this constant
// underflows (and fails the build) if the fetch padding ever drops below
// twice the matcher date window.
const _ = uint(fetchPaddingDays - 2*matching.DefaultDateWindowDays)

// RunChecksInput represents the input for a reconciliation run.
type RunChecksInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 1-12
}

// RunChecksSummary contains counts from one reconciliation run.
type RunChecksSummary struct {
	Checked int
	Matched int
	Pending int
	Missing int
	Skipped int // Months before the expense start date
	Failed  int // Expenses that errored and were skipped for this run
}

// RunChecksOutput represents the result of a reconciliation run.
type RunChecksOutput struct {
	Summary RunChecksSummary
}

// RunChecksUseCase checks every active recurring expense of a user against
// the ledger for one month and upserts a check record per expense. The run
// is idempotent: repeating it with unchanged transactions produces
// identical records.
type RunChecksUseCase struct {
	recurringRepo      adapter.RecurringExpenseRepository
	transactionRepo    adapter.TransactionRepository
	reconciliationRepo adapter.ReconciliationRepository
	clock              adapter.Clock
}

// NewRunChecksUseCase creates a new RunChecksUseCase instance.
func NewRunChecksUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	transactionRepo adapter.TransactionRepository,
	reconciliationRepo adapter.ReconciliationRepository,
	clock adapter.Clock,
) *RunChecksUseCase {
	return &RunChecksUseCase{
		recurringRepo:      recurringRepo,
		transactionRepo:    transactionRepo,
		reconciliationRepo: reconciliationRepo,
		clock:              clock,
	}
}

// Execute runs the batch check. Repository failures loading the expense
// list or the transaction window abort the run; failures confined to a
// single expense are logged and that expense is skipped, so one bad
// definition cannot take down the rest of the batch.
func (uc *RunChecksUseCase) Execute(ctx context.Context, input RunChecksInput) (*RunChecksOutput, error) {
	if input.Month < 1 || input.Month > 12 || input.Year <= 0 {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidCheckPeriod,
			"invalid reconciliation period",
			domainerror.ErrInvalidCheckPeriod,
		)
	}

	expenses, err := uc.recurringRepo.ListActive(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring expenses: %w", err)
	}

	// One bounded window for the whole batch instead of a fetch per expense.
	month := time.Month(input.Month)
	monthStart := time.Date(input.Year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(input.Year, month, entity.DaysInMonth(input.Year, month), 0, 0, 0, 0, time.UTC)
	transactions, err := uc.transactionRepo.FindInDateRange(
		ctx,
		input.UserID,
		monthStart.AddDate(0, 0, -fetchPaddingDays),
		monthEnd.AddDate(0, 0, fetchPaddingDays),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction window: %w", err)
	}

	var summary RunChecksSummary
	for _, expense := range expenses {
		check, err := uc.checkExpense(expense, input.Year, month, transactions)
		if err != nil {
			summary.Failed++
			slog.Error("recurring expense check failed",
				"recurring_expense_id", expense.ID,
				"name", expense.Name,
				"error", err,
			)
			continue
		}
		if check == nil {
			// Month precedes the expense start date; no record is written.
			summary.Skipped++
			continue
		}

		if err := uc.reconciliationRepo.Upsert(ctx, check); err != nil {
			// Same isolation as computation errors: other expenses'
			// results are independent and still worth persisting.
			summary.Failed++
			slog.Error("reconciliation check upsert failed",
				"recurring_expense_id", expense.ID,
				"name", expense.Name,
				"error", err,
			)
			continue
		}

		summary.Checked++
		switch check.Status {
		case valueobject.CheckStatusMatched:
			summary.Matched++
		case valueobject.CheckStatusPending:
			summary.Pending++
		case valueobject.CheckStatusMissing:
			summary.Missing++
		}
	}

	slog.Info("reconciliation run completed",
		"user_id", input.UserID,
		"year", input.Year,
		"month", input.Month,
		"checked", summary.Checked,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)

	return &RunChecksOutput{Summary: summary}, nil
}

// checkExpense evaluates a single expense against the shared transaction
// window. It returns (nil, nil) when the month precedes the expense start
// date; that month gets no check record at all.
func (uc *RunChecksUseCase) checkExpense(
	expense *entity.RecurringExpense,
	year int,
	month time.Month,
	transactions []*entity.Transaction,
) (*entity.ReconciliationCheck, error) {
	if expense.DayOfMonth < 1 || expense.DayOfMonth > 31 {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidDayOfMonth,
			fmt.Sprintf("stored day of month %d is out of range", expense.DayOfMonth),
			domainerror.ErrInvalidDayOfMonth,
		)
	}
	if !expense.Amount.IsPositive() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"stored amount is not positive",
			domainerror.ErrInvalidRecurringAmount,
		)
	}

	expectedDate := expense.ExpectedDateIn(year, month)
	if expectedDate.Before(valueobject.TruncateToDay(expense.StartDate)) {
		return nil, nil
	}

	candidates := matching.FindCandidates(transactions, matching.Target{
		Amount:             expense.Amount,
		Date:               expectedDate,
		DescriptionPattern: expense.MatchPattern,
		ReferenceName:      expense.Name,
	}, matching.DefaultTolerances())

	status := valueobject.DeriveCheckStatus(len(candidates), uc.clock.Now(), expectedDate)
	check := entity.NewReconciliationCheck(expense.ID, year, int(month), status)
	if status == valueobject.CheckStatusMatched {
		best := candidates[0].Transaction
		check.SetMatch(best.ID, best.Date, best.Amount)
	}

	return check, nil
}
