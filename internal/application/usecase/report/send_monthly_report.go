// Package report contains email reporting use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
	"github.com/finance-hub/backend/internal/domain/valueobject"
)

// SendMonthlyReportInput represents the input for queueing monthly reports.
type SendMonthlyReportInput struct {
	Year  int
	Month int // 1-12
}

// SendMonthlyReportOutput summarizes the queueing run.
type SendMonthlyReportOutput struct {
	Queued int
	Failed int
}

// SendMonthlyReportUseCase queues a monthly summary email for every user
// who opted into reports. The email worker picks the jobs up
// asynchronously; this use case never talks to the provider directly.
type SendMonthlyReportUseCase struct {
	userRepo           adapter.UserRepository
	transactionRepo    adapter.TransactionRepository
	reconciliationRepo adapter.ReconciliationRepository
	emailQueueRepo     adapter.EmailQueueRepository
}

// NewSendMonthlyReportUseCase creates a new SendMonthlyReportUseCase instance.
func NewSendMonthlyReportUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
	reconciliationRepo adapter.ReconciliationRepository,
	emailQueueRepo adapter.EmailQueueRepository,
) *SendMonthlyReportUseCase {
	return &SendMonthlyReportUseCase{
		userRepo:           userRepo,
		transactionRepo:    transactionRepo,
		reconciliationRepo: reconciliationRepo,
		emailQueueRepo:     emailQueueRepo,
	}
}

// Execute queues one report job per opted-in user. A failure for one user
// is logged and does not block the others.
func (uc *SendMonthlyReportUseCase) Execute(ctx context.Context, input SendMonthlyReportInput) (*SendMonthlyReportOutput, error) {
	if input.Month < 1 || input.Month > 12 || input.Year <= 0 {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidCheckPeriod,
			"invalid report period",
			domainerror.ErrInvalidCheckPeriod,
		)
	}

	recipients, err := uc.userRepo.FindReportRecipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load report recipients: %w", err)
	}

	output := &SendMonthlyReportOutput{}
	for _, user := range recipients {
		if err := uc.queueReport(ctx, user, input.Year, input.Month); err != nil {
			output.Failed++
			slog.Error("failed to queue monthly report", "user_id", user.ID, "error", err)
			continue
		}
		output.Queued++
	}

	slog.Info("monthly reports queued",
		"year", input.Year,
		"month", input.Month,
		"queued", output.Queued,
		"failed", output.Failed,
	)

	return output, nil
}

func (uc *SendMonthlyReportUseCase) queueReport(ctx context.Context, user *entity.User, year, month int) error {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, time.Month(month), entity.DaysInMonth(year, time.Month(month)), 0, 0, 0, 0, time.UTC)

	filter := adapter.TransactionFilter{
		UserID:    user.ID,
		StartDate: &monthStart,
		EndDate:   &monthEnd,
	}
	totals, err := uc.transactionRepo.GetTotals(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to calculate totals: %w", err)
	}

	checks, err := uc.reconciliationRepo.FindByUserAndPeriod(ctx, user.ID, year, month)
	if err != nil {
		return fmt.Errorf("failed to load reconciliation checks: %w", err)
	}
	var matched, missing, pending int
	for _, check := range checks {
		switch check.Status {
		case valueobject.CheckStatusMatched:
			matched++
		case valueobject.CheckStatusMissing:
			missing++
		case valueobject.CheckStatusPending:
			pending++
		}
	}

	periodLabel := fmt.Sprintf("%s %d", monthStart.Month(), year)
	job := entity.NewEmailJob(
		entity.TemplateMonthlyReport,
		user.Email,
		user.Name,
		fmt.Sprintf("Your Finance Hub report for %s", periodLabel),
		map[string]interface{}{
			"period":         periodLabel,
			"currency":       user.BaseCurrency,
			"income_total":   totals.IncomeTotal.StringFixed(2),
			"expense_total":  totals.ExpenseTotal.StringFixed(2),
			"net_total":      totals.NetTotal.StringFixed(2),
			"checks_matched": matched,
			"checks_missing": missing,
			"checks_pending": pending,
		},
	)

	return uc.emailQueueRepo.Create(ctx, job)
}
