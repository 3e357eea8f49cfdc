package reconciliation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// ListChecksInput represents the input for listing reconciliation checks.
// Year and Month are optional as a pair: both zero lists every period.
type ListChecksInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// ListChecksOutput represents the result of listing reconciliation checks.
type ListChecksOutput struct {
	Checks []*entity.ReconciliationCheck
}

// ListChecksUseCase handles retrieval of reconciliation check records.
type ListChecksUseCase struct {
	reconciliationRepo adapter.ReconciliationRepository
}

// NewListChecksUseCase creates a new ListChecksUseCase instance.
func NewListChecksUseCase(reconciliationRepo adapter.ReconciliationRepository) *ListChecksUseCase {
	return &ListChecksUseCase{reconciliationRepo: reconciliationRepo}
}

// Execute lists the user's checks, scoped to one period when given.
func (uc *ListChecksUseCase) Execute(ctx context.Context, input ListChecksInput) (*ListChecksOutput, error) {
	if input.Year == 0 && input.Month == 0 {
		checks, err := uc.reconciliationRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list reconciliation checks: %w", err)
		}
		return &ListChecksOutput{Checks: checks}, nil
	}

	if input.Month < 1 || input.Month > 12 || input.Year <= 0 {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidCheckPeriod,
			"invalid reconciliation period",
			domainerror.ErrInvalidCheckPeriod,
		)
	}

	checks, err := uc.reconciliationRepo.FindByUserAndPeriod(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list reconciliation checks: %w", err)
	}

	return &ListChecksOutput{Checks: checks}, nil
}
