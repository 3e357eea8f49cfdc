package investment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
)

// RefreshQuotesInput represents the input for refreshing portfolio quotes.
type RefreshQuotesInput struct {
	UserID uuid.UUID
}

// RefreshQuotesOutput summarizes a quote refresh run.
type RefreshQuotesOutput struct {
	Refreshed int
	Failed    int
}

// RefreshQuotesUseCase fetches current prices for every holding in the
// user's portfolio. Quote failures for one symbol never block the rest.
type RefreshQuotesUseCase struct {
	holdingRepo  adapter.HoldingRepository
	quoteService adapter.QuoteService
}

// NewRefreshQuotesUseCase creates a new RefreshQuotesUseCase instance.
func NewRefreshQuotesUseCase(
	holdingRepo adapter.HoldingRepository,
	quoteService adapter.QuoteService,
) *RefreshQuotesUseCase {
	return &RefreshQuotesUseCase{
		holdingRepo:  holdingRepo,
		quoteService: quoteService,
	}
}

// Execute refreshes the last price of every holding.
func (uc *RefreshQuotesUseCase) Execute(ctx context.Context, input RefreshQuotesInput) (*RefreshQuotesOutput, error) {
	holdings, err := uc.holdingRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings: %w", err)
	}

	output := &RefreshQuotesOutput{}
	for _, holding := range holdings {
		quote, err := uc.quoteService.GetQuote(ctx, holding.Symbol)
		if err != nil {
			output.Failed++
			slog.Warn("failed to fetch quote", "symbol", holding.Symbol, "error", err)
			continue
		}

		holding.LastPrice = &quote.Price
		holding.LastPricedAt = &quote.AsOf
		holding.UpdatedAt = time.Now().UTC()
		if err := uc.holdingRepo.Update(ctx, holding); err != nil {
			output.Failed++
			slog.Error("failed to store refreshed quote", "holding_id", holding.ID, "error", err)
			continue
		}
		output.Refreshed++
	}

	return output, nil
}
