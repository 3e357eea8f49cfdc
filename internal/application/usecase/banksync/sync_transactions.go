// Package banksync contains bank-feed synchronization use cases.
package banksync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
	"github.com/finance-hub/backend/internal/domain/matching"
)

// defaultSyncWindowDays is how far back a sync reaches when the caller
// does not narrow the window.
const defaultSyncWindowDays = 30

// SyncTransactionsInput represents the input for a bank-feed sync run.
type SyncTransactionsInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// SyncTransactionsOutput summarizes one sync run.
type SyncTransactionsOutput struct {
	Fetched   int
	Imported  int // New staging entries pending review
	Duplicate int // Feed entries matched to an existing ledger transaction
	Skipped   int // Feed entries already staged in a previous run
}

// SyncTransactionsUseCase pulls transactions from the bank aggregator into
// the staging queue. Feed entries that fuzzy-match an existing ledger
// transaction are staged as duplicates instead of pending, so a manually
// entered expense never turns into a second ledger row on approval.
type SyncTransactionsUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	stagingRepo     adapter.StagingRepository
	feedClient      adapter.BankFeedClient
	clock           adapter.Clock
}

// NewSyncTransactionsUseCase creates a new SyncTransactionsUseCase instance.
func NewSyncTransactionsUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	stagingRepo adapter.StagingRepository,
	feedClient adapter.BankFeedClient,
	clock adapter.Clock,
) *SyncTransactionsUseCase {
	return &SyncTransactionsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		stagingRepo:     stagingRepo,
		feedClient:      feedClient,
		clock:           clock,
	}
}

// Execute runs one sync for the account. A failure staging a single feed
// entry is logged and skipped; the rest of the feed still lands.
func (uc *SyncTransactionsUseCase) Execute(ctx context.Context, input SyncTransactionsInput) (*SyncTransactionsOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	if account.UserID != input.UserID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeAccountNotOwned,
			"account does not belong to user",
			domainerror.ErrAccountNotOwnedByUser,
		)
	}
	if account.BankConnectionID == "" {
		return nil, domainerror.NewBankSyncError(
			domainerror.ErrCodeAccountNotConnected,
			"account has no bank connection",
			domainerror.ErrAccountNotConnected,
		)
	}

	endDate := uc.clock.Now()
	startDate := endDate.AddDate(0, 0, -defaultSyncWindowDays)

	entries, err := uc.feedClient.FetchTransactions(ctx, account.BankConnectionID, startDate, endDate)
	if err != nil {
		return nil, domainerror.NewBankSyncError(
			domainerror.ErrCodeBankFeedUnavailable,
			"failed to fetch bank feed",
			fmt.Errorf("%w: %v", domainerror.ErrBankFeedUnavailable, err),
		)
	}

	// The dedup pass fuzzy-matches feed entries against the existing
	// ledger. Pad the window so entries booked near its edges still see
	// their ledger counterparts.
	ledger, err := uc.transactionRepo.FindInDateRange(
		ctx,
		input.UserID,
		startDate.AddDate(0, 0, -matching.DefaultDateWindowDays),
		endDate.AddDate(0, 0, matching.DefaultDateWindowDays),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger window: %w", err)
	}

	tolerances := matching.DefaultTolerances()
	// Ledger rows that already carry a verified bank identifier came from
	// a feed themselves; external-id equality covers those, so the fuzzy
	// pass only targets manually entered transactions.
	tolerances.Exclude = matching.ExcludeVerifiedExternal

	output := &SyncTransactionsOutput{Fetched: len(entries)}
	var linkedIDs []string
	for _, entry := range entries {
		staged, err := uc.stageEntry(ctx, account, entry, ledger, tolerances)
		if err != nil {
			slog.Error("failed to stage feed entry",
				"account_id", account.ID,
				"external_id", entry.ExternalID,
				"error", err,
			)
			continue
		}
		switch {
		case staged == nil:
			output.Skipped++
		case staged.Status == entity.StagingStatusDuplicate:
			output.Duplicate++
			if staged.DuplicateOfID != nil {
				linkedIDs = append(linkedIDs, staged.DuplicateOfID.String())
			}
		default:
			output.Imported++
		}
	}

	batch := &entity.SyncBatch{
		ID:                   uuid.New(),
		UserID:               input.UserID,
		AccountID:            account.ID,
		Imported:             output.Imported,
		Duplicate:            output.Duplicate,
		LinkedTransactionIDs: linkedIDs,
		RanAt:                uc.clock.Now(),
	}
	if err := uc.stagingRepo.CreateBatch(ctx, batch); err != nil {
		// The staging rows are already written; losing the batch record
		// is not worth failing the sync over.
		slog.Error("failed to record sync batch", "account_id", account.ID, "error", err)
	}

	slog.Info("bank sync completed",
		"account_id", account.ID,
		"fetched", output.Fetched,
		"imported", output.Imported,
		"duplicate", output.Duplicate,
		"skipped", output.Skipped,
	)

	return output, nil
}

// stageEntry writes one feed entry into the staging queue. It returns
// (nil, nil) when the entry was already staged by a previous run.
func (uc *SyncTransactionsUseCase) stageEntry(
	ctx context.Context,
	account *entity.Account,
	entry adapter.FeedEntry,
	ledger []*entity.Transaction,
	tolerances matching.Tolerances,
) (*entity.StagingTransaction, error) {
	exists, err := uc.stagingRepo.ExistsByExternalID(ctx, account.ID, entry.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check staged external id: %w", err)
	}
	if exists {
		return nil, nil
	}

	transactionType := entity.TransactionTypeExpense
	if entry.Amount.IsPositive() {
		transactionType = entity.TransactionTypeIncome
	}

	staging := entity.NewStagingTransaction(
		account.UserID,
		account.ID,
		entry.Date,
		entry.Description,
		entry.Amount,
		transactionType,
		entry.ExternalID,
	)

	candidates := matching.FindCandidates(ledger, matching.Target{
		Amount:        entry.Amount.Abs(),
		Date:          entry.Date,
		ReferenceName: entry.Description,
	}, tolerances)
	if len(candidates) > 0 {
		duplicateOf := candidates[0].Transaction.ID
		staging.Status = entity.StagingStatusDuplicate
		staging.DuplicateOfID = &duplicateOf
	}

	if err := uc.stagingRepo.Create(ctx, staging); err != nil {
		return nil, fmt.Errorf("failed to create staging transaction: %w", err)
	}

	return staging, nil
}
