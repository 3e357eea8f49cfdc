package banksync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

type fakeAccountRepo struct {
	adapter.AccountRepository
	account *entity.Account
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return f.account, nil
}

type fakeLedgerRepo struct {
	adapter.TransactionRepository
	transactions []*entity.Transaction
	created      []*entity.Transaction
}

func (f *fakeLedgerRepo) FindInDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeLedgerRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	f.created = append(f.created, transaction)
	return nil
}

type fakeStagingRepo struct {
	staged  map[uuid.UUID]*entity.StagingTransaction
	batches []*entity.SyncBatch
}

func newFakeStagingRepo() *fakeStagingRepo {
	return &fakeStagingRepo{staged: make(map[uuid.UUID]*entity.StagingTransaction)}
}

func (f *fakeStagingRepo) Create(ctx context.Context, staging *entity.StagingTransaction) error {
	f.staged[staging.ID] = staging
	return nil
}

func (f *fakeStagingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.StagingTransaction, error) {
	return f.staged[id], nil
}

func (f *fakeStagingRepo) FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]*entity.StagingTransaction, error) {
	var pending []*entity.StagingTransaction
	for _, staging := range f.staged {
		if staging.UserID == userID && staging.Status == entity.StagingStatusPending {
			pending = append(pending, staging)
		}
	}
	return pending, nil
}

func (f *fakeStagingRepo) ExistsByExternalID(ctx context.Context, accountID uuid.UUID, externalID string) (bool, error) {
	for _, staging := range f.staged {
		if staging.AccountID == accountID && staging.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStagingRepo) Update(ctx context.Context, staging *entity.StagingTransaction) error {
	f.staged[staging.ID] = staging
	return nil
}

func (f *fakeStagingRepo) CreateBatch(ctx context.Context, batch *entity.SyncBatch) error {
	f.batches = append(f.batches, batch)
	return nil
}

type fakeFeedClient struct {
	entries []adapter.FeedEntry
	err     error
}

func (f *fakeFeedClient) FetchTransactions(ctx context.Context, connectionID string, startDate, endDate time.Time) ([]adapter.FeedEntry, error) {
	return f.entries, f.err
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func connectedAccount(userID uuid.UUID) *entity.Account {
	account := entity.NewAccount(userID, "Main Checking", entity.AccountTypeChecking, "Test Bank", "EUR")
	account.BankConnectionID = "conn-123"
	return account
}

func feedEntry(externalID string, date time.Time, amount float64, description string) adapter.FeedEntry {
	return adapter.FeedEntry{
		ExternalID:  externalID,
		Date:        date,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
		Currency:    "EUR",
	}
}

func TestSyncTransactionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC)

	t.Run("stages new feed entries as pending", func(t *testing.T) {
		account := connectedAccount(userID)
		stagingRepo := newFakeStagingRepo()
		uc := NewSyncTransactionsUseCase(
			&fakeAccountRepo{account: account},
			&fakeLedgerRepo{},
			stagingRepo,
			&fakeFeedClient{entries: []adapter.FeedEntry{
				feedEntry("bank-txn-aaaaaaaaaaaaaaaaaaaa-1", now.AddDate(0, 0, -2), -42.50, "CARD PURCHASE SUPERMARKET"),
				feedEntry("bank-txn-aaaaaaaaaaaaaaaaaaaa-2", now.AddDate(0, 0, -1), 2500.00, "SALARY MARCH"),
			}},
			fixedClock{now: now},
		)

		output, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, AccountID: account.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Imported != 2 || output.Duplicate != 0 {
			t.Errorf("expected 2 imported, got %+v", output)
		}

		pending, _ := stagingRepo.FindPendingByUser(ctx, userID)
		if len(pending) != 2 {
			t.Fatalf("expected 2 pending staging transactions, got %d", len(pending))
		}
		for _, staging := range pending {
			if staging.Amount.IsNegative() {
				t.Error("expected staged amounts to be stored as magnitudes")
			}
		}
	})

	t.Run("marks feed entry duplicating a manual transaction", func(t *testing.T) {
		account := connectedAccount(userID)
		manual := entity.NewTransaction(
			userID, account.ID,
			now.AddDate(0, 0, -3),
			"Rent march",
			decimal.NewFromFloat(1200.00),
			entity.TransactionTypeExpense,
			nil, "",
		)
		stagingRepo := newFakeStagingRepo()
		uc := NewSyncTransactionsUseCase(
			&fakeAccountRepo{account: account},
			&fakeLedgerRepo{transactions: []*entity.Transaction{manual}},
			stagingRepo,
			&fakeFeedClient{entries: []adapter.FeedEntry{
				feedEntry("bank-txn-bbbbbbbbbbbbbbbbbbbb-1", now.AddDate(0, 0, -2), -1200.00, "RENT MARCH STANDING ORDER"),
			}},
			fixedClock{now: now},
		)

		output, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, AccountID: account.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Duplicate != 1 || output.Imported != 0 {
			t.Errorf("expected 1 duplicate, got %+v", output)
		}

		var staged *entity.StagingTransaction
		for _, s := range stagingRepo.staged {
			staged = s
		}
		if staged.Status != entity.StagingStatusDuplicate {
			t.Errorf("expected duplicate status, got %s", staged.Status)
		}
		if staged.DuplicateOfID == nil || *staged.DuplicateOfID != manual.ID {
			t.Error("expected duplicate link to the manual transaction")
		}
		if len(stagingRepo.batches) != 1 || stagingRepo.batches[0].Duplicate != 1 {
			t.Error("expected batch record with one linked duplicate")
		}
	})

	t.Run("does not fuzzy-match against bank-verified ledger rows", func(t *testing.T) {
		account := connectedAccount(userID)
		// Same amount and date, but this row came from a feed itself.
		verified := entity.NewTransaction(
			userID, account.ID,
			now.AddDate(0, 0, -2),
			"CARD PURCHASE SUPERMARKET",
			decimal.NewFromFloat(42.50),
			entity.TransactionTypeExpense,
			nil, "",
		)
		verified.ExternalID = "bank-txn-cccccccccccccccccccc-9"
		stagingRepo := newFakeStagingRepo()
		uc := NewSyncTransactionsUseCase(
			&fakeAccountRepo{account: account},
			&fakeLedgerRepo{transactions: []*entity.Transaction{verified}},
			stagingRepo,
			&fakeFeedClient{entries: []adapter.FeedEntry{
				feedEntry("bank-txn-cccccccccccccccccccc-10", now.AddDate(0, 0, -2), -42.50, "CARD PURCHASE SUPERMARKET"),
			}},
			fixedClock{now: now},
		)

		output, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, AccountID: account.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Imported != 1 || output.Duplicate != 0 {
			t.Errorf("expected verified row to be excluded from dedup, got %+v", output)
		}
	})

	t.Run("skips entries staged by a previous run", func(t *testing.T) {
		account := connectedAccount(userID)
		stagingRepo := newFakeStagingRepo()
		uc := NewSyncTransactionsUseCase(
			&fakeAccountRepo{account: account},
			&fakeLedgerRepo{},
			stagingRepo,
			&fakeFeedClient{entries: []adapter.FeedEntry{
				feedEntry("bank-txn-dddddddddddddddddddd-1", now.AddDate(0, 0, -1), -10.00, "COFFEE"),
			}},
			fixedClock{now: now},
		)

		input := SyncTransactionsInput{UserID: userID, AccountID: account.ID}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error on first run: %v", err)
		}
		second, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error on second run: %v", err)
		}
		if second.Skipped != 1 || second.Imported != 0 {
			t.Errorf("expected re-synced entry to be skipped, got %+v", second)
		}
		if len(stagingRepo.staged) != 1 {
			t.Errorf("expected a single staging row after two runs, got %d", len(stagingRepo.staged))
		}
	})

	t.Run("rejects account without bank connection", func(t *testing.T) {
		account := entity.NewAccount(userID, "Cash", entity.AccountTypeCash, "", "EUR")
		uc := NewSyncTransactionsUseCase(
			&fakeAccountRepo{account: account},
			&fakeLedgerRepo{},
			newFakeStagingRepo(),
			&fakeFeedClient{},
			fixedClock{now: now},
		)

		_, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, AccountID: account.ID})
		if !errors.Is(err, domainerror.ErrAccountNotConnected) {
			t.Errorf("expected ErrAccountNotConnected, got %v", err)
		}
	})

	t.Run("rejects account owned by another user", func(t *testing.T) {
		account := connectedAccount(uuid.New())
		uc := NewSyncTransactionsUseCase(
			&fakeAccountRepo{account: account},
			&fakeLedgerRepo{},
			newFakeStagingRepo(),
			&fakeFeedClient{},
			fixedClock{now: now},
		)

		_, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, AccountID: account.ID})
		if !errors.Is(err, domainerror.ErrAccountNotOwnedByUser) {
			t.Errorf("expected ErrAccountNotOwnedByUser, got %v", err)
		}
	})

	t.Run("wraps feed failures", func(t *testing.T) {
		account := connectedAccount(userID)
		uc := NewSyncTransactionsUseCase(
			&fakeAccountRepo{account: account},
			&fakeLedgerRepo{},
			newFakeStagingRepo(),
			&fakeFeedClient{err: errors.New("503 service unavailable")},
			fixedClock{now: now},
		)

		_, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, AccountID: account.ID})
		if !errors.Is(err, domainerror.ErrBankFeedUnavailable) {
			t.Errorf("expected ErrBankFeedUnavailable, got %v", err)
		}
	})
}

func TestApproveStagingUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	newStaging := func() *entity.StagingTransaction {
		return entity.NewStagingTransaction(
			userID, accountID,
			time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC),
			"CARD PURCHASE SUPERMARKET",
			decimal.NewFromFloat(42.50),
			entity.TransactionTypeExpense,
			"bank-txn-eeeeeeeeeeeeeeeeeeee-1",
		)
	}

	t.Run("creates ledger transaction carrying the external id", func(t *testing.T) {
		staging := newStaging()
		stagingRepo := newFakeStagingRepo()
		stagingRepo.staged[staging.ID] = staging
		ledgerRepo := &fakeLedgerRepo{}
		uc := NewApproveStagingUseCase(stagingRepo, ledgerRepo)

		categoryID := uuid.New()
		output, err := uc.Execute(ctx, ApproveStagingInput{StagingID: staging.ID, UserID: userID, CategoryID: &categoryID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.ExternalID != staging.ExternalID {
			t.Error("expected ledger transaction to keep the feed external id")
		}
		if output.Transaction.CategoryID == nil || *output.Transaction.CategoryID != categoryID {
			t.Error("expected review category to be applied")
		}
		if len(ledgerRepo.created) != 1 {
			t.Fatalf("expected 1 ledger transaction, got %d", len(ledgerRepo.created))
		}
		if staging.Status != entity.StagingStatusApproved {
			t.Errorf("expected approved status, got %s", staging.Status)
		}
	})

	t.Run("rejects double approval", func(t *testing.T) {
		staging := newStaging()
		staging.Status = entity.StagingStatusApproved
		stagingRepo := newFakeStagingRepo()
		stagingRepo.staged[staging.ID] = staging
		uc := NewApproveStagingUseCase(stagingRepo, &fakeLedgerRepo{})

		_, err := uc.Execute(ctx, ApproveStagingInput{StagingID: staging.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrStagingAlreadyResolved) {
			t.Errorf("expected ErrStagingAlreadyResolved, got %v", err)
		}
	})

	t.Run("hides staging rows of other users", func(t *testing.T) {
		staging := newStaging()
		stagingRepo := newFakeStagingRepo()
		stagingRepo.staged[staging.ID] = staging
		uc := NewApproveStagingUseCase(stagingRepo, &fakeLedgerRepo{})

		_, err := uc.Execute(ctx, ApproveStagingInput{StagingID: staging.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrStagingTransactionNotFound) {
			t.Errorf("expected ErrStagingTransactionNotFound, got %v", err)
		}
	})
}

func TestRejectStagingUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	staging := entity.NewStagingTransaction(
		userID, uuid.New(),
		time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC),
		"UNKNOWN CHARGE",
		decimal.NewFromFloat(5.00),
		entity.TransactionTypeExpense,
		"bank-txn-ffffffffffffffffffff-1",
	)
	stagingRepo := newFakeStagingRepo()
	stagingRepo.staged[staging.ID] = staging
	uc := NewRejectStagingUseCase(stagingRepo)

	if err := uc.Execute(ctx, RejectStagingInput{StagingID: staging.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if staging.Status != entity.StagingStatusRejected {
		t.Errorf("expected rejected status, got %s", staging.Status)
	}
}
