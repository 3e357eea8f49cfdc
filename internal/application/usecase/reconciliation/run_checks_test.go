package reconciliation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	"github.com/finance-hub/backend/internal/domain/valueobject"
)

type fakeRecurringRepo struct {
	expenses []*entity.RecurringExpense
	err      error
}

func (f *fakeRecurringRepo) Create(ctx context.Context, expense *entity.RecurringExpense) error {
	return nil
}

func (f *fakeRecurringRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error) {
	return nil, nil
}

func (f *fakeRecurringRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error) {
	return f.expenses, f.err
}

func (f *fakeRecurringRepo) ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error) {
	return f.expenses, f.err
}

func (f *fakeRecurringRepo) Update(ctx context.Context, expense *entity.RecurringExpense) error {
	return nil
}

func (f *fakeRecurringRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

// fakeTransactionWindowRepo embeds the interface; the engine only calls
// FindInDateRange.
type fakeTransactionWindowRepo struct {
	adapter.TransactionRepository
	transactions []*entity.Transaction
	err          error
}

func (f *fakeTransactionWindowRepo) FindInDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var inRange []*entity.Transaction
	for _, txn := range f.transactions {
		if txn.Date.Before(startDate) || txn.Date.After(endDate) {
			continue
		}
		inRange = append(inRange, txn)
	}
	return inRange, nil
}

type checkKey struct {
	expenseID uuid.UUID
	month     int
	year      int
}

type fakeReconciliationRepo struct {
	checks  map[checkKey]*entity.ReconciliationCheck
	upserts int
	failFor map[uuid.UUID]error
}

func newFakeReconciliationRepo() *fakeReconciliationRepo {
	return &fakeReconciliationRepo{checks: make(map[checkKey]*entity.ReconciliationCheck)}
}

func (f *fakeReconciliationRepo) Upsert(ctx context.Context, check *entity.ReconciliationCheck) error {
	if err := f.failFor[check.RecurringExpenseID]; err != nil {
		return err
	}
	f.upserts++
	f.checks[checkKey{check.RecurringExpenseID, check.Month, check.Year}] = check
	return nil
}

func (f *fakeReconciliationRepo) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, year, month int) ([]*entity.ReconciliationCheck, error) {
	var result []*entity.ReconciliationCheck
	for _, check := range f.checks {
		if check.Year == year && check.Month == month {
			result = append(result, check)
		}
	}
	return result, nil
}

func (f *fakeReconciliationRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ReconciliationCheck, error) {
	var result []*entity.ReconciliationCheck
	for _, check := range f.checks {
		result = append(result, check)
	}
	return result, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func makeExpense(name string, amount float64, dayOfMonth int, startDate time.Time) *entity.RecurringExpense {
	return entity.NewRecurringExpense(
		uuid.New(), uuid.New(), nil,
		name,
		decimal.NewFromFloat(amount),
		dayOfMonth,
		startDate,
	)
}

func makeWindowTransaction(date time.Time, amount float64, description string) *entity.Transaction {
	return entity.NewTransaction(
		uuid.New(), uuid.New(),
		date,
		description,
		decimal.NewFromFloat(amount),
		entity.TransactionTypeExpense,
		nil,
		"",
	)
}

func (f *fakeReconciliationRepo) get(t *testing.T, expenseID uuid.UUID, year, month int) *entity.ReconciliationCheck {
	t.Helper()
	check, ok := f.checks[checkKey{expenseID, month, year}]
	if !ok {
		t.Fatalf("expected check record for expense %s %d-%02d", expenseID, year, month)
	}
	return check
}

func TestRunChecksUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start2025 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("matches recurring expense to closest transaction", func(t *testing.T) {
		rent := makeExpense("Rent", 1200.00, 1, start2025)
		far := makeWindowTransaction(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), 1200.00, "RENT PAYMENT MARCH")
		near := makeWindowTransaction(time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), 1195.50, "RENT PAYMENT")
		reconRepo := newFakeReconciliationRepo()

		uc := NewRunChecksUseCase(
			&fakeRecurringRepo{expenses: []*entity.RecurringExpense{rent}},
			&fakeTransactionWindowRepo{transactions: []*entity.Transaction{far, near}},
			reconRepo,
			fixedClock{now: time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)},
		)

		output, err := uc.Execute(ctx, RunChecksInput{UserID: userID, Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Summary.Matched != 1 || output.Summary.Checked != 1 {
			t.Errorf("expected 1 matched check, got %+v", output.Summary)
		}

		check := reconRepo.get(t, rent.ID, 2025, 3)
		if check.Status != valueobject.CheckStatusMatched {
			t.Errorf("expected MATCHED, got %s", check.Status)
		}
		if check.MatchedTransactionID == nil || *check.MatchedTransactionID != near.ID {
			t.Error("expected the transaction two days away to win over the one four days away")
		}
	})

	t.Run("re-running produces one record per expense and period", func(t *testing.T) {
		rent := makeExpense("Rent", 1200.00, 1, start2025)
		txn := makeWindowTransaction(time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), 1200.00, "RENT PAYMENT")
		reconRepo := newFakeReconciliationRepo()

		uc := NewRunChecksUseCase(
			&fakeRecurringRepo{expenses: []*entity.RecurringExpense{rent}},
			&fakeTransactionWindowRepo{transactions: []*entity.Transaction{txn}},
			reconRepo,
			fixedClock{now: time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)},
		)

		input := RunChecksInput{UserID: userID, Year: 2025, Month: 3}
		first, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error on first run: %v", err)
		}
		second, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error on second run: %v", err)
		}

		if len(reconRepo.checks) != 1 {
			t.Errorf("expected exactly 1 stored check after two runs, got %d", len(reconRepo.checks))
		}
		if first.Summary != second.Summary {
			t.Errorf("expected identical summaries, got %+v then %+v", first.Summary, second.Summary)
		}
		check := reconRepo.get(t, rent.ID, 2025, 3)
		if check.Status != valueobject.CheckStatusMatched {
			t.Errorf("expected MATCHED after re-run, got %s", check.Status)
		}
	})

	t.Run("clamps day 31 to the last day of February", func(t *testing.T) {
		salaryDay := makeExpense("Gym", 45.00, 31, start2025)
		// Non-leap year: expected date must resolve to Feb 28.
		txn := makeWindowTransaction(time.Date(2025, time.February, 27, 0, 0, 0, 0, time.UTC), 45.00, "GYM MEMBERSHIP")
		reconRepo := newFakeReconciliationRepo()

		uc := NewRunChecksUseCase(
			&fakeRecurringRepo{expenses: []*entity.RecurringExpense{salaryDay}},
			&fakeTransactionWindowRepo{transactions: []*entity.Transaction{txn}},
			reconRepo,
			fixedClock{now: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
		)

		output, err := uc.Execute(ctx, RunChecksInput{UserID: userID, Year: 2025, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Summary.Matched != 1 {
			t.Errorf("expected match against clamped expected date, got %+v", output.Summary)
		}
	})

	t.Run("skips months before the start date without a record", func(t *testing.T) {
		spotify := makeExpense("Spotify", 9.99, 15, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
		reconRepo := newFakeReconciliationRepo()

		uc := NewRunChecksUseCase(
			&fakeRecurringRepo{expenses: []*entity.RecurringExpense{spotify}},
			&fakeTransactionWindowRepo{},
			reconRepo,
			fixedClock{now: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
		)

		output, err := uc.Execute(ctx, RunChecksInput{UserID: userID, Year: 2025, Month: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Summary.Skipped != 1 || output.Summary.Checked != 0 {
			t.Errorf("expected 1 skipped and 0 checked, got %+v", output.Summary)
		}
		if len(reconRepo.checks) != 0 {
			t.Errorf("expected no stored records for pre-start months, got %d", len(reconRepo.checks))
		}
	})

	t.Run("first month on or after start date gets a record", func(t *testing.T) {
		spotify := makeExpense("Spotify", 9.99, 15, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
		reconRepo := newFakeReconciliationRepo()

		uc := NewRunChecksUseCase(
			&fakeRecurringRepo{expenses: []*entity.RecurringExpense{spotify}},
			&fakeTransactionWindowRepo{},
			reconRepo,
			fixedClock{now: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
		)

		output, err := uc.Execute(ctx, RunChecksInput{UserID: userID, Year: 2025, Month: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Summary.Checked != 1 {
			t.Errorf("expected the start month itself to be checked, got %+v", output.Summary)
		}
	})

	t.Run("unmatched expense is pending before and missing after the expected date", func(t *testing.T) {
		rent := makeExpense("Rent", 1200.00, 20, start2025)

		for _, tc := range []struct {
			name string
			now  time.Time
			want valueobject.CheckStatus
		}{
			{"day before expected", time.Date(2025, time.March, 19, 23, 0, 0, 0, time.UTC), valueobject.CheckStatusPending},
			{"expected day itself", time.Date(2025, time.March, 20, 0, 30, 0, 0, time.UTC), valueobject.CheckStatusMissing},
			{"well past expected", time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), valueobject.CheckStatusMissing},
		} {
			t.Run(tc.name, func(t *testing.T) {
				reconRepo := newFakeReconciliationRepo()
				uc := NewRunChecksUseCase(
					&fakeRecurringRepo{expenses: []*entity.RecurringExpense{rent}},
					&fakeTransactionWindowRepo{},
					reconRepo,
					fixedClock{now: tc.now},
				)

				if _, err := uc.Execute(ctx, RunChecksInput{UserID: userID, Year: 2025, Month: 3}); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				check := reconRepo.get(t, rent.ID, 2025, 3)
				if check.Status != tc.want {
					t.Errorf("expected %s, got %s", tc.want, check.Status)
				}
				if check.MatchedTransactionID != nil {
					t.Error("expected no matched transaction on an unmatched check")
				}
			})
		}
	})

	t.Run("one bad expense does not stop the batch", func(t *testing.T) {
		broken := makeExpense("Broken", 50.00, 15, start2025)
		broken.DayOfMonth = 0
		rent := makeExpense("Rent", 1200.00, 1, start2025)
		txn := makeWindowTransaction(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 1200.00, "RENT PAYMENT")
		reconRepo := newFakeReconciliationRepo()

		uc := NewRunChecksUseCase(
			&fakeRecurringRepo{expenses: []*entity.RecurringExpense{broken, rent}},
			&fakeTransactionWindowRepo{transactions: []*entity.Transaction{txn}},
			reconRepo,
			fixedClock{now: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)},
		)

		output, err := uc.Execute(ctx, RunChecksInput{UserID: userID, Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("expected batch to survive a single-expense failure, got %v", err)
		}
		if output.Summary.Failed != 1 || output.Summary.Checked != 1 {
			t.Errorf("expected 1 failed and 1 checked, got %+v", output.Summary)
		}
		if _, ok := reconRepo.checks[checkKey{broken.ID, 3, 2025}]; ok {
			t.Error("expected no record for the failing expense")
		}
	})

	t.Run("upsert failure for one expense does not stop the batch", func(t *testing.T) {
		rent := makeExpense("Rent", 1200.00, 1, start2025)
		gym := makeExpense("Gym", 45.00, 5, start2025)
		reconRepo := newFakeReconciliationRepo()
		reconRepo.failFor = map[uuid.UUID]error{rent.ID: errors.New("constraint violation")}

		uc := NewRunChecksUseCase(
			&fakeRecurringRepo{expenses: []*entity.RecurringExpense{rent, gym}},
			&fakeTransactionWindowRepo{},
			reconRepo,
			fixedClock{now: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)},
		)

		output, err := uc.Execute(ctx, RunChecksInput{UserID: userID, Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("expected batch to survive an upsert failure, got %v", err)
		}
		if output.Summary.Failed != 1 || output.Summary.Checked != 1 {
			t.Errorf("expected 1 failed and 1 checked, got %+v", output.Summary)
		}
	})

	t.Run("repository failure loading expenses aborts the run", func(t *testing.T) {
		uc := NewRunChecksUseCase(
			&fakeRecurringRepo{err: errors.New("connection refused")},
			&fakeTransactionWindowRepo{},
			newFakeReconciliationRepo(),
			fixedClock{now: time.Now()},
		)

		if _, err := uc.Execute(ctx, RunChecksInput{UserID: userID, Year: 2025, Month: 3}); err == nil {
			t.Fatal("expected error when expense load fails")
		}
	})

	t.Run("rejects invalid period", func(t *testing.T) {
		uc := NewRunChecksUseCase(
			&fakeRecurringRepo{},
			&fakeTransactionWindowRepo{},
			newFakeReconciliationRepo(),
			fixedClock{now: time.Now()},
		)

		for _, tc := range []struct {
			name  string
			year  int
			month int
		}{
			{"month zero", 2025, 0},
			{"month thirteen", 2025, 13},
			{"year zero", 0, 3},
		} {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Execute(ctx, RunChecksInput{UserID: userID, Year: tc.year, Month: tc.month}); err == nil {
					t.Error("expected invalid period error")
				}
			})
		}
	})
}
