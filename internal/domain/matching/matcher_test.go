package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/domain/entity"
)

func makeTransaction(date time.Time, amount float64, description string) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      decimal.NewFromFloat(amount).Abs(),
		Type:        entity.TransactionTypeExpense,
	}
}

func TestFindCandidates_AmountTolerance(t *testing.T) {
	targetDate := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	target := Target{
		Amount:        decimal.NewFromFloat(100.00),
		Date:          targetDate,
		ReferenceName: "Rent",
	}

	t.Run("delta just inside tolerance matches", func(t *testing.T) {
		txns := []*entity.Transaction{
			makeTransaction(targetDate, 111.99, "RENT MARCH"),
		}
		got := FindCandidates(txns, target, DefaultTolerances())
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
	})

	t.Run("delta just outside tolerance does not match", func(t *testing.T) {
		txns := []*entity.Transaction{
			makeTransaction(targetDate, 112.01, "RENT MARCH"),
		}
		got := FindCandidates(txns, target, DefaultTolerances())
		if len(got) != 0 {
			t.Fatalf("expected no candidates, got %d", len(got))
		}
	})

	t.Run("delta exactly at tolerance does not match", func(t *testing.T) {
		// The comparison is strict less-than.
		txns := []*entity.Transaction{
			makeTransaction(targetDate, 112.00, "RENT MARCH"),
		}
		got := FindCandidates(txns, target, DefaultTolerances())
		if len(got) != 0 {
			t.Fatalf("expected no candidates, got %d", len(got))
		}
	})

	t.Run("transaction direction is ignored", func(t *testing.T) {
		txn := makeTransaction(targetDate, 100.00, "RENT MARCH")
		txn.Type = entity.TransactionTypeIncome
		got := FindCandidates([]*entity.Transaction{txn}, target, DefaultTolerances())
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
	})
}

func TestFindCandidates_DateWindow(t *testing.T) {
	targetDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	target := Target{
		Amount:        decimal.NewFromFloat(50.00),
		Date:          targetDate,
		ReferenceName: "Internet",
	}

	cases := []struct {
		name       string
		offsetDays int
		wantMatch  bool
	}{
		{"five days before matches", -5, true},
		{"five days after matches", 5, true},
		{"six days before does not match", -6, false},
		{"six days after does not match", 6, false},
		{"same day matches", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txns := []*entity.Transaction{
				makeTransaction(targetDate.AddDate(0, 0, tc.offsetDays), 50.00, "INTERNET BILL"),
			}
			got := FindCandidates(txns, target, DefaultTolerances())
			if tc.wantMatch && len(got) != 1 {
				t.Fatalf("expected 1 candidate, got %d", len(got))
			}
			if !tc.wantMatch && len(got) != 0 {
				t.Fatalf("expected no candidates, got %d", len(got))
			}
		})
	}
}

func TestFindCandidates_DescriptionMatching(t *testing.T) {
	targetDate := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("pattern overrides name matching", func(t *testing.T) {
		target := Target{
			Amount:             decimal.NewFromFloat(15.00),
			Date:               targetDate,
			DescriptionPattern: "NFLX",
			ReferenceName:      "Netflix",
		}
		txns := []*entity.Transaction{
			makeTransaction(targetDate, 15.00, "nflx subscription 0423"),
			makeTransaction(targetDate, 15.00, "NETFLIX.COM"),
		}
		got := FindCandidates(txns, target, DefaultTolerances())
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
		if got[0].Transaction.Description != "nflx subscription 0423" {
			t.Errorf("matched wrong transaction: %s", got[0].Transaction.Description)
		}
	})

	t.Run("full name substring matches case-insensitively", func(t *testing.T) {
		target := Target{
			Amount:        decimal.NewFromFloat(15.00),
			Date:          targetDate,
			ReferenceName: "Netflix",
		}
		txns := []*entity.Transaction{
			makeTransaction(targetDate, 15.00, "NETFLIX.COM AMSTERDAM"),
		}
		if got := FindCandidates(txns, target, DefaultTolerances()); len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
	})

	t.Run("token fallback matches on a long token", func(t *testing.T) {
		target := Target{
			Amount:        decimal.NewFromFloat(9.99),
			Date:          targetDate,
			ReferenceName: "Spotify Premium Plan",
		}
		txns := []*entity.Transaction{
			makeTransaction(targetDate, 9.99, "SPOTIFY AB PAYMENT"),
		}
		if got := FindCandidates(txns, target, DefaultTolerances()); len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
	})

	t.Run("short tokens never match via the fallback", func(t *testing.T) {
		target := Target{
			Amount:        decimal.NewFromFloat(9.99),
			Date:          targetDate,
			ReferenceName: "TV A2",
		}
		txns := []*entity.Transaction{
			makeTransaction(targetDate, 9.99, "CABLE TV PROVIDER A2"),
		}
		if got := FindCandidates(txns, target, DefaultTolerances()); len(got) != 0 {
			t.Fatalf("expected no candidates, got %d", len(got))
		}
	})
}

func TestFindCandidates_Ordering(t *testing.T) {
	targetDate := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	target := Target{
		Amount:        decimal.NewFromFloat(30.00),
		Date:          targetDate,
		ReferenceName: "Gym Membership",
	}

	far := makeTransaction(targetDate.AddDate(0, 0, 3), 30.00, "GYM MEMBERSHIP")
	near := makeTransaction(targetDate.AddDate(0, 0, -1), 30.00, "GYM MEMBERSHIP")

	got := FindCandidates([]*entity.Transaction{far, near}, target, DefaultTolerances())
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Transaction.ID != near.ID {
		t.Errorf("expected closest-date candidate first, got distance %d", got[0].DateDistance)
	}
	if got[0].DateDistance != 1 || got[1].DateDistance != 3 {
		t.Errorf("unexpected distances: %d, %d", got[0].DateDistance, got[1].DateDistance)
	}
}

func TestFindCandidates_ExclusionPredicate(t *testing.T) {
	targetDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	target := Target{
		Amount:        decimal.NewFromFloat(20.00),
		Date:          targetDate,
		ReferenceName: "Insurance",
	}

	linked := makeTransaction(targetDate, 20.00, "CAR INSURANCE PREMIUM")
	linked.ExternalID = "bank-3f1c9a40-77e2-4c55-9f0d-aa12"
	unlinked := makeTransaction(targetDate, 20.00, "CAR INSURANCE PREMIUM")
	unlinked.ExternalID = "import-42"

	tolerances := DefaultTolerances()
	tolerances.Exclude = ExcludeVerifiedExternal

	got := FindCandidates([]*entity.Transaction{linked, unlinked}, target, tolerances)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Transaction.ID != unlinked.ID {
		t.Error("expected the verified-external transaction to be excluded")
	}
}

func TestFindCandidates_DoesNotMutateInput(t *testing.T) {
	targetDate := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)
	txns := []*entity.Transaction{
		makeTransaction(targetDate.AddDate(0, 0, 2), 10.00, "STREAMING SERVICE"),
		makeTransaction(targetDate, 10.00, "STREAMING SERVICE"),
	}
	first, second := txns[0].ID, txns[1].ID

	FindCandidates(txns, Target{
		Amount:        decimal.NewFromFloat(10.00),
		Date:          targetDate,
		ReferenceName: "Streaming Service",
	}, DefaultTolerances())

	if txns[0].ID != first || txns[1].ID != second {
		t.Error("input slice order changed")
	}
}
