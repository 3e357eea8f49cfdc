package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-hub/backend/internal/domain/entity"
	"github.com/finance-hub/backend/internal/domain/valueobject"
	"github.com/finance-hub/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.RecurringExpenseModel{},
		&model.ReconciliationCheckModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	userModel := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Test User",
		PasswordHash: "hash",
		BaseCurrency: "EUR",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := db.Create(userModel).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return userID
}

func seedExpense(t *testing.T, db *gorm.DB, userID uuid.UUID) uuid.UUID {
	t.Helper()

	expenseID := uuid.New()
	expenseModel := &model.RecurringExpenseModel{
		ID:         expenseID,
		UserID:     userID,
		AccountID:  uuid.New(),
		Name:       "Rent",
		Amount:     decimal.NewFromInt(900),
		DayOfMonth: 1,
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:     true,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := db.Create(expenseModel).Error; err != nil {
		t.Fatalf("failed to seed recurring expense: %v", err)
	}
	return expenseID
}

func TestReconciliationRepositoryUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("second upsert for the same period replaces instead of duplicating", func(t *testing.T) {
		db := openTestDB(t)
		userID := seedUser(t, db, "rent-payer@example.com")
		expenseID := seedExpense(t, db, userID)
		repo := NewReconciliationRepository(db)

		first := entity.NewReconciliationCheck(expenseID, 2025, 3, valueobject.CheckStatusMissing)
		if err := repo.Upsert(ctx, first); err != nil {
			t.Fatalf("first upsert failed: %v", err)
		}

		matchedID := uuid.New()
		matchedDate := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
		second := entity.NewReconciliationCheck(expenseID, 2025, 3, valueobject.CheckStatusMissing)
		second.SetMatch(matchedID, matchedDate, decimal.NewFromInt(900))
		if err := repo.Upsert(ctx, second); err != nil {
			t.Fatalf("second upsert failed: %v", err)
		}

		checks, err := repo.FindByUserAndPeriod(ctx, userID, 2025, 3)
		if err != nil {
			t.Fatalf("FindByUserAndPeriod failed: %v", err)
		}
		if len(checks) != 1 {
			t.Fatalf("expected 1 check after re-run, got %d", len(checks))
		}
		if checks[0].Status != valueobject.CheckStatusMatched {
			t.Errorf("expected status %s, got %s", valueobject.CheckStatusMatched, checks[0].Status)
		}
		if checks[0].MatchedTransactionID == nil || *checks[0].MatchedTransactionID != matchedID {
			t.Errorf("expected matched transaction %s, got %v", matchedID, checks[0].MatchedTransactionID)
		}
	})

	t.Run("upsert keeps checks for other periods untouched", func(t *testing.T) {
		db := openTestDB(t)
		userID := seedUser(t, db, "rent-payer@example.com")
		expenseID := seedExpense(t, db, userID)
		repo := NewReconciliationRepository(db)

		for month := 1; month <= 3; month++ {
			check := entity.NewReconciliationCheck(expenseID, 2025, month, valueobject.CheckStatusPending)
			if err := repo.Upsert(ctx, check); err != nil {
				t.Fatalf("upsert for month %d failed: %v", month, err)
			}
		}

		rerun := entity.NewReconciliationCheck(expenseID, 2025, 2, valueobject.CheckStatusMissing)
		if err := repo.Upsert(ctx, rerun); err != nil {
			t.Fatalf("re-run upsert failed: %v", err)
		}

		checks, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("FindByUser failed: %v", err)
		}
		if len(checks) != 3 {
			t.Fatalf("expected 3 checks, got %d", len(checks))
		}
		for _, check := range checks {
			want := valueobject.CheckStatusPending
			if check.Month == 2 {
				want = valueobject.CheckStatusMissing
			}
			if check.Status != want {
				t.Errorf("month %d: expected status %s, got %s", check.Month, want, check.Status)
			}
		}
	})

	t.Run("checks of other users are not visible", func(t *testing.T) {
		db := openTestDB(t)
		userID := seedUser(t, db, "rent-payer@example.com")
		expenseID := seedExpense(t, db, userID)
		otherUserID := seedUser(t, db, "other@example.com")
		repo := NewReconciliationRepository(db)

		check := entity.NewReconciliationCheck(expenseID, 2025, 5, valueobject.CheckStatusPending)
		if err := repo.Upsert(ctx, check); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		checks, err := repo.FindByUser(ctx, otherUserID)
		if err != nil {
			t.Fatalf("FindByUser failed: %v", err)
		}
		if len(checks) != 0 {
			t.Errorf("expected no checks for other user, got %d", len(checks))
		}
	})
}
