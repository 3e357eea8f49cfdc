package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

type fakeRecurringRepo struct {
	created []*entity.RecurringExpense
	stored  map[uuid.UUID]*entity.RecurringExpense
}

func newFakeRecurringRepo() *fakeRecurringRepo {
	return &fakeRecurringRepo{stored: make(map[uuid.UUID]*entity.RecurringExpense)}
}

func (f *fakeRecurringRepo) Create(ctx context.Context, expense *entity.RecurringExpense) error {
	f.created = append(f.created, expense)
	f.stored[expense.ID] = expense
	return nil
}

func (f *fakeRecurringRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error) {
	return f.stored[id], nil
}

func (f *fakeRecurringRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error) {
	return f.created, nil
}

func (f *fakeRecurringRepo) ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error) {
	return f.created, nil
}

func (f *fakeRecurringRepo) Update(ctx context.Context, expense *entity.RecurringExpense) error {
	f.stored[expense.ID] = expense
	return nil
}

func (f *fakeRecurringRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.stored, id)
	return nil
}

func TestCreateRecurringExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	validInput := func() CreateRecurringExpenseInput {
		return CreateRecurringExpenseInput{
			UserID:     userID,
			AccountID:  accountID,
			Name:       "Rent",
			Amount:     decimal.NewFromFloat(1200.00),
			DayOfMonth: 1,
			StartDate:  start,
		}
	}

	t.Run("creates active definition", func(t *testing.T) {
		repo := newFakeRecurringRepo()
		uc := NewCreateRecurringExpenseUseCase(repo)

		output, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Expense.Active {
			t.Error("expected new definition to be active")
		}
		if len(repo.created) != 1 {
			t.Errorf("expected 1 created expense, got %d", len(repo.created))
		}
	})

	t.Run("accepts boundary days 1 and 31", func(t *testing.T) {
		for _, day := range []int{1, 31} {
			repo := newFakeRecurringRepo()
			uc := NewCreateRecurringExpenseUseCase(repo)
			input := validInput()
			input.DayOfMonth = day
			if _, err := uc.Execute(ctx, input); err != nil {
				t.Errorf("day %d: unexpected error: %v", day, err)
			}
		}
	})

	t.Run("rejects out-of-range day of month", func(t *testing.T) {
		for _, day := range []int{0, 32, -1} {
			uc := NewCreateRecurringExpenseUseCase(newFakeRecurringRepo())
			input := validInput()
			input.DayOfMonth = day
			_, err := uc.Execute(ctx, input)
			if !errors.Is(err, domainerror.ErrInvalidDayOfMonth) {
				t.Errorf("day %d: expected ErrInvalidDayOfMonth, got %v", day, err)
			}
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewCreateRecurringExpenseUseCase(newFakeRecurringRepo())
		input := validInput()
		input.Amount = decimal.Zero
		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidRecurringAmount) {
			t.Errorf("expected ErrInvalidRecurringAmount, got %v", err)
		}
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		uc := NewCreateRecurringExpenseUseCase(newFakeRecurringRepo())
		input := validInput()
		end := start.AddDate(0, 0, -1)
		input.EndDate = &end
		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrEndDateBeforeStartDate) {
			t.Errorf("expected ErrEndDateBeforeStartDate, got %v", err)
		}
	})
}

func TestUpdateRecurringExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deactivates definition", func(t *testing.T) {
		repo := newFakeRecurringRepo()
		expense := entity.NewRecurringExpense(
			userID, uuid.New(), nil, "Gym",
			decimal.NewFromFloat(45.00), 5,
			time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		)
		repo.stored[expense.ID] = expense
		uc := NewUpdateRecurringExpenseUseCase(repo)

		inactive := false
		output, err := uc.Execute(ctx, UpdateRecurringExpenseInput{
			ExpenseID: expense.ID,
			UserID:    userID,
			Active:    &inactive,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Active {
			t.Error("expected definition to be inactive")
		}
	})

	t.Run("hides definitions of other users", func(t *testing.T) {
		repo := newFakeRecurringRepo()
		expense := entity.NewRecurringExpense(
			uuid.New(), uuid.New(), nil, "Gym",
			decimal.NewFromFloat(45.00), 5,
			time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		)
		repo.stored[expense.ID] = expense
		uc := NewUpdateRecurringExpenseUseCase(repo)

		_, err := uc.Execute(ctx, UpdateRecurringExpenseInput{ExpenseID: expense.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrRecurringExpenseNotFound) {
			t.Errorf("expected ErrRecurringExpenseNotFound, got %v", err)
		}
	})
}
