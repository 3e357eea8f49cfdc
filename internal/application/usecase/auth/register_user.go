// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
)

// defaultCategorySeed describes one category created for every new user.
type defaultCategorySeed struct {
	name  string
	color string
	icon  string
	ctype entity.CategoryType
}

var defaultCategories = []defaultCategorySeed{
	{"Groceries", "#22C55E", "shopping-cart", entity.CategoryTypeExpense},
	{"Housing", "#F59E0B", "home", entity.CategoryTypeExpense},
	{"Transport", "#3B82F6", "car", entity.CategoryTypeExpense},
	{"Utilities", "#06B6D4", "bolt", entity.CategoryTypeExpense},
	{"Health", "#EF4444", "heart", entity.CategoryTypeExpense},
	{"Leisure", "#A855F7", "gamepad", entity.CategoryTypeExpense},
	{"Salary", "#10B981", "banknote", entity.CategoryTypeIncome},
	{"Other Income", "#64748B", "plus-circle", entity.CategoryTypeIncome},
}

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	categoryRepo    adapter.CategoryRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	categoryRepo adapter.CategoryRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyRegistered,
			"email already registered",
			domainerror.ErrEmailAlreadyRegistered,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Email, input.Name, passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.seedDefaultCategories(ctx, user.ID)

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// seedDefaultCategories creates the starter category set for a new user.
// Registration succeeds even if seeding fails; the user can create
// categories manually.
func (uc *RegisterUserUseCase) seedDefaultCategories(ctx context.Context, userID uuid.UUID) {
	for _, seed := range defaultCategories {
		category := entity.NewCategory(userID, seed.name, seed.color, seed.icon, seed.ctype)
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			slog.Warn("failed to seed default category",
				"user_id", userID,
				"category", seed.name,
				"error", err,
			)
		}
	}
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
