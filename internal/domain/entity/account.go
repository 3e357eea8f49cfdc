// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType represents the kind of account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCash       AccountType = "cash"
)

// IsValid checks if the account type is one of the known types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard, AccountTypeInvestment, AccountTypeCash:
		return true
	}
	return false
}

// Account represents a financial account owned by a user.
type Account struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        AccountType
	Institution string
	Currency    string
	// BankConnectionID identifies the aggregator-side account used for
	// bank-feed synchronization. Empty for manual accounts.
	BankConnectionID string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // Soft-delete support
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name string, accountType AccountType, institution, currency string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Type:        accountType,
		Institution: institution,
		Currency:    currency,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
