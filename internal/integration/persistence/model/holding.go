// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-hub/backend/internal/domain/entity"
)

// HoldingModel represents the holdings table in the database.
type HoldingModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	AccountID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Symbol       string           `gorm:"type:varchar(20);not null;index"`
	Name         string           `gorm:"type:varchar(100)"`
	Quantity     decimal.Decimal  `gorm:"type:decimal(20,8);not null"`
	CostBasis    decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	LastPrice    *decimal.Decimal `gorm:"type:decimal(15,4)"`
	LastPricedAt *time.Time       `gorm:"type:timestamptz"`
	CreatedAt    time.Time        `gorm:"not null"`
	UpdatedAt    time.Time        `gorm:"not null"`
	DeletedAt    gorm.DeletedAt   `gorm:"index"` // Soft-delete support

	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the HoldingModel.
func (HoldingModel) TableName() string {
	return "holdings"
}

// ToEntity converts a HoldingModel to a domain Holding entity.
func (m *HoldingModel) ToEntity() *entity.Holding {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Holding{
		ID:           m.ID,
		UserID:       m.UserID,
		AccountID:    m.AccountID,
		Symbol:       m.Symbol,
		Name:         m.Name,
		Quantity:     m.Quantity,
		CostBasis:    m.CostBasis,
		LastPrice:    m.LastPrice,
		LastPricedAt: m.LastPricedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// HoldingFromEntity creates a HoldingModel from a domain Holding entity.
func HoldingFromEntity(holding *entity.Holding) *HoldingModel {
	var deletedAt gorm.DeletedAt
	if holding.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *holding.DeletedAt, Valid: true}
	}

	return &HoldingModel{
		ID:           holding.ID,
		UserID:       holding.UserID,
		AccountID:    holding.AccountID,
		Symbol:       holding.Symbol,
		Name:         holding.Name,
		Quantity:     holding.Quantity,
		CostBasis:    holding.CostBasis,
		LastPrice:    holding.LastPrice,
		LastPricedAt: holding.LastPricedAt,
		CreatedAt:    holding.CreatedAt,
		UpdatedAt:    holding.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
