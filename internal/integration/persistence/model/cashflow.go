// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coinbag/backend/internal/domain/entity"
)

// CashFlowModel represents the cash_flows table in the database.
type CashFlowModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Type       string          `gorm:"type:varchar(10);not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency  string          `gorm:"type:varchar(15);not null"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	AccountID  *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the CashFlowModel.
func (CashFlowModel) TableName() string {
	return "cash_flows"
}

// ToEntity converts a CashFlowModel to a domain CashFlow entity.
func (m *CashFlowModel) ToEntity() *entity.CashFlow {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.CashFlow{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Type:       entity.CashFlowType(m.Type),
		Amount:     m.Amount,
		Frequency:  entity.Frequency(m.Frequency),
		CategoryID: m.CategoryID,
		AccountID:  m.AccountID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// CashFlowFromEntity creates a CashFlowModel from a domain CashFlow entity.
func CashFlowFromEntity(cashFlow *entity.CashFlow) *CashFlowModel {
	var deletedAt gorm.DeletedAt
	if cashFlow.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *cashFlow.DeletedAt, Valid: true}
	}

	return &CashFlowModel{
		ID:         cashFlow.ID,
		UserID:     cashFlow.UserID,
		Name:       cashFlow.Name,
		Type:       string(cashFlow.Type),
		Amount:     cashFlow.Amount,
		Frequency:  string(cashFlow.Frequency),
		CategoryID: cashFlow.CategoryID,
		AccountID:  cashFlow.AccountID,
		CreatedAt:  cashFlow.CreatedAt,
		UpdatedAt:  cashFlow.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
