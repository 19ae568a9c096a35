// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/domain/entity"
)

// PayCycleModel represents the pay_cycles table in the database. The user_id
// column carries a unique index: one pay cycle per user, enforced at the
// database level.
type PayCycleModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Frequency        string     `gorm:"type:varchar(15);not null"`
	PrimaryAccountID uuid.UUID  `gorm:"type:uuid;not null"`
	SavingsAccountID *uuid.UUID `gorm:"type:uuid"`
	NextPayDate      time.Time  `gorm:"not null"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PayCycleModel.
func (PayCycleModel) TableName() string {
	return "pay_cycles"
}

// ToEntity converts a PayCycleModel to a domain PayCycle entity.
func (m *PayCycleModel) ToEntity() *entity.PayCycle {
	return &entity.PayCycle{
		ID:               m.ID,
		UserID:           m.UserID,
		Frequency:        entity.Frequency(m.Frequency),
		PrimaryAccountID: m.PrimaryAccountID,
		SavingsAccountID: m.SavingsAccountID,
		NextPayDate:      m.NextPayDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// PayCycleFromEntity creates a PayCycleModel from a domain PayCycle entity.
func PayCycleFromEntity(payCycle *entity.PayCycle) *PayCycleModel {
	return &PayCycleModel{
		ID:               payCycle.ID,
		UserID:           payCycle.UserID,
		Frequency:        string(payCycle.Frequency),
		PrimaryAccountID: payCycle.PrimaryAccountID,
		SavingsAccountID: payCycle.SavingsAccountID,
		NextPayDate:      payCycle.NextPayDate,
		CreatedAt:        payCycle.CreatedAt,
		UpdatedAt:        payCycle.UpdatedAt,
	}
}
