// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashFlowType represents the direction of a recurring cash flow.
type CashFlowType string

const (
	CashFlowTypeIncome  CashFlowType = "income"
	CashFlowTypeExpense CashFlowType = "expense"
)

// Frequency represents the cadence a recurring cash flow is recorded at.
// The set is closed; values outside it are rejected at the API boundary.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyYearly      Frequency = "yearly"
)

// IsValid reports whether f is one of the five supported cadences.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// IsPayCycleFrequency reports whether f is a cadence a pay cycle may use.
// Pay cycles are restricted to weekly, fortnightly and monthly.
func (f Frequency) IsPayCycleFrequency() bool {
	switch f {
	case FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly:
		return true
	}
	return false
}

// CashFlow represents a recurring income or expense in the Coinbag system.
// Income records link to the account they are paid to; expense records link
// to the account they are paid from. Either link may be absent.
type CashFlow struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Type       CashFlowType
	Amount     decimal.Decimal // Always nonnegative; direction is carried by Type
	Frequency  Frequency
	CategoryID *uuid.UUID // Expenses only; nil means uncategorized
	AccountID  *uuid.UUID // "paid to" for income, "paid from" for expense
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewCashFlow creates a new CashFlow entity.
func NewCashFlow(
	userID uuid.UUID,
	name string,
	cashFlowType CashFlowType,
	amount decimal.Decimal,
	frequency Frequency,
	categoryID *uuid.UUID,
	accountID *uuid.UUID,
) *CashFlow {
	now := time.Now().UTC()

	return &CashFlow{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Type:       cashFlowType,
		Amount:     amount,
		Frequency:  frequency,
		CategoryID: categoryID,
		AccountID:  accountID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsIncome reports whether the cash flow is an income record.
func (c *CashFlow) IsIncome() bool {
	return c.Type == CashFlowTypeIncome
}

// IsExpense reports whether the cash flow is an expense record.
func (c *CashFlow) IsExpense() bool {
	return c.Type == CashFlowTypeExpense
}
