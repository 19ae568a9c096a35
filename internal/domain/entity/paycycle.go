// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PayCycle represents a user's pay cycle configuration: how often they are
// paid, which account the pay lands in, and an optional savings account that
// receives any surplus. There is at most one pay cycle per user.
//
// PrimaryAccountID should reference an existing account, but the planner
// degrades gracefully (no suggestions) when the reference dangles, e.g.
// after the account was deleted.
type PayCycle struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Frequency        Frequency // Restricted to weekly, fortnightly, monthly
	PrimaryAccountID uuid.UUID
	SavingsAccountID *uuid.UUID
	NextPayDate      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPayCycle creates a new PayCycle entity.
func NewPayCycle(
	userID uuid.UUID,
	frequency Frequency,
	primaryAccountID uuid.UUID,
	savingsAccountID *uuid.UUID,
	nextPayDate time.Time,
) *PayCycle {
	now := time.Now().UTC()

	return &PayCycle{
		ID:               uuid.New(),
		UserID:           userID,
		Frequency:        frequency,
		PrimaryAccountID: primaryAccountID,
		SavingsAccountID: savingsAccountID,
		NextPayDate:      nextPayDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
