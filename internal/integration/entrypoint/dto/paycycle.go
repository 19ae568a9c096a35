// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/coinbag/backend/internal/domain/entity"
)

// UpsertPayCycleRequest represents the request body for creating or replacing
// the user's pay cycle. Only frequencies with a whole number of occurrences
// per pay period are accepted.
type UpsertPayCycleRequest struct {
	Frequency        string    `json:"frequency" binding:"required,oneof=weekly fortnightly monthly"`
	PrimaryAccountID string    `json:"primary_account_id" binding:"required,uuid"`
	SavingsAccountID *string   `json:"savings_account_id,omitempty"`
	NextPayDate      time.Time `json:"next_pay_date" binding:"required"`
}

// PayCycleResponse represents the user's pay cycle in API responses.
type PayCycleResponse struct {
	ID               string    `json:"id"`
	Frequency        string    `json:"frequency"`
	PrimaryAccountID string    `json:"primary_account_id"`
	SavingsAccountID *string   `json:"savings_account_id"`
	NextPayDate      time.Time `json:"next_pay_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToPayCycleResponse converts a domain PayCycle entity to a PayCycleResponse DTO.
func ToPayCycleResponse(payCycle *entity.PayCycle) PayCycleResponse {
	var savingsAccountID *string
	if payCycle.SavingsAccountID != nil {
		id := payCycle.SavingsAccountID.String()
		savingsAccountID = &id
	}

	return PayCycleResponse{
		ID:               payCycle.ID.String(),
		Frequency:        string(payCycle.Frequency),
		PrimaryAccountID: payCycle.PrimaryAccountID.String(),
		SavingsAccountID: savingsAccountID,
		NextPayDate:      payCycle.NextPayDate,
		CreatedAt:        payCycle.CreatedAt,
		UpdatedAt:        payCycle.UpdatedAt,
	}
}
