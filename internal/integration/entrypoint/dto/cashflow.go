// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/coinbag/backend/internal/domain/entity"
)

// CreateCashFlowRequest represents the request body for cash flow creation.
type CreateCashFlowRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Type       string  `json:"type" binding:"required,oneof=income expense"`
	Amount     float64 `json:"amount" binding:"required,gte=0"`
	Frequency  string  `json:"frequency" binding:"required,oneof=weekly fortnightly monthly quarterly yearly"`
	CategoryID *string `json:"category_id,omitempty"`
	AccountID  *string `json:"account_id,omitempty"`
}

// UpdateCashFlowRequest represents the request body for cash flow update.
// The record type is immutable and therefore absent here.
type UpdateCashFlowRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	Frequency  string  `json:"frequency" binding:"required,oneof=weekly fortnightly monthly quarterly yearly"`
	CategoryID *string `json:"category_id,omitempty"`
	AccountID  *string `json:"account_id,omitempty"`
}

// CashFlowResponse represents a single cash flow in API responses. Amounts
// are serialized as strings to avoid floating point drift on the way out.
type CashFlowResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Amount     string    `json:"amount"`
	Frequency  string    `json:"frequency"`
	CategoryID *string   `json:"category_id"`
	AccountID  *string   `json:"account_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CashFlowListResponse represents the response for listing cash flows.
type CashFlowListResponse struct {
	CashFlows []CashFlowResponse `json:"cash_flows"`
}

// ToCashFlowResponse converts a domain CashFlow entity to a CashFlowResponse DTO.
func ToCashFlowResponse(cashFlow *entity.CashFlow) CashFlowResponse {
	var categoryID *string
	if cashFlow.CategoryID != nil {
		id := cashFlow.CategoryID.String()
		categoryID = &id
	}
	var accountID *string
	if cashFlow.AccountID != nil {
		id := cashFlow.AccountID.String()
		accountID = &id
	}

	return CashFlowResponse{
		ID:         cashFlow.ID.String(),
		Name:       cashFlow.Name,
		Type:       string(cashFlow.Type),
		Amount:     cashFlow.Amount.String(),
		Frequency:  string(cashFlow.Frequency),
		CategoryID: categoryID,
		AccountID:  accountID,
		CreatedAt:  cashFlow.CreatedAt,
		UpdatedAt:  cashFlow.UpdatedAt,
	}
}

// ToCashFlowListResponse converts domain CashFlow entities to a CashFlowListResponse.
func ToCashFlowListResponse(cashFlows []*entity.CashFlow) CashFlowListResponse {
	responses := make([]CashFlowResponse, len(cashFlows))
	for i, cashFlow := range cashFlows {
		responses[i] = ToCashFlowResponse(cashFlow)
	}
	return CashFlowListResponse{
		CashFlows: responses,
	}
}
