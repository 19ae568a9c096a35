// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/coinbag/backend/internal/application/usecase/digest"
	"github.com/coinbag/backend/internal/application/usecase/planner"
)

// PlanResponse represents the computed transfer plan in API responses. The
// planner's output types carry their own JSON tags and decimal amounts are
// serialized as strings, so the plan is embedded as-is.
type PlanResponse struct {
	Plan planner.Plan `json:"plan"`
}

// DigestResponse represents the outcome of a digest send request.
type DigestResponse struct {
	Sent       bool   `json:"sent"`
	ProviderID string `json:"provider_id,omitempty"`
}

// ToPlanResponse converts planner output to a PlanResponse DTO.
func ToPlanResponse(output *planner.GetPlanOutput) PlanResponse {
	return PlanResponse{
		Plan: output.Plan,
	}
}

// ToDigestResponse converts digest output to a DigestResponse DTO.
func ToDigestResponse(output *digest.SendPlanDigestOutput) DigestResponse {
	return DigestResponse{
		Sent:       output.Sent,
		ProviderID: output.ProviderID,
	}
}
