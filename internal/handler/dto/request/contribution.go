package request

import (
	"wishlink/internal/usecase/commands"
)

// AmountCents is accepted as a JSON number so a fractional or garbage value
// fails in the domain with a single well-defined error.
type AddContributionRequest struct {
	AmountCents     float64 `json:"amount_cents" binding:"required"`
	ContributorName string  `json:"contributor_name" binding:"omitempty,max=100"`
}

func (r *AddContributionRequest) ToCommand() commands.AddContributionRequest {
	return commands.AddContributionRequest{
		AmountCents:     r.AmountCents,
		ContributorName: r.ContributorName,
	}
}
