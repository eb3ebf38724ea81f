package request

import "github.com/shopspring/decimal"

// ClaimFileRequest is the payload for filing a claim against a policy.

type ClaimFileRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// ClaimDecisionRequest is the payload for the generic decision route.
// Decision must be "approved" or "rejected"; anything else is rejected
// before any state is touched.

type ClaimDecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Notes    string `json:"notes"`
}

// ClaimNotesRequest is the payload for the dedicated approve/reject routes.

type ClaimNotesRequest struct {
	Notes string `json:"notes"`
}
