package response

import (
	"time"

	"seguros_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ClaimResponse struct {
	ClaimID       string          `json:"claim_id"`
	ID            string          `json:"id"`
	PolicyID      string          `json:"policy_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	DecisionNotes string          `json:"decision_notes,omitempty"`
	DecidedAt     *time.Time      `json:"decided_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromClaim(c entities.Claim) ClaimResponse {
	return ClaimResponse{
		ClaimID:       c.ID,
		ID:            c.ID,
		PolicyID:      c.PolicyID,
		Amount:        c.Amount,
		Description:   c.Description,
		Status:        string(c.Status),
		DecisionNotes: c.DecisionNotes,
		DecidedAt:     c.DecidedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromClaims(claims []entities.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromClaim(c))
	}
	return out
}
