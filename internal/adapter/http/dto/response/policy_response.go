package response

import (
	"time"

	"seguros_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PolicyResponse carries the policy plus its status derived at response
// time. Status is not a stored attribute, so it is computed here on every
// read.

type PolicyResponse struct {
	PolicyID       string          `json:"policy_id"`
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	Type           string          `json:"type"`
	CoverageAmount decimal.Decimal `json:"coverage_amount"`
	Premium        decimal.Decimal `json:"premium"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Status         string          `json:"status"`
	RenewedFromID  string          `json:"renewed_from_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromPolicy(p entities.Policy) PolicyResponse {
	status, err := p.StatusAt(time.Now().UTC())
	if err != nil {
		status = ""
	}
	return PolicyResponse{
		PolicyID:       p.ID,
		ID:             p.ID,
		CustomerID:     p.CustomerID,
		Type:           string(p.Type),
		CoverageAmount: p.CoverageAmount,
		Premium:        p.Premium,
		StartDate:      p.StartDate.UTC().Format("2006-01-02"),
		EndDate:        p.EndDate.UTC().Format("2006-01-02"),
		Status:         string(status),
		RenewedFromID:  p.RenewedFromID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromPolicies(policies []entities.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, FromPolicy(p))
	}
	return out
}

// PremiumQuoteResponse is the body for premium quotations.

type PremiumQuoteResponse struct {
	Premium decimal.Decimal `json:"premium"`
}
