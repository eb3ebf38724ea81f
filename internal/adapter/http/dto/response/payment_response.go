package response

import (
	"time"

	"seguros_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	PaymentID string          `json:"payment_id"`
	ID        string          `json:"id"`
	PolicyID  string          `json:"policy_id"`
	ClaimID   string          `json:"claim_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method,omitempty"`
	Kind      string          `json:"kind"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		PolicyID:           p.PolicyID,
		ClaimID:            p.ClaimID,
		Amount:             p.Amount,
		Method:             p.Method,
		Kind:               string(p.Kind),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
