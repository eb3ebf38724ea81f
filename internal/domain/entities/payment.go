package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentKind distinguishes premium collections from claim payouts.

type PaymentKind string

const (
	PaymentKindPremium     PaymentKind = "premium"
	PaymentKindClaimPayout PaymentKind = "claim_payout"
)

// Payment is the append-only payment record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (policy_id-index): policy_id
//
// Mercado Pago payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. Both are persisted because provider schemas vary.

type Payment struct {
	ID       string          `json:"id"`
	PolicyID string          `json:"policy_id"`
	ClaimID  string          `json:"claim_id,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method"`
	Kind     PaymentKind     `json:"kind"`
	Date     time.Time       `json:"date"`
	Status   PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
