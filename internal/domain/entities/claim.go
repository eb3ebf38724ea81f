package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimStatus represents the claim lifecycle.
//
// The transition graph is one-shot: pending → approved or pending → rejected.
// approved and rejected are terminal, a decided claim is never re-decided.

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

func (s ClaimStatus) Terminal() bool {
	return s == ClaimStatusApproved || s == ClaimStatusRejected
}

// Claim is a compensation request against a policy, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (policy_id-index): policy_id
//
// Claims stay bound to the policy they were filed against, including after
// that policy is renewed or expires.

type Claim struct {
	ID            string          `json:"id"`
	PolicyID      string          `json:"policy_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Status        ClaimStatus     `json:"status"`
	DecisionNotes string          `json:"decision_notes,omitempty"`
	DecidedAt     *time.Time      `json:"decided_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
