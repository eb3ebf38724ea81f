package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PolicyStatus is derived from the coverage date range on every read.
//
// Domain notes:
//   - Status is never persisted. Storing it alongside the dates lets the two
//     drift apart (a policy past its end_date still marked active), so the
//     repositories store only the range and the status is recomputed here.

type PolicyStatus string

const (
	PolicyStatusPending PolicyStatus = "pending"
	PolicyStatusActive  PolicyStatus = "active"
	PolicyStatusExpired PolicyStatus = "expired"
)

type PolicyType string

const (
	PolicyTypeComprehensive PolicyType = "comprehensive"
	PolicyTypeThirdParty    PolicyType = "third_party"
)

var ErrInvalidPolicyPeriod = errors.New("invalid policy period")

// Policy is the insurance policy persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Renewal never mutates an existing policy: it creates a new row whose
// RenewedFromID points at the predecessor.

type Policy struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	Type           PolicyType      `json:"type"`
	CoverageAmount decimal.Decimal `json:"coverage_amount"`
	Premium        decimal.Decimal `json:"premium"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	RenewedFromID  string          `json:"renewed_from_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// DeriveStatus computes the policy status for a given reference date.
// Bounds are inclusive: asOf equal to the start or the end date is active.
// An end date before the start date is a caller error, never a tolerated state.
func DeriveStatus(startDate, endDate, asOf time.Time) (PolicyStatus, error) {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)
	day := truncateToDay(asOf)

	if end.Before(start) {
		return "", ErrInvalidPolicyPeriod
	}
	if day.Before(start) {
		return PolicyStatusPending, nil
	}
	if day.After(end) {
		return PolicyStatusExpired, nil
	}
	return PolicyStatusActive, nil
}

// StatusAt derives the policy status at the given reference date.
func (p Policy) StatusAt(asOf time.Time) (PolicyStatus, error) {
	return DeriveStatus(p.StartDate, p.EndDate, asOf)
}

func (t PolicyType) Valid() bool {
	return t == PolicyTypeComprehensive || t == PolicyTypeThirdParty
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
