package request

import (
	"errors"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidPolicyDates = errors.New("invalid policy dates")

const policyDateLayout = "2006-01-02"

// PolicyCreateRequest is the payload for issuing a new policy.
//
// Dates travel as calendar days (YYYY-MM-DD); coverage is a decimal so the
// amount survives the wire without float noise.

type PolicyCreateRequest struct {
	CustomerID     string          `json:"customer_id" binding:"required"`
	Type           string          `json:"type" binding:"required"`
	CoverageAmount decimal.Decimal `json:"coverage_amount" binding:"required"`
	ApplicantAge   int             `json:"applicant_age" binding:"required"`
	StartDate      string          `json:"start_date" binding:"required"`
	EndDate        string          `json:"end_date" binding:"required"`
}

func (r PolicyCreateRequest) ResolveType() entities.PolicyType {
	return entities.PolicyType(strings.ToLower(strings.TrimSpace(r.Type)))
}

func (r PolicyCreateRequest) ResolvePeriod() (time.Time, time.Time, error) {
	return resolvePeriod(r.StartDate, r.EndDate)
}

// PolicyRenewRequest is the payload for renewing an existing policy. The
// coverage and type come from the policy being renewed.

type PolicyRenewRequest struct {
	ApplicantAge int    `json:"applicant_age" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
}

func (r PolicyRenewRequest) ResolvePeriod() (time.Time, time.Time, error) {
	return resolvePeriod(r.StartDate, r.EndDate)
}

// PremiumQuoteRequest is the payload for a premium quotation. Nothing is
// persisted when quoting.

type PremiumQuoteRequest struct {
	Age            int             `json:"age" binding:"required"`
	Type           string          `json:"type" binding:"required"`
	CoverageAmount decimal.Decimal `json:"coverage_amount" binding:"required"`
}

func (r PremiumQuoteRequest) ResolveType() entities.PolicyType {
	return entities.PolicyType(strings.ToLower(strings.TrimSpace(r.Type)))
}

func resolvePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.ParseInLocation(policyDateLayout, strings.TrimSpace(start), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPolicyDates
	}
	endDate, err := time.ParseInLocation(policyDateLayout, strings.TrimSpace(end), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPolicyDates
	}
	return startDate, endDate, nil
}
