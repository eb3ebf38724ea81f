package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidPremiumInput = errors.New("invalid premium input")

var (
	premiumBaseRate         = decimal.NewFromFloat(0.05)
	comprehensiveTypeFactor = decimal.NewFromFloat(1.2)
	hundred                 = decimal.NewFromInt(100)
)

// CalculatePremium computes the annual premium for an applicant.
//
// Formula: baseRate(0.05) × (age/100) × typeFactor × coverageAmount, where
// typeFactor is 1.2 for comprehensive policies and 1.0 otherwise. The result
// is rounded to 2 decimal places, half-up. Non-positive age or coverage is a
// caller error; no floor or ceiling is applied beyond that.
func CalculatePremium(age int, policyType PolicyType, coverageAmount decimal.Decimal) (decimal.Decimal, error) {
	if age <= 0 || coverageAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, ErrInvalidPremiumInput
	}

	factor := decimal.NewFromInt(1)
	if policyType == PolicyTypeComprehensive {
		factor = comprehensiveTypeFactor
	}

	premium := premiumBaseRate.
		Mul(decimal.NewFromInt(int64(age)).Div(hundred)).
		Mul(factor).
		Mul(coverageAmount)

	return premium.Round(2), nil
}
