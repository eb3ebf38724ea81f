package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculatePremium(t *testing.T) {
	t.Run("comprehensive", func(t *testing.T) {
		got, err := CalculatePremium(40, PolicyTypeComprehensive, decimal.NewFromInt(100000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != "2400" {
			t.Fatalf("expected 2400, got %s", got.String())
		}
	})

	t.Run("third party has factor 1.0", func(t *testing.T) {
		got, err := CalculatePremium(40, PolicyTypeThirdParty, decimal.NewFromInt(100000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != "2000" {
			t.Fatalf("expected 2000, got %s", got.String())
		}
	})

	t.Run("rounds half-up to 2 decimals", func(t *testing.T) {
		// 0.05 × 0.33 × 1.2 × 1234.56 = 24.4442688 → 24.44
		got, err := CalculatePremium(33, PolicyTypeComprehensive, decimal.NewFromFloat(1234.56))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != "24.44" {
			t.Fatalf("expected 24.44, got %s", got.String())
		}

		// 0.05 × 0.50 × 1.0 × 100.20 = 2.505 → exactly half, rounds up to 2.51
		got, err = CalculatePremium(50, PolicyTypeThirdParty, decimal.NewFromFloat(100.20))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.NewFromFloat(2.51)) {
			t.Fatalf("expected 2.51, got %s", got.String())
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		if _, err := CalculatePremium(0, PolicyTypeThirdParty, decimal.NewFromInt(1000)); !errors.Is(err, ErrInvalidPremiumInput) {
			t.Fatalf("expected ErrInvalidPremiumInput, got %v", err)
		}
		if _, err := CalculatePremium(-5, PolicyTypeThirdParty, decimal.NewFromInt(1000)); !errors.Is(err, ErrInvalidPremiumInput) {
			t.Fatalf("expected ErrInvalidPremiumInput, got %v", err)
		}
		if _, err := CalculatePremium(30, PolicyTypeThirdParty, decimal.Zero); !errors.Is(err, ErrInvalidPremiumInput) {
			t.Fatalf("expected ErrInvalidPremiumInput, got %v", err)
		}
		if _, err := CalculatePremium(30, PolicyTypeThirdParty, decimal.NewFromInt(-10)); !errors.Is(err, ErrInvalidPremiumInput) {
			t.Fatalf("expected ErrInvalidPremiumInput, got %v", err)
		}
	})
}
