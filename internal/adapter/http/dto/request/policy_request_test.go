package request

import (
	"errors"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"
)

func TestPolicyCreateRequest_ResolveType(t *testing.T) {
	r := PolicyCreateRequest{Type: " Comprehensive "}
	if got := r.ResolveType(); got != entities.PolicyTypeComprehensive {
		t.Fatalf("expected comprehensive, got %q", got)
	}

	r2 := PolicyCreateRequest{Type: "THIRD_PARTY"}
	if got := r2.ResolveType(); got != entities.PolicyTypeThirdParty {
		t.Fatalf("expected third_party, got %q", got)
	}
}

func TestPolicyCreateRequest_ResolvePeriod(t *testing.T) {
	r := PolicyCreateRequest{StartDate: "2026-09-01", EndDate: " 2027-08-31 "}
	start, end, err := r.ResolvePeriod()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2027, time.August, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %v", end)
	}

	r2 := PolicyCreateRequest{StartDate: "01/09/2026", EndDate: "2027-08-31"}
	if _, _, err := r2.ResolvePeriod(); !errors.Is(err, ErrInvalidPolicyDates) {
		t.Fatalf("expected ErrInvalidPolicyDates, got %v", err)
	}

	r3 := PolicyCreateRequest{StartDate: "2026-09-01", EndDate: "not-a-date"}
	if _, _, err := r3.ResolvePeriod(); !errors.Is(err, ErrInvalidPolicyDates) {
		t.Fatalf("expected ErrInvalidPolicyDates, got %v", err)
	}
}
