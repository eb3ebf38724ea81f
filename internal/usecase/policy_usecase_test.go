package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"
	mock_interfaces "seguros_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPolicyUseCase_CreatePolicy(t *testing.T) {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewPolicyUseCase(nil, nil)
		_, err := uc.CreatePolicy(context.Background(), "  ", entities.PolicyTypeComprehensive, decimal.NewFromInt(100000), 40, start, end)
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("invalid policy type", func(t *testing.T) {
		uc := NewPolicyUseCase(nil, nil)
		_, err := uc.CreatePolicy(context.Background(), "cust-1", entities.PolicyType("life"), decimal.NewFromInt(100000), 40, start, end)
		if !errors.Is(err, ErrInvalidPolicyType) {
			t.Fatalf("expected ErrInvalidPolicyType, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		uc := NewPolicyUseCase(nil, nil)
		_, err := uc.CreatePolicy(context.Background(), "cust-1", entities.PolicyTypeComprehensive, decimal.NewFromInt(100000), 40, end, start)
		if !errors.Is(err, entities.ErrInvalidPolicyPeriod) {
			t.Fatalf("expected ErrInvalidPolicyPeriod, got %v", err)
		}
	})

	t.Run("invalid premium input", func(t *testing.T) {
		uc := NewPolicyUseCase(nil, nil)
		_, err := uc.CreatePolicy(context.Background(), "cust-1", entities.PolicyTypeComprehensive, decimal.NewFromInt(100000), 0, start, end)
		if !errors.Is(err, entities.ErrInvalidPremiumInput) {
			t.Fatalf("expected ErrInvalidPremiumInput, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewPolicyUseCase(nil, customerRepo)

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.CreatePolicy(context.Background(), "cust-1", entities.PolicyTypeComprehensive, decimal.NewFromInt(100000), 40, start, end)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("create success computes premium", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewPolicyUseCase(repo, customerRepo)

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Policy{})).DoAndReturn(
			func(_ context.Context, p entities.Policy) (entities.Policy, error) {
				if p.ID == "" || p.CustomerID != "cust-1" || p.RenewedFromID != "" {
					t.Fatalf("unexpected policy: %+v", p)
				}
				if !p.Premium.Equal(decimal.NewFromInt(2400)) {
					t.Fatalf("expected premium 2400, got %s", p.Premium.String())
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		res, err := uc.CreatePolicy(context.Background(), " cust-1 ", entities.PolicyTypeComprehensive, decimal.NewFromInt(100000), 40, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestPolicyUseCase_RenewPolicy(t *testing.T) {
	start := time.Date(2027, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	t.Run("invalid policy id", func(t *testing.T) {
		uc := NewPolicyUseCase(nil, nil)
		_, err := uc.RenewPolicy(context.Background(), "", 41, start, end)
		if !errors.Is(err, ErrInvalidPolicyID) {
			t.Fatalf("expected ErrInvalidPolicyID, got %v", err)
		}
	})

	t.Run("prior not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(entities.Policy{}, nil)

		_, err := uc.RenewPolicy(context.Background(), "pol-1", 41, start, end)
		if !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("renew creates successor and keeps prior untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo, nil)

		prior := entities.Policy{
			ID:             "pol-1",
			CustomerID:     "cust-1",
			Type:           entities.PolicyTypeThirdParty,
			CoverageAmount: decimal.NewFromInt(100000),
			Premium:        decimal.NewFromInt(2000),
			StartDate:      start.AddDate(-1, 0, 0),
			EndDate:        start.AddDate(0, 0, -1),
		}
		repo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(prior, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Policy{})).DoAndReturn(
			func(_ context.Context, p entities.Policy) (entities.Policy, error) {
				if p.ID == "" || p.ID == prior.ID {
					t.Fatalf("expected a new id, got %q", p.ID)
				}
				if p.RenewedFromID != "pol-1" || p.CustomerID != "cust-1" || p.Type != prior.Type {
					t.Fatalf("unexpected renewal: %+v", p)
				}
				if !p.CoverageAmount.Equal(prior.CoverageAmount) {
					t.Fatalf("coverage changed on renewal: %+v", p)
				}
				// 0.05 × 0.41 × 1.0 × 100000
				if !p.Premium.Equal(decimal.NewFromInt(2050)) {
					t.Fatalf("expected premium 2050, got %s", p.Premium.String())
				}
				return p, nil
			},
		)

		res, err := uc.RenewPolicy(context.Background(), " pol-1 ", 41, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RenewedFromID != "pol-1" {
			t.Fatalf("expected renewed_from pol-1, got %q", res.RenewedFromID)
		}
	})
}

func TestPolicyUseCase_QuotePremium(t *testing.T) {
	uc := NewPolicyUseCase(nil, nil)

	quote, err := uc.QuotePremium(40, entities.PolicyTypeComprehensive, decimal.NewFromInt(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.Equal(decimal.NewFromInt(2400)) {
		t.Fatalf("expected 2400, got %s", quote.String())
	}

	if _, err := uc.QuotePremium(40, entities.PolicyType("bogus"), decimal.NewFromInt(100000)); !errors.Is(err, ErrInvalidPolicyType) {
		t.Fatalf("expected ErrInvalidPolicyType, got %v", err)
	}
}

func TestPolicyUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPolicyUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPolicyID) {
			t.Fatalf("expected ErrInvalidPolicyID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(entities.Policy{}, nil)

		_, err := uc.GetByID(context.Background(), "pol-1")
		if !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(entities.Policy{ID: "pol-1"}, nil)

		res, err := uc.GetByID(context.Background(), " pol-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "pol-1" {
			t.Fatalf("unexpected policy: %+v", res)
		}
	})
}

func TestPolicyUseCase_ListByCustomerID(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewPolicyUseCase(nil, nil)
		_, err := uc.ListByCustomerID(context.Background(), "")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo, nil)

		repo.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Policy{{ID: "p1"}}, nil)

		res, err := uc.ListByCustomerID(context.Background(), "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 policy, got %d", len(res))
		}
	})
}
