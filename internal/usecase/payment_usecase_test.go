package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"
	mock_interfaces "seguros_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func premiumPolicy(id string) entities.Policy {
	p := activePolicy(id, 100000)
	p.Premium = decimal.NewFromInt(2400)
	return p
}

func TestPaymentUseCase_CollectPremium(t *testing.T) {
	t.Run("invalid policy id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, nil, gateway)

		_, err := uc.CollectPremium(context.Background(), "  ", json.RawMessage("{}"))
		if !errors.Is(err, ErrInvalidPolicyID) {
			t.Fatalf("expected ErrInvalidPolicyID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, nil, gateway)

		_, err := uc.CollectPremium(context.Background(), "pol-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("policy not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPaymentUseCase(nil, policyRepo, gateway)

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(entities.Policy{}, nil)

		_, err := uc.CollectPremium(context.Background(), "pol-1", json.RawMessage("{}"))
		if !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("expired policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPaymentUseCase(nil, policyRepo, gateway)

		p := premiumPolicy("pol-1")
		p.EndDate = time.Now().UTC().AddDate(0, 0, -3)
		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(p, nil)

		_, err := uc.CollectPremium(context.Background(), "pol-1", json.RawMessage("{}"))
		if !errors.Is(err, ErrPolicyExpired) {
			t.Fatalf("expected ErrPolicyExpired, got %v", err)
		}
	})

	t.Run("pending policy is chargeable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, policyRepo, gateway)

		p := premiumPolicy("pol-1")
		p.StartDate = time.Now().UTC().AddDate(0, 0, 3)
		p.EndDate = time.Now().UTC().AddDate(1, 0, 3)
		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(p, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pay entities.Payment) (entities.Payment, error) { return pay, nil },
		)

		res, err := uc.CollectPremium(context.Background(), "pol-1", json.RawMessage("{}"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "mp-1" {
			t.Fatalf("unexpected payment: %+v", res)
		}
	})

	t.Run("gateway error mapping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPaymentUseCase(nil, policyRepo, gateway)

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(premiumPolicy("pol-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CollectPremium(context.Background(), "pol-1", json.RawMessage("{}"))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("amount comes from policy not payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, policyRepo, gateway)

		policyRepo.EXPECT().GetByID(gomock.Any(), "pol-1").Return(premiumPolicy("pol-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["transaction_amount"] != 2400.0 {
					t.Fatalf("expected transaction_amount 2400, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "pol-1" {
					t.Fatalf("expected external_reference pol-1, got %v", m["external_reference"])
				}
				return "mp-9", "approved", json.RawMessage(`{"id":"mp-9","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pay entities.Payment) (entities.Payment, error) {
				if pay.ID != "mp-9" || pay.Kind != entities.PaymentKindPremium || pay.Method != "pix" {
					t.Fatalf("unexpected payment: %+v", pay)
				}
				if !pay.Amount.Equal(decimal.NewFromInt(2400)) {
					t.Fatalf("expected amount 2400, got %s", pay.Amount.String())
				}
				return pay, nil
			},
		)

		res, err := uc.CollectPremium(context.Background(), "pol-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})
}

func TestPaymentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_ListByPolicyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentUseCase(repo, nil, nil)

	repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return([]entities.Payment{{ID: "p1"}, {ID: "p2"}}, nil)

	res, err := uc.ListByPolicyID(context.Background(), " pol-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(res))
	}

	if _, err := uc.ListByPolicyID(context.Background(), ""); !errors.Is(err, ErrInvalidPolicyID) {
		t.Fatalf("expected ErrInvalidPolicyID, got %v", err)
	}
}
