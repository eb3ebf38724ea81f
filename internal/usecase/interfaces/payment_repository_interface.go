package interfaces

import (
	"context"
	"seguros_xpto/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Payments are append-only: premium collections and claim payouts are
// created, never updated or deleted.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.Payment, error)
}
