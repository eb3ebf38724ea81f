package interfaces

import (
	"context"
	"seguros_xpto/internal/domain/entities"
)

// IPolicyRepository abstracts DynamoDB persistence for Policy.
//
// Policies are immutable after creation: renewal inserts a new row, so the
// port exposes no update operation.

type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (entities.Policy, error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Policy, error)
}
