package interfaces

import (
	"context"
	"seguros_xpto/internal/domain/entities"
)

// IClaimRepository abstracts DynamoDB persistence for Claim.
//
// UpdateDecisionIfPending applies the one-shot decision under a conditional
// write on status = pending. When the condition fails (claim already decided
// or missing) it returns a zero-value Claim and no error; the caller maps
// that to its own sentinel. Two concurrent deciders therefore cannot both
// succeed.

type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.Claim, error)
	UpdateDecisionIfPending(ctx context.Context, id string, status entities.ClaimStatus, notes string) (entities.Claim, error)
}
