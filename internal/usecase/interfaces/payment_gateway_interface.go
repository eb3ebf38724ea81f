package interfaces

import (
	"context"
	"encoding/json"

	"seguros_xpto/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago)
// for premium collection. The provider response payload is persisted for
// traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// IPayoutGateway dispatches the payout for an approved claim.
//
// The claim's approved status is already durable when InitiatePayout is
// called; a gateway failure must not be reported as a decision failure.
type IPayoutGateway interface {
	InitiatePayout(ctx context.Context, claim entities.Claim) (providerPayoutID string, providerStatus string, providerResponse json.RawMessage, err error)
}
