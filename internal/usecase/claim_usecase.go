package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrClaimNotFound        = errors.New("claim not found")
	ErrInvalidClaimID       = errors.New("invalid claim id")
	ErrInvalidClaimAmount   = errors.New("invalid claim amount")
	ErrClaimExceedsCoverage = errors.New("claim amount exceeds policy coverage")
	ErrPolicyNotActive      = errors.New("policy not active")
	ErrClaimNotPending      = errors.New("claim not pending")
	ErrInvalidDecision      = errors.New("invalid claim decision")
)

// IClaimUseCase exposes the claim lifecycle: filing and deciding.
//
// Decisions are one-shot. The transition is committed through a conditional
// repository update, so of two concurrent decisions on the same claim exactly
// one wins and the other gets ErrClaimNotPending. The payout trigger for an
// approval fires only after the transition is durable, exactly once.

type IClaimUseCase interface {
	FileClaim(ctx context.Context, policyID string, amount decimal.Decimal, description string) (entities.Claim, error)
	DecideClaim(ctx context.Context, claimID string, decision string, notes string) (entities.Claim, error)
	ApproveClaim(ctx context.Context, claimID string, notes string) (entities.Claim, error)
	RejectClaim(ctx context.Context, claimID string, notes string) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.Claim, error)
}

type ClaimUseCase struct {
	repo        interfaces.IClaimRepository
	policyRepo  interfaces.IPolicyRepository
	paymentRepo interfaces.IPaymentRepository
	payout      interfaces.IPayoutGateway
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(repo interfaces.IClaimRepository, policyRepo interfaces.IPolicyRepository, paymentRepo interfaces.IPaymentRepository, payout interfaces.IPayoutGateway) *ClaimUseCase {
	return &ClaimUseCase{repo: repo, policyRepo: policyRepo, paymentRepo: paymentRepo, payout: payout}
}

func (u *ClaimUseCase) FileClaim(ctx context.Context, policyID string, amount decimal.Decimal, description string) (entities.Claim, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.Claim{}, ErrInvalidPolicyID
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return entities.Claim{}, ErrInvalidClaimAmount
	}

	policy, err := u.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		return entities.Claim{}, err
	}
	if policy.ID == "" {
		return entities.Claim{}, ErrPolicyNotFound
	}

	status, err := policy.StatusAt(time.Now().UTC())
	if err != nil {
		return entities.Claim{}, err
	}
	if status != entities.PolicyStatusActive {
		log.Printf("[claim][usecase] file rejected policy_id=%s derived_status=%s", policyID, status)
		return entities.Claim{}, ErrPolicyNotActive
	}
	if amount.GreaterThan(policy.CoverageAmount) {
		return entities.Claim{}, ErrClaimExceedsCoverage
	}

	now := time.Now().UTC()
	c := entities.Claim{
		ID:          uuid.NewString(),
		PolicyID:    policy.ID,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Status:      entities.ClaimStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Claim{}, err
	}
	log.Printf("[claim][usecase] filed claim_id=%s policy_id=%s amount=%s", created.ID, created.PolicyID, created.Amount.String())
	return created, nil
}

// DecideClaim validates the decision value before touching any state, then
// routes to the approve/reject flow.
func (u *ClaimUseCase) DecideClaim(ctx context.Context, claimID string, decision string, notes string) (entities.Claim, error) {
	switch entities.ClaimStatus(strings.ToLower(strings.TrimSpace(decision))) {
	case entities.ClaimStatusApproved:
		return u.ApproveClaim(ctx, claimID, notes)
	case entities.ClaimStatusRejected:
		return u.RejectClaim(ctx, claimID, notes)
	default:
		return entities.Claim{}, ErrInvalidDecision
	}
}

func (u *ClaimUseCase) ApproveClaim(ctx context.Context, claimID string, notes string) (entities.Claim, error) {
	approved, err := u.decide(ctx, claimID, entities.ClaimStatusApproved, notes)
	if err != nil {
		return entities.Claim{}, err
	}

	// The approval is durable at this point. A payout failure is logged and
	// re-driven operationally, never surfaced as a decision failure.
	u.dispatchPayout(ctx, approved)
	return approved, nil
}

func (u *ClaimUseCase) RejectClaim(ctx context.Context, claimID string, notes string) (entities.Claim, error) {
	return u.decide(ctx, claimID, entities.ClaimStatusRejected, notes)
}

func (u *ClaimUseCase) decide(ctx context.Context, claimID string, status entities.ClaimStatus, notes string) (entities.Claim, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.Claim{}, ErrInvalidClaimID
	}

	decided, err := u.repo.UpdateDecisionIfPending(ctx, claimID, status, strings.TrimSpace(notes))
	if err != nil {
		return entities.Claim{}, err
	}
	if decided.ID != "" {
		log.Printf("[claim][usecase] decided claim_id=%s status=%s", decided.ID, decided.Status)
		return decided, nil
	}

	// Conditional update refused: the claim is either missing or already
	// decided. Look it up to report the right failure.
	existing, err := u.repo.GetByID(ctx, claimID)
	if err != nil {
		return entities.Claim{}, err
	}
	if existing.ID == "" {
		return entities.Claim{}, ErrClaimNotFound
	}
	log.Printf("[claim][usecase] decision refused claim_id=%s status=%s", existing.ID, existing.Status)
	return entities.Claim{}, ErrClaimNotPending
}

func (u *ClaimUseCase) dispatchPayout(ctx context.Context, claim entities.Claim) {
	if u.payout == nil {
		log.Printf("[claim][usecase] payout gateway not configured claim_id=%s", claim.ID)
		return
	}

	providerPayoutID, providerStatus, providerResp, err := u.payout.InitiatePayout(ctx, claim)
	if err != nil {
		log.Printf("[claim][usecase] payout trigger failed claim_id=%s err=%v", claim.ID, err)
		return
	}
	log.Printf("[claim][usecase] payout triggered claim_id=%s provider_payout_id=%s provider_status=%s", claim.ID, providerPayoutID, providerStatus)

	if u.paymentRepo == nil {
		return
	}
	p := entities.Payment{
		ID:                 providerPayoutID,
		PolicyID:           claim.PolicyID,
		ClaimID:            claim.ID,
		Amount:             claim.Amount,
		Method:             "mercadopago",
		Kind:               entities.PaymentKindClaimPayout,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
	}
	if _, err := u.paymentRepo.Create(ctx, p); err != nil {
		log.Printf("[claim][usecase] payout record create failed claim_id=%s payment_id=%s err=%v", claim.ID, p.ID, err)
	}
}

func (u *ClaimUseCase) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Claim{}, ErrInvalidClaimID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.ID == "" {
		return entities.Claim{}, ErrClaimNotFound
	}
	return c, nil
}

func (u *ClaimUseCase) ListByPolicyID(ctx context.Context, policyID string) ([]entities.Claim, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return nil, ErrInvalidPolicyID
	}
	return u.repo.ListByPolicyID(ctx, policyID)
}
