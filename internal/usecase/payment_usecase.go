package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentID           = errors.New("invalid payment id")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrPolicyExpired              = errors.New("policy expired")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates premium collection.
//
// CollectPremium charges the policy's stored premium through the payment
// gateway and persists the approved payment together with the provider
// response. The charged amount always comes from the policy row, never from
// the caller payload.

type IPaymentUseCase interface {
	CollectPremium(ctx context.Context, policyID string, providerPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	policyRepo interfaces.IPolicyRepository
	gateway    interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, policyRepo interfaces.IPolicyRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, policyRepo: policyRepo, gateway: gateway}
}

func (u *PaymentUseCase) CollectPremium(ctx context.Context, policyID string, providerPayload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] collect-premium start raw_policy_id=%q payload_len=%d", policyID, len(providerPayload))
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.Payment{}, ErrInvalidPolicyID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		log.Printf("[payment][usecase] invalid payload (not-json) policy_id=%s", policyID)
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured policy_id=%s", policyID)
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	policy, err := u.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading policy policy_id=%s err=%v", policyID, err)
		return entities.Payment{}, err
	}
	if policy.ID == "" {
		return entities.Payment{}, ErrPolicyNotFound
	}

	// Premiums may be collected before the coverage starts, but not after it
	// ended.
	status, err := policy.StatusAt(time.Now().UTC())
	if err != nil {
		return entities.Payment{}, err
	}
	if status == entities.PolicyStatusExpired {
		log.Printf("[payment][usecase] policy expired policy_id=%s", policyID)
		return entities.Payment{}, ErrPolicyExpired
	}

	// Mercado Pago uses external_reference to reconcile events. The amount
	// is taken from the policy row, the payload cannot override it.
	method := ""
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if v, ok := reqMap["payment_method_id"].(string); ok {
		method = strings.TrimSpace(v)
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = policyID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Premium for policy %s", policyID)
	}
	reqMap["transaction_amount"] = policy.Premium.InexactFloat64()
	if b, err := json.Marshal(reqMap); err == nil {
		providerPayload = b
	}

	log.Printf("[payment][usecase] calling payment gateway policy_id=%s", policyID)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed policy_id=%s err=%v", policyID, err)
		if isGatewayUnauthorized(err) {
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success policy_id=%s provider_payment_id=%s provider_status=%s", policyID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed policy_id=%s err=%v", policyID, err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		PolicyID:           policyID,
		Amount:             policy.Premium,
		Method:             method,
		Kind:               entities.PaymentKindPremium,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed policy_id=%s payment_id=%s err=%v", policyID, p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] collect-premium success policy_id=%s payment_id=%s status=%s", policyID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByPolicyID(ctx context.Context, policyID string) ([]entities.Payment, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return nil, ErrInvalidPolicyID
	}
	return u.repo.ListByPolicyID(ctx, policyID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
