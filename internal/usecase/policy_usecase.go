package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPolicyNotFound    = errors.New("policy not found")
	ErrInvalidPolicyID   = errors.New("invalid policy id")
	ErrInvalidPolicyType = errors.New("invalid policy type")
)

// IPolicyUseCase exposes policy lifecycle operations.
//
// Policies are write-once: creation and renewal both insert new rows, the
// renewed policy keeps a reference to its predecessor and the predecessor is
// never touched. Status is derived from the date range on every read.

type IPolicyUseCase interface {
	CreatePolicy(ctx context.Context, customerID string, policyType entities.PolicyType, coverageAmount decimal.Decimal, applicantAge int, startDate, endDate time.Time) (entities.Policy, error)
	RenewPolicy(ctx context.Context, policyID string, applicantAge int, startDate, endDate time.Time) (entities.Policy, error)
	QuotePremium(age int, policyType entities.PolicyType, coverageAmount decimal.Decimal) (decimal.Decimal, error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Policy, error)
}

type PolicyUseCase struct {
	repo         interfaces.IPolicyRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(repo interfaces.IPolicyRepository, customerRepo interfaces.ICustomerRepository) *PolicyUseCase {
	return &PolicyUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *PolicyUseCase) CreatePolicy(ctx context.Context, customerID string, policyType entities.PolicyType, coverageAmount decimal.Decimal, applicantAge int, startDate, endDate time.Time) (entities.Policy, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Policy{}, ErrInvalidCustomerID
	}
	if !policyType.Valid() {
		return entities.Policy{}, ErrInvalidPolicyType
	}
	if _, err := entities.DeriveStatus(startDate, endDate, startDate); err != nil {
		return entities.Policy{}, err
	}

	premium, err := entities.CalculatePremium(applicantAge, policyType, coverageAmount)
	if err != nil {
		return entities.Policy{}, err
	}

	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Policy{}, err
	}
	if customer.ID == "" {
		return entities.Policy{}, ErrCustomerNotFound
	}

	now := time.Now().UTC()
	p := entities.Policy{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		Type:           policyType,
		CoverageAmount: coverageAmount,
		Premium:        premium,
		StartDate:      startDate,
		EndDate:        endDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, p)
}

// RenewPolicy issues a successor policy with the same customer, type and
// coverage over a new date range. Claims filed against the predecessor stay
// bound to it.
func (u *PolicyUseCase) RenewPolicy(ctx context.Context, policyID string, applicantAge int, startDate, endDate time.Time) (entities.Policy, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.Policy{}, ErrInvalidPolicyID
	}
	if _, err := entities.DeriveStatus(startDate, endDate, startDate); err != nil {
		return entities.Policy{}, err
	}

	prior, err := u.repo.GetByID(ctx, policyID)
	if err != nil {
		return entities.Policy{}, err
	}
	if prior.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}

	premium, err := entities.CalculatePremium(applicantAge, prior.Type, prior.CoverageAmount)
	if err != nil {
		return entities.Policy{}, err
	}

	now := time.Now().UTC()
	renewed := entities.Policy{
		ID:             uuid.NewString(),
		CustomerID:     prior.CustomerID,
		Type:           prior.Type,
		CoverageAmount: prior.CoverageAmount,
		Premium:        premium,
		StartDate:      startDate,
		EndDate:        endDate,
		RenewedFromID:  prior.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, renewed)
}

func (u *PolicyUseCase) QuotePremium(age int, policyType entities.PolicyType, coverageAmount decimal.Decimal) (decimal.Decimal, error) {
	if !policyType.Valid() {
		return decimal.Decimal{}, ErrInvalidPolicyType
	}
	return entities.CalculatePremium(age, policyType, coverageAmount)
}

func (u *PolicyUseCase) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Policy{}, ErrInvalidPolicyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	if p.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (u *PolicyUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Policy, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}
