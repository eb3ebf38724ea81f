package handlers

import (
	"errors"
	"net/http"

	request "seguros_xpto/internal/adapter/http/dto/request"
	response "seguros_xpto/internal/adapter/http/dto/response"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPolicyPayload = pkg.NewDomainErrorSimple("INVALID_POLICY_INPUT", "Invalid policy payload", http.StatusBadRequest)

// PolicyHandler handles HTTP requests for policies: issue, renew, quote and
// lookups.

type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

// CreatePolicy issues a new policy; the premium is computed server-side from
// the applicant age, policy type and coverage.
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var payload request.PolicyCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	start, end, err := payload.ResolvePeriod()
	if err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	policy, err := h.usecase.CreatePolicy(c.Request.Context(), payload.CustomerID, payload.ResolveType(), payload.CoverageAmount, payload.ApplicantAge, start, end)
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPolicy(policy))
}

// RenewPolicy issues a successor policy for the policy in the path.
func (h *PolicyHandler) RenewPolicy(c *gin.Context) {
	policyID := c.Param("policy_id")

	var payload request.PolicyRenewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	start, end, err := payload.ResolvePeriod()
	if err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	policy, err := h.usecase.RenewPolicy(c.Request.Context(), policyID, payload.ApplicantAge, start, end)
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPolicy(policy))
}

// QuotePremium computes a premium without persisting anything.
func (h *PolicyHandler) QuotePremium(c *gin.Context) {
	var payload request.PremiumQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	premium, err := h.usecase.QuotePremium(payload.Age, payload.ResolveType(), payload.CoverageAmount)
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PremiumQuoteResponse{Premium: premium})
}

func (h *PolicyHandler) GetPolicyByID(c *gin.Context) {
	policy, err := h.usecase.GetByID(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicy(policy))
}

func (h *PolicyHandler) ListPoliciesByCustomerID(c *gin.Context) {
	policies, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicies(policies))
}

func mapPolicyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidPolicyType),
		errors.Is(err, entities.ErrInvalidPolicyPeriod),
		errors.Is(err, entities.ErrInvalidPremiumInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
