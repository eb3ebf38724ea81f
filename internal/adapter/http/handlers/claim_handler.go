package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "seguros_xpto/internal/adapter/http/dto/request"
	response "seguros_xpto/internal/adapter/http/dto/response"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidClaimPayload = pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", "Invalid claim payload", http.StatusBadRequest)

// ClaimHandler handles HTTP requests for the claim lifecycle.

type ClaimHandler struct {
	usecase usecase.IClaimUseCase
}

func NewClaimHandler(uc usecase.IClaimUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

// FileClaim files a claim against the policy in the path.
func (h *ClaimHandler) FileClaim(c *gin.Context) {
	policyID := c.Param("policy_id")

	var payload request.ClaimFileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	claim, err := h.usecase.FileClaim(c.Request.Context(), policyID, payload.Amount, payload.Description)
	if err != nil {
		log.Printf("[claim][handler] file failed policy_id=%s err=%v", policyID, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClaim(claim))
}

// DecideClaim applies an approve/reject decision carried in the body.
func (h *ClaimHandler) DecideClaim(c *gin.Context) {
	claimID := c.Param("claim_id")

	var payload request.ClaimDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	claim, err := h.usecase.DecideClaim(c.Request.Context(), claimID, payload.Decision, payload.Notes)
	if err != nil {
		log.Printf("[claim][handler] decide failed claim_id=%s decision=%s err=%v", claimID, payload.Decision, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *ClaimHandler) ApproveClaim(c *gin.Context) {
	h.patchClaimStatusByRequest(c, h.usecase.ApproveClaim)
}

func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	h.patchClaimStatusByRequest(c, h.usecase.RejectClaim)
}

func (h *ClaimHandler) patchClaimStatusByRequest(
	c *gin.Context,
	decider func(ctx context.Context, claimID, notes string) (entities.Claim, error),
) {
	claimID := c.Param("claim_id")

	// Notes are optional on the dedicated routes; an empty body is fine.
	var payload request.ClaimNotesRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
			return
		}
	}

	claim, err := decider(c.Request.Context(), claimID, payload.Notes)
	if err != nil {
		log.Printf("[claim][handler] decision failed claim_id=%s err=%v", claimID, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *ClaimHandler) GetClaimByID(c *gin.Context) {
	claim, err := h.usecase.GetByID(c.Request.Context(), c.Param("claim_id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *ClaimHandler) ListClaimsByPolicyID(c *gin.Context) {
	claims, err := h.usecase.ListByPolicyID(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaims(claims))
}

func mapClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID),
		errors.Is(err, usecase.ErrInvalidPolicyID),
		errors.Is(err, usecase.ErrInvalidClaimAmount),
		errors.Is(err, usecase.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimExceedsCoverage):
		return pkg.NewDomainErrorSimple("CLAIM_EXCEEDS_COVERAGE", "Claim amount exceeds policy coverage", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPolicyNotActive):
		return pkg.NewDomainErrorSimple("POLICY_NOT_ACTIVE", "Policy not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrClaimNotPending):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_PENDING", "Claim already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
