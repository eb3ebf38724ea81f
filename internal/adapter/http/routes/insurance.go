package routes

import (
	"seguros_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathPolicies  = "/policies"
	PathClaims    = "/claims"
	PathPayments  = "/payments"
)

func addInsuranceRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, policyHandler *handlers.PolicyHandler, claimHandler *handlers.ClaimHandler, paymentHandler *handlers.PaymentHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/:customer_id", customerHandler.GetCustomerByID)
		customers.GET("/:customer_id/policies", policyHandler.ListPoliciesByCustomerID)
	}

	policies := rg.Group(PathPolicies)
	{
		policies.POST("", policyHandler.CreatePolicy)
		policies.POST("/quote", policyHandler.QuotePremium)
		policies.GET("/:policy_id", policyHandler.GetPolicyByID)
		policies.POST("/:policy_id/renew", policyHandler.RenewPolicy)

		policies.POST("/:policy_id/claims", claimHandler.FileClaim)
		policies.GET("/:policy_id/claims", claimHandler.ListClaimsByPolicyID)

		policies.POST("/:policy_id/payments", paymentHandler.CollectPremium)
		policies.GET("/:policy_id/payments", paymentHandler.ListPaymentsByPolicyID)
	}

	claims := rg.Group(PathClaims)
	{
		claims.GET("/:claim_id", claimHandler.GetClaimByID)
		claims.PATCH("/:claim_id/decision", claimHandler.DecideClaim)
		claims.PATCH("/:claim_id/approve", claimHandler.ApproveClaim)
		claims.PATCH("/:claim_id/reject", claimHandler.RejectClaim)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPaymentByID)
	}
}
