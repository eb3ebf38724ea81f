package routes

import (
	"log"
	"os"
	"strconv"

	_ "seguros_xpto/docs" // This will be auto-generated
	"seguros_xpto/internal/adapter/http/handlers"
	repository2 "seguros_xpto/internal/adapter/persistence/repository"
	"seguros_xpto/internal/infrastructure/database"
	"seguros_xpto/internal/infrastructure/payments"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	policyRepo := repository2.NewPolicyDynamoRepository(ddb)
	claimRepo := repository2.NewClaimDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	var payoutGateway interfaces.IPayoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
		payoutGateway = mpGateway
	}

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	policyUseCase := usecase.NewPolicyUseCase(policyRepo, customerRepo)
	claimUseCase := usecase.NewClaimUseCase(claimRepo, policyRepo, paymentRepo, payoutGateway)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, policyRepo, paymentGateway)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	policyHandler := handlers.NewPolicyHandler(policyUseCase)
	claimHandler := handlers.NewClaimHandler(claimUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInsuranceRoutes(v1, customerHandler, policyHandler, claimHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
