package routes

import (
	"context"
	_ "insumos_limpeza/docs"
	"insumos_limpeza/internal/adapter/http/handlers"
	repository2 "insumos_limpeza/internal/adapter/persistence/repository"
	"insumos_limpeza/internal/domain/calculator"
	"insumos_limpeza/internal/infrastructure/catalog"
	"insumos_limpeza/internal/infrastructure/database"
	"insumos_limpeza/internal/infrastructure/notification"
	"insumos_limpeza/internal/infrastructure/payments"
	"insumos_limpeza/internal/infrastructure/report"
	"insumos_limpeza/internal/usecase"
	"insumos_limpeza/internal/usecase/interfaces"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	if isEnabled(os.Getenv("DYNAMODB_CREATE_TABLES")) {
		if err := database.EnsureTables(context.Background(), ddb); err != nil {
			log.Fatalf("failed to create dynamodb tables: %v", err)
		}
	}

	cat, err := catalog.LoadFromEnv()
	if err != nil {
		log.Fatalf("failed to load product catalog: %v", err)
	}

	calculationRepo := repository2.NewCalculationDynamoRepository(ddb)
	paymentRepo := repository2.NewSubscriptionPaymentDynamoRepository(ddb)

	calculationUseCase := usecase.NewCalculationUseCase(
		calculationRepo,
		calculator.New(cat),
		report.NewRenderer(),
		reportSender(),
		usecase.DeliveryPolicyFromEnv(),
	)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGatewayFromEnv()
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewSubscriptionPaymentUseCase(paymentRepo, calculationRepo, paymentGateway)

	calculationHandler := handlers.NewCalculationHandler(calculationUseCase)
	paymentHandler := handlers.NewSubscriptionPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCalculationRoutes(v1, calculationHandler, paymentHandler)
}

// reportSender falls back to logging deliveries when SMTP_HOST is unset.
func reportSender() interfaces.IReportSender {
	sender, err := notification.NewSMTPSender(notification.SMTPConfigFromEnv())
	if err != nil {
		log.Printf("SMTP not configured, report e-mails will only be logged: %v", err)
		return notification.LogSender{}
	}
	return sender
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
