package routes

import (
	"insumos_limpeza/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCalculations = "/calculations"
	PathPayments     = "/payments"
)

func addCalculationRoutes(rg *gin.RouterGroup, calculationHandler *handlers.CalculationHandler, paymentHandler *handlers.SubscriptionPaymentHandler) {
	calculations := rg.Group(PathCalculations)
	{
		calculations.POST("", calculationHandler.CreateCalculation)
		calculations.POST("/preview", calculationHandler.PreviewCalculation)
		calculations.GET("/:id", calculationHandler.GetCalculation)
		calculations.GET("/:id/report.pdf", calculationHandler.DownloadPDF)
		calculations.GET("/:id/report.xlsx", calculationHandler.DownloadXLSX)
		calculations.POST("/:id/report", calculationHandler.DeliverReport)
	}

	payments := rg.Group(PathPayments)
	{
		// Assinatura mensal calculada a partir do custo com desconto.
		payments.POST("/:calculation_id", paymentHandler.CreatePaymentByCalculationID)
		payments.GET("/:calculation_id", paymentHandler.GetPaymentByCalculationID)
	}
}
