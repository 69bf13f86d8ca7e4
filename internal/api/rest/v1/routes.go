package v1

import (
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	gatewayService payment.GatewayService,
	transactionMetadataService payment.TransactionMetadataService,
	gatewayURL string) {

	v1 := r.Group(BasePath) // lookup in version file

	// Gateway Routes
	gatewayHandler := NewGatewayHandler(gatewayService, gatewayURL)
	v1.POST("/requests", gatewayHandler.BuildRequest)
	v1.GET("/responses", gatewayHandler.ParseResponse)
	v1.POST("/responses", gatewayHandler.ParseResponse)

	// Journal Routes
	transactionHandler := NewTransactionHandler(transactionMetadataService)
	v1.GET("/transactions", transactionHandler.ListTransactions)
	v1.GET("/transactions/:id", transactionHandler.GetTransactionByID)
}
