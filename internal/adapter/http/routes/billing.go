package routes

import (
	"mecanica_oficina/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBilling = "/billing"
)

func addBillingRoutes(rg *gin.RouterGroup, billingHandler *handlers.BillingHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.GET("/orders", billingHandler.ListOrders)
		billing.GET("/orders/:ro_id/quote", billingHandler.Quote)
		billing.PATCH("/orders/:ro_id/status", billingHandler.ChangeStatus)
		billing.POST("/orders/:ro_id/settle", billingHandler.Settle)
	}
}
