package routes

import (
	"mecanica_oficina/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathService     = "/service"
	PathTechnicians = "/technicians/:technician_id"
	PathParts       = "/parts"
	PathInventory   = "/inventory"
	PathSession     = "/session"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	session := rg.Group(PathSession)
	{
		session.GET("", h.GetSession)
		session.POST("/retry", h.Retry)
		session.POST("/simulate", h.Simulate)
	}
}

func addServiceRoutes(rg *gin.RouterGroup, h *handlers.ServiceManagerHandler) {
	service := rg.Group(PathService)
	{
		service.GET("/orders", h.ListOrders)
		service.POST("/orders", h.CreateOrder)
		service.GET("/orders/:ro_id", h.GetOrder)
		service.PUT("/orders/:ro_id", h.ReplaceOrder)
		service.PATCH("/orders/:ro_id/status", h.ChangeStatus)
		service.PATCH("/orders/:ro_id/technician", h.AssignTechnician)
	}
}

func addTechnicianRoutes(rg *gin.RouterGroup, h *handlers.TechnicianHandler) {
	tech := rg.Group(PathTechnicians)
	{
		tech.GET("/orders", h.ListOrders)
		tech.PATCH("/orders/:ro_id/status", h.ChangeStatus)
		tech.POST("/orders/:ro_id/parts", h.UseParts)
	}
}

func addPartsRoutes(rg *gin.RouterGroup, h *handlers.PartsHandler) {
	parts := rg.Group(PathParts)
	{
		parts.GET("/orders", h.ListOrders)
		parts.PATCH("/orders/:ro_id/status", h.ChangeStatus)
		parts.GET("/inventory", h.ListInventory)
		parts.POST("/adjustments", h.AdjustInventory)
	}
}

func addInventoryRoutes(rg *gin.RouterGroup, h *handlers.InventoryHandler) {
	inv := rg.Group(PathInventory)
	{
		inv.GET("/parts", h.ListParts)
		inv.GET("/parts/:part_number", h.GetPart)
		inv.PUT("/parts/:part_number", h.SavePart)
		inv.POST("/adjustments", h.AdjustInventory)
		inv.GET("/alerts", h.ListAlerts)
	}
}
