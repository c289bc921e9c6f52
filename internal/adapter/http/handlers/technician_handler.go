package handlers

import (
	"net/http"
	"strings"

	request "mecanica_oficina/internal/adapter/http/dto/request"
	response "mecanica_oficina/internal/adapter/http/dto/response"
	"mecanica_oficina/internal/usecase"
	"mecanica_oficina/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TechnicianHandler serves a technician's own queue. Technicians may only act
// on repair orders assigned to them.
type TechnicianHandler struct {
	log *logger.Logger
}

func NewTechnicianHandler(log *logger.Logger) *TechnicianHandler {
	return &TechnicianHandler{log: log}
}

func (h *TechnicianHandler) view(c *gin.Context) usecase.TechnicianView {
	return engineFrom(c)
}

func (h *TechnicianHandler) ListOrders(c *gin.Context) {
	orders := h.view(c).OrdersForTechnician(c.Param("technician_id"))
	if c.Query("actionable") == "true" {
		filtered := orders[:0]
		for _, o := range orders {
			if usecase.TechnicianActionable(o.Status) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	c.JSON(http.StatusOK, response.FromRepairOrders(orders))
}

func (h *TechnicianHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	technicianID := strings.TrimSpace(c.Param("technician_id"))
	updated, res, err := h.view(c).ChangeStatusAsTechnician(c.Request.Context(), technicianID, c.Param("ro_id"), payload.ResolveStatus())
	if err != nil {
		writeError(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairOrderMutation(updated, res))
}

// UseParts consumes parts from inventory for the technician's RO.
func (h *TechnicianHandler) UseParts(c *gin.Context) {
	var payload request.PartUsageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	technicianID := strings.TrimSpace(c.Param("technician_id"))
	orderID := strings.TrimSpace(c.Param("ro_id"))

	ctx := h.log.WithOrderID(c.Request.Context(), orderID)
	res, pres, err := h.view(c).UsePartsAsTechnician(ctx, technicianID, orderID, payload.PartNumber, payload.Quantity, payload.ResolveReason())
	if err != nil {
		writeError(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConsumeResult(res, pres))
}
