package handlers

import (
	"context"
	"net/http"

	request "mecanica_oficina/internal/adapter/http/dto/request"
	response "mecanica_oficina/internal/adapter/http/dto/response"
	"mecanica_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PartsHandler serves the parts desk: orders awaiting fulfillment and stock moves.
type PartsHandler struct{}

func NewPartsHandler() *PartsHandler {
	return &PartsHandler{}
}

func (h *PartsHandler) view(c *gin.Context) usecase.PartsView {
	return engineFrom(c)
}

func (h *PartsHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRepairOrders(h.view(c).OrdersInStatus(usecase.FulfillmentStatuses...)))
}

func (h *PartsHandler) ListInventory(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromParts(h.view(c).Inventory()))
}

func (h *PartsHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	updated, res, err := h.view(c).ChangeStatus(c.Request.Context(), c.Param("ro_id"), payload.ResolveStatus())
	if err != nil {
		writeError(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairOrderMutation(updated, res))
}

func (h *PartsHandler) AdjustInventory(c *gin.Context) {
	adjustInventory(c, h.view(c))
}

type inventoryAdjuster interface {
	UpdateInventory(ctx context.Context, partNumber string, delta int, reason, orderID string) (usecase.ConsumeResult, *usecase.PersistResult, error)
}

func adjustInventory(c *gin.Context, view inventoryAdjuster) {
	var payload request.InventoryAdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	res, pres, err := view.UpdateInventory(c.Request.Context(), payload.PartNumber, *payload.Delta, payload.Reason, payload.ROID)
	if err != nil {
		writeError(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConsumeResult(res, pres))
}
