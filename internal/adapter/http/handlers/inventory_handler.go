package handlers

import (
	"net/http"

	request "mecanica_oficina/internal/adapter/http/dto/request"
	response "mecanica_oficina/internal/adapter/http/dto/response"
	"mecanica_oficina/internal/usecase"
	"mecanica_oficina/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InventoryHandler serves the inventory manager: master records, adjustments
// and the low-stock alert log.
type InventoryHandler struct {
	log *logger.Logger
}

func NewInventoryHandler(log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{log: log}
}

func (h *InventoryHandler) view(c *gin.Context) usecase.InventoryManagerView {
	return engineFrom(c)
}

func (h *InventoryHandler) ListParts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromParts(h.view(c).Inventory()))
}

func (h *InventoryHandler) GetPart(c *gin.Context) {
	p, err := h.view(c).Part(c.Param("part_number"))
	if err != nil {
		writeError(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPart(p))
}

// SavePart godoc
// @Summary      Create or replace a master inventory record
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        part_number  path  string               true  "part number"
// @Param        body         body  request.PartRequest  true  "part"
// @Success      200  {object}  response.PartMutationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /inventory/parts/{part_number} [put]
func (h *InventoryHandler) SavePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	ctx := h.log.WithPartNumber(c.Request.Context(), c.Param("part_number"))
	saved, res, err := h.view(c).SavePart(ctx, payload.ToEntity(c.Param("part_number")))
	if err != nil {
		writeError(c, mapEngineError(err))
		return
	}
	h.log.Info(h.log.WithField(ctx, "operation", res.Operation), "[inventory][handler] part saved")
	c.JSON(http.StatusOK, response.FromPartMutation(saved, res))
}

// AdjustInventory godoc
// @Summary      Apply a signed quantity delta to a part
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  request.InventoryAdjustmentRequest  true  "adjustment"
// @Success      200  {object}  response.InventoryAdjustmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /inventory/adjustments [post]
func (h *InventoryHandler) AdjustInventory(c *gin.Context) {
	adjustInventory(c, h.view(c))
}

// ListAlerts returns the alert log, newest first.
func (h *InventoryHandler) ListAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromInventoryAlerts(h.view(c).Alerts()))
}
