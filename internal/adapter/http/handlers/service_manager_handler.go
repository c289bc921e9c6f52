package handlers

import (
	"net/http"
	"strings"

	request "mecanica_oficina/internal/adapter/http/dto/request"
	response "mecanica_oficina/internal/adapter/http/dto/response"
	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase"
	"mecanica_oficina/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ServiceManagerHandler handles the service desk: intake, full record edits,
// status changes and technician assignment.
type ServiceManagerHandler struct {
	log *logger.Logger
}

func NewServiceManagerHandler(log *logger.Logger) *ServiceManagerHandler {
	return &ServiceManagerHandler{log: log}
}

func (h *ServiceManagerHandler) view(c *gin.Context) usecase.ServiceManagerView {
	return engineFrom(c)
}

// ListOrders godoc
// @Summary      List repair orders
// @Description  Optionally filtered by a comma-separated status list.
// @Tags         service
// @Produce      json
// @Param        status  query  string  false  "e.g. NEW,AUTHORIZED"
// @Success      200  {array}   response.RepairOrderResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /service/orders [get]
func (h *ServiceManagerHandler) ListOrders(c *gin.Context) {
	view := h.view(c)
	statuses := parseStatuses(c.Query("status"))
	if len(statuses) == 0 {
		c.JSON(http.StatusOK, response.FromRepairOrders(view.Orders()))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairOrders(view.OrdersInStatus(statuses...)))
}

func (h *ServiceManagerHandler) GetOrder(c *gin.Context) {
	order, err := h.view(c).Order(c.Param("ro_id"))
	if err != nil {
		writeError(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairOrder(order))
}

// CreateOrder godoc
// @Summary      Create a repair order
// @Tags         service
// @Accept       json
// @Produce      json
// @Param        body  body  request.RepairOrderRequest  true  "repair order"
// @Success      201  {object}  response.RepairOrderMutationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service/orders [post]
func (h *ServiceManagerHandler) CreateOrder(c *gin.Context) {
	var payload request.RepairOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	ctx := c.Request.Context()
	created, res, err := h.view(c).AddOrder(ctx, payload.ToEntity())
	if err != nil {
		h.log.Warn(h.log.WithOrderID(ctx, payload.ID), "[service][handler] create failed: "+err.Error())
		writeError(c, mapEngineError(err))
		return
	}
	h.log.Info(h.log.WithOrderID(ctx, created.ID), "[service][handler] repair order created")
	c.JSON(http.StatusCreated, response.FromRepairOrderMutation(created, res))
}

// ReplaceOrder godoc
// @Summary      Replace a repair order
// @Description  Full-record replace; fields missing from the body are cleared.
// @Tags         service
// @Accept       json
// @Produce      json
// @Param        ro_id  path  string                      true  "repair order id"
// @Param        body   body  request.RepairOrderRequest  true  "full record"
// @Success      200  {object}  response.RepairOrderMutationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service/orders/{ro_id} [put]
func (h *ServiceManagerHandler) ReplaceOrder(c *gin.Context) {
	var payload request.RepairOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	order := payload.ToEntity()
	order.ID = strings.TrimSpace(c.Param("ro_id"))

	updated, res, err := h.view(c).UpdateOrder(c.Request.Context(), order)
	if err != nil {
		writeError(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairOrderMutation(updated, res))
}

func (h *ServiceManagerHandler) ChangeStatus(c *gin.Context) {
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

func (h *ServiceManagerHandler) AssignTechnician(c *gin.Context) {
	var payload request.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	updated, res, err := h.view(c).AssignTechnician(c.Request.Context(), c.Param("ro_id"), payload.TechnicianID)
	if err != nil {
		writeError(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairOrderMutation(updated, res))
}

func parseStatuses(raw string) []entities.RepairOrderStatus {
	var out []entities.RepairOrderStatus
	for _, part := range strings.Split(raw, ",") {
		if s := strings.ToUpper(strings.TrimSpace(part)); s != "" {
			out = append(out, entities.RepairOrderStatus(s))
		}
	}
	return out
}
