package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	request "mecanica_oficina/internal/adapter/http/dto/request"
	response "mecanica_oficina/internal/adapter/http/dto/response"
	"mecanica_oficina/internal/usecase"
	"mecanica_oficina/pkg"
	"mecanica_oficina/pkg/config"
	"mecanica_oficina/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles invoicing of completed repair orders.
type BillingHandler struct {
	invoices usecase.IInvoiceUseCase
	payments config.PaymentsConfig
	log      *logger.Logger
}

func NewBillingHandler(invoices usecase.IInvoiceUseCase, payments config.PaymentsConfig, log *logger.Logger) *BillingHandler {
	return &BillingHandler{invoices: invoices, payments: payments, log: log}
}

func (h *BillingHandler) view(c *gin.Context) usecase.BillingView {
	return engineFrom(c)
}

func (h *BillingHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRepairOrders(h.view(c).OrdersInStatus(usecase.BillingStatuses...)))
}

func (h *BillingHandler) Quote(c *gin.Context) {
	q, err := h.invoices.Quote(h.view(c), c.Param("ro_id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *BillingHandler) ChangeStatus(c *gin.Context) {
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

// Settle godoc
// @Summary      Charge and close a repair order
// @Description  Body is a Mercado Pago payment request, raw or wrapped in mp_payload.
// @Description  The amount always comes from the repair order line items.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        ro_id  path  string  true  "repair order id"
// @Success      200  {object}  response.RepairOrderMutationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /billing/orders/{ro_id}/settle [post]
func (h *BillingHandler) Settle(c *gin.Context) {
	orderID := c.Param("ro_id")
	ctx := h.log.WithOrderID(c.Request.Context(), orderID)

	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	mpPayload, err := request.ResolveMPPayload(raw)
	if err != nil {
		if !h.payments.MockEnabled() {
			h.log.Warn(ctx, "[billing][handler] invalid payload: "+err.Error())
			writeError(c, errInvalidRequest)
			return
		}
		h.log.Warn(ctx, "[billing][handler] payload invalid in mock mode; using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	settled, res, err := h.invoices.Settle(ctx, h.view(c), orderID, mpPayload)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairOrderMutation(settled, res))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainError("PAYMENT_NOT_APPROVED", "Payment not approved", err, http.StatusPaymentRequired)
	default:
		return mapEngineError(err)
	}
}
