package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"mecanica_oficina/internal/clock"
	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase/interfaces"
	"mecanica_oficina/pkg/config"
	"mecanica_oficina/pkg/logger"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid mercado pago payload")
	ErrPaymentNotApproved             = errors.New("payment not approved")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// Quote is the billable breakdown of a repair order.
type Quote struct {
	OrderID    string  `json:"ro_id"`
	LaborHours float64 `json:"labor_hours"`
	HourlyRate float64 `json:"hourly_rate"`
	LaborTotal float64 `json:"labor_total"`
	PartsTotal float64 `json:"parts_total"`
	Total      float64 `json:"total"`
}

// IInvoiceUseCase prices repair orders and settles them through the payment gateway.
type IInvoiceUseCase interface {
	Quote(view BillingView, orderID string) (Quote, error)
	Settle(ctx context.Context, view BillingView, orderID string, mpPayload json.RawMessage) (entities.RepairOrder, *PersistResult, error)
}

type InvoiceUseCase struct {
	gateway  interfaces.IPaymentGateway
	payments config.PaymentsConfig
	rate     float64
	clock    clock.Clock
	log      *logger.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(gateway interfaces.IPaymentGateway, payments config.PaymentsConfig, hourlyRate float64, clk clock.Clock, log *logger.Logger) *InvoiceUseCase {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceUseCase{gateway: gateway, payments: payments, rate: hourlyRate, clock: clk, log: log}
}

func (u *InvoiceUseCase) Quote(view BillingView, orderID string) (Quote, error) {
	order, err := view.Order(orderID)
	if err != nil {
		return Quote{}, err
	}
	return QuoteOrder(order, u.rate), nil
}

// QuoteOrder totals labor hours at hourlyRate plus parts at their unit price.
func QuoteOrder(order entities.RepairOrder, hourlyRate float64) Quote {
	q := Quote{OrderID: order.ID, HourlyRate: hourlyRate}
	for _, li := range order.LineItems {
		switch li.Kind {
		case entities.LineItemKindLabor:
			q.LaborHours += li.Hours
		case entities.LineItemKindPart:
			q.PartsTotal += float64(li.Quantity) * li.UnitPrice
		}
	}
	q.LaborTotal = roundCents(q.LaborHours * hourlyRate)
	q.PartsTotal = roundCents(q.PartsTotal)
	q.Total = roundCents(q.LaborTotal + q.PartsTotal)
	return q
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Settle charges the order total and, once the provider approves, attaches the
// invoice and moves the order to INVOICED. The order is claimed for the whole
// attempt, so a concurrent Settle of the same order fails with
// ErrSettlementInProgress instead of charging twice.
func (u *InvoiceUseCase) Settle(ctx context.Context, view BillingView, orderID string, mpPayload json.RawMessage) (entities.RepairOrder, *PersistResult, error) {
	mockMode := u.payments.MockEnabled()
	orderID = strings.TrimSpace(orderID)
	ctx = u.log.WithOrderID(ctx, orderID)
	u.log.Info(u.log.WithField(ctx, "payload_len", len(mpPayload)), "[billing][usecase] settle start")

	if orderID == "" {
		return entities.RepairOrder{}, nil, ErrInvalidOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			u.log.Warn(ctx, "[billing][usecase] invalid payload")
			return entities.RepairOrder{}, nil, ErrInvalidPaymentPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.RepairOrder{}, nil, ErrPaymentGatewayNotConfigured
	}

	order, release, err := view.ClaimSettlement(orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotInvoiceable) || errors.Is(err, ErrSettlementInProgress) {
			u.log.Warn(ctx, "[billing][usecase] settle refused: "+err.Error())
		}
		return entities.RepairOrder{}, nil, err
	}
	defer release()
	quote := QuoteOrder(order, u.rate)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.RepairOrder{}, nil, ErrInvalidPaymentPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.log.Warn(ctx, "[billing][usecase] missing payment_method_id")
			return entities.RepairOrder{}, nil, ErrInvalidPaymentPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			u.log.Warn(ctx, "[billing][usecase] missing or invalid payer")
			return entities.RepairOrder{}, nil, ErrInvalidPaymentPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = orderID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Repair order %s", orderID)
	}
	// The order's line items are the source of truth for the amount.
	reqMap["transaction_amount"] = quote.Total
	if mpPayload, err = json.Marshal(reqMap); err != nil {
		return entities.RepairOrder{}, nil, err
	}

	key := IdempotencyKey(orderID, mpPayload)
	ctx = u.log.WithField(ctx, "idempotency_key", key)
	paymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, key, mpPayload)
	if err != nil {
		u.log.Error(ctx, "[billing][usecase] payment gateway failed", err)
		return entities.RepairOrder{}, nil, classifyGatewayError(err)
	}
	ctx = u.log.WithFields(ctx, map[string]any{"payment_id": paymentID, "provider_status": providerStatus})

	status := mapProviderStatus(providerStatus)
	if status != entities.PaymentStatusApproved {
		u.log.Warn(ctx, "[billing][usecase] payment not approved")
		return entities.RepairOrder{}, nil, fmt.Errorf("%w: provider status %s", ErrPaymentNotApproved, providerStatus)
	}

	settled, res, err := view.SettleInvoice(ctx, orderID, entities.Invoice{
		Total:         quote.Total,
		PaymentID:     paymentID,
		PaymentStatus: status,
		InvoicedAt:    u.clock.Now(),
	})
	if err != nil {
		u.log.Error(ctx, "[billing][usecase] settle failed after payment approval", err)
		return entities.RepairOrder{}, nil, err
	}
	u.log.Info(ctx, "[billing][usecase] settle success")
	return settled, res, nil
}

// IdempotencyKey identifies one charge attempt: the order plus the exact
// payload sent. A retry of the same attempt reuses the key; a new card or
// amount gets a fresh one.
func IdempotencyKey(orderID string, payload []byte) string {
	sum := sha256.Sum256(payload)
	return orderID + "-" + hex.EncodeToString(sum[:8])
}

func mapProviderStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *InvoiceUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts payer.id or payer.email; only fill email when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.payments.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.payments.Sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox expects for test buyers.
func (u *InvoiceUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.payments.Sandbox() {
		return
	}
	userID := strings.TrimSpace(u.payments.TestPayerUserID)
	email := strings.TrimSpace(u.payments.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
}
