package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"mecanica_oficina/internal/clock"
	"mecanica_oficina/internal/usecase/interfaces"
	appconfig "mecanica_oficina/pkg/config"
	"mecanica_oficina/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	clock    clock.Clock
	log      *logger.Logger

	mockMu      sync.Mutex
	mockCharges map[string]mockCharge
}

type mockCharge struct {
	id   string
	resp json.RawMessage
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. With PAYMENT_GATEWAY_MOCK set it
// approves every payment locally and never reaches Mercado Pago.
func NewMercadoPagoGateway(pc appconfig.PaymentsConfig, clk clock.Clock, log *logger.Logger) (*MercadoPagoGateway, error) {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if log == nil {
		log = logger.Nop()
	}
	ctx := context.Background()
	if pc.MockEnabled() {
		log.Info(ctx, "[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, clock: clk, log: log}, nil
	}

	if pc.MercadoPagoAccessToken == "" {
		log.Warn(ctx, "[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(pc.MercadoPagoAccessToken, config.WithHTTPClient(&idempotentRequester{client: &http.Client{Timeout: 30 * time.Second}}))
	if err != nil {
		log.Error(ctx, "[payment][gateway] failed creating sdk config", err)
		return nil, err
	}
	log.Info(ctx, "[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), clock: clk, log: log}, nil
}

// CreatePayment charges requestPayload. Mercado Pago answers a repeated
// idempotencyKey with the original payment instead of charging again.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, idempotencyKey string, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(ctx, idempotencyKey, requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug(g.log.WithFields(ctx, map[string]any{
		"payload_len":     len(requestPayload),
		"idempotency_key": idempotencyKey,
	}), "[payment][gateway] create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Error(ctx, "[payment][gateway] payload unmarshal failed", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(withIdempotencyKey(ctx, idempotencyKey), req)
	if err != nil {
		g.log.Error(ctx, "[payment][gateway] sdk create failed", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error(ctx, "[payment][gateway] response marshal failed", err)
		return "", "", nil, err
	}
	providerPaymentID = fmt.Sprintf("%d", resp.ID)
	g.log.Info(g.log.WithFields(ctx, map[string]any{
		"provider_payment_id": providerPaymentID,
		"provider_status":     resp.Status,
	}), "[payment][gateway] create success")

	return providerPaymentID, resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockPayment(ctx context.Context, idempotencyKey string, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	g.mockMu.Lock()
	defer g.mockMu.Unlock()
	if c, ok := g.mockCharges[idempotencyKey]; ok && idempotencyKey != "" {
		g.log.Info(g.log.WithField(ctx, "provider_payment_id", c.id), "[payment][gateway] mock replayed idempotent charge")
		return c.id, "approved", c.resp, nil
	}

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.clock.Now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error(ctx, "[payment][gateway] mock response marshal failed", err)
		return "", "", nil, err
	}
	if idempotencyKey != "" {
		if g.mockCharges == nil {
			g.mockCharges = make(map[string]mockCharge)
		}
		g.mockCharges[idempotencyKey] = mockCharge{id: id, resp: b}
	}
	g.log.Info(g.log.WithField(ctx, "provider_payment_id", id), "[payment][gateway] mock create success")
	return id, "approved", b, nil
}

type idempotencyKeyCtx struct{}

func withIdempotencyKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

// idempotentRequester overrides the per-request key the SDK generates with
// the caller's key carried on the request context.
type idempotentRequester struct {
	client *http.Client
}

func (r *idempotentRequester) Do(req *http.Request) (*http.Response, error) {
	if key, ok := req.Context().Value(idempotencyKeyCtx{}).(string); ok && key != "" {
		req.Header.Set("X-Idempotency-Key", key)
	}
	return r.client.Do(req)
}
