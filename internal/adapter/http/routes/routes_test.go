package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mecanica_oficina/internal/clock"
	"mecanica_oficina/internal/usecase"
	"mecanica_oficina/pkg/config"
	"mecanica_oficina/pkg/logger"
	"mecanica_oficina/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Env: config.AppEnvDev, Port: "0"},
		Remote: config.RemoteConfig{OrdersTable: "repair_orders", InventoryTable: "master_inventory"},
		Shop:   config.ShopConfig{CompanyName: "Oficina", HourlyRate: 100},
	}
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	reg := prometheus.NewRegistry()
	log := logger.Nop()
	session := newSessionManager(cfg, clock.NewSystem(), log, metrics.NewSyncMetrics(reg))
	invoices := usecase.NewInvoiceUseCase(nil, cfg.Payments, cfg.Shop.HourlyRate, nil, log)

	r := NewRouter(Dependencies{Config: cfg, Session: session, Invoices: invoices, Registry: reg, Logger: log})

	if w := serve(r, http.MethodGet, "/v1/ping"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/service/orders"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before the session starts, got %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/v1/session/simulate"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, path := range []string{
		"/v1/service/orders",
		"/v1/technicians/tech-1/orders",
		"/v1/parts/orders",
		"/v1/inventory/parts",
		"/v1/inventory/alerts",
		"/v1/billing/orders",
		"/v1/export",
		"/v1/config",
	} {
		if w := serve(r, http.MethodGet, path); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}

	w := serve(r, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "shop_sync_unsynced_changes"))
}

func TestBootstrapSession(t *testing.T) {
	log := logger.Nop()

	t.Run("unconfigured waits for the operator", func(t *testing.T) {
		cfg := testConfig()
		s := newSessionManager(cfg, clock.NewSystem(), log, nil)
		bootstrapSession(t.Context(), s, cfg, log)

		st := s.Status()
		require.Equal(t, usecase.SessionStateUplinkFailed, st.State)
		require.Equal(t, usecase.UplinkReasonUnconfigured, st.Reason)
	})

	t.Run("unconfigured with simulate fallback", func(t *testing.T) {
		cfg := testConfig()
		cfg.Workflow.SimulateWhenUnconfigured = true
		s := newSessionManager(cfg, clock.NewSystem(), log, nil)
		bootstrapSession(t.Context(), s, cfg, log)

		st := s.Status()
		require.Equal(t, usecase.SessionStateReady, st.State)
		require.Equal(t, usecase.ModeSimulated, st.Mode)
	})

	t.Run("disabled remote never dials", func(t *testing.T) {
		cfg := testConfig()
		cfg.Remote.Region = "us-east-1"
		cfg.Remote.Disabled = true
		s := newSessionManager(cfg, clock.NewSystem(), log, nil)
		bootstrapSession(t.Context(), s, cfg, log)

		require.Equal(t, usecase.UplinkReasonUnconfigured, s.Status().Reason)
	})
}
