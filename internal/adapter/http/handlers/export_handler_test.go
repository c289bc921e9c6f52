package handlers

import (
	"net/http"
	"testing"

	"mecanica_oficina/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestExportHandler(t *testing.T) {
	s := newSimulatedSession(t)
	eng, err := s.Engine()
	require.NoError(t, err)
	_, _, err = eng.SavePart(t.Context(), entities.Part{PartNumber: "P-1", QuantityOnHand: 1, ReorderPoint: 1})
	require.NoError(t, err)
	_, _, err = eng.UpdateInventory(t.Context(), "P-1", -1, "install", "")
	require.NoError(t, err)

	cfg := entities.AppConfig{CompanyName: "Oficina", HourlyRate: 90}
	h := NewExportHandler(cfg)
	r, g := newRoleRouter(s, entities.RoleServiceManager)
	g.GET("/export", h.Export)
	g.GET("/config", h.GetConfig)
	g.GET("/ping", Ping)

	w := doJSON(r, http.MethodGet, "/v1/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	var doc struct {
		Mode   string         `json:"mode"`
		Config map[string]any `json:"config"`
		Parts  []any          `json:"master_inventory"`
		Alerts []any          `json:"inventory_alerts"`
		Orders []any          `json:"repair_orders"`
	}
	decodeBody(t, w, &doc)
	require.Equal(t, "simulated", doc.Mode)
	require.Equal(t, "Oficina", doc.Config["company_name"])
	require.Len(t, doc.Parts, 1)
	require.Len(t, doc.Alerts, 1)
	require.Empty(t, doc.Orders)

	var cfgBody map[string]any
	decodeBody(t, doJSON(r, http.MethodGet, "/v1/config", ""), &cfgBody)
	require.EqualValues(t, 90, cfgBody["hourly_rate"])

	if w := doJSON(r, http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
