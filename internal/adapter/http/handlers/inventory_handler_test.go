package handlers

import (
	"net/http"
	"testing"

	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestInventoryHandler(t *testing.T) {
	s := newSimulatedSession(t)
	r, g := newRoleRouter(s, entities.RoleInventoryManager)
	h := NewInventoryHandler(logger.Nop())
	g.GET("/inventory/parts", h.ListParts)
	g.GET("/inventory/parts/:part_number", h.GetPart)
	g.PUT("/inventory/parts/:part_number", h.SavePart)
	g.POST("/inventory/adjustments", h.AdjustInventory)
	g.GET("/inventory/alerts", h.ListAlerts)

	t.Run("save then read", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/v1/inventory/parts/BRK-PAD-01", `{"description":"Brake pad","quantity_on_hand":4,"reorder_point":2}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var part map[string]any
		decodeBody(t, doJSON(r, http.MethodGet, "/v1/inventory/parts/BRK-PAD-01", ""), &part)
		require.Equal(t, "Brake pad", part["description"])
		require.Equal(t, false, part["low_stock"])
	})

	t.Run("unknown part", func(t *testing.T) {
		if w := doJSON(r, http.MethodGet, "/v1/inventory/parts/NOPE", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/inventory/adjustments", `{"part_number":"NOPE","delta":-1}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("adjustments may go negative and each one alerts", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			w := doJSON(r, http.MethodPost, "/v1/inventory/adjustments", `{"part_number":"BRK-PAD-01","delta":-3,"reason":"install","ro_id":"RO-9"}`)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
		}
		var part map[string]any
		decodeBody(t, doJSON(r, http.MethodGet, "/v1/inventory/parts/BRK-PAD-01", ""), &part)
		require.EqualValues(t, -2, part["quantity_on_hand"])
		require.Equal(t, true, part["low_stock"])

		var alerts []map[string]any
		decodeBody(t, doJSON(r, http.MethodGet, "/v1/inventory/alerts", ""), &alerts)
		require.Len(t, alerts, 2)
	})

	t.Run("zero delta is a stock check", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/v1/inventory/adjustments", `{"part_number":"BRK-PAD-01","delta":0,"reason":"recount"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var part map[string]any
		decodeBody(t, doJSON(r, http.MethodGet, "/v1/inventory/parts/BRK-PAD-01", ""), &part)
		require.EqualValues(t, -2, part["quantity_on_hand"])

		var alerts []map[string]any
		decodeBody(t, doJSON(r, http.MethodGet, "/v1/inventory/alerts", ""), &alerts)
		require.Len(t, alerts, 3)
	})

	t.Run("missing delta is rejected by binding", func(t *testing.T) {
		if w := doJSON(r, http.MethodPost, "/v1/inventory/adjustments", `{"part_number":"BRK-PAD-01"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPartsHandler(t *testing.T) {
	s := newSimulatedSession(t)
	eng, err := s.Engine()
	require.NoError(t, err)
	ctx := t.Context()
	_, _, err = eng.AddOrder(ctx, entities.RepairOrder{ID: "RO-1", CustomerName: "Ana", Status: entities.RepairOrderStatusAuthorized})
	require.NoError(t, err)
	_, _, err = eng.AddOrder(ctx, entities.RepairOrder{ID: "RO-2", CustomerName: "Bia", Status: entities.RepairOrderStatusNew})
	require.NoError(t, err)
	_, _, err = eng.SavePart(ctx, entities.Part{PartNumber: "FLT-01", QuantityOnHand: 10, ReorderPoint: 1})
	require.NoError(t, err)

	r, g := newRoleRouter(s, entities.RolePartsManager)
	h := NewPartsHandler()
	g.GET("/parts/orders", h.ListOrders)
	g.PATCH("/parts/orders/:ro_id/status", h.ChangeStatus)
	g.GET("/parts/inventory", h.ListInventory)
	g.POST("/parts/adjustments", h.AdjustInventory)

	var orders []map[string]any
	decodeBody(t, doJSON(r, http.MethodGet, "/v1/parts/orders", ""), &orders)
	require.Len(t, orders, 1)
	require.Equal(t, "RO-1", orders[0]["id"])

	if w := doJSON(r, http.MethodPatch, "/v1/parts/orders/RO-1/status", `{"status":"PARTS_PENDING"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/parts/adjustments", `{"part_number":"FLT-01","delta":5,"reason":"restock"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var parts []map[string]any
	decodeBody(t, doJSON(r, http.MethodGet, "/v1/parts/inventory", ""), &parts)
	require.Len(t, parts, 1)
	require.EqualValues(t, 15, parts[0]["quantity_on_hand"])
}
