package handlers

import (
	"net/http"
	"testing"

	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/pkg/logger"

	"github.com/stretchr/testify/require"
)

func newServiceRouter(t *testing.T) (http.Handler, func() []entities.RepairOrder) {
	t.Helper()
	s := newSimulatedSession(t)
	r, g := newRoleRouter(s, entities.RoleServiceManager)
	h := NewServiceManagerHandler(logger.Nop())
	g.GET("/service/orders", h.ListOrders)
	g.POST("/service/orders", h.CreateOrder)
	g.GET("/service/orders/:ro_id", h.GetOrder)
	g.PUT("/service/orders/:ro_id", h.ReplaceOrder)
	g.PATCH("/service/orders/:ro_id/status", h.ChangeStatus)
	g.PATCH("/service/orders/:ro_id/technician", h.AssignTechnician)

	eng, err := s.Engine()
	require.NoError(t, err)
	return r, eng.Orders
}

func TestServiceManagerHandler_CreateOrder(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newServiceRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/service/orders", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		r, _ := newServiceRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/service/orders", `{"vehicle":"Civic"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with generated id and NEW status", func(t *testing.T) {
		r, orders := newServiceRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/service/orders", `{"customer_name":"Ana","vehicle":"Civic","line_items":[{"kind":"labor","description":"diag","hours":1.5}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			RepairOrder struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"repair_order"`
			Persist struct {
				Skipped bool `json:"skipped"`
			} `json:"persist"`
		}
		decodeBody(t, w, &body)
		require.Equal(t, "id-1", body.RepairOrder.ID)
		require.Equal(t, "NEW", body.RepairOrder.Status)
		require.True(t, body.Persist.Skipped)
		require.Len(t, orders(), 1)
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		r, _ := newServiceRouter(t)
		payload := `{"id":"RO-1","customer_name":"Ana"}`
		require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/v1/service/orders", payload).Code)
		if w := doJSON(r, http.MethodPost, "/v1/service/orders", payload); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceManagerHandler_ReplaceAndStatus(t *testing.T) {
	r, orders := newServiceRouter(t)
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/v1/service/orders", `{"id":"RO-1","customer_name":"Ana","vehicle":"Civic","complaint":"noise"}`).Code)

	w := doJSON(r, http.MethodPut, "/v1/service/orders/RO-1", `{"customer_name":"Ana","status":"authorized"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	got := orders()[0]
	require.Equal(t, entities.RepairOrderStatusAuthorized, got.Status)
	require.Empty(t, got.Vehicle)
	require.Empty(t, got.Complaint)

	if w := doJSON(r, http.MethodPut, "/v1/service/orders/RO-404", `{"customer_name":"X","status":"NEW"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	require.Len(t, orders(), 1)

	if w := doJSON(r, http.MethodPatch, "/v1/service/orders/RO-1/status", `{"status":"BOGUS"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPatch, "/v1/service/orders/RO-1/status", `{"status":"ready_for_tech"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPatch, "/v1/service/orders/RO-1/technician", `{"technician_id":"tech-1"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	require.Equal(t, "tech-1", orders()[0].TechnicianID)

	w = doJSON(r, http.MethodGet, "/v1/service/orders?status=ready_for_tech,NEW", "")
	var list []map[string]any
	decodeBody(t, w, &list)
	require.Len(t, list, 1)

	w = doJSON(r, http.MethodGet, "/v1/service/orders?status=INVOICED", "")
	list = nil
	decodeBody(t, w, &list)
	require.Empty(t, list)
}
