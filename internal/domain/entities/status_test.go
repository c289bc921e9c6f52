package entities

import (
	"errors"
	"testing"
)

func TestApplyStatusChange(t *testing.T) {
	t.Run("returns copy and leaves input untouched", func(t *testing.T) {
		in := RepairOrder{
			ID:        "RO-1",
			Status:    RepairOrderStatusNew,
			LineItems: []LineItem{{Kind: LineItemKindLabor, Description: "diag", Hours: 1}},
		}

		out, err := ApplyStatusChange(in, RepairOrderStatusAuthorized, TransitionStrict)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != RepairOrderStatusAuthorized {
			t.Fatalf("expected AUTHORIZED, got %s", out.Status)
		}
		if in.Status != RepairOrderStatusNew {
			t.Fatalf("input mutated: %s", in.Status)
		}

		out.LineItems[0].Description = "changed"
		if in.LineItems[0].Description != "diag" {
			t.Fatalf("line items shared between snapshots")
		}
	})

	t.Run("strict allows skipping forward", func(t *testing.T) {
		in := RepairOrder{ID: "RO-1", Status: RepairOrderStatusAuthorized}
		out, err := ApplyStatusChange(in, RepairOrderStatusReadyForTech, TransitionStrict)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != RepairOrderStatusReadyForTech {
			t.Fatalf("unexpected status %s", out.Status)
		}
	})

	t.Run("strict rejects backward jump", func(t *testing.T) {
		in := RepairOrder{ID: "RO-1", Status: RepairOrderStatusCompleted}
		_, err := ApplyStatusChange(in, RepairOrderStatusActive, TransitionStrict)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("permissive tolerates backward jump", func(t *testing.T) {
		in := RepairOrder{ID: "RO-1", Status: RepairOrderStatusCompleted}
		out, err := ApplyStatusChange(in, RepairOrderStatusActive, TransitionPermissive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != RepairOrderStatusActive {
			t.Fatalf("unexpected status %s", out.Status)
		}
	})

	t.Run("unknown status rejected under both policies", func(t *testing.T) {
		in := RepairOrder{ID: "RO-1", Status: RepairOrderStatusNew}
		for _, p := range []TransitionPolicy{TransitionPermissive, TransitionStrict} {
			if _, err := ApplyStatusChange(in, "SCRAPPED", p); !errors.Is(err, ErrUnknownStatus) {
				t.Fatalf("expected ErrUnknownStatus, got %v", err)
			}
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		in := RepairOrder{ID: "RO-1", Status: RepairOrderStatusActive}
		out, err := ApplyStatusChange(in, RepairOrderStatusActive, TransitionStrict)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != RepairOrderStatusActive {
			t.Fatalf("unexpected status %s", out.Status)
		}
	})
}

func TestRepairOrderStatus_CanAdvanceTo(t *testing.T) {
	flow := Workflow()
	for i, from := range flow {
		for j, to := range flow {
			if got, want := from.CanAdvanceTo(to), j > i; got != want {
				t.Fatalf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}
	if RepairOrderStatus("BOGUS").CanAdvanceTo(RepairOrderStatusNew) {
		t.Fatalf("unknown source must not advance")
	}
	if !RepairOrderStatusInvoiced.IsTerminal() {
		t.Fatalf("INVOICED must be terminal")
	}
}

func TestRepairOrder_HoldsTechnicianSlot(t *testing.T) {
	cases := []struct {
		order RepairOrder
		want  bool
	}{
		{RepairOrder{Status: RepairOrderStatusActive, TechnicianID: "tech-1"}, true},
		{RepairOrder{Status: RepairOrderStatusReadyForTech, TechnicianID: "tech-1"}, true},
		{RepairOrder{Status: RepairOrderStatusActive}, false},
		{RepairOrder{Status: RepairOrderStatusCompleted, TechnicianID: "tech-1"}, false},
	}
	for _, tc := range cases {
		if got := tc.order.HoldsTechnicianSlot(); got != tc.want {
			t.Fatalf("%+v: expected %v got %v", tc.order, tc.want, got)
		}
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Technician ")
	if err != nil || r != RoleTechnician {
		t.Fatalf("expected technician, got %q err=%v", r, err)
	}
	if _, err := ParseRole("admin"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
	if len(Roles()) != 5 {
		t.Fatalf("expected 5 roles, got %d", len(Roles()))
	}
}
