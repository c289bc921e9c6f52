package usecase

import (
	"context"
	"testing"

	"mecanica_oficina/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestSyncEngine_ChangeStatusAsTechnician(t *testing.T) {
	eng := NewSimulatedEngine(EngineOptions{})
	_, _, err := eng.AddOrder(context.Background(), entities.RepairOrder{ID: "RO-1", Status: entities.RepairOrderStatusReadyForTech, TechnicianID: "tech-1"})
	require.NoError(t, err)

	_, _, err = eng.ChangeStatusAsTechnician(context.Background(), "tech-2", "RO-1", entities.RepairOrderStatusActive)
	require.ErrorIs(t, err, ErrNotAssignedTechnician)

	got, _, err := eng.ChangeStatusAsTechnician(context.Background(), "tech-1", "RO-1", entities.RepairOrderStatusActive)
	require.NoError(t, err)
	require.Equal(t, entities.RepairOrderStatusActive, got.Status)

	_, _, err = eng.ChangeStatusAsTechnician(context.Background(), "tech-1", "RO-404", entities.RepairOrderStatusActive)
	require.ErrorIs(t, err, ErrOrderNotFound)

	// Reassignment wins over a technician acting on a stale read.
	_, _, err = eng.AssignTechnician(context.Background(), "RO-1", "tech-3")
	require.NoError(t, err)
	_, _, err = eng.ChangeStatusAsTechnician(context.Background(), "tech-1", "RO-1", entities.RepairOrderStatusCompleted)
	require.ErrorIs(t, err, ErrNotAssignedTechnician)
	stored, err := eng.Order("RO-1")
	require.NoError(t, err)
	require.Equal(t, entities.RepairOrderStatusActive, stored.Status)
}

func TestSyncEngine_UsePartsAsTechnician(t *testing.T) {
	ctx := context.Background()
	eng := NewSimulatedEngine(EngineOptions{})
	_, _, err := eng.AddOrder(ctx, entities.RepairOrder{ID: "RO-1", Status: entities.RepairOrderStatusActive, TechnicianID: "tech-1"})
	require.NoError(t, err)
	_, _, err = eng.SavePart(ctx, entities.Part{PartNumber: "ENG-001", QuantityOnHand: 10, ReorderPoint: 1})
	require.NoError(t, err)

	res, _, err := eng.UsePartsAsTechnician(ctx, "tech-1", "RO-1", "ENG-001", 2, "install")
	require.NoError(t, err)
	require.Equal(t, 8, res.Part.QuantityOnHand)

	_, _, err = eng.AssignTechnician(ctx, "RO-1", "tech-2")
	require.NoError(t, err)
	_, _, err = eng.UsePartsAsTechnician(ctx, "tech-1", "RO-1", "ENG-001", 2, "install")
	require.ErrorIs(t, err, ErrNotAssignedTechnician)

	_, _, err = eng.UsePartsAsTechnician(ctx, "tech-2", "RO-404", "ENG-001", 1, "install")
	require.ErrorIs(t, err, ErrOrderNotFound)

	part, err := eng.Part("ENG-001")
	require.NoError(t, err)
	require.Equal(t, 8, part.QuantityOnHand)
}

func TestTechnicianActionable(t *testing.T) {
	require.True(t, TechnicianActionable(entities.RepairOrderStatusReadyForTech))
	require.True(t, TechnicianActionable(entities.RepairOrderStatusActive))
	require.False(t, TechnicianActionable(entities.RepairOrderStatusCompleted))
}

func TestSyncEngine_Export(t *testing.T) {
	eng := NewSimulatedEngine(EngineOptions{Clock: fixedTestClock()})
	_, _, err := eng.AddOrder(context.Background(), entities.RepairOrder{ID: "RO-1"})
	require.NoError(t, err)
	_, _, err = eng.SavePart(context.Background(), entities.Part{PartNumber: "ENG-001", QuantityOnHand: 1, ReorderPoint: 3})
	require.NoError(t, err)
	_, _, err = eng.UpdateInventory(context.Background(), "ENG-001", -1, "install", "RO-1")
	require.NoError(t, err)

	doc := eng.Export(entities.AppConfig{CompanyName: "Oficina", HourlyRate: 100})
	require.Equal(t, engineNow, doc.GeneratedAt)
	require.Equal(t, ModeSimulated, doc.Mode)
	require.Equal(t, "Oficina", doc.Config.CompanyName)
	require.Len(t, doc.Orders, 1)
	require.Len(t, doc.Inventory, 1)
	require.Len(t, doc.Alerts, 1)

	doc.Orders[0].Status = entities.RepairOrderStatusInvoiced
	got, err := eng.Order("RO-1")
	require.NoError(t, err)
	require.Equal(t, entities.RepairOrderStatusNew, got.Status)
}
