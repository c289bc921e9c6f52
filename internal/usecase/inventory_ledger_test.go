package usecase

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"mecanica_oficina/internal/clock"
	"mecanica_oficina/internal/domain/entities"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func newTestLedger(parts ...entities.Part) (*InventoryLedger, *AlertGenerator) {
	n := 0
	alerts := NewAlertGenerator(clock.NewFixed(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)), func() string {
		n++
		return "alert-" + strconv.Itoa(n)
	})
	return NewInventoryLedger(parts, alerts), alerts
}

func TestInventoryLedger_Consume(t *testing.T) {
	t.Run("consumption reaching the reorder point raises one alert", func(t *testing.T) {
		ledger, alerts := newTestLedger(entities.Part{PartNumber: "ENG-001", Description: "Oil filter", QuantityOnHand: 5, ReorderPoint: 5})

		res, err := ledger.Consume("ENG-001", -1, "install", "RO-10")
		require.NoError(t, err)
		require.Equal(t, 4, res.Part.QuantityOnHand)
		require.Equal(t, 5, res.PreviousQuantity)
		require.NotNil(t, res.Alert)

		log := alerts.Alerts()
		require.Len(t, log, 1)
		require.Equal(t, "RO-10", log[0].ROID)
		require.Equal(t, "ENG-001", log[0].PartNumber)
		require.Equal(t, "install", log[0].Reason)
		require.Contains(t, log[0].Message, "ENG-001")
	})

	t.Run("consumption above the reorder point raises nothing", func(t *testing.T) {
		ledger, alerts := newTestLedger(entities.Part{PartNumber: "ENG-001", QuantityOnHand: 10, ReorderPoint: 5})

		res, err := ledger.Consume("ENG-001", -2, "install", "RO-11")
		require.NoError(t, err)
		require.Equal(t, 8, res.Part.QuantityOnHand)
		require.Nil(t, res.Alert)
		require.Zero(t, alerts.Len())
	})

	t.Run("unknown part is dropped", func(t *testing.T) {
		ledger, alerts := newTestLedger(entities.Part{PartNumber: "ENG-001", QuantityOnHand: 10, ReorderPoint: 5})
		before := ledger.Parts()

		_, err := ledger.Consume("UNKNOWN-PART", -1, "install", "RO-12")
		require.True(t, errors.Is(err, ErrPartNotFound), "got %v", err)
		require.Equal(t, before, ledger.Parts())
		require.Zero(t, alerts.Len())
	})

	t.Run("quantity may go negative", func(t *testing.T) {
		ledger, _ := newTestLedger(entities.Part{PartNumber: "BRK-7", QuantityOnHand: 1, ReorderPoint: 0})

		res, err := ledger.Consume("BRK-7", -3, "install", "RO-13")
		require.NoError(t, err)
		require.Equal(t, -2, res.Part.QuantityOnHand)
		require.NotNil(t, res.Alert)
		require.Contains(t, res.Alert.Message, "backordered")
	})

	t.Run("same qualifying consumption twice yields two alerts", func(t *testing.T) {
		ledger, alerts := newTestLedger(entities.Part{PartNumber: "ENG-001", QuantityOnHand: 3, ReorderPoint: 5})

		_, err := ledger.Consume("ENG-001", -1, "install", "RO-14")
		require.NoError(t, err)
		_, err = ledger.Consume("ENG-001", -1, "install", "RO-14")
		require.NoError(t, err)

		log := alerts.Alerts()
		require.Len(t, log, 2)
		require.NotEqual(t, log[0].ID, log[1].ID)
	})

	t.Run("restock above the threshold clears nothing and raises nothing", func(t *testing.T) {
		ledger, alerts := newTestLedger(entities.Part{PartNumber: "ENG-001", QuantityOnHand: 2, ReorderPoint: 5})

		res, err := ledger.Consume("ENG-001", 10, "restock", "")
		require.NoError(t, err)
		require.Equal(t, 12, res.Part.QuantityOnHand)
		require.Zero(t, alerts.Len())
	})
}

func TestInventoryLedger_Upsert(t *testing.T) {
	ledger, _ := newTestLedger(entities.Part{PartNumber: "A", QuantityOnHand: 1})

	require.False(t, ledger.Upsert(entities.Part{PartNumber: "A", QuantityOnHand: 7}))
	require.True(t, ledger.Upsert(entities.Part{PartNumber: "B", QuantityOnHand: 2}))

	parts := ledger.Parts()
	require.Len(t, parts, 2)
	require.Equal(t, "A", parts[0].PartNumber)
	require.Equal(t, 7, parts[0].QuantityOnHand)

	parts[0].QuantityOnHand = 100
	p, ok := ledger.Part("A")
	require.True(t, ok)
	require.Equal(t, 7, p.QuantityOnHand)
}

func TestInventoryLedger_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("consume adds delta without clamping", prop.ForAll(
		func(qty, reorder, delta int) bool {
			ledger, _ := newTestLedger(entities.Part{PartNumber: "P", QuantityOnHand: qty, ReorderPoint: reorder})
			res, err := ledger.Consume("P", delta, "prop", "RO-P")
			if err != nil {
				return false
			}
			stored, _ := ledger.Part("P")
			return res.Part.QuantityOnHand == qty+delta && stored.QuantityOnHand == qty+delta
		},
		gen.IntRange(-1000, 1000),
		gen.IntRange(-50, 50),
		gen.IntRange(-2000, 2000),
	))

	properties.Property("alert iff new quantity is at or below the reorder point", prop.ForAll(
		func(qty, reorder, delta int) bool {
			ledger, alerts := newTestLedger(entities.Part{PartNumber: "P", QuantityOnHand: qty, ReorderPoint: reorder})
			res, err := ledger.Consume("P", delta, "prop", "RO-P")
			if err != nil {
				return false
			}
			want := qty+delta <= reorder
			return (res.Alert != nil) == want && (alerts.Len() == 1) == want
		},
		gen.IntRange(-1000, 1000),
		gen.IntRange(-50, 50),
		gen.IntRange(-2000, 2000),
	))

	properties.TestingRun(t)
}
