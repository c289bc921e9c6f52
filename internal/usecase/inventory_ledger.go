package usecase

import (
	"fmt"
	"strings"

	"mecanica_oficina/internal/domain/entities"
)

// AlertSink receives low-stock notifications from the ledger.
type AlertSink interface {
	Raise(partNumber, message, orderID, reason string) entities.InventoryAlert
}

// ConsumeResult is the outcome of one ledger mutation.
type ConsumeResult struct {
	Part             entities.Part
	PreviousQuantity int
	Alert            *entities.InventoryAlert
}

// InventoryLedger tracks on-hand quantities and evaluates reorder thresholds.
//
// Quantities are never clamped; a negative on-hand quantity means backordered.
// Not safe for concurrent use; the sync engine serializes access.
type InventoryLedger struct {
	parts  []entities.Part
	index  map[string]int
	alerts AlertSink
}

func NewInventoryLedger(parts []entities.Part, alerts AlertSink) *InventoryLedger {
	l := &InventoryLedger{
		parts:  make([]entities.Part, 0, len(parts)),
		index:  make(map[string]int, len(parts)),
		alerts: alerts,
	}
	for _, p := range parts {
		l.Upsert(p)
	}
	return l
}

// Consume applies delta (negative = consumption, positive = return/restock) to a
// part. The alert decision uses the post-mutation quantity.
func (l *InventoryLedger) Consume(partNumber string, delta int, reason, orderID string) (ConsumeResult, error) {
	i, ok := l.index[partNumber]
	if !ok {
		return ConsumeResult{}, fmt.Errorf("%w: %s", ErrPartNotFound, partNumber)
	}

	p := l.parts[i]
	res := ConsumeResult{PreviousQuantity: p.QuantityOnHand}
	p.QuantityOnHand += delta
	l.parts[i] = p
	res.Part = p

	if p.AtOrBelowReorderPoint() && l.alerts != nil {
		a := l.alerts.Raise(p.PartNumber, lowStockMessage(p), orderID, reason)
		res.Alert = &a
	}
	return res, nil
}

// Upsert replaces the part with the same part number or appends it. It reports
// whether the part was new.
func (l *InventoryLedger) Upsert(p entities.Part) bool {
	if i, ok := l.index[p.PartNumber]; ok {
		l.parts[i] = p
		return false
	}
	l.index[p.PartNumber] = len(l.parts)
	l.parts = append(l.parts, p)
	return true
}

func (l *InventoryLedger) Part(partNumber string) (entities.Part, bool) {
	i, ok := l.index[partNumber]
	if !ok {
		return entities.Part{}, false
	}
	return l.parts[i], true
}

// Parts returns a copy of the inventory in insertion order.
func (l *InventoryLedger) Parts() []entities.Part {
	out := make([]entities.Part, len(l.parts))
	copy(out, l.parts)
	return out
}

func lowStockMessage(p entities.Part) string {
	name := strings.TrimSpace(p.Description)
	if name == "" {
		name = p.PartNumber
	}
	if p.QuantityOnHand < 0 {
		return fmt.Sprintf("%s (%s) is backordered: %d on hand, reorder point %d", name, p.PartNumber, p.QuantityOnHand, p.ReorderPoint)
	}
	return fmt.Sprintf("Low stock on %s (%s): %d on hand, reorder point %d", name, p.PartNumber, p.QuantityOnHand, p.ReorderPoint)
}
