package usecase

import (
	"mecanica_oficina/internal/clock"
	"mecanica_oficina/internal/domain/entities"

	"github.com/google/uuid"
)

// AlertGenerator keeps the session's append-only low-stock alert log.
//
// There is no deduplication: every qualifying ledger mutation produces its own
// alert. Not safe for concurrent use; the sync engine serializes access.
type AlertGenerator struct {
	log   []entities.InventoryAlert
	clock clock.Clock
	newID func() string
}

func NewAlertGenerator(clk clock.Clock, newID func() string) *AlertGenerator {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &AlertGenerator{clock: clk, newID: newID}
}

// Raise records a new alert and returns it.
func (g *AlertGenerator) Raise(partNumber, message, orderID, reason string) entities.InventoryAlert {
	a := entities.InventoryAlert{
		ID:         g.newID(),
		PartNumber: partNumber,
		Message:    message,
		ROID:       orderID,
		Reason:     reason,
		Timestamp:  g.clock.Now(),
	}
	g.log = append(g.log, a)
	return a
}

// Alerts returns a copy of the log, newest first.
func (g *AlertGenerator) Alerts() []entities.InventoryAlert {
	out := make([]entities.InventoryAlert, len(g.log))
	for i, a := range g.log {
		out[len(g.log)-1-i] = a
	}
	return out
}

func (g *AlertGenerator) Len() int {
	return len(g.log)
}
