package usecase

import (
	"time"

	"mecanica_oficina/internal/domain/entities"
)

// ExportDocument is the full local state of a session, for download or backup.
type ExportDocument struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	Mode        Mode                      `json:"mode"`
	Config      entities.AppConfig        `json:"config"`
	Orders      []entities.RepairOrder    `json:"repair_orders"`
	Inventory   []entities.Part           `json:"master_inventory"`
	Alerts      []entities.InventoryAlert `json:"inventory_alerts"`
}

// Export captures a consistent snapshot of the engine.
func (e *SyncEngine) Export(cfg entities.AppConfig) ExportDocument {
	snap := e.Snapshot()
	return ExportDocument{
		GeneratedAt: e.clock.Now().UTC(),
		Mode:        snap.Mode,
		Config:      cfg,
		Orders:      snap.Orders,
		Inventory:   snap.Inventory,
		Alerts:      snap.Alerts,
	}
}
