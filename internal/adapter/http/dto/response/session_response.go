package response

import (
	"time"

	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase"
)

type SyncStatusResponse struct {
	Mode           string     `json:"mode"`
	InFlight       int        `json:"in_flight"`
	UnsyncedWrites int        `json:"unsynced_writes"`
	LastWriteError string     `json:"last_write_error,omitempty"`
	LastFailureAt  *time.Time `json:"last_failure_at,omitempty"`
}

type SessionResponse struct {
	State   string              `json:"state"`
	Mode    string              `json:"mode,omitempty"`
	Reason  string              `json:"reason,omitempty"`
	Error   string              `json:"error,omitempty"`
	Actions []string            `json:"actions,omitempty"`
	Sync    *SyncStatusResponse `json:"sync,omitempty"`
}

func FromSessionStatus(s usecase.SessionStatus) SessionResponse {
	out := SessionResponse{
		State:   string(s.State),
		Mode:    string(s.Mode),
		Reason:  s.Reason,
		Error:   s.Error,
		Actions: s.Actions,
	}
	if s.Sync != nil {
		out.Sync = &SyncStatusResponse{
			Mode:           string(s.Sync.Mode),
			InFlight:       s.Sync.InFlight,
			UnsyncedWrites: s.Sync.FailedWrites,
			LastWriteError: s.Sync.LastWriteError,
			LastFailureAt:  s.Sync.LastFailureAt,
		}
	}
	return out
}

type AppConfigResponse struct {
	CompanyName  string  `json:"company_name"`
	LogoURL      string  `json:"logo_url,omitempty"`
	PrimaryColor string  `json:"primary_color,omitempty"`
	HourlyRate   float64 `json:"hourly_rate"`
}

func FromAppConfig(c entities.AppConfig) AppConfigResponse {
	return AppConfigResponse{
		CompanyName:  c.CompanyName,
		LogoURL:      c.LogoURL,
		PrimaryColor: c.PrimaryColor,
		HourlyRate:   c.HourlyRate,
	}
}

type ExportResponse struct {
	GeneratedAt     time.Time                `json:"generated_at"`
	Mode            string                   `json:"mode"`
	Config          AppConfigResponse        `json:"config"`
	RepairOrders    []RepairOrderResponse    `json:"repair_orders"`
	MasterInventory []PartResponse           `json:"master_inventory"`
	InventoryAlerts []InventoryAlertResponse `json:"inventory_alerts"`
}

func FromExport(doc usecase.ExportDocument) ExportResponse {
	return ExportResponse{
		GeneratedAt:     doc.GeneratedAt,
		Mode:            string(doc.Mode),
		Config:          FromAppConfig(doc.Config),
		RepairOrders:    FromRepairOrders(doc.Orders),
		MasterInventory: FromParts(doc.Inventory),
		InventoryAlerts: FromInventoryAlerts(doc.Alerts),
	}
}

type QuoteResponse struct {
	ROID       string  `json:"ro_id"`
	LaborHours float64 `json:"labor_hours"`
	HourlyRate float64 `json:"hourly_rate"`
	LaborTotal float64 `json:"labor_total"`
	PartsTotal float64 `json:"parts_total"`
	Total      float64 `json:"total"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{
		ROID:       q.OrderID,
		LaborHours: q.LaborHours,
		HourlyRate: q.HourlyRate,
		LaborTotal: q.LaborTotal,
		PartsTotal: q.PartsTotal,
		Total:      q.Total,
	}
}
