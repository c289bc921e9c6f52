package response

import (
	"time"

	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase"
)

type PartResponse struct {
	PartNumber     string `json:"part_number"`
	Description    string `json:"description"`
	QuantityOnHand int    `json:"quantity_on_hand"`
	ReorderPoint   int    `json:"reorder_point"`
	LowStock       bool   `json:"low_stock"`
}

type InventoryAlertResponse struct {
	ID         string    `json:"id"`
	PartNumber string    `json:"part_number"`
	Message    string    `json:"message"`
	ROID       string    `json:"ro_id,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type InventoryAdjustmentResponse struct {
	Part             PartResponse            `json:"part"`
	PreviousQuantity int                     `json:"previous_quantity"`
	Alert            *InventoryAlertResponse `json:"alert,omitempty"`
	Persist          *PersistResponse        `json:"persist,omitempty"`
}

type PartMutationResponse struct {
	Part    PartResponse     `json:"part"`
	Persist *PersistResponse `json:"persist,omitempty"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		PartNumber:     p.PartNumber,
		Description:    p.Description,
		QuantityOnHand: p.QuantityOnHand,
		ReorderPoint:   p.ReorderPoint,
		LowStock:       p.AtOrBelowReorderPoint(),
	}
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}

func FromInventoryAlert(a entities.InventoryAlert) InventoryAlertResponse {
	return InventoryAlertResponse{
		ID:         a.ID,
		PartNumber: a.PartNumber,
		Message:    a.Message,
		ROID:       a.ROID,
		Reason:     a.Reason,
		Timestamp:  a.Timestamp,
	}
}

func FromInventoryAlerts(alerts []entities.InventoryAlert) []InventoryAlertResponse {
	out := make([]InventoryAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, FromInventoryAlert(a))
	}
	return out
}

func FromConsumeResult(res usecase.ConsumeResult, r *usecase.PersistResult) InventoryAdjustmentResponse {
	out := InventoryAdjustmentResponse{
		Part:             FromPart(res.Part),
		PreviousQuantity: res.PreviousQuantity,
		Persist:          FromPersistResult(r),
	}
	if res.Alert != nil {
		a := FromInventoryAlert(*res.Alert)
		out.Alert = &a
	}
	return out
}

func FromPartMutation(p entities.Part, r *usecase.PersistResult) PartMutationResponse {
	return PartMutationResponse{Part: FromPart(p), Persist: FromPersistResult(r)}
}
