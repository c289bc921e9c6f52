package request

import (
	"strings"

	"mecanica_oficina/internal/domain/entities"
)

// InventoryAdjustmentRequest applies a signed delta to a part: negative for
// consumption, positive for returns and restocks. Zero is accepted and acts as
// a stock check: nothing moves but a low part still alerts.
type InventoryAdjustmentRequest struct {
	PartNumber string `json:"part_number" binding:"required"`
	Delta      *int   `json:"delta" binding:"required"`
	Reason     string `json:"reason"`
	ROID       string `json:"ro_id"`
}

// PartUsageRequest is a technician pulling parts for their RO.
type PartUsageRequest struct {
	PartNumber string `json:"part_number" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	Reason     string `json:"reason"`
}

func (r PartUsageRequest) ResolveReason() string {
	if v := strings.TrimSpace(r.Reason); v != "" {
		return v
	}
	return "install"
}

type PartRequest struct {
	Description    string `json:"description"`
	QuantityOnHand int    `json:"quantity_on_hand"`
	ReorderPoint   int    `json:"reorder_point"`
}

func (r PartRequest) ToEntity(partNumber string) entities.Part {
	return entities.Part{
		PartNumber:     strings.TrimSpace(partNumber),
		Description:    strings.TrimSpace(r.Description),
		QuantityOnHand: r.QuantityOnHand,
		ReorderPoint:   r.ReorderPoint,
	}
}
