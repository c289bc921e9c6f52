package entities

// Part is a master inventory record.
//
// QuantityOnHand may go negative; a negative quantity means the part is backordered.
type Part struct {
	PartNumber     string `json:"partNumber"`
	Description    string `json:"description"`
	QuantityOnHand int    `json:"quantityOnHand"`
	ReorderPoint   int    `json:"reorderPoint"`
}

// AtOrBelowReorderPoint reports whether the part is low on stock.
func (p Part) AtOrBelowReorderPoint() bool {
	return p.QuantityOnHand <= p.ReorderPoint
}

// Internal field names of Part, used for partial remote updates.
const (
	PartFieldDescription    = "description"
	PartFieldQuantityOnHand = "quantityOnHand"
	PartFieldReorderPoint   = "reorderPoint"
)
