package entities

import "time"

// RepairOrderStatus represents where a repair order (RO) sits in the shop workflow.
//
// Workflow order:
//
//	NEW -> AUTHORIZED -> PARTS_PENDING -> READY_FOR_TECH -> ACTIVE -> COMPLETED -> PENDING_INVOICE -> INVOICED
//
// States may be skipped (an RO needing no parts goes AUTHORIZED -> READY_FOR_TECH).
type RepairOrderStatus string

const (
	RepairOrderStatusNew            RepairOrderStatus = "NEW"
	RepairOrderStatusAuthorized     RepairOrderStatus = "AUTHORIZED"
	RepairOrderStatusPartsPending   RepairOrderStatus = "PARTS_PENDING"
	RepairOrderStatusReadyForTech   RepairOrderStatus = "READY_FOR_TECH"
	RepairOrderStatusActive         RepairOrderStatus = "ACTIVE"
	RepairOrderStatusCompleted      RepairOrderStatus = "COMPLETED"
	RepairOrderStatusPendingInvoice RepairOrderStatus = "PENDING_INVOICE"
	RepairOrderStatusInvoiced       RepairOrderStatus = "INVOICED"
)

type LineItemKind string

const (
	LineItemKindLabor LineItemKind = "labor"
	LineItemKindPart  LineItemKind = "part"
)

// LineItem is a labor or parts entry of an RO. The sync core treats it as opaque;
// only invoicing reads hours, quantities and prices.
type LineItem struct {
	Kind        LineItemKind `json:"kind"`
	Description string       `json:"description"`
	PartNumber  string       `json:"partNumber,omitempty"`
	Quantity    int          `json:"quantity,omitempty"`
	UnitPrice   float64      `json:"unitPrice,omitempty"`
	Hours       float64      `json:"hours,omitempty"`
}

// RepairOrder is one customer's service job.
//
// Field names (json tags) are the internal naming convention; the remote store
// adapter translates them to its own column names.
type RepairOrder struct {
	ID           string            `json:"id"`
	Status       RepairOrderStatus `json:"status"`
	CustomerName string            `json:"customerName"`
	Vehicle      string            `json:"vehicle"`
	Complaint    string            `json:"complaint,omitempty"`
	TechnicianID string            `json:"technicianId,omitempty"`
	LineItems    []LineItem        `json:"lineItems,omitempty"`
	Invoice      *Invoice          `json:"invoice,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// Clone returns a deep copy so holders of a previous snapshot never observe changes.
func (o RepairOrder) Clone() RepairOrder {
	out := o
	if o.LineItems != nil {
		out.LineItems = make([]LineItem, len(o.LineItems))
		copy(out.LineItems, o.LineItems)
	}
	if o.Invoice != nil {
		inv := *o.Invoice
		out.Invoice = &inv
	}
	return out
}

// HoldsTechnicianSlot reports whether the RO counts as its technician's active order.
func (o RepairOrder) HoldsTechnicianSlot() bool {
	if o.TechnicianID == "" {
		return false
	}
	return o.Status == RepairOrderStatusActive || o.Status == RepairOrderStatusReadyForTech
}
