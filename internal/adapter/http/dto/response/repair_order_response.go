package response

import (
	"time"

	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase"
)

type LineItemResponse struct {
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	PartNumber  string  `json:"part_number,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	Hours       float64 `json:"hours,omitempty"`
}

type InvoiceResponse struct {
	Total         float64   `json:"total"`
	PaymentID     string    `json:"payment_id"`
	PaymentStatus string    `json:"payment_status"`
	InvoicedAt    time.Time `json:"invoiced_at"`
}

type RepairOrderResponse struct {
	ID           string             `json:"id"`
	Status       string             `json:"status"`
	CustomerName string             `json:"customer_name"`
	Vehicle      string             `json:"vehicle"`
	Complaint    string             `json:"complaint,omitempty"`
	TechnicianID string             `json:"technician_id,omitempty"`
	LineItems    []LineItemResponse `json:"line_items"`
	Invoice      *InvoiceResponse   `json:"invoice,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// PersistResponse tells the client what happened to the remote write of a
// mutation at the time of the response.
type PersistResponse struct {
	Resource  string `json:"resource"`
	Operation string `json:"operation"`
	Key       string `json:"key"`
	Skipped   bool   `json:"skipped"`
}

type RepairOrderMutationResponse struct {
	RepairOrder RepairOrderResponse `json:"repair_order"`
	Persist     *PersistResponse    `json:"persist,omitempty"`
}

func FromRepairOrder(o entities.RepairOrder) RepairOrderResponse {
	out := RepairOrderResponse{
		ID:           o.ID,
		Status:       string(o.Status),
		CustomerName: o.CustomerName,
		Vehicle:      o.Vehicle,
		Complaint:    o.Complaint,
		TechnicianID: o.TechnicianID,
		LineItems:    make([]LineItemResponse, 0, len(o.LineItems)),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	for _, li := range o.LineItems {
		out.LineItems = append(out.LineItems, LineItemResponse{
			Kind:        string(li.Kind),
			Description: li.Description,
			PartNumber:  li.PartNumber,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Hours:       li.Hours,
		})
	}
	if o.Invoice != nil {
		out.Invoice = &InvoiceResponse{
			Total:         o.Invoice.Total,
			PaymentID:     o.Invoice.PaymentID,
			PaymentStatus: string(o.Invoice.PaymentStatus),
			InvoicedAt:    o.Invoice.InvoicedAt,
		}
	}
	return out
}

func FromRepairOrders(orders []entities.RepairOrder) []RepairOrderResponse {
	out := make([]RepairOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromRepairOrder(o))
	}
	return out
}

func FromPersistResult(r *usecase.PersistResult) *PersistResponse {
	if r == nil {
		return nil
	}
	return &PersistResponse{Resource: r.Resource, Operation: r.Operation, Key: r.Key, Skipped: r.Skipped()}
}

func FromRepairOrderMutation(o entities.RepairOrder, r *usecase.PersistResult) RepairOrderMutationResponse {
	return RepairOrderMutationResponse{RepairOrder: FromRepairOrder(o), Persist: FromPersistResult(r)}
}
