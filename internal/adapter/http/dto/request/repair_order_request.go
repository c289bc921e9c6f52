package request

import (
	"strings"

	"mecanica_oficina/internal/domain/entities"
)

type LineItemRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=labor part"`
	Description string  `json:"description"`
	PartNumber  string  `json:"part_number"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Hours       float64 `json:"hours"`
}

// RepairOrderRequest is the full RO record. On update it replaces the stored
// record entirely; fields left out are cleared.
type RepairOrderRequest struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	CustomerName string            `json:"customer_name" binding:"required"`
	Vehicle      string            `json:"vehicle"`
	Complaint    string            `json:"complaint"`
	TechnicianID string            `json:"technician_id"`
	LineItems    []LineItemRequest `json:"line_items" binding:"dive"`
}

func (r RepairOrderRequest) ToEntity() entities.RepairOrder {
	o := entities.RepairOrder{
		ID:           strings.TrimSpace(r.ID),
		Status:       entities.RepairOrderStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		CustomerName: strings.TrimSpace(r.CustomerName),
		Vehicle:      strings.TrimSpace(r.Vehicle),
		Complaint:    r.Complaint,
		TechnicianID: strings.TrimSpace(r.TechnicianID),
	}
	for _, li := range r.LineItems {
		o.LineItems = append(o.LineItems, entities.LineItem{
			Kind:        entities.LineItemKind(li.Kind),
			Description: li.Description,
			PartNumber:  strings.TrimSpace(li.PartNumber),
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Hours:       li.Hours,
		})
	}
	return o
}

type StatusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusChangeRequest) ResolveStatus() entities.RepairOrderStatus {
	return entities.RepairOrderStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

// AssignTechnicianRequest assigns a technician; an empty id unassigns.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id"`
}
