package entities

import "time"

// InventoryAlert is an immutable audit record of one low-stock threshold crossing.
type InventoryAlert struct {
	ID         string    `json:"id"`
	PartNumber string    `json:"partNumber"`
	Message    string    `json:"message"`
	ROID       string    `json:"roId"`
	Reason     string    `json:"reason"`
	Timestamp  time.Time `json:"timestamp"`
}
