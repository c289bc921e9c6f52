package entities

import "time"

// PaymentStatus represents the payment processing outcome of an invoice.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Invoice is the billing record attached to an RO once it has been settled.
//
// PaymentID is the provider payment id (Mercado Pago) or a generated id in mock mode.
type Invoice struct {
	Total         float64       `json:"total"`
	PaymentID     string        `json:"paymentId"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	InvoicedAt    time.Time     `json:"invoicedAt"`
}
