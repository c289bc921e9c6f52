package usecase

import (
	"context"

	"mecanica_oficina/internal/domain/entities"
)

// Each role works against a narrowed slice of the engine.

type ServiceManagerView interface {
	Orders() []entities.RepairOrder
	OrdersInStatus(statuses ...entities.RepairOrderStatus) []entities.RepairOrder
	Order(id string) (entities.RepairOrder, error)
	AddOrder(ctx context.Context, order entities.RepairOrder) (entities.RepairOrder, *PersistResult, error)
	UpdateOrder(ctx context.Context, order entities.RepairOrder) (entities.RepairOrder, *PersistResult, error)
	ChangeStatus(ctx context.Context, orderID string, status entities.RepairOrderStatus) (entities.RepairOrder, *PersistResult, error)
	AssignTechnician(ctx context.Context, orderID, technicianID string) (entities.RepairOrder, *PersistResult, error)
}

// TechnicianView only mutates orders assigned to the acting technician; the
// ownership check runs under the engine lock.
type TechnicianView interface {
	OrdersForTechnician(technicianID string) []entities.RepairOrder
	Order(id string) (entities.RepairOrder, error)
	ChangeStatusAsTechnician(ctx context.Context, technicianID, orderID string, status entities.RepairOrderStatus) (entities.RepairOrder, *PersistResult, error)
	UsePartsAsTechnician(ctx context.Context, technicianID, orderID, partNumber string, quantity int, reason string) (ConsumeResult, *PersistResult, error)
}

type PartsView interface {
	OrdersInStatus(statuses ...entities.RepairOrderStatus) []entities.RepairOrder
	Order(id string) (entities.RepairOrder, error)
	Inventory() []entities.Part
	ChangeStatus(ctx context.Context, orderID string, status entities.RepairOrderStatus) (entities.RepairOrder, *PersistResult, error)
	UpdateInventory(ctx context.Context, partNumber string, delta int, reason, orderID string) (ConsumeResult, *PersistResult, error)
}

type InventoryManagerView interface {
	Inventory() []entities.Part
	Part(partNumber string) (entities.Part, error)
	SavePart(ctx context.Context, part entities.Part) (entities.Part, *PersistResult, error)
	UpdateInventory(ctx context.Context, partNumber string, delta int, reason, orderID string) (ConsumeResult, *PersistResult, error)
	Alerts() []entities.InventoryAlert
}

type BillingView interface {
	OrdersInStatus(statuses ...entities.RepairOrderStatus) []entities.RepairOrder
	Order(id string) (entities.RepairOrder, error)
	ChangeStatus(ctx context.Context, orderID string, status entities.RepairOrderStatus) (entities.RepairOrder, *PersistResult, error)
	ClaimSettlement(orderID string) (entities.RepairOrder, func(), error)
	SettleInvoice(ctx context.Context, orderID string, invoice entities.Invoice) (entities.RepairOrder, *PersistResult, error)
}

var (
	_ ServiceManagerView   = (*SyncEngine)(nil)
	_ TechnicianView       = (*SyncEngine)(nil)
	_ PartsView            = (*SyncEngine)(nil)
	_ InventoryManagerView = (*SyncEngine)(nil)
	_ BillingView          = (*SyncEngine)(nil)
)

// FulfillmentStatuses are the statuses the parts desk works on.
var FulfillmentStatuses = []entities.RepairOrderStatus{
	entities.RepairOrderStatusAuthorized,
	entities.RepairOrderStatusPartsPending,
}

// BillingStatuses are the statuses the billing desk works on.
var BillingStatuses = []entities.RepairOrderStatus{
	entities.RepairOrderStatusCompleted,
	entities.RepairOrderStatusPendingInvoice,
}

// TechnicianActionable reports whether a technician may act on an order in this status.
func TechnicianActionable(s entities.RepairOrderStatus) bool {
	return s == entities.RepairOrderStatusReadyForTech || s == entities.RepairOrderStatusActive
}
