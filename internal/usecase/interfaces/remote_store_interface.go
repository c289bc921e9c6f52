package interfaces

import (
	"context"
	"errors"

	"mecanica_oficina/internal/domain/entities"
)

// ErrRemoteUnconfigured means the remote store cannot be reached because its
// connection parameters are absent. Callers can offer simulated mode instead.
var ErrRemoteUnconfigured = errors.New("remote store unconfigured")

// IRepairOrderRepository abstracts the remote `repair_orders` resource.
//
// The sync engine only needs:
//   - a bulk read at bootstrap
//   - insert-one when an RO is created
//   - update-one by id with the full record

type IRepairOrderRepository interface {
	ListAll(ctx context.Context) ([]entities.RepairOrder, error)
	Insert(ctx context.Context, o entities.RepairOrder) error
	Update(ctx context.Context, o entities.RepairOrder) error
}

// IInventoryRepository abstracts the remote `master_inventory` resource.
//
// UpdateFields keys are internal field names (entities.PartField*); the adapter
// translates them to column names.

type IInventoryRepository interface {
	ListAll(ctx context.Context) ([]entities.Part, error)
	Insert(ctx context.Context, p entities.Part) error
	UpdateFields(ctx context.Context, partNumber string, fields map[string]any) error
}
