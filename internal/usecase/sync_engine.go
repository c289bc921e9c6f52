package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mecanica_oficina/internal/clock"
	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase/interfaces"
	"mecanica_oficina/pkg/logger"
	"mecanica_oficina/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Mode is fixed for the lifetime of a session.
type Mode string

const (
	// ModeConnected mirrors every local mutation to the remote store.
	ModeConnected Mode = "connected"
	// ModeSimulated keeps all state local; remote calls are skipped entirely.
	ModeSimulated Mode = "simulated"
)

// EngineOptions wires a SyncEngine. Orders and Inventory are only used in
// connected mode.
type EngineOptions struct {
	Orders    interfaces.IRepairOrderRepository
	Inventory interfaces.IInventoryRepository
	Policy    entities.TransitionPolicy
	Clock     clock.Clock
	NewID     func() string
	Logger    *logger.Logger
	Metrics   *metrics.SyncMetrics
	// OnPersisted is called after every remote write completes, from the
	// goroutine that ran it.
	OnPersisted func(*PersistResult)
}

// SyncEngine owns the session's repair orders, inventory and alerts.
//
// Every mutation applies to local state synchronously and is visible to all
// readers as soon as the call returns; the remote write is dispatched
// afterwards and returned as a *PersistResult. A failed remote write never
// unwinds the local change.
//
// Mutations are serialized by a single mutex, in call order. Readers always
// receive copies.
type SyncEngine struct {
	mode   Mode
	policy entities.TransitionPolicy
	clock  clock.Clock
	newID  func() string
	log    *logger.Logger
	mtr    *metrics.SyncMetrics

	orderRepo     interfaces.IRepairOrderRepository
	inventoryRepo interfaces.IInventoryRepository
	persist       *persister

	mu       sync.Mutex
	closed   bool
	orders   []entities.RepairOrder
	orderIdx map[string]int
	settling map[string]struct{}
	ledger   *InventoryLedger
	alerts   *AlertGenerator
}

// NewConnectedEngine bootstraps a connected session: it bulk-reads every repair
// order and every part from the remote store to seed local state.
func NewConnectedEngine(ctx context.Context, opts EngineOptions) (*SyncEngine, error) {
	if opts.Orders == nil || opts.Inventory == nil {
		return nil, interfaces.ErrRemoteUnconfigured
	}

	var (
		orders []entities.RepairOrder
		parts  []entities.Part
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = opts.Orders.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("list %s: %w", ResourceRepairOrders, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		parts, err = opts.Inventory.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("list %s: %w", ResourceMasterInventory, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteReadFailed, err)
	}

	e := newEngine(ModeConnected, opts, orders, parts)
	if e.log != nil {
		e.log.Info(e.log.WithFields(ctx, map[string]any{
			"orders": len(orders),
			"parts":  len(parts),
		}), "[sync][engine] connected session bootstrapped")
	}
	return e, nil
}

// NewSimulatedEngine starts a local-only session with empty state.
func NewSimulatedEngine(opts EngineOptions) *SyncEngine {
	e := newEngine(ModeSimulated, opts, nil, nil)
	if e.log != nil {
		e.log.Warn(context.Background(), "[sync][engine] simulated session started; mutations stay local")
	}
	return e
}

func newEngine(mode Mode, opts EngineOptions, orders []entities.RepairOrder, parts []entities.Part) *SyncEngine {
	clk := opts.Clock
	if clk == nil {
		clk = clock.NewSystem()
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	alerts := NewAlertGenerator(clk, newID)
	e := &SyncEngine{
		mode:     mode,
		policy:   opts.Policy,
		clock:    clk,
		newID:    newID,
		log:      opts.Logger,
		mtr:      opts.Metrics,
		orderIdx: make(map[string]int, len(orders)),
		settling: make(map[string]struct{}),
		ledger:   NewInventoryLedger(parts, alerts),
		alerts:   alerts,
		persist: &persister{
			log:     opts.Logger,
			metrics: opts.Metrics,
			now:     clk.Now,
			onDone:  opts.OnPersisted,
		},
	}
	if mode == ModeConnected {
		e.orderRepo = opts.Orders
		e.inventoryRepo = opts.Inventory
	}
	for _, o := range orders {
		e.orderIdx[o.ID] = len(e.orders)
		e.orders = append(e.orders, o.Clone())
	}
	return e
}

func (e *SyncEngine) Mode() Mode {
	return e.mode
}

// AddOrder appends a new repair order locally and requests remote creation.
//
// A blank id is assigned; a blank status becomes NEW.
func (e *SyncEngine) AddOrder(ctx context.Context, order entities.RepairOrder) (entities.RepairOrder, *PersistResult, error) {
	order = order.Clone()
	order.ID = strings.TrimSpace(order.ID)
	if order.ID == "" {
		order.ID = e.newID()
	}
	if order.Status == "" {
		order.Status = entities.RepairOrderStatusNew
	}
	if !order.Status.IsValid() {
		return entities.RepairOrder{}, nil, fmt.Errorf("%w: %q", entities.ErrUnknownStatus, order.Status)
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return entities.RepairOrder{}, nil, ErrEngineClosed
	}
	if _, exists := e.orderIdx[order.ID]; exists {
		e.mu.Unlock()
		return entities.RepairOrder{}, nil, fmt.Errorf("%w: %s", ErrOrderAlreadyExists, order.ID)
	}
	if err := e.checkTechnicianSlot(order); err != nil {
		e.mu.Unlock()
		return entities.RepairOrder{}, nil, err
	}
	now := e.clock.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	e.orderIdx[order.ID] = len(e.orders)
	e.orders = append(e.orders, order)
	e.reserveWrite()
	e.mu.Unlock()

	stored := order.Clone()
	res := e.persistOrder(ctx, OperationInsert, stored)
	return order.Clone(), res, nil
}

// UpdateOrder replaces the local record with the same id (full replace, no
// merge) and pushes the full record remotely. An unknown id leaves the
// collection untouched and returns ErrOrderNotFound.
//
// CreatedAt is owned by the engine and survives the replace.
func (e *SyncEngine) UpdateOrder(ctx context.Context, order entities.RepairOrder) (entities.RepairOrder, *PersistResult, error) {
	order = order.Clone()
	return e.mutateOrder(ctx, order.ID, false, func(current entities.RepairOrder) (entities.RepairOrder, error) {
		if _, err := entities.ApplyStatusChange(current, order.Status, e.policy); err != nil {
			return entities.RepairOrder{}, err
		}
		order.CreatedAt = current.CreatedAt
		return order, nil
	})
}

// ChangeStatus moves an order to a new workflow status.
func (e *SyncEngine) ChangeStatus(ctx context.Context, orderID string, status entities.RepairOrderStatus) (entities.RepairOrder, *PersistResult, error) {
	return e.mutateOrder(ctx, orderID, false, func(current entities.RepairOrder) (entities.RepairOrder, error) {
		return entities.ApplyStatusChange(current, status, e.policy)
	})
}

// ChangeStatusAsTechnician moves an order only if it is assigned to
// technicianID when the change is applied.
func (e *SyncEngine) ChangeStatusAsTechnician(ctx context.Context, technicianID, orderID string, status entities.RepairOrderStatus) (entities.RepairOrder, *PersistResult, error) {
	technicianID = strings.TrimSpace(technicianID)
	return e.mutateOrder(ctx, orderID, false, func(current entities.RepairOrder) (entities.RepairOrder, error) {
		if technicianID == "" || current.TechnicianID != technicianID {
			return entities.RepairOrder{}, fmt.Errorf("%w: %s", ErrNotAssignedTechnician, current.ID)
		}
		return entities.ApplyStatusChange(current, status, e.policy)
	})
}

// AssignTechnician sets (or, with an empty id, clears) the technician of an
// order. It is a field update, not a status transition.
func (e *SyncEngine) AssignTechnician(ctx context.Context, orderID, technicianID string) (entities.RepairOrder, *PersistResult, error) {
	technicianID = strings.TrimSpace(technicianID)
	return e.mutateOrder(ctx, orderID, true, func(current entities.RepairOrder) (entities.RepairOrder, error) {
		out := current.Clone()
		out.TechnicianID = technicianID
		return out, nil
	})
}

// ClaimSettlement reserves a PENDING_INVOICE order for one payment attempt.
// While the claim is held, a second claim fails with ErrSettlementInProgress
// and status edits of the order are refused. release ends the claim and is
// safe to call more than once.
func (e *SyncEngine) ClaimSettlement(orderID string) (order entities.RepairOrder, release func(), err error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.RepairOrder{}, nil, ErrInvalidOrderID
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return entities.RepairOrder{}, nil, ErrEngineClosed
	}
	i, ok := e.orderIdx[orderID]
	if !ok {
		return entities.RepairOrder{}, nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if _, busy := e.settling[orderID]; busy {
		return entities.RepairOrder{}, nil, fmt.Errorf("%w: %s", ErrSettlementInProgress, orderID)
	}
	current := e.orders[i]
	if current.Status != entities.RepairOrderStatusPendingInvoice {
		return entities.RepairOrder{}, nil, fmt.Errorf("%w: status %s", ErrOrderNotInvoiceable, current.Status)
	}
	e.settling[orderID] = struct{}{}

	var once sync.Once
	release = func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.settling, orderID)
			e.mu.Unlock()
		})
	}
	return current.Clone(), release, nil
}

// SettleInvoice attaches invoice data and closes the order in one update. The
// order must be PENDING_INVOICE when the update is applied.
func (e *SyncEngine) SettleInvoice(ctx context.Context, orderID string, invoice entities.Invoice) (entities.RepairOrder, *PersistResult, error) {
	return e.mutateOrder(ctx, orderID, true, func(current entities.RepairOrder) (entities.RepairOrder, error) {
		if current.Status != entities.RepairOrderStatusPendingInvoice {
			return entities.RepairOrder{}, fmt.Errorf("%w: status %s", ErrOrderNotInvoiceable, current.Status)
		}
		out, err := entities.ApplyStatusChange(current, entities.RepairOrderStatusInvoiced, e.policy)
		if err != nil {
			return entities.RepairOrder{}, err
		}
		inv := invoice
		out.Invoice = &inv
		return out, nil
	})
}

// mutateOrder applies fn to the current record under the lock, validates the
// technician slot, stores the result and dispatches a full-record update.
// Unless duringSettlement is set, orders claimed for settlement are refused.
func (e *SyncEngine) mutateOrder(
	ctx context.Context,
	orderID string,
	duringSettlement bool,
	fn func(current entities.RepairOrder) (entities.RepairOrder, error),
) (entities.RepairOrder, *PersistResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.RepairOrder{}, nil, ErrInvalidOrderID
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return entities.RepairOrder{}, nil, ErrEngineClosed
	}
	i, ok := e.orderIdx[orderID]
	if !ok {
		e.mu.Unlock()
		return entities.RepairOrder{}, nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if _, busy := e.settling[orderID]; busy && !duringSettlement {
		e.mu.Unlock()
		return entities.RepairOrder{}, nil, fmt.Errorf("%w: %s", ErrSettlementInProgress, orderID)
	}
	next, err := fn(e.orders[i].Clone())
	if err != nil {
		e.mu.Unlock()
		return entities.RepairOrder{}, nil, err
	}
	next.ID = orderID
	if err := e.checkTechnicianSlot(next); err != nil {
		e.mu.Unlock()
		return entities.RepairOrder{}, nil, err
	}
	next.UpdatedAt = e.clock.Now()
	e.orders[i] = next
	e.reserveWrite()
	e.mu.Unlock()

	res := e.persistOrder(ctx, OperationUpdate, next.Clone())
	return next.Clone(), res, nil
}

// checkTechnicianSlot enforces at most one READY_FOR_TECH/ACTIVE order per
// technician. Callers hold e.mu.
func (e *SyncEngine) checkTechnicianSlot(candidate entities.RepairOrder) error {
	if !candidate.HoldsTechnicianSlot() {
		return nil
	}
	for _, o := range e.orders {
		if o.ID == candidate.ID || o.TechnicianID != candidate.TechnicianID {
			continue
		}
		if o.HoldsTechnicianSlot() {
			return fmt.Errorf("%w: technician %s holds %s", ErrTechnicianBusy, candidate.TechnicianID, o.ID)
		}
	}
	return nil
}

// UpdateInventory applies delta to a part through the ledger, raises an alert
// when the new quantity is at or below the reorder point, and pushes only the
// changed quantity remotely. An unknown part is dropped with ErrPartNotFound:
// no alert, no remote call.
func (e *SyncEngine) UpdateInventory(ctx context.Context, partNumber string, delta int, reason, orderID string) (ConsumeResult, *PersistResult, error) {
	return e.updateInventory(ctx, partNumber, delta, reason, orderID, nil)
}

// UsePartsAsTechnician consumes quantity units of a part for an order that is
// assigned to technicianID when the consumption is applied.
func (e *SyncEngine) UsePartsAsTechnician(ctx context.Context, technicianID, orderID, partNumber string, quantity int, reason string) (ConsumeResult, *PersistResult, error) {
	technicianID = strings.TrimSpace(technicianID)
	orderID = strings.TrimSpace(orderID)
	return e.updateInventory(ctx, partNumber, -quantity, reason, orderID, func() error {
		i, ok := e.orderIdx[orderID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		if technicianID == "" || e.orders[i].TechnicianID != technicianID {
			return fmt.Errorf("%w: %s", ErrNotAssignedTechnician, orderID)
		}
		return nil
	})
}

// updateInventory runs check (if any) and the ledger mutation under one lock.
func (e *SyncEngine) updateInventory(ctx context.Context, partNumber string, delta int, reason, orderID string, check func() error) (ConsumeResult, *PersistResult, error) {
	partNumber = strings.TrimSpace(partNumber)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ConsumeResult{}, nil, ErrEngineClosed
	}
	if check != nil {
		if err := check(); err != nil {
			e.mu.Unlock()
			return ConsumeResult{}, nil, err
		}
	}
	res, err := e.ledger.Consume(partNumber, delta, reason, orderID)
	if err != nil {
		e.mu.Unlock()
		if e.log != nil {
			e.log.Warn(e.log.WithPartNumber(ctx, partNumber), "[sync][engine] inventory mutation dropped: part not found")
		}
		return ConsumeResult{}, nil, err
	}
	e.reserveWrite()
	e.mu.Unlock()

	if res.Alert != nil {
		e.mtr.IncAlert()
		if e.log != nil {
			lctx := e.log.WithOrderID(e.log.WithPartNumber(ctx, partNumber), orderID)
			e.log.Warn(lctx, "[sync][engine] "+res.Alert.Message)
		}
	}

	qty := res.Part.QuantityOnHand
	pres := e.dispatch(ctx, persistCommand{
		resource:  ResourceMasterInventory,
		operation: OperationUpdate,
		key:       partNumber,
		run: func(ctx context.Context) error {
			return e.inventoryRepo.UpdateFields(ctx, partNumber, map[string]any{
				entities.PartFieldQuantityOnHand: qty,
			})
		},
	})
	return res, pres, nil
}

// SavePart creates or edits a master inventory record. Editing pushes every
// non-key field; creating inserts the full record. No alert is raised.
func (e *SyncEngine) SavePart(ctx context.Context, part entities.Part) (entities.Part, *PersistResult, error) {
	part.PartNumber = strings.TrimSpace(part.PartNumber)
	if part.PartNumber == "" {
		return entities.Part{}, nil, ErrInvalidPartNumber
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return entities.Part{}, nil, ErrEngineClosed
	}
	created := e.ledger.Upsert(part)
	e.reserveWrite()
	e.mu.Unlock()

	stored := part
	cmd := persistCommand{resource: ResourceMasterInventory, key: part.PartNumber}
	if created {
		cmd.operation = OperationInsert
		cmd.run = func(ctx context.Context) error {
			return e.inventoryRepo.Insert(ctx, stored)
		}
	} else {
		cmd.operation = OperationUpdate
		cmd.run = func(ctx context.Context) error {
			return e.inventoryRepo.UpdateFields(ctx, stored.PartNumber, map[string]any{
				entities.PartFieldDescription:    stored.Description,
				entities.PartFieldQuantityOnHand: stored.QuantityOnHand,
				entities.PartFieldReorderPoint:   stored.ReorderPoint,
			})
		}
	}
	return part, e.dispatch(ctx, cmd), nil
}

func (e *SyncEngine) persistOrder(ctx context.Context, operation string, order entities.RepairOrder) *PersistResult {
	cmd := persistCommand{resource: ResourceRepairOrders, operation: operation, key: order.ID}
	if operation == OperationInsert {
		cmd.run = func(ctx context.Context) error { return e.orderRepo.Insert(ctx, order) }
	} else {
		cmd.run = func(ctx context.Context) error { return e.orderRepo.Update(ctx, order) }
	}
	return e.dispatch(ctx, cmd)
}

// reserveWrite counts the remote write of the mutation being applied so Close
// waits for it. Callers hold e.mu and must follow up with dispatch.
func (e *SyncEngine) reserveWrite() {
	if e.mode == ModeConnected {
		e.persist.reserve()
	}
}

func (e *SyncEngine) dispatch(ctx context.Context, cmd persistCommand) *PersistResult {
	if e.mode == ModeSimulated {
		return skippedResult(cmd.resource, cmd.operation, cmd.key)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return e.persist.start(ctx, cmd)
}

// Order returns a copy of the order with the given id.
func (e *SyncEngine) Order(id string) (entities.RepairOrder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i, ok := e.orderIdx[strings.TrimSpace(id)]
	if !ok {
		return entities.RepairOrder{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return e.orders[i].Clone(), nil
}

// Orders returns copies of every order in creation order.
func (e *SyncEngine) Orders() []entities.RepairOrder {
	return e.filterOrders(func(entities.RepairOrder) bool { return true })
}

// OrdersInStatus returns copies of the orders whose status is one of statuses.
func (e *SyncEngine) OrdersInStatus(statuses ...entities.RepairOrderStatus) []entities.RepairOrder {
	want := make(map[entities.RepairOrderStatus]struct{}, len(statuses))
	for _, s := range statuses {
		want[s] = struct{}{}
	}
	return e.filterOrders(func(o entities.RepairOrder) bool {
		_, ok := want[o.Status]
		return ok
	})
}

// OrdersForTechnician returns copies of the orders assigned to technicianID.
func (e *SyncEngine) OrdersForTechnician(technicianID string) []entities.RepairOrder {
	technicianID = strings.TrimSpace(technicianID)
	return e.filterOrders(func(o entities.RepairOrder) bool {
		return technicianID != "" && o.TechnicianID == technicianID
	})
}

func (e *SyncEngine) filterOrders(keep func(entities.RepairOrder) bool) []entities.RepairOrder {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]entities.RepairOrder, 0, len(e.orders))
	for _, o := range e.orders {
		if keep(o) {
			out = append(out, o.Clone())
		}
	}
	return out
}

func (e *SyncEngine) Part(partNumber string) (entities.Part, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.ledger.Part(strings.TrimSpace(partNumber))
	if !ok {
		return entities.Part{}, fmt.Errorf("%w: %s", ErrPartNotFound, partNumber)
	}
	return p, nil
}

func (e *SyncEngine) Inventory() []entities.Part {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Parts()
}

// Alerts returns the alert log, newest first.
func (e *SyncEngine) Alerts() []entities.InventoryAlert {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.alerts.Alerts()
}

// Snapshot is a consistent copy of the whole session state.
type Snapshot struct {
	Mode      Mode
	Orders    []entities.RepairOrder
	Inventory []entities.Part
	Alerts    []entities.InventoryAlert
}

func (e *SyncEngine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	orders := make([]entities.RepairOrder, len(e.orders))
	for i, o := range e.orders {
		orders[i] = o.Clone()
	}
	return Snapshot{
		Mode:      e.mode,
		Orders:    orders,
		Inventory: e.ledger.Parts(),
		Alerts:    e.alerts.Alerts(),
	}
}

func (e *SyncEngine) SyncStatus() SyncStatus {
	inFlight, failed, lastErr, lastFailureAt := e.persist.status()
	st := SyncStatus{Mode: e.mode, InFlight: inFlight, FailedWrites: failed}
	if lastErr != nil {
		st.LastWriteError = lastErr.Error()
		at := lastFailureAt
		st.LastFailureAt = &at
	}
	return st
}

// Close ends the session: further mutations fail with ErrEngineClosed and
// Close waits for in-flight remote writes until ctx is done.
func (e *SyncEngine) Close(ctx context.Context) error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	return e.persist.wait(ctx)
}
