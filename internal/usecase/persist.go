package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"mecanica_oficina/pkg/logger"
	"mecanica_oficina/pkg/metrics"
)

const (
	ResourceRepairOrders    = "repair_orders"
	ResourceMasterInventory = "master_inventory"

	OperationInsert = "insert"
	OperationUpdate = "update"
)

// persistCommand describes one remote write. It is built after the local
// mutation has been applied and carries its own copy of the data.
type persistCommand struct {
	resource  string
	operation string
	key       string
	run       func(ctx context.Context) error
}

// PersistResult is the future of an asynchronous remote write.
type PersistResult struct {
	Resource  string
	Operation string
	Key       string

	skipped bool
	done    chan struct{}
	err     error
}

func newPersistResult(cmd persistCommand) *PersistResult {
	return &PersistResult{
		Resource:  cmd.resource,
		Operation: cmd.operation,
		Key:       cmd.key,
		done:      make(chan struct{}),
	}
}

// skippedResult is returned in simulated mode: already complete, nothing was sent.
func skippedResult(resource, operation, key string) *PersistResult {
	r := &PersistResult{Resource: resource, Operation: operation, Key: key, skipped: true, done: make(chan struct{})}
	close(r.done)
	return r
}

func (r *PersistResult) complete(err error) {
	r.err = err
	close(r.done)
}

// Done is closed when the remote write has finished (or was skipped).
func (r *PersistResult) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the write finishes and returns its error.
func (r *PersistResult) Wait() error {
	<-r.done
	return r.err
}

// Err returns the write error once Done is closed, nil before.
func (r *PersistResult) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Skipped reports whether no remote call was attempted (simulated mode).
func (r *PersistResult) Skipped() bool {
	return r.skipped
}

// SyncStatus summarizes how far the remote store is behind local state.
type SyncStatus struct {
	Mode           Mode       `json:"mode"`
	InFlight       int        `json:"in_flight"`
	FailedWrites   int        `json:"failed_writes"`
	LastWriteError string     `json:"last_write_error,omitempty"`
	LastFailureAt  *time.Time `json:"last_failure_at,omitempty"`
}

// persister runs remote writes in the background. Writes are never retried or
// cancelled; they run on a context detached from the caller.
type persister struct {
	wg      sync.WaitGroup
	log     *logger.Logger
	metrics *metrics.SyncMetrics
	now     func() time.Time
	onDone  func(*PersistResult)

	mu            sync.Mutex
	inFlight      int
	failed        int
	lastErr       error
	lastFailureAt time.Time
}

// reserve registers one upcoming write. The engine calls it while still
// holding its lock, so Close cannot observe an accepted mutation whose write
// is not yet counted. Every reservation must be followed by start.
func (p *persister) reserve() {
	p.wg.Add(1)
	p.mu.Lock()
	p.inFlight++
	p.mu.Unlock()
}

// start runs a previously reserved write in the background.
func (p *persister) start(ctx context.Context, cmd persistCommand) *PersistResult {
	res := newPersistResult(cmd)
	detached := context.WithoutCancel(ctx)

	go func() {
		defer p.wg.Done()

		err := cmd.run(detached)
		if err != nil {
			err = &RemoteWriteError{Resource: cmd.resource, Operation: cmd.operation, Key: cmd.key, Err: err}
		}
		p.record(detached, cmd, err)
		res.complete(err)

		if p.onDone != nil {
			p.onDone(res)
		}
	}()
	return res
}

func (p *persister) record(ctx context.Context, cmd persistCommand, err error) {
	p.metrics.ObserveWrite(cmd.resource, cmd.operation, err)

	p.mu.Lock()
	p.inFlight--
	if err != nil {
		p.failed++
		p.lastErr = err
		p.lastFailureAt = p.now()
	}
	failed := p.failed
	p.mu.Unlock()

	if err == nil {
		return
	}
	p.metrics.SetUnsynced(failed)
	if p.log != nil {
		ctx = p.log.WithFields(ctx, map[string]any{
			"resource":  cmd.resource,
			"operation": cmd.operation,
			"key":       cmd.key,
		})
		p.log.Error(ctx, "[sync][persist] remote write failed; local state is ahead of remote", err)
	}
}

func (p *persister) status() (inFlight, failed int, lastErr error, lastFailureAt time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight, p.failed, p.lastErr, p.lastFailureAt
}

// wait blocks until every dispatched write has finished or ctx is done.
func (p *persister) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Join(errors.New("waiting for in-flight remote writes"), ctx.Err())
	}
}
