package entities

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStatus     = errors.New("unknown repair order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// TransitionPolicy selects how strictly ApplyStatusChange validates a target status.
type TransitionPolicy int

const (
	// TransitionPermissive accepts any known status, including backward jumps.
	TransitionPermissive TransitionPolicy = iota
	// TransitionStrict only accepts targets reachable forward in workflow order.
	TransitionStrict
)

var workflow = []RepairOrderStatus{
	RepairOrderStatusNew,
	RepairOrderStatusAuthorized,
	RepairOrderStatusPartsPending,
	RepairOrderStatusReadyForTech,
	RepairOrderStatusActive,
	RepairOrderStatusCompleted,
	RepairOrderStatusPendingInvoice,
	RepairOrderStatusInvoiced,
}

var workflowRank = func() map[RepairOrderStatus]int {
	m := make(map[RepairOrderStatus]int, len(workflow))
	for i, s := range workflow {
		m[s] = i
	}
	return m
}()

// Workflow returns the statuses in workflow order.
func Workflow() []RepairOrderStatus {
	out := make([]RepairOrderStatus, len(workflow))
	copy(out, workflow)
	return out
}

func (s RepairOrderStatus) IsValid() bool {
	_, ok := workflowRank[s]
	return ok
}

// IsTerminal reports whether no forward transition exists from s.
func (s RepairOrderStatus) IsTerminal() bool {
	return s == RepairOrderStatusInvoiced
}

// CanAdvanceTo reports whether next is reachable from s going forward (skips allowed).
func (s RepairOrderStatus) CanAdvanceTo(next RepairOrderStatus) bool {
	from, ok := workflowRank[s]
	if !ok {
		return false
	}
	to, ok := workflowRank[next]
	if !ok {
		return false
	}
	return to > from
}

// ApplyStatusChange returns a copy of order moved to next. The input is never modified.
//
// Re-applying the current status returns an unchanged copy under both policies.
func ApplyStatusChange(order RepairOrder, next RepairOrderStatus, policy TransitionPolicy) (RepairOrder, error) {
	if !next.IsValid() {
		return RepairOrder{}, fmt.Errorf("%w: %q", ErrUnknownStatus, next)
	}
	if order.Status == next {
		return order.Clone(), nil
	}
	if policy == TransitionStrict && !order.Status.CanAdvanceTo(next) {
		return RepairOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	out := order.Clone()
	out.Status = next
	return out, nil
}
