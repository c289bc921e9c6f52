package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"mecanica_oficina/internal/usecase/interfaces"
)

// RemoteStoreFactory opens the remote repositories. It returns
// interfaces.ErrRemoteUnconfigured when connection parameters are missing.
type RemoteStoreFactory func(ctx context.Context) (interfaces.IRepairOrderRepository, interfaces.IInventoryRepository, error)

type SessionState string

const (
	SessionStateIdle         SessionState = "idle"
	SessionStateReady        SessionState = "ready"
	SessionStateUplinkFailed SessionState = "uplink_failed"
)

const (
	UplinkReasonUnconfigured = "unconfigured"
	UplinkReasonReadFailed   = "read_failed"

	RecoveryRetry    = "retry"
	RecoverySimulate = "simulate"
)

// SessionStatus is what a client needs to render the startup screen.
type SessionStatus struct {
	State   SessionState `json:"state"`
	Mode    Mode         `json:"mode,omitempty"`
	Reason  string       `json:"reason,omitempty"`
	Error   string       `json:"error,omitempty"`
	Actions []string     `json:"actions,omitempty"`
	Sync    *SyncStatus  `json:"sync,omitempty"`
}

// ISessionManager exposes session bootstrap and the engine of the running session.
type ISessionManager interface {
	Connect(ctx context.Context) (*SyncEngine, error)
	Simulate() (*SyncEngine, error)
	Engine() (*SyncEngine, error)
	Status() SessionStatus
	Close(ctx context.Context) error
}

// SessionManager decides the session mode once. A connected session never
// switches; after a failed bootstrap the operator may retry or restart into
// simulated mode.
type SessionManager struct {
	connect RemoteStoreFactory
	opts    EngineOptions
	timeout time.Duration

	mu      sync.Mutex
	engine  *SyncEngine
	lastErr error
}

var _ ISessionManager = (*SessionManager)(nil)

func NewSessionManager(connect RemoteStoreFactory, opts EngineOptions, bootstrapTimeout time.Duration) *SessionManager {
	return &SessionManager{connect: connect, opts: opts, timeout: bootstrapTimeout}
}

// Connect bootstraps connected mode. If a session already exists it is returned
// unchanged.
func (s *SessionManager) Connect(ctx context.Context) (*SyncEngine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		return s.engine, nil
	}
	if s.connect == nil {
		s.lastErr = interfaces.ErrRemoteUnconfigured
		return nil, s.lastErr
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	orders, inventory, err := s.connect(ctx)
	if err != nil {
		s.lastErr = err
		return nil, err
	}

	opts := s.opts
	opts.Orders = orders
	opts.Inventory = inventory
	eng, err := NewConnectedEngine(ctx, opts)
	if err != nil {
		s.lastErr = err
		if opts.Logger != nil {
			opts.Logger.Error(ctx, "[sync][session] connected bootstrap failed", err)
		}
		return nil, err
	}
	s.engine = eng
	s.lastErr = nil
	return eng, nil
}

// Simulate starts (or returns) a simulated session. It refuses to replace a
// connected session.
func (s *SessionManager) Simulate() (*SyncEngine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		if s.engine.Mode() == ModeConnected {
			return nil, ErrSessionAlreadyStarted
		}
		return s.engine, nil
	}
	s.engine = NewSimulatedEngine(s.opts)
	s.lastErr = nil
	return s.engine, nil
}

func (s *SessionManager) Engine() (*SyncEngine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		if s.lastErr != nil {
			return nil, errors.Join(ErrSessionNotStarted, s.lastErr)
		}
		return nil, ErrSessionNotStarted
	}
	return s.engine, nil
}

func (s *SessionManager) Status() SessionStatus {
	s.mu.Lock()
	eng, lastErr := s.engine, s.lastErr
	s.mu.Unlock()

	if eng != nil {
		st := eng.SyncStatus()
		return SessionStatus{State: SessionStateReady, Mode: eng.Mode(), Sync: &st}
	}
	if lastErr == nil {
		return SessionStatus{State: SessionStateIdle, Actions: []string{RecoveryRetry, RecoverySimulate}}
	}

	reason := UplinkReasonReadFailed
	if errors.Is(lastErr, interfaces.ErrRemoteUnconfigured) {
		reason = UplinkReasonUnconfigured
	}
	return SessionStatus{
		State:   SessionStateUplinkFailed,
		Reason:  reason,
		Error:   lastErr.Error(),
		Actions: []string{RecoveryRetry, RecoverySimulate},
	}
}

// Close tears the session down, waiting for in-flight writes.
func (s *SessionManager) Close(ctx context.Context) error {
	s.mu.Lock()
	eng := s.engine
	s.mu.Unlock()
	if eng == nil {
		return nil
	}
	return eng.Close(ctx)
}
