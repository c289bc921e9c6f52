package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase/interfaces"
	mock_interfaces "mecanica_oficina/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionManager_Unconfigured(t *testing.T) {
	s := NewSessionManager(func(context.Context) (interfaces.IRepairOrderRepository, interfaces.IInventoryRepository, error) {
		return nil, nil, interfaces.ErrRemoteUnconfigured
	}, EngineOptions{}, time.Second)

	require.Equal(t, SessionStateIdle, s.Status().State)

	_, err := s.Connect(context.Background())
	require.ErrorIs(t, err, interfaces.ErrRemoteUnconfigured)

	st := s.Status()
	require.Equal(t, SessionStateUplinkFailed, st.State)
	require.Equal(t, UplinkReasonUnconfigured, st.Reason)
	require.Equal(t, []string{RecoveryRetry, RecoverySimulate}, st.Actions)

	_, err = s.Engine()
	require.ErrorIs(t, err, ErrSessionNotStarted)
	require.ErrorIs(t, err, interfaces.ErrRemoteUnconfigured)

	eng, err := s.Simulate()
	require.NoError(t, err)
	require.Equal(t, ModeSimulated, eng.Mode())

	st = s.Status()
	require.Equal(t, SessionStateReady, st.State)
	require.Equal(t, ModeSimulated, st.Mode)
	require.NotNil(t, st.Sync)

	again, err := s.Simulate()
	require.NoError(t, err)
	require.Same(t, eng, again)
	require.NoError(t, s.Close(context.Background()))
}

func TestSessionManager_ReadFailureThenRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
	inventory := mock_interfaces.NewMockIInventoryRepository(ctrl)

	gomock.InOrder(
		orders.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("access denied")),
		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.RepairOrder{{ID: "RO-1", Status: entities.RepairOrderStatusNew}}, nil),
	)
	inventory.EXPECT().ListAll(gomock.Any()).Return(nil, nil).Times(2)

	s := NewSessionManager(func(context.Context) (interfaces.IRepairOrderRepository, interfaces.IInventoryRepository, error) {
		return orders, inventory, nil
	}, EngineOptions{}, time.Second)

	_, err := s.Connect(context.Background())
	require.ErrorIs(t, err, ErrRemoteReadFailed)
	st := s.Status()
	require.Equal(t, SessionStateUplinkFailed, st.State)
	require.Equal(t, UplinkReasonReadFailed, st.Reason)
	require.Contains(t, st.Error, "access denied")

	eng, err := s.Connect(context.Background())
	require.NoError(t, err)
	require.Equal(t, ModeConnected, eng.Mode())
	require.Len(t, eng.Orders(), 1)

	same, err := s.Connect(context.Background())
	require.NoError(t, err)
	require.Same(t, eng, same)

	_, err = s.Simulate()
	require.ErrorIs(t, err, ErrSessionAlreadyStarted)

	got, err := s.Engine()
	require.NoError(t, err)
	require.Same(t, eng, got)
	require.NoError(t, s.Close(context.Background()))
}

func TestSessionManager_NoFactory(t *testing.T) {
	s := NewSessionManager(nil, EngineOptions{}, 0)
	_, err := s.Connect(context.Background())
	require.ErrorIs(t, err, interfaces.ErrRemoteUnconfigured)

	_, err = s.Engine()
	require.ErrorIs(t, err, ErrSessionNotStarted)
	require.NoError(t, s.Close(context.Background()))
}
