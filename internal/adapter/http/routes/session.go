package routes

import (
	"context"
	"errors"

	"mecanica_oficina/internal/adapter/persistence/repository"
	"mecanica_oficina/internal/clock"
	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/infrastructure/database"
	"mecanica_oficina/internal/usecase"
	"mecanica_oficina/internal/usecase/interfaces"
	"mecanica_oficina/pkg/config"
	"mecanica_oficina/pkg/logger"
	"mecanica_oficina/pkg/metrics"
)

// dynamoStoreFactory opens DynamoDB-backed repositories for a connected session.
func dynamoStoreFactory(rc config.RemoteConfig) usecase.RemoteStoreFactory {
	return func(ctx context.Context) (interfaces.IRepairOrderRepository, interfaces.IInventoryRepository, error) {
		ddb, err := database.ConnectDynamoDB(ctx, rc)
		if err != nil {
			return nil, nil, err
		}
		orders := repository.NewRepairOrderDynamoRepository(ddb, rc.OrdersTable)
		inventory := repository.NewInventoryDynamoRepository(ddb, rc.InventoryTable)
		return orders, inventory, nil
	}
}

func newSessionManager(cfg *config.Config, clk clock.Clock, log *logger.Logger, mtr *metrics.SyncMetrics) *usecase.SessionManager {
	policy := entities.TransitionPermissive
	if cfg.Workflow.StrictTransitions {
		policy = entities.TransitionStrict
	}

	opts := usecase.EngineOptions{
		Policy:  policy,
		Clock:   clk,
		Logger:  log,
		Metrics: mtr,
	}
	return usecase.NewSessionManager(dynamoStoreFactory(cfg.Remote), opts, cfg.Remote.BootstrapTimeout)
}

// bootstrapSession picks the startup mode: connected when the remote store is
// configured, simulated when allowed by config, otherwise idle until the
// operator chooses through /v1/session.
func bootstrapSession(ctx context.Context, session usecase.ISessionManager, cfg *config.Config, log *logger.Logger) {
	if cfg.Remote.Configured() {
		if _, err := session.Connect(ctx); err != nil {
			log.Error(ctx, "[session][routes] connected bootstrap failed; retry or simulate via /v1/session", err)
		}
		return
	}

	if cfg.Workflow.SimulateWhenUnconfigured {
		if _, err := session.Simulate(); err != nil {
			log.Error(ctx, "[session][routes] simulated bootstrap failed", err)
			return
		}
		log.Warn(ctx, "[session][routes] remote store unconfigured; running in simulated mode")
		return
	}

	// Record the unconfigured uplink so the client is offered retry or simulate.
	if _, err := session.Connect(ctx); err != nil && !errors.Is(err, interfaces.ErrRemoteUnconfigured) {
		log.Error(ctx, "[session][routes] unexpected bootstrap error", err)
	}
	log.Warn(ctx, "[session][routes] remote store unconfigured; waiting for operator")
}
