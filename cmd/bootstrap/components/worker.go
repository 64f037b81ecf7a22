package components

import (
	"context"
	"log/slog"

	"car-rental-api/internal/infra/messaging"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase/shared"
	"car-rental-api/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(RegisterOutboxRelay),
)

// RegisterOutboxRelay runs the relay only when OUTBOX_RELAY_ENABLED is set; jobs stay queued otherwise.
func RegisterOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, m shared.Metrics, clk clock.Clock) {
	if !cfg.Outbox.Enabled {
		slog.Info("outbox relay disabled")
		return
	}

	publisher := messaging.NewKafkaPublisher(cfg.Outbox)
	relay := worker.NewOutboxRelay(uow, publisher, m, clk, cfg.Outbox)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			slog.Info("outbox relay started", "brokers", cfg.Outbox.Brokers, "topic", cfg.Outbox.Topic)
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return publisher.Close()
		},
	})
}
