package components

import (
	"context"
	"log/slog"
	"time"

	"car-rental-api/internal/handler"
	"car-rental-api/internal/infra/cache"
	"car-rental-api/internal/infra/metrics"
	"car-rental-api/internal/infra/session"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			metrics.NewRecorder,
			fx.As(new(shared.Metrics), new(handler.MetricsExporter)),
		),
		NewSearchSessionStore,
	),
)

const redisConnectTimeout = 5 * time.Second

// NewSearchSessionStore picks the store named by SEARCH_SESSION_STORE.
func NewSearchSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, m shared.Metrics) (shared.SearchSessionStore, error) {
	if cfg.Session.Store == config.SessionStoreRedis {
		ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
		defer cancel()

		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		slog.Info("search sessions stored in redis", "addr", cfg.Redis.Addr, "ttl", cfg.Session.TTL)
		return session.NewRedisStore(client, cfg.Session.TTL, m), nil
	}

	store := session.NewMemoryStore(cfg.Session.TTL, clk, m)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			store.StartJanitor(cfg.Session.JanitorInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			store.StopJanitor()
			return nil
		},
	})
	slog.Info("search sessions stored in memory", "ttl", cfg.Session.TTL)
	return store, nil
}
