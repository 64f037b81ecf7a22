package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase/shared"
)

const (
	publishTimeout = 5 * time.Second
	maxRetryDelay  = 10 * time.Minute

	PublishResultSent   = "sent"
	PublishResultFailed = "failed"
	PublishResultGaveUp = "gave_up"
)

type Publisher interface {
	Publish(ctx context.Context, topic, kind string, key, value []byte) error
}

// OutboxRelay moves queued notification jobs to the message broker.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	metrics   shared.Metrics
	clock     clock.Clock
	cfg       config.OutboxConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, metrics shared.Metrics, clk clock.Clock, cfg config.OutboxConfig) *OutboxRelay {
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		metrics:   metrics,
		clock:     clk,
		cfg:       cfg,
	}
}

func (r *OutboxRelay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.Run(ctx)
	}()
}

func (r *OutboxRelay) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	r.wg.Wait()
}

func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("outbox relay started", "interval", r.cfg.PollInterval.String(), "batch_size", r.cfg.BatchSize)

	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay batch failed", "error", err.Error())
			}
		}
	}
}

// RelayOnce claims one batch of due jobs and publishes them. Job rows stay locked
// until the batch transaction ends, so parallel relays skip them.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
			pubErr := r.publisher.Publish(pubCtx, job.Topic, job.Kind, []byte(job.ID.String()), job.Payload)
			cancel()

			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				r.metrics.RecordOutboxPublish(PublishResultSent)
				sent++
				continue
			}

			giveUp := int(job.Attempts)+1 >= r.cfg.MaxAttempts
			next := now.Add(retryDelay(job.Attempts))
			if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), next, giveUp); err != nil {
				return err
			}

			result := PublishResultFailed
			if giveUp {
				result = PublishResultGaveUp
			}
			r.metrics.RecordOutboxPublish(result)
			slog.Warn("failed to publish outbox job",
				"job_id", job.ID.String(),
				"kind", job.Kind,
				"attempts", job.Attempts+1,
				"give_up", giveUp,
				"error", pubErr.Error())
		}
		return nil
	})
	return sent, err
}

// retryDelay doubles from one second per previous attempt, capped at maxRetryDelay.
func retryDelay(attempts int32) time.Duration {
	if attempts > 20 {
		return maxRetryDelay
	}
	d := time.Second << attempts
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}
