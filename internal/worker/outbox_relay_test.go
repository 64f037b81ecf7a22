//go:build unit

package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase/shared"
	"car-rental-api/tests/common/fakes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic string
	kind  string
	key   string
	value string
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []published
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, topic, kind string, key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, published{topic: topic, kind: kind, key: string(key), value: string(value)})
	return nil
}

func newRelay(uow *fakes.UnitOfWork, pub Publisher, clk clock.Clock, maxAttempts int) *OutboxRelay {
	cfg := config.NewTestConfig().Outbox
	cfg.BatchSize = 10
	cfg.MaxAttempts = maxAttempts
	cfg.PollInterval = 5 * time.Millisecond
	return NewOutboxRelay(uow, pub, shared.NopMetrics{}, clk, cfg)
}

func TestOutboxRelay_PublishesDueJobs(t *testing.T) {
	now := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	uow := fakes.NewUnitOfWork()
	due := uow.QueueJob(shared.JobKindReservationConfirmed, "reservation-events", []byte(`{"n":1}`), now.Add(-time.Second))
	later := uow.QueueJob(shared.JobKindReservationConfirmed, "reservation-events", []byte(`{"n":2}`), now.Add(time.Hour))
	pub := &fakePublisher{}

	sent, err := newRelay(uow, pub, clk, 3).RelayOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, pub.messages, 1)
	assert.Equal(t, published{
		topic: "reservation-events",
		kind:  shared.JobKindReservationConfirmed,
		key:   due.ID.String(),
		value: `{"n":1}`,
	}, pub.messages[0])
	assert.Equal(t, shared.JobStatusSent, due.Status)
	assert.Equal(t, shared.JobStatusQueued, later.Status)
}

func TestOutboxRelay_FailureBacksOffThenGivesUp(t *testing.T) {
	now := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	uow := fakes.NewUnitOfWork()
	job := uow.QueueJob(shared.JobKindReservationConfirmed, "reservation-events", []byte(`{}`), now)
	pub := &fakePublisher{err: errors.New("broker unavailable")}
	relay := newRelay(uow, pub, clk, 2)

	sent, err := relay.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Equal(t, shared.JobStatusQueued, job.Status)
	assert.Equal(t, int32(1), job.Attempts)
	assert.Equal(t, "broker unavailable", job.LastError)
	assert.Equal(t, now.Add(time.Second), job.RunAt)

	clk.Set(job.RunAt)
	_, err = relay.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, shared.JobStatusFailed, job.Status)
	assert.Equal(t, int32(2), job.Attempts)
}

func TestOutboxRelay_ClaimFailure(t *testing.T) {
	uow := fakes.NewUnitOfWork()
	uow.ClaimErr = errors.New("db down")

	_, err := newRelay(uow, &fakePublisher{}, clock.NewRealClock(), 3).RelayOnce(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, uow.Rollbacks)
}

func TestOutboxRelay_StartStop(t *testing.T) {
	uow := fakes.NewUnitOfWork()
	job := uow.QueueJob(shared.JobKindReservationConfirmed, "reservation-events", []byte(`{}`), time.Now().Add(-time.Minute))
	pub := &fakePublisher{}
	relay := newRelay(uow, pub, clock.NewRealClock(), 3)

	relay.Start()
	assert.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.messages) == 1
	}, time.Second, 5*time.Millisecond)
	relay.Stop()

	snapshot := uow.Snapshot()
	assert.Empty(t, snapshot)
	assert.Equal(t, shared.JobStatusSent, job.Status)
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, time.Second, retryDelay(0))
	assert.Equal(t, 8*time.Second, retryDelay(3))
	assert.Equal(t, maxRetryDelay, retryDelay(15))
	assert.Equal(t, maxRetryDelay, retryDelay(40))
}
