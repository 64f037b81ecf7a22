//go:build unit

package session

import (
	"sync"
	"testing"
	"time"

	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/domain/reservation"

	"github.com/stretchr/testify/require"
)

func buildOffers(t *testing.T, vehicleIDs ...int64) []offer.Offer {
	t.Helper()

	period, err := reservation.NewPeriod(
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 1, 3, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	price, err := reservation.NewMoney(300)
	require.NoError(t, err)

	offers := make([]offer.Offer, 0, len(vehicleIDs))
	for _, id := range vehicleIDs {
		o, err := offer.New(id, "Prius", "Shinjuku", period, price)
		require.NoError(t, err)
		offers = append(offers, o)
	}
	return offers
}

type sessionOp struct {
	op     string
	result string
}

type recordingMetrics struct {
	mu  sync.Mutex
	ops []sessionOp
}

func (m *recordingMetrics) ObserveSearch(time.Duration, int, string) {}
func (m *recordingMetrics) RecordConfirmation(string)                {}
func (m *recordingMetrics) RecordOutboxPublish(string)               {}

func (m *recordingMetrics) RecordSessionOp(op, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, sessionOp{op: op, result: result})
}

func (m *recordingMetrics) last() sessionOp {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops[len(m.ops)-1]
}
