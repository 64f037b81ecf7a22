//go:build unit

package offer_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffer(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	p, err := reservation.NewPeriod(start, start.AddDate(0, 0, 2))
	require.NoError(t, err)
	price, err := reservation.NewMoney(15000)
	require.NoError(t, err)

	t.Run("snapshot round trip keeps every field", func(t *testing.T) {
		o, err := offer.New(12, "Prius", "Shinjuku", p, price)
		require.NoError(t, err)

		restored, err := offer.FromSnapshot(o.Snapshot())
		require.NoError(t, err)

		if diff := cmp.Diff(o.Snapshot(), restored.Snapshot()); diff != "" {
			t.Errorf("offer mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "2025-04-01", o.Snapshot().StartDate)
		assert.Equal(t, "2025-04-03", o.Snapshot().EndDate)
	})

	t.Run("rejects a non-positive vehicle id", func(t *testing.T) {
		_, err := offer.New(0, "Prius", "Shinjuku", p, price)
		assert.ErrorIs(t, err, offer.ErrInvalidVehicle)
	})

	t.Run("rejects a missing period", func(t *testing.T) {
		_, err := offer.New(1, "Prius", "Shinjuku", reservation.Period{}, price)
		assert.ErrorIs(t, err, offer.ErrMissingPeriod)
	})

	t.Run("snapshot with reversed dates is rejected", func(t *testing.T) {
		_, err := offer.FromSnapshot(offer.Snapshot{VehicleID: 1, StartDate: "2025-04-03", EndDate: "2025-04-01"})
		assert.ErrorIs(t, err, reservation.ErrInvalidPeriod)
	})
}
