//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(reservation.DateLayout, s)
	require.NoError(t, err)
	return d
}

func period(t *testing.T, start, end string) reservation.Period {
	t.Helper()
	p, err := reservation.NewPeriod(date(t, start), date(t, end))
	require.NoError(t, err)
	return p
}

func TestNewPeriod(t *testing.T) {
	t.Run("same day is a valid one-day period", func(t *testing.T) {
		p := period(t, "2025-01-01", "2025-01-01")
		assert.Equal(t, int64(1), p.Days())
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := reservation.NewPeriod(date(t, "2025-01-05"), date(t, "2025-01-01"))
		assert.ErrorIs(t, err, reservation.ErrInvalidPeriod)
	})

	t.Run("clock part and zone are dropped", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		p, err := reservation.NewPeriod(
			time.Date(2025, 3, 1, 23, 30, 0, 0, jst),
			time.Date(2025, 3, 3, 0, 5, 0, 0, jst),
		)
		require.NoError(t, err)
		assert.Equal(t, "[2025-03-01,2025-03-03]", p.String())
		assert.Equal(t, int64(3), p.Days())
	})

	t.Run("days across a month boundary", func(t *testing.T) {
		assert.Equal(t, int64(5), period(t, "2025-01-30", "2025-02-03").Days())
	})
}

func TestPeriodOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{name: "shared boundary day overlaps", a: [2]string{"2025-01-01", "2025-01-05"}, b: [2]string{"2025-01-05", "2025-01-10"}, want: true},
		{name: "adjacent days do not overlap", a: [2]string{"2025-01-01", "2025-01-04"}, b: [2]string{"2025-01-05", "2025-01-10"}, want: false},
		{name: "containment overlaps", a: [2]string{"2025-01-01", "2025-01-31"}, b: [2]string{"2025-01-10", "2025-01-12"}, want: true},
		{name: "identical single days overlap", a: [2]string{"2025-01-07", "2025-01-07"}, b: [2]string{"2025-01-07", "2025-01-07"}, want: true},
		{name: "disjoint ranges", a: [2]string{"2025-02-01", "2025-02-02"}, b: [2]string{"2025-01-01", "2025-01-31"}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := period(t, tc.a[0], tc.a[1])
			b := period(t, tc.b[0], tc.b[1])
			assert.Equal(t, tc.want, a.Overlaps(b))
			assert.Equal(t, tc.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestDailyRateCalculator(t *testing.T) {
	calc := reservation.NewDailyRateCalculator()
	rate, err := reservation.NewMoney(100)
	require.NoError(t, err)

	assert.Equal(t, int64(100), calc.Calculate(rate, period(t, "2025-01-01", "2025-01-01")).Amount())
	assert.Equal(t, int64(300), calc.Calculate(rate, period(t, "2025-01-01", "2025-01-03")).Amount())
}

func TestNewMoney(t *testing.T) {
	_, err := reservation.NewMoney(-1)
	assert.ErrorIs(t, err, reservation.ErrNegativeMoney)
}
