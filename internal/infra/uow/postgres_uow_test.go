//go:build unit

package uow

import (
	"testing"
	"time"

	"car-rental-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "insert"), want: true},
		{name: "exclusion violation is final", err: &pgconn.PgError{Code: "23P01"}, want: false},
		{name: "plain error", err: assert.AnError, want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: "40001"}

	assert.True(t, shouldRetry(retryable, 0))
	assert.True(t, shouldRetry(retryable, maxRetries-1))
	assert.False(t, shouldRetry(retryable, maxRetries))
	assert.False(t, shouldRetry(assert.AnError, 0))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base

		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
