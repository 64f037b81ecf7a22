//go:build unit

package session

import (
	"context"
	"testing"
	"time"

	"car-rental-api/internal/infra"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, ttl, &recordingMetrics{}), mr
}

func TestRedisStore_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, 30*time.Minute)

	id, err := store.Create(ctx, buildOffers(t, 11, 12))
	require.NoError(t, err)

	assert.True(t, mr.Exists(keyPrefix+id))
	assert.Equal(t, 30*time.Minute, mr.TTL(keyPrefix+id))

	got, err := store.Lookup(ctx, id, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.VehicleID())
	assert.Equal(t, "Prius", got.CarModelName())
	assert.Equal(t, "Shinjuku", got.ShopName())
	assert.Equal(t, int64(3), got.Period().Days())
	assert.Equal(t, int64(300), got.Price())
}

func TestRedisStore_LookupMisses(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t, time.Minute)

	id, err := store.Create(ctx, buildOffers(t, 11))
	require.NoError(t, err)

	_, err = store.Lookup(ctx, "unknown", 11)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	_, err = store.Lookup(ctx, id, 99)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)

	id, err := store.Create(ctx, buildOffers(t, 11))
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Lookup(ctx, id, 11)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRedisStore_NeverOverwritesLiveSession(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t, time.Minute)

	ids := []string{"dup", "dup", "fresh"}
	store.newID = func() (string, error) {
		id := ids[0]
		ids = ids[1:]
		return id, nil
	}

	first, err := store.Create(ctx, buildOffers(t, 1))
	require.NoError(t, err)
	second, err := store.Create(ctx, buildOffers(t, 2))
	require.NoError(t, err)

	assert.Equal(t, "dup", first)
	assert.Equal(t, "fresh", second)

	got, err := store.Lookup(ctx, "dup", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.VehicleID())
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)
	mr.Close()

	_, err := store.Create(ctx, buildOffers(t, 1))
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))

	_, err = store.Lookup(ctx, "any", 1)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
}
