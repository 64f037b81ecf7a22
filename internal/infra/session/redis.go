package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "search_session:"

// RedisStore shares sessions between API instances. Expiry is left to Redis.
type RedisStore struct {
	client  redis.Cmdable
	ttl     time.Duration
	metrics shared.Metrics
	newID   func() (string, error)
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration, metrics shared.Metrics) *RedisStore {
	return &RedisStore{
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		newID:   NewID,
	}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

func (s *RedisStore) Create(ctx context.Context, offers []offer.Offer) (string, error) {
	snapshots := make([]offer.Snapshot, 0, len(offers))
	for _, o := range offers {
		snapshots = append(snapshots, o.Snapshot())
	}
	data, err := json.Marshal(snapshots)
	if err != nil {
		s.metrics.RecordSessionOp(opCreate, resultError)
		return "", infra.WrapRepoErr("failed to encode search session", err)
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := s.newID()
		if err != nil {
			s.metrics.RecordSessionOp(opCreate, resultError)
			return "", infra.WrapRepoErr("failed to generate session id", err, infra.KindUnavailable)
		}

		stored, err := s.client.SetNX(ctx, key(id), data, s.ttl).Result()
		if err != nil {
			s.metrics.RecordSessionOp(opCreate, resultError)
			return "", infra.WrapRepoErr("failed to store search session", err, infra.KindUnavailable)
		}
		if stored {
			s.metrics.RecordSessionOp(opCreate, resultOK)
			return id, nil
		}
	}

	s.metrics.RecordSessionOp(opCreate, resultError)
	return "", infra.WrapRepoErr("could not allocate a unique session id", nil, infra.KindDuplicateKey)
}

func (s *RedisStore) Lookup(ctx context.Context, sessionID string, vehicleID int64) (*offer.Offer, error) {
	data, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.metrics.RecordSessionOp(opLookup, resultMiss)
			return nil, infra.WrapRepoErr("search session not found", err, infra.KindNotFound)
		}
		s.metrics.RecordSessionOp(opLookup, resultError)
		return nil, infra.WrapRepoErr("failed to read search session", err, infra.KindUnavailable)
	}

	var snapshots []offer.Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		s.metrics.RecordSessionOp(opLookup, resultError)
		return nil, infra.WrapRepoErr("failed to decode search session", err)
	}

	for _, snap := range snapshots {
		if snap.VehicleID != vehicleID {
			continue
		}
		o, err := offer.FromSnapshot(snap)
		if err != nil {
			s.metrics.RecordSessionOp(opLookup, resultError)
			return nil, infra.WrapRepoErr("corrupt offer in search session", err)
		}
		s.metrics.RecordSessionOp(opLookup, resultOK)
		return &o, nil
	}

	s.metrics.RecordSessionOp(opLookup, resultMiss)
	return nil, infra.WrapRepoErr("vehicle not offered in session", nil, infra.KindNotFound)
}
