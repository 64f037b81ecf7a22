package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/usecase/shared"
)

type memoryEntry struct {
	offers    []offer.Offer
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. It does not survive restarts and is not
// shared between instances; use RedisStore for that.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry

	ttl     time.Duration
	clock   clock.Clock
	metrics shared.Metrics
	newID   func() (string, error)

	stop chan struct{}
	done chan struct{}
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock, metrics shared.Metrics) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		clock:    clk,
		metrics:  metrics,
		newID:    NewID,
	}
}

func (s *MemoryStore) Create(_ context.Context, offers []offer.Offer) (string, error) {
	owned := make([]offer.Offer, len(offers))
	copy(owned, offers)

	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := s.newID()
		if err != nil {
			s.metrics.RecordSessionOp(opCreate, resultError)
			return "", infra.WrapRepoErr("failed to generate session id", err, infra.KindUnavailable)
		}
		if _, taken := s.sessions[id]; taken {
			continue
		}

		s.sessions[id] = memoryEntry{offers: owned, expiresAt: s.clock.Now().Add(s.ttl)}
		s.metrics.RecordSessionOp(opCreate, resultOK)
		return id, nil
	}

	s.metrics.RecordSessionOp(opCreate, resultError)
	return "", infra.WrapRepoErr("could not allocate a unique session id", nil, infra.KindDuplicateKey)
}

func (s *MemoryStore) Lookup(_ context.Context, sessionID string, vehicleID int64) (*offer.Offer, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		s.metrics.RecordSessionOp(opLookup, resultMiss)
		return nil, infra.WrapRepoErr("search session not found", nil, infra.KindNotFound)
	}
	if !s.clock.Now().Before(entry.expiresAt) {
		s.metrics.RecordSessionOp(opLookup, resultExpired)
		return nil, infra.WrapRepoErr("search session expired", nil, infra.KindNotFound)
	}

	for i := range entry.offers {
		if entry.offers[i].VehicleID() == vehicleID {
			o := entry.offers[i]
			s.metrics.RecordSessionOp(opLookup, resultOK)
			return &o, nil
		}
	}

	s.metrics.RecordSessionOp(opLookup, resultMiss)
	return nil, infra.WrapRepoErr("vehicle not offered in session", nil, infra.KindNotFound)
}

// EvictExpired drops every session whose TTL has passed and returns how many were removed.
func (s *MemoryStore) EvictExpired() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor evicts expired sessions every interval until StopJanitor is called.
func (s *MemoryStore) StartJanitor(interval time.Duration) {
	if interval <= 0 || s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				if n := s.EvictExpired(); n > 0 {
					slog.Debug("evicted expired search sessions", "count", n)
				}
			}
		}
	}()
}

func (s *MemoryStore) StopJanitor() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop, s.done = nil, nil
}
