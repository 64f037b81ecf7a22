//go:build unit || e2e

package fakes

import (
	"context"
	"fmt"
	"sync"

	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/infra"
)

// SessionStore is a deterministic SearchSessionStore: ids are "session-1", "session-2", ...
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string][]offer.Offer
	next     int

	CreateErr error
	LookupErr error
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string][]offer.Offer)}
}

func (s *SessionStore) Create(_ context.Context, offers []offer.Offer) (string, error) {
	if s.CreateErr != nil {
		return "", s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	id := fmt.Sprintf("session-%d", s.next)
	s.sessions[id] = append([]offer.Offer(nil), offers...)
	return id, nil
}

func (s *SessionStore) Lookup(_ context.Context, sessionID string, vehicleID int64) (*offer.Offer, error) {
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.sessions[sessionID] {
		if o.VehicleID() == vehicleID {
			found := o
			return &found, nil
		}
	}
	return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
}
