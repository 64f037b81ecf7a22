package queries

//go:generate mockgen -source=search.go -destination=../../../tests/mock/queries/search_mock.go -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound           = errs.ErrOfferNotFound
	ErrUserNotFound            = errs.New("user not found")
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type SearchQueries interface {
	SearchCars(ctx context.Context, criteria SearchCriteria) (*SearchResult, error)
	GetOfferDetail(ctx context.Context, sessionID string, vehicleID int64, userID uuid.UUID) (*OfferDetailView, error)
}

type AvailabilityReadStore interface {
	FindAvailable(ctx context.Context, criteria SearchCriteria) ([]AvailableVehicle, error)
}

type searchQueriesImpl struct {
	availability AvailabilityReadStore
	users        UserReadStore
	sessions     shared.SearchSessionStore
	factory      *reservation.Factory
	metrics      shared.Metrics
	clock        clock.Clock
}

func NewSearchQueries(
	availability AvailabilityReadStore,
	users UserReadStore,
	sessions shared.SearchSessionStore,
	factory *reservation.Factory,
	metrics shared.Metrics,
	clk clock.Clock,
) SearchQueries {
	return &searchQueriesImpl{
		availability: availability,
		users:        users,
		sessions:     sessions,
		factory:      factory,
		metrics:      metrics,
		clock:        clk,
	}
}

func (q *searchQueriesImpl) SearchCars(ctx context.Context, criteria SearchCriteria) (*SearchResult, error) {
	started := q.clock.Now()

	vehicles, err := q.availability.FindAvailable(ctx, criteria)
	if err != nil {
		q.metrics.ObserveSearch(elapsedSince(q.clock, started), 0, shared.OutcomeError)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if len(vehicles) == 0 {
		q.metrics.ObserveSearch(elapsedSince(q.clock, started), 0, shared.OutcomeEmpty)
		return &SearchResult{Offers: []offer.Offer{}}, nil
	}

	offers, err := q.priceOffers(vehicles, criteria.Period)
	if err != nil {
		q.metrics.ObserveSearch(elapsedSince(q.clock, started), 0, shared.OutcomeError)
		return nil, err
	}

	sessionID, err := q.sessions.Create(ctx, offers)
	if err != nil {
		q.metrics.ObserveSearch(elapsedSince(q.clock, started), 0, shared.OutcomeError)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	q.metrics.ObserveSearch(elapsedSince(q.clock, started), len(offers), shared.OutcomeSuccess)
	slog.DebugContext(ctx, "search session created",
		"offers", len(offers),
		"shop_id", criteria.ShopID,
		"car_model_id", criteria.CarModelID,
		"period", criteria.Period.String())

	return &SearchResult{SessionID: sessionID, Offers: offers}, nil
}

func (q *searchQueriesImpl) priceOffers(vehicles []AvailableVehicle, period reservation.Period) ([]offer.Offer, error) {
	offers := make([]offer.Offer, 0, len(vehicles))
	for _, v := range vehicles {
		price, err := q.factory.Quote(v.PricePerDay, period)
		if err != nil {
			return nil, errs.Wrapf(err, "pricing vehicle %d", v.VehicleID)
		}
		o, err := offer.New(v.VehicleID, v.CarModelName, v.ShopName, period, price)
		if err != nil {
			return nil, errs.Wrapf(err, "building offer for vehicle %d", v.VehicleID)
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func (q *searchQueriesImpl) GetOfferDetail(ctx context.Context, sessionID string, vehicleID int64, userID uuid.UUID) (*OfferDetailView, error) {
	o, err := q.sessions.Lookup(ctx, sessionID, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	profile, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &OfferDetailView{Offer: *o, User: *profile}, nil
}

// elapsedSince keeps metric durations non-negative when a mock clock is moved backwards.
func elapsedSince(c clock.Clock, t time.Time) time.Duration {
	if d := c.Now().Sub(t); d > 0 {
		return d
	}
	return 0
}
