package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.ErrReservationNotFound

type ReservationQueries interface {
	// GetByID only returns reservations owned by actor; anything else reads as not found.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// FindByUserID orders by start date ascending.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if view.UserID != actor {
		return nil, ErrReservationNotFound
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	rows, err := q.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rows, nil
}
