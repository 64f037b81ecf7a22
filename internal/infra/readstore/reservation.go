package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationViewColumns = `
SELECT rv.id, rv.user_id, rv.car_id, c.car_number, cm.name, s.name,
       rv.start_date, rv.end_date, rv.price, rv.status, rv.created_at
FROM reservations rv
JOIN cars c ON c.id = rv.car_id
JOIN car_models cm ON cm.id = c.car_model_id
JOIN shops s ON s.id = rv.shop_id`

const (
	getReservationByIDSQL = reservationViewColumns + `
WHERE rv.id = $1`

	listReservationsByUserSQL = reservationViewColumns + `
WHERE rv.user_id = $1
ORDER BY rv.start_date, rv.created_at`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := scanReservationView(r.db.QueryRow(ctx, getReservationByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, listReservationsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ReservationView, error) {
		return scanReservationView(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		start, end pgtype.Date
		createdAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.UserID,
		&view.VehicleID,
		&view.CarNumber,
		&view.CarModelName,
		&view.ShopName,
		&start,
		&end,
		&view.Price,
		&view.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.StartDate = pgconv.DateFromPgtype(start)
	view.EndDate = pgconv.DateFromPgtype(end)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
