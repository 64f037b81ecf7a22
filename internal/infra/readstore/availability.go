package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

// findAvailableSQL uses the inclusive overlap predicate: a reservation blocks the
// car when it starts on or before the requested end and ends on or after the requested start.
const findAvailableSQL = `
SELECT c.id, cm.name, s.name, r.price_per_day
FROM cars c
JOIN car_models cm ON cm.id = c.car_model_id
JOIN car_ranks r ON r.id = cm.rank_id
JOIN shops s ON s.id = c.shop_id
WHERE c.shop_id = $1
  AND c.car_model_id = $2
  AND NOT EXISTS (
      SELECT 1
      FROM reservations rv
      WHERE rv.car_id = c.id
        AND rv.status = 'confirmed'
        AND rv.start_date <= $4
        AND rv.end_date >= $3
  )
ORDER BY c.id`

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(db db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

func (s *AvailabilityReadStore) FindAvailable(ctx context.Context, criteria queries.SearchCriteria) ([]queries.AvailableVehicle, error) {
	rows, err := s.db.Query(ctx, findAvailableSQL,
		criteria.ShopID,
		criteria.CarModelID,
		pgconv.DateToPgtype(criteria.Period.Start()),
		pgconv.DateToPgtype(criteria.Period.End()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available cars", err)
	}

	vehicles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.AvailableVehicle, error) {
		var v queries.AvailableVehicle
		err := row.Scan(&v.VehicleID, &v.CarModelName, &v.ShopName, &v.PricePerDay)
		return v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan available cars", err)
	}

	return vehicles, nil
}
