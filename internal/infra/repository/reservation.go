package repository

import (
	"context"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	lockVehicleSQL = `SELECT pg_advisory_xact_lock($1)`

	hasOverlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM reservations
    WHERE car_id = $1
      AND status = 'confirmed'
      AND start_date <= $3
      AND end_date >= $2
)`

	createReservationSQL = `
INSERT INTO reservations (
    id, user_id, car_id, shop_id, start_date, end_date, price, status,
    create_user, created_at, update_user, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $9, $10)
RETURNING id`
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

// LockVehicle takes a transaction-scoped advisory lock keyed by the vehicle id.
// Postgres releases it on commit or rollback.
func (r *ReservationRepository) LockVehicle(ctx context.Context, tx db.DBTX, vehicleID int64) error {
	if _, err := tx.Exec(ctx, lockVehicleSQL, vehicleID); err != nil {
		return infra.WrapRepoErr("failed to lock vehicle", err)
	}
	return nil
}

func (r *ReservationRepository) HasOverlap(ctx context.Context, tx db.DBTX, vehicleID int64, period reservation.Period) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, hasOverlapSQL,
		vehicleID,
		pgconv.DateToPgtype(period.Start()),
		pgconv.DateToPgtype(period.End()),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}
	return exists, nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.UserID(),
		res.VehicleID(),
		res.ShopID(),
		pgconv.DateToPgtype(res.Period().Start()),
		pgconv.DateToPgtype(res.Period().End()),
		res.Price().Amount(),
		string(res.Status()),
		res.CreatedBy(),
		pgconv.TimeToPgtype(res.CreatedAt()),
	).Scan(&id)
	if err != nil {
		switch {
		case pgconv.HasCode(err, pgconv.CodeExclusionViolation):
			return uuid.Nil, infra.WrapRepoErr("reservation overlaps an existing one", err, infra.KindConflict)
		case pgconv.HasCode(err, pgconv.CodeUniqueViolation):
			return uuid.Nil, infra.WrapRepoErr("reservation already exists", err, infra.KindDuplicateKey)
		case pgconv.HasCode(err, pgconv.CodeForeignKeyViolation):
			return uuid.Nil, infra.WrapRepoErr("reservation references unknown user, car or shop", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}
