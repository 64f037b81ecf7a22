package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"
)

const findVehicleByIDSQL = `SELECT id, shop_id, car_model_id FROM cars WHERE id = $1`

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(db db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: db}
}

func (r *VehicleReadStore) FindByID(ctx context.Context, id int64) (*shared.VehicleSnapshot, error) {
	snapshot := &shared.VehicleSnapshot{}
	err := r.db.QueryRow(ctx, findVehicleByIDSQL, id).Scan(&snapshot.ID, &snapshot.ShopID, &snapshot.CarModelID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return snapshot, nil
}
