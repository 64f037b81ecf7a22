package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const (
	listShopsSQL = `SELECT id, name FROM shops ORDER BY id`

	listCarModelsSQL = `
SELECT cm.id, cm.name, r.name, r.price_per_day
FROM car_models cm
JOIN car_ranks r ON r.id = cm.rank_id
ORDER BY cm.id`
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (s *CatalogReadStore) ListShops(ctx context.Context) ([]*queries.ShopView, error) {
	rows, err := s.db.Query(ctx, listShopsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shops", err)
	}

	shops, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ShopView, error) {
		v := &queries.ShopView{}
		err := row.Scan(&v.ID, &v.Name)
		return v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan shops", err)
	}
	return shops, nil
}

func (s *CatalogReadStore) ListCarModels(ctx context.Context) ([]*queries.CarModelView, error) {
	rows, err := s.db.Query(ctx, listCarModelsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list car models", err)
	}

	models, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.CarModelView, error) {
		v := &queries.CarModelView{}
		err := row.Scan(&v.ID, &v.Name, &v.RankName, &v.PricePerDay)
		return v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan car models", err)
	}
	return models, nil
}
