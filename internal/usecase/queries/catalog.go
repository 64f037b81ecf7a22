package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"context"

	"car-rental-api/internal/pkg/errs"
)

type CatalogQueries interface {
	ListShops(ctx context.Context) ([]*ShopView, error)
	ListCarModels(ctx context.Context) ([]*CarModelView, error)
}

type CatalogReadStore interface {
	ListShops(ctx context.Context) ([]*ShopView, error)
	ListCarModels(ctx context.Context) ([]*CarModelView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListShops(ctx context.Context) ([]*ShopView, error) {
	shops, err := q.store.ListShops(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return shops, nil
}

func (q *catalogQueriesImpl) ListCarModels(ctx context.Context) ([]*CarModelView, error) {
	models, err := q.store.ListCarModels(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return models, nil
}
