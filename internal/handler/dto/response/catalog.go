package response

import (
	"car-rental-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ShopResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CarModelResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	RankName    string `json:"rankName"`
	PricePerDay int64  `json:"pricePerDay"`
}

func FromShopViews(views []*queries.ShopView) ([]ShopResponse, error) {
	out := make([]ShopResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromCarModelViews(views []*queries.CarModelView) ([]CarModelResponse, error) {
	out := make([]CarModelResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}
