//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"car-rental-api/internal/handler/api"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/httptest"
	queriesmock "car-rental-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *queriesmock.MockCatalogQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockCatalogQueries(ctrl)
	h := api.NewCatalogHandler(q)

	router := gin.New()
	router.GET("/shops", h.ListShops)
	router.GET("/carmodels", h.ListCarModels)
	return router, q
}

func TestCatalogHandler_ListShops(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, q := newCatalogRouter(t)
		q.EXPECT().ListShops(gomock.Any()).Return([]*queries.ShopView{
			{ID: 1, Name: "Shinjuku"},
			{ID: 2, Name: "Shibuya"},
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/shops", nil, "")

		var response []resdto.ShopResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		assert.Equal(t, []resdto.ShopResponse{{ID: 1, Name: "Shinjuku"}, {ID: 2, Name: "Shibuya"}}, response)
	})

	t.Run("storage failure", func(t *testing.T) {
		router, q := newCatalogRouter(t)
		q.EXPECT().ListShops(gomock.Any()).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/shops", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCatalogHandler_ListCarModels(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, q := newCatalogRouter(t)
		q.EXPECT().ListCarModels(gomock.Any()).Return([]*queries.CarModelView{
			{ID: 1, Name: "Prius", RankName: "A", PricePerDay: 5000},
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/carmodels", nil, "")

		var response []resdto.CarModelResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		assert.Equal(t, []resdto.CarModelResponse{{ID: 1, Name: "Prius", RankName: "A", PricePerDay: 5000}}, response)
	})

	t.Run("storage failure", func(t *testing.T) {
		router, q := newCatalogRouter(t)
		q.EXPECT().ListCarModels(gomock.Any()).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/carmodels", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
