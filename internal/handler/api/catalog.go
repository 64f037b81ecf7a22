package api

import (
	"net/http"

	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List shops
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ShopResponse
// @Failure 500 {object} httperr.Response
// @Router /shops [get]
func (h *CatalogHandler) ListShops(c *gin.Context) {
	views, err := h.q.ListShops(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp, err := resdto.FromShopViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List car models
// @Description Lists car models with their rank and per-day rate
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CarModelResponse
// @Failure 500 {object} httperr.Response
// @Router /carmodels [get]
func (h *CatalogHandler) ListCarModels(c *gin.Context) {
	views, err := h.q.ListCarModels(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp, err := resdto.FromCarModelViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
