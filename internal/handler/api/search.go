package api

import (
	"net/http"
	"strconv"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	q     queries.SearchQueries
	clock clock.Clock
	cfg   config.Config
}

func NewSearchHandler(q queries.SearchQueries, clk clock.Clock, cfg config.Config) *SearchHandler {
	return &SearchHandler{q: q, clock: clk, cfg: cfg}
}

// @Summary Search available cars
// @Description Lists vehicles of a car model at a shop that are free for every day of the period, priced per day. Offers stay confirmable through the returned session id.
// @Tags search
// @Accept json
// @Produce json
// @Param request body reqdto.SearchCarsRequest true "Search request"
// @Success 200 {object} resdto.SearchCarsResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /search/cars [post]
func (h *SearchHandler) SearchCars(c *gin.Context) {
	var req reqdto.SearchCarsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	loc := h.cfg.App.Location()
	criteria, err := req.ToCriteria(clock.Today(h.clock, loc), loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.q.SearchCars(c.Request.Context(), criteria)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchResult(result))
}

// @Summary Get offer detail
// @Description Shows one offer from a search session together with the caller's contact details
// @Tags search
// @Security BearerAuth
// @Produce json
// @Param sessionId path string true "Search session ID"
// @Param vehicleId path int true "Vehicle ID"
// @Success 200 {object} resdto.OfferDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /offers/{sessionId}/{vehicleId} [get]
func (h *SearchHandler) GetOfferDetail(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Access token required", nil)
		return
	}

	vehicleID, err := strconv.ParseInt(c.Param("vehicleId"), 10, 64)
	if err != nil || vehicleID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidPathParam, c.Param("vehicleId")), "Invalid vehicle id", nil)
		return
	}

	view, err := h.q.GetOfferDetail(c.Request.Context(), c.Param("sessionId"), vehicleID, userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found or expired. Please search again", nil)
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferDetail(view))
}
