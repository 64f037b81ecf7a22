package api

import (
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const conflictMessage = "The car was booked by someone else for these dates. Please search again"

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Confirm reservation
// @Description Books an offer from an earlier search. The price and dates come from the search session, not the request.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmReservationRequest true "Confirm reservation request"
// @Success 201 {object} resdto.ConfirmReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Access token required", nil)
		return
	}

	var req reqdto.ConfirmReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Confirm(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found or expired. Please search again", nil)
		case errs.Is(err, commands.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errs.Is(err, commands.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, conflictMessage, nil)
		case errs.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConfirmResult(result))
}

// @Summary List my reservations
// @Description Lists the caller's reservations ordered by departure date
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /users/reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Access token required", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Description Gets one of the caller's reservations. Reservations of other users read as not found.
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /users/reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Access token required", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
