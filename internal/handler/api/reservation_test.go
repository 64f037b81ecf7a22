//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"car-rental-api/internal/handler/api"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/builder"
	"car-rental-api/tests/common/httptest"
	"car-rental-api/tests/common/testutil"
	commandsmock "car-rental-api/tests/mock/commands"
	queriesmock "car-rental-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	userID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.userID = uuid.New()
	handler := api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Stand-in for RequireAuth
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
	})
	s.router.POST("/reservations", handler.Confirm)
	s.router.GET("/users/reservations", handler.ListMine)
	s.router.GET("/users/reservations/:id", handler.GetByID)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestConfirm() {
	url := "/reservations"
	reqBody := builder.NewConfirmRequest("session-1", 1)
	ob := builder.NewOfferBuilder()

	s.Run("success: returns 201 with the reservation id", func() {
		reservationID := uuid.New()
		s.mockCommands.EXPECT().Confirm(gomock.Any(), reqBody, s.userID).
			Return(&commands.ConfirmReservationResult{
				ReservationID: reservationID,
				VehicleID:     1,
				Period:        ob.Period(),
				Price:         15000,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ConfirmReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(resdto.ReservationConfirmedMessage, response.Message)
		s.Equal(reservationID, response.ReservationID)
		s.Equal("2030-01-01", response.DepartureDate)
		s.Equal("2030-01-03", response.ReturnDate)
		s.Equal(int64(15000), response.Price)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing session id", mutate: testutil.Field("sessionId", nil)},
			{name: "empty session id", mutate: testutil.Field("sessionId", "")},
			{name: "missing vehicle id", mutate: testutil.Field("vehicleId", nil)},
			{name: "negative vehicle id", mutate: testutil.Field("vehicleId", -1)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 without identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "offer expired", commandsError: commands.ErrOfferNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Offer not found"},
			{name: "vehicle gone", commandsError: commands.ErrVehicleNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Vehicle not found"},
			{name: "double booking", commandsError: commands.ErrReservationConflict, expectedStatus: http.StatusConflict, expectedMsg: "search again"},
			{name: "storage failure", commandsError: commands.ErrDatabaseOperationFailed, expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
			{name: "unexpected error", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), reqBody, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's reservations", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.UserID = s.userID }).BuildView(),
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.UserID = s.userID; b.VehicleID = 2 }).BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/reservations", nil, "bearer-token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal("2030-01-01", response[0].DepartureDate)
		s.Equal(int64(2), response[1].VehicleID)
	})

	s.Run("success: empty list renders as an array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/reservations", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(nil, queries.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/reservations", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestGetByID() {
	view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.UserID = s.userID }).BuildView()
	url := "/users/reservations/" + view.ID.String()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})

	s.Run("error: 404 when missing or owned by someone else", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
