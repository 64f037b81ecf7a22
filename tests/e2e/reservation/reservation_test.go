//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/shared"
	"car-rental-api/tests/common/authtest"
	"car-rental-api/tests/common/dbtest"
	"car-rental-api/tests/common/httptest"
	"car-rental-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	searchURL          = "/api/search/cars"
	reservationsURL    = "/api/reservations"
	myReservationsURL  = "/api/users/reservations"
	concurrentRequests = 10
)

type reservationSuite struct {
	e2e.SharedSuite
	userID uuid.UUID
	token  string
	start  time.Time
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.userID, s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "taro")
	// 一か月先の日付で検索する
	s.start = reservation.DateOf(time.Now().In(s.Config.App.Location()).AddDate(0, 0, 30))
}

func (s *reservationSuite) day(offset int) time.Time {
	return s.start.AddDate(0, 0, offset)
}

func (s *reservationSuite) search(t *testing.T, shopID, modelID int64, from, to time.Time) resdto.SearchCarsResponse {
	t.Helper()

	body := request.SearchCarsRequest{
		DepartureDate: from.Format(reservation.DateLayout),
		ReturnDate:    to.Format(reservation.DateLayout),
		ShopID:        shopID,
		CarModelID:    modelID,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, searchURL, body, "")

	var res resdto.SearchCarsResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func vehicleIDs(offers []resdto.OfferResponse) []int64 {
	ids := make([]int64, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.VehicleID)
	}
	return ids
}

func (s *reservationSuite) TestSearch() {
	s.Run("空き車両が日数×日額で提示される", func() {
		t := s.T()

		res := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(0), s.day(2))

		require.NotEmpty(t, res.SessionID)
		require.Equal(t, []int64{dbtest.CarPrius1, dbtest.CarPrius2}, vehicleIDs(res.Offers))
		for _, o := range res.Offers {
			require.Equal(t, 3*dbtest.PriusRate, o.Price)
			require.Equal(t, s.day(0).Format(reservation.DateLayout), o.DepartureDate)
			require.Equal(t, s.day(2).Format(reservation.DateLayout), o.ReturnDate)
		}
	})

	s.Run("同日返却は1日分の料金", func() {
		res := s.search(s.T(), dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(0), s.day(0))
		require.NotEmpty(s.T(), res.Offers)
		require.Equal(s.T(), dbtest.PriusRate, res.Offers[0].Price)
	})

	s.Run("空きがなければメッセージを返す", func() {
		t := s.T()

		res := s.search(t, dbtest.ShopShibuya, dbtest.ModelPrius, s.day(0), s.day(2))

		require.Empty(t, res.SessionID)
		require.Equal(t, resdto.NoAvailableCarsMessage, res.Message)
		require.Empty(t, res.Offers)
	})

	s.Run("予約と重なる車両は除外され、隣接する期間は除外されない", func() {
		t := s.T()
		dbtest.CreateTestReservation(t, s.DB, s.userID, dbtest.CarPrius1, dbtest.ShopShinjuku, s.day(0), s.day(2), 15000)

		overlapping := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(2), s.day(4))
		require.Equal(t, []int64{dbtest.CarPrius2}, vehicleIDs(overlapping.Offers))

		adjacent := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(3), s.day(4))
		require.Equal(t, []int64{dbtest.CarPrius1, dbtest.CarPrius2}, vehicleIDs(adjacent.Offers))
	})

	s.Run("過去日付と逆転した期間は400", func() {
		t := s.T()
		yesterday := time.Now().In(s.Config.App.Location()).AddDate(0, 0, -1)

		cases := []request.SearchCarsRequest{
			{DepartureDate: yesterday.Format(reservation.DateLayout), ReturnDate: s.day(1).Format(reservation.DateLayout), ShopID: 1, CarModelID: 1},
			{DepartureDate: s.day(3).Format(reservation.DateLayout), ReturnDate: s.day(1).Format(reservation.DateLayout), ShopID: 1, CarModelID: 1},
			{DepartureDate: "not-a-date", ReturnDate: s.day(1).Format(reservation.DateLayout), ShopID: 1, CarModelID: 1},
		}
		for _, body := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, searchURL, body, "")
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		}
	})
}

func (s *reservationSuite) TestOfferDetail() {
	s.Run("利用者の連絡先とともに提示内容を返す", func() {
		t := s.T()
		res := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(0), s.day(1))

		url := fmt.Sprintf("/api/offers/%s/%d", res.SessionID, dbtest.CarPrius1)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)

		var detail resdto.OfferDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, dbtest.CarPrius1, detail.VehicleID)
		require.Equal(t, 2*dbtest.PriusRate, detail.Price)
		require.Equal(t, "taro", detail.UserName)
		require.Equal(t, "taro@example.com", detail.UserEmail)
	})

	s.Run("セッションにない車両は404", func() {
		t := s.T()
		res := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(0), s.day(1))

		url := fmt.Sprintf("/api/offers/%s/%d", res.SessionID, dbtest.CarAlphard)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

func (s *reservationSuite) TestConfirm() {
	s.Run("予約確定後は再検索に出てこない", func() {
		t := s.T()
		res := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(0), s.day(2))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.ConfirmReservationRequest{SessionID: res.SessionID, VehicleID: dbtest.CarPrius1}, s.token)

		var confirmed resdto.ConfirmReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &confirmed)
		require.Equal(t, resdto.ReservationConfirmedMessage, confirmed.Message)
		require.NotEqual(t, uuid.Nil, confirmed.ReservationID)
		require.Equal(t, 3*dbtest.PriusRate, confirmed.Price)

		again := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(0), s.day(2))
		require.Equal(t, []int64{dbtest.CarPrius2}, vehicleIDs(again.Offers))

		require.Equal(t, 1, dbtest.CountQueuedJobs(t, s.DB, shared.JobKindReservationConfirmed))
	})

	s.Run("同じ提示からの同時確定は1件だけ成功する", func() {
		t := s.T()
		res := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(0), s.day(2))
		body := request.ConfirmReservationRequest{SessionID: res.SessionID, VehicleID: dbtest.CarPrius1}

		codes := make([]int, concurrentRequests)
		var wg sync.WaitGroup
		for i := range concurrentRequests {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, concurrentRequests-1, conflicts, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountReservations(t, s.DB, dbtest.CarPrius1))
	})

	s.Run("別セッションで重なる期間を確定すると409", func() {
		t := s.T()
		first := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(0), s.day(2))
		second := s.search(t, dbtest.ShopShinjuku, dbtest.ModelPrius, s.day(2), s.day(5))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.ConfirmReservationRequest{SessionID: first.SessionID, VehicleID: dbtest.CarPrius1}, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.ConfirmReservationRequest{SessionID: second.SessionID, VehicleID: dbtest.CarPrius1}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "search again")
	})

	s.Run("存在しないセッションは404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.ConfirmReservationRequest{SessionID: "unknown-session", VehicleID: dbtest.CarPrius1}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
		require.Equal(t, 0, dbtest.CountReservations(t, s.DB, dbtest.CarPrius1))
	})
}

func (s *reservationSuite) TestMyReservations() {
	s.Run("自分の予約だけを出発日順に返す", func() {
		t := s.T()
		other := dbtest.CreateTestUser(t, s.DB, "hanako")

		later := dbtest.CreateTestReservation(t, s.DB, s.userID, dbtest.CarPrius1, dbtest.ShopShinjuku, s.day(10), s.day(11), 10000)
		earlier := dbtest.CreateTestReservation(t, s.DB, s.userID, dbtest.CarPrius2, dbtest.ShopShinjuku, s.day(1), s.day(1), 5000)
		dbtest.CreateTestReservation(t, s.DB, other, dbtest.CarAlphard, dbtest.ShopShinjuku, s.day(1), s.day(2), 24000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myReservationsURL, nil, s.token)

		var list []resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 2)
		require.Equal(t, earlier, list[0].ID)
		require.Equal(t, later, list[1].ID)
	})

	s.Run("他人の予約は404", func() {
		t := s.T()
		other := dbtest.CreateTestUser(t, s.DB, "hanako")
		theirs := dbtest.CreateTestReservation(t, s.DB, other, dbtest.CarAlphard, dbtest.ShopShinjuku, s.day(1), s.day(2), 24000)
		mine := dbtest.CreateTestReservation(t, s.DB, s.userID, dbtest.CarPrius1, dbtest.ShopShinjuku, s.day(1), s.day(2), 10000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myReservationsURL+"/"+theirs.String(), nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myReservationsURL+"/"+mine.String(), nil, s.token)
		var detail resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, "Shinagawa 300 A 12-34", detail.CarNumber)
	})
}

func (s *reservationSuite) TestCatalog() {
	s.Run("店舗と車種の一覧", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/shops", nil, "")
		var shops []resdto.ShopResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &shops)
		require.Len(t, shops, 3)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/carmodels", nil, "")
		var models []resdto.CarModelResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &models)
		require.Len(t, models, 4)
		require.Equal(t, resdto.CarModelResponse{ID: 1, Name: "Prius", RankName: "A", PricePerDay: 5000}, models[0])
	})
}
