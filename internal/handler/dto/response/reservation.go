package response

import (
	"time"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const ReservationConfirmedMessage = "Reservation confirmed"

type ConfirmReservationResponse struct {
	Message       string    `json:"message"`
	ReservationID uuid.UUID `json:"reservationId"`
	VehicleID     int64     `json:"vehicleId"`
	DepartureDate string    `json:"departureDate"`
	ReturnDate    string    `json:"returnDate"`
	Price         int64     `json:"price"`
}

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     int64     `json:"vehicleId"`
	CarNumber     string    `json:"carNumber"`
	CarModelName  string    `json:"carModelName"`
	ShopName      string    `json:"shopName"`
	DepartureDate string    `json:"departureDate"`
	ReturnDate    string    `json:"returnDate"`
	Price         int64     `json:"price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromConfirmResult(result *commands.ConfirmReservationResult) ConfirmReservationResponse {
	return ConfirmReservationResponse{
		Message:       ReservationConfirmedMessage,
		ReservationID: result.ReservationID,
		VehicleID:     result.VehicleID,
		DepartureDate: result.Period.Start().Format(reservation.DateLayout),
		ReturnDate:    result.Period.End().Format(reservation.DateLayout),
		Price:         result.Price,
	}
}

func FromReservationView(view *queries.ReservationView) ReservationResponse {
	return ReservationResponse{
		ID:            view.ID,
		VehicleID:     view.VehicleID,
		CarNumber:     view.CarNumber,
		CarModelName:  view.CarModelName,
		ShopName:      view.ShopName,
		DepartureDate: view.StartDate.Format(reservation.DateLayout),
		ReturnDate:    view.EndDate.Format(reservation.DateLayout),
		Price:         view.Price,
		Status:        view.Status,
		CreatedAt:     view.CreatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromReservationView(v))
	}
	return out
}
