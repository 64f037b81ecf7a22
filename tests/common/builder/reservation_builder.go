//go:build unit || e2e

package builder

import (
	"time"

	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	VehicleID    int64
	CarNumber    string
	CarModelName string
	ShopName     string
	Start        time.Time
	End          time.Time
	Price        int64
	Status       string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		VehicleID:    1,
		CarNumber:    "品川 300 あ 12-34",
		CarModelName: "Prius",
		ShopName:     "Shinjuku",
		Start:        time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2030, 1, 3, 0, 0, 0, 0, time.UTC),
		Price:        15000,
		Status:       "confirmed",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           b.ID,
		UserID:       b.UserID,
		VehicleID:    b.VehicleID,
		CarNumber:    b.CarNumber,
		CarModelName: b.CarModelName,
		ShopName:     b.ShopName,
		StartDate:    b.Start,
		EndDate:      b.End,
		Price:        b.Price,
		Status:       b.Status,
		CreatedAt:    time.Date(2029, 12, 1, 10, 0, 0, 0, time.UTC),
	}
}

func NewConfirmRequest(sessionID string, vehicleID int64) reqdto.ConfirmReservationRequest {
	return reqdto.ConfirmReservationRequest{SessionID: sessionID, VehicleID: vehicleID}
}
