package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingVehicle = errors.New("vehicle is required")
	ErrMissingUser    = errors.New("user is required")
	ErrMissingShop    = errors.New("shop is required")
)

// SystemActor is recorded as create_user/update_user for reservations made through the API.
const SystemActor = "user"

type Reservation struct {
	id        uuid.UUID
	vehicleID int64
	userID    uuid.UUID
	shopID    int64
	period    Period
	price     Money
	status    Status
	createdBy string
	createdAt time.Time
}

func NewReservation(vehicleID int64, userID uuid.UUID, shopID int64, period Period, price Money, now time.Time) (*Reservation, error) {
	switch {
	case vehicleID <= 0:
		return nil, ErrMissingVehicle
	case userID == uuid.Nil:
		return nil, ErrMissingUser
	case shopID <= 0:
		return nil, ErrMissingShop
	case period.IsZero():
		return nil, ErrInvalidPeriod
	}

	return &Reservation{
		id:        uuid.New(),
		vehicleID: vehicleID,
		userID:    userID,
		shopID:    shopID,
		period:    period,
		price:     price,
		status:    StatusConfirmed,
		createdBy: SystemActor,
		createdAt: now,
	}, nil
}

func (r *Reservation) ID() uuid.UUID {
	return r.id
}

func (r *Reservation) VehicleID() int64 {
	return r.vehicleID
}

func (r *Reservation) UserID() uuid.UUID {
	return r.userID
}

func (r *Reservation) ShopID() int64 {
	return r.shopID
}

func (r *Reservation) Period() Period {
	return r.period
}

func (r *Reservation) Price() Money {
	return r.price
}

func (r *Reservation) Status() Status {
	return r.status
}

func (r *Reservation) CreatedBy() string {
	return r.createdBy
}

func (r *Reservation) CreatedAt() time.Time {
	return r.createdAt
}
