package offer

import (
	"errors"
	"time"

	"car-rental-api/internal/domain/reservation"
)

var (
	ErrInvalidVehicle = errors.New("offer vehicle id must be positive")
	ErrMissingPeriod  = errors.New("offer period is required")
)

// Offer is one priced, bookable vehicle produced by a search. It never changes after creation.
type Offer struct {
	vehicleID    int64
	carModelName string
	shopName     string
	period       reservation.Period
	price        reservation.Money
}

func New(vehicleID int64, carModelName, shopName string, period reservation.Period, price reservation.Money) (Offer, error) {
	if vehicleID <= 0 {
		return Offer{}, ErrInvalidVehicle
	}
	if period.IsZero() {
		return Offer{}, ErrMissingPeriod
	}
	return Offer{
		vehicleID:    vehicleID,
		carModelName: carModelName,
		shopName:     shopName,
		period:       period,
		price:        price,
	}, nil
}

func (o Offer) VehicleID() int64 {
	return o.vehicleID
}

func (o Offer) CarModelName() string {
	return o.carModelName
}

func (o Offer) ShopName() string {
	return o.shopName
}

func (o Offer) Period() reservation.Period {
	return o.period
}

func (o Offer) Price() int64 {
	return o.price.Amount()
}

// Snapshot is the serialized form used by shared session stores.
type Snapshot struct {
	VehicleID    int64  `json:"vehicleId"`
	CarModelName string `json:"carModelName"`
	ShopName     string `json:"shopName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Price        int64  `json:"price"`
}

func (o Offer) Snapshot() Snapshot {
	return Snapshot{
		VehicleID:    o.vehicleID,
		CarModelName: o.carModelName,
		ShopName:     o.shopName,
		StartDate:    o.period.Start().Format(reservation.DateLayout),
		EndDate:      o.period.End().Format(reservation.DateLayout),
		Price:        o.price.Amount(),
	}
}

func FromSnapshot(s Snapshot) (Offer, error) {
	start, err := time.Parse(reservation.DateLayout, s.StartDate)
	if err != nil {
		return Offer{}, err
	}
	end, err := time.Parse(reservation.DateLayout, s.EndDate)
	if err != nil {
		return Offer{}, err
	}
	period, err := reservation.NewPeriod(start, end)
	if err != nil {
		return Offer{}, err
	}
	price, err := reservation.NewMoney(s.Price)
	if err != nil {
		return Offer{}, err
	}
	return New(s.VehicleID, s.CarModelName, s.ShopName, period, price)
}
