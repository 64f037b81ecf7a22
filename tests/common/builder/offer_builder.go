//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/domain/reservation"
)

type OfferBuilder struct {
	VehicleID    int64
	CarModelName string
	ShopName     string
	Start        time.Time
	End          time.Time
	Price        int64
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		VehicleID:    1,
		CarModelName: "Prius",
		ShopName:     "Shinjuku",
		Start:        time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2030, 1, 3, 0, 0, 0, 0, time.UTC),
		Price:        15000,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithVehicleID(id int64) *OfferBuilder {
	b.VehicleID = id
	return b
}

func (b *OfferBuilder) WithDates(start, end time.Time) *OfferBuilder {
	b.Start, b.End = start, end
	return b
}

func (b *OfferBuilder) Period() reservation.Period {
	p, err := reservation.NewPeriod(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return p
}

// Build panics on invalid input; builders only serve tests.
func (b *OfferBuilder) Build() offer.Offer {
	price, err := reservation.NewMoney(b.Price)
	if err != nil {
		panic(err)
	}
	o, err := offer.New(b.VehicleID, b.CarModelName, b.ShopName, b.Period(), price)
	if err != nil {
		panic(err)
	}
	return o
}
