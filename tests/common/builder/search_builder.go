//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-api/internal/domain/reservation"
	reqdto "car-rental-api/internal/handler/dto/request"
)

type SearchBuilder struct {
	DepartureDate string
	ReturnDate    string
	ShopID        int64
	CarModelID    int64
}

// NewSearchBuilder searches a three day window starting a week from now.
func NewSearchBuilder() *SearchBuilder {
	start := time.Now().AddDate(0, 0, 7)
	return &SearchBuilder{
		DepartureDate: start.Format(reservation.DateLayout),
		ReturnDate:    start.AddDate(0, 0, 2).Format(reservation.DateLayout),
		ShopID:        1,
		CarModelID:    1,
	}
}

func (b *SearchBuilder) With(mutate func(*SearchBuilder)) *SearchBuilder {
	mutate(b)
	return b
}

func (b *SearchBuilder) WithDates(departure, ret time.Time) *SearchBuilder {
	b.DepartureDate = departure.Format(reservation.DateLayout)
	b.ReturnDate = ret.Format(reservation.DateLayout)
	return b
}

func (b *SearchBuilder) BuildDTO() reqdto.SearchCarsRequest {
	return reqdto.SearchCarsRequest{
		DepartureDate: b.DepartureDate,
		ReturnDate:    b.ReturnDate,
		ShopID:        b.ShopID,
		CarModelID:    b.CarModelID,
	}
}
