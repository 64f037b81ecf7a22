package reservation

import (
	"car-rental-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// Quote prices a period at the given per-day rate.
func (f *Factory) Quote(perDayRate int64, period Period) (Money, error) {
	rate, err := NewMoney(perDayRate)
	if err != nil {
		return Money{}, err
	}
	return f.PriceCalculator.Calculate(rate, period), nil
}

// CreateReservation builds a reservation at an already quoted price.
func (f *Factory) CreateReservation(vehicleID int64, userID uuid.UUID, shopID int64, period Period, price int64) (*Reservation, error) {
	amount, err := NewMoney(price)
	if err != nil {
		return nil, err
	}
	return NewReservation(vehicleID, userID, shopID, period, amount, f.Clock.Now())
}
