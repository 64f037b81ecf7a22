package request

import (
	"errors"
	"strings"
	"time"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/usecase/queries"
)

var (
	ErrInvalidDate           = errors.New("dates must be YYYY-MM-DD")
	ErrDateInPast            = errors.New("dates must not be earlier than today")
	ErrReturnBeforeDeparture = errors.New("return date must not be earlier than departure date")
)

type SearchCarsRequest struct {
	DepartureDate string `json:"departureDate" binding:"required"`
	ReturnDate    string `json:"returnDate" binding:"required"`
	ShopID        int64  `json:"shopId" binding:"required,gt=0"`
	CarModelID    int64  `json:"carModelId" binding:"required,gt=0"`
}

// ToCriteria validates both dates against today, which is a calendar date in the business time zone.
func (r SearchCarsRequest) ToCriteria(today time.Time, loc *time.Location) (queries.SearchCriteria, error) {
	departure, err := ParseDate(r.DepartureDate, loc)
	if err != nil {
		return queries.SearchCriteria{}, err
	}
	ret, err := ParseDate(r.ReturnDate, loc)
	if err != nil {
		return queries.SearchCriteria{}, err
	}

	if departure.Before(today) || ret.Before(today) {
		return queries.SearchCriteria{}, ErrDateInPast
	}
	if ret.Before(departure) {
		return queries.SearchCriteria{}, ErrReturnBeforeDeparture
	}

	period, err := reservation.NewPeriod(departure, ret)
	if err != nil {
		return queries.SearchCriteria{}, ErrReturnBeforeDeparture
	}

	return queries.SearchCriteria{
		Period:     period,
		ShopID:     r.ShopID,
		CarModelID: r.CarModelID,
	}, nil
}

// ParseDate accepts YYYY-MM-DD, or an RFC 3339 timestamp reduced to its date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(reservation.DateLayout, s); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return reservation.DateOf(ts.In(loc)), nil
	}
	return time.Time{}, ErrInvalidDate
}
