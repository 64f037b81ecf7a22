package queries

import (
	"time"

	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/domain/reservation"

	"github.com/google/uuid"
)

// SearchCriteria is a validated availability search.
type SearchCriteria struct {
	Period     reservation.Period
	ShopID     int64
	CarModelID int64
}

// AvailableVehicle is a vehicle with no overlapping reservation, joined with its pricing metadata.
type AvailableVehicle struct {
	VehicleID    int64
	CarModelName string
	ShopName     string
	PricePerDay  int64
}

type SearchResult struct {
	// SessionID is empty when nothing was available.
	SessionID string
	Offers    []offer.Offer
}

type OfferDetailView struct {
	Offer offer.Offer
	User  UserProfileView
}

type UserProfileView struct {
	ID       uuid.UUID
	Username string
	Email    string
	Address  string
}

// AuthUserView carries what login needs; the hash never leaves the usecase layer.
type AuthUserView struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}

type ShopView struct {
	ID   int64
	Name string
}

type CarModelView struct {
	ID          int64
	Name        string
	RankName    string
	PricePerDay int64
}

type ReservationView struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	VehicleID    int64
	CarNumber    string
	CarModelName string
	ShopName     string
	StartDate    time.Time
	EndDate      time.Time
	Price        int64
	Status       string
	CreatedAt    time.Time
}
