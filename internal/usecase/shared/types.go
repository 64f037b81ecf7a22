package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type VehicleSnapshot struct {
	ID         int64
	ShopID     int64
	CarModelID int64
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

const (
	JobKindReservationConfirmed = "reservation_confirmed"

	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

// ReservationConfirmedEvent is the outbox payload written with every confirmed booking.
type ReservationConfirmedEvent struct {
	ReservationID uuid.UUID `json:"reservationId"`
	VehicleID     int64     `json:"vehicleId"`
	UserID        uuid.UUID `json:"userId"`
	ShopID        int64     `json:"shopId"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Price         int64     `json:"price"`
	ConfirmedAt   time.Time `json:"confirmedAt"`
}
