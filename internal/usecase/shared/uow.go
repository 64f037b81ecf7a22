package shared

import (
	"context"
	"time"

	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	VehicleByID(ctx context.Context, id int64) (*VehicleSnapshot, error)
}

type ReservationRepository interface {
	// LockVehicle serializes bookings of one vehicle until the surrounding transaction ends.
	LockVehicle(ctx context.Context, tx db.DBTX, vehicleID int64) error
	HasOverlap(ctx context.Context, tx db.DBTX, vehicleID int64, period reservation.Period) (bool, error)
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDue locks due jobs with SKIP LOCKED so concurrent relays never share a job.
	ClaimDue(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string, nextRunAt time.Time, giveUp bool) error
}

// SearchSessionStore keeps search results between a search and its confirmation.
type SearchSessionStore interface {
	Create(ctx context.Context, offers []offer.Offer) (string, error)
	Lookup(ctx context.Context, sessionID string, vehicleID int64) (*offer.Offer, error)
}
