package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"

	"car-rental-api/internal/domain/reservation"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound           = errs.ErrOfferNotFound
	ErrVehicleNotFound         = errs.ErrVehicleNotFound
	ErrReservationConflict     = errs.ErrReservationConflict
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type ConfirmReservationResult struct {
	ReservationID uuid.UUID
	VehicleID     int64
	Period        reservation.Period
	Price         int64
}

type ReservationCommands interface {
	// Confirm books the offer the user picked from an earlier search.
	Confirm(ctx context.Context, req reqdto.ConfirmReservationRequest, userID uuid.UUID) (*ConfirmReservationResult, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	sessions           shared.SearchSessionStore
	reservationFactory *reservation.Factory
	metrics            shared.Metrics
	clock              clock.Clock
	topic              string
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	sessions shared.SearchSessionStore,
	reservationFactory *reservation.Factory,
	metrics shared.Metrics,
	clock clock.Clock,
	cfg config.Config,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		sessions:           sessions,
		reservationFactory: reservationFactory,
		metrics:            metrics,
		clock:              clock,
		topic:              cfg.Outbox.Topic,
	}
}

func (r *reservationCommandsImpl) Confirm(
	ctx context.Context,
	req reqdto.ConfirmReservationRequest,
	userID uuid.UUID,
) (*ConfirmReservationResult, error) {
	result, err := r.confirm(ctx, req, userID)
	r.metrics.RecordConfirmation(confirmationOutcome(err))
	return result, err
}

func (r *reservationCommandsImpl) confirm(
	ctx context.Context,
	req reqdto.ConfirmReservationRequest,
	userID uuid.UUID,
) (*ConfirmReservationResult, error) {
	selected, err := r.sessions.Lookup(ctx, req.SessionID, req.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var confirmed *reservation.Reservation
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vehicle, err := tx.Reads().VehicleByID(ctx, selected.VehicleID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}

		entity, err := r.reservationFactory.CreateReservation(
			vehicle.ID,
			userID,
			vehicle.ShopID,
			selected.Period(),
			selected.Price(),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Reservations().LockVehicle(ctx, tx.DB(), vehicle.ID); err != nil {
			return err
		}

		overlapping, err := tx.Reservations().HasOverlap(ctx, tx.DB(), vehicle.ID, entity.Period())
		if err != nil {
			return err
		}
		if overlapping {
			return ErrReservationConflict
		}

		if _, err := tx.Reservations().Create(ctx, tx.DB(), entity); err != nil {
			return err
		}

		if err := r.enqueueConfirmedEvent(ctx, tx, entity); err != nil {
			return err
		}

		confirmed = entity
		return nil
	})
	if err != nil {
		return nil, translateConfirmError(err)
	}

	slog.InfoContext(ctx, "reservation confirmed",
		"reservation_id", confirmed.ID().String(),
		"vehicle_id", confirmed.VehicleID(),
		"period", confirmed.Period().String())

	return &ConfirmReservationResult{
		ReservationID: confirmed.ID(),
		VehicleID:     confirmed.VehicleID(),
		Period:        confirmed.Period(),
		Price:         confirmed.Price().Amount(),
	}, nil
}

func (r *reservationCommandsImpl) enqueueConfirmedEvent(ctx context.Context, tx shared.Tx, entity *reservation.Reservation) error {
	payload, err := json.Marshal(shared.ReservationConfirmedEvent{
		ReservationID: entity.ID(),
		VehicleID:     entity.VehicleID(),
		UserID:        entity.UserID(),
		ShopID:        entity.ShopID(),
		StartDate:     entity.Period().Start().Format(reservation.DateLayout),
		EndDate:       entity.Period().End().Format(reservation.DateLayout),
		Price:         entity.Price().Amount(),
		ConfirmedAt:   entity.CreatedAt(),
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.JobKindReservationConfirmed, r.topic, payload, r.clock.Now())
}

func translateConfirmError(err error) error {
	switch {
	case errs.Is(err, ErrReservationConflict), infra.IsKind(err, infra.KindConflict):
		return ErrReservationConflict
	case errs.Is(err, ErrVehicleNotFound):
		return ErrVehicleNotFound
	case errs.Is(err, ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func confirmationOutcome(err error) string {
	switch {
	case err == nil:
		return shared.OutcomeSuccess
	case errs.Is(err, ErrReservationConflict):
		return shared.OutcomeConflict
	case errs.Is(err, ErrOfferNotFound), errs.Is(err, ErrVehicleNotFound):
		return shared.OutcomeNotFound
	case errs.Is(err, ErrDomainValidation):
		return shared.OutcomeInvalidInput
	default:
		return shared.OutcomeError
	}
}
