//go:build unit || e2e

package fakes

import (
	"context"
	"sync"
	"time"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Job is a notification job as the fake unit of work stores it.
type Job struct {
	shared.NotificationJob
	Status    string
	LastError string
}

// UnitOfWork runs every transaction under one mutex, which stands in for the
// per-vehicle advisory lock. Failed transactions restore the previous state.
type UnitOfWork struct {
	mu sync.Mutex

	Vehicles     map[int64]shared.VehicleSnapshot
	Reservations []*reservation.Reservation
	Jobs         []*Job

	// CreateErr, when set, is returned by every reservation insert.
	CreateErr error
	// ClaimErr, when set, is returned by every ClaimDue.
	ClaimErr error

	Commits   int
	Rollbacks int
}

func NewUnitOfWork(vehicles ...shared.VehicleSnapshot) *UnitOfWork {
	u := &UnitOfWork{Vehicles: make(map[int64]shared.VehicleSnapshot)}
	for _, v := range vehicles {
		u.Vehicles[v.ID] = v
	}
	return u
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	savedReservations := append([]*reservation.Reservation(nil), u.Reservations...)
	savedJobs := make([]*Job, len(u.Jobs))
	for i, j := range u.Jobs {
		cp := *j
		savedJobs[i] = &cp
	}

	if err := fn(ctx, &fakeTx{uow: u}); err != nil {
		u.Reservations = savedReservations
		u.Jobs = savedJobs
		u.Rollbacks++
		return err
	}
	u.Commits++
	return nil
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &fakeReads{uow: u}
}

// Snapshot returns the committed reservations.
func (u *UnitOfWork) Snapshot() []*reservation.Reservation {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]*reservation.Reservation(nil), u.Reservations...)
}

// QueueJob adds a queued job outside any transaction.
func (u *UnitOfWork) QueueJob(kind, topic string, payload []byte, runAt time.Time) *Job {
	u.mu.Lock()
	defer u.mu.Unlock()
	job := &Job{
		NotificationJob: shared.NotificationJob{
			ID:      uuid.New(),
			Kind:    kind,
			Topic:   topic,
			Payload: payload,
			RunAt:   runAt,
		},
		Status: shared.JobStatusQueued,
	}
	u.Jobs = append(u.Jobs, job)
	return job
}

func (u *UnitOfWork) findJob(id uuid.UUID) *Job {
	for _, j := range u.Jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}

type fakeTx struct {
	uow *UnitOfWork
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeReservations{uow: t.uow} }
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &fakeNotifications{uow: t.uow}
}
func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{uow: t.uow} }
func (t *fakeTx) DB() db.DBTX                { return nil }

type fakeReads struct {
	uow *UnitOfWork
}

func (r *fakeReads) VehicleByID(_ context.Context, id int64) (*shared.VehicleSnapshot, error) {
	v, ok := r.uow.Vehicles[id]
	if !ok {
		return nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return &v, nil
}

type fakeReservations struct {
	uow *UnitOfWork
}

func (r *fakeReservations) LockVehicle(context.Context, db.DBTX, int64) error {
	return nil
}

func (r *fakeReservations) HasOverlap(_ context.Context, _ db.DBTX, vehicleID int64, period reservation.Period) (bool, error) {
	for _, existing := range r.uow.Reservations {
		if existing.VehicleID() == vehicleID &&
			existing.Status() == reservation.StatusConfirmed &&
			existing.Period().Overlaps(period) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservations) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if r.uow.CreateErr != nil {
		return uuid.Nil, r.uow.CreateErr
	}
	r.uow.Reservations = append(r.uow.Reservations, res)
	return res.ID(), nil
}

type fakeNotifications struct {
	uow *UnitOfWork
}

func (n *fakeNotifications) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	n.uow.Jobs = append(n.uow.Jobs, &Job{
		NotificationJob: shared.NotificationJob{
			ID:      uuid.New(),
			Kind:    kind,
			Topic:   topic,
			Payload: payload,
			RunAt:   runAt,
		},
		Status: shared.JobStatusQueued,
	})
	return nil
}

func (n *fakeNotifications) ClaimDue(_ context.Context, _ db.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	if n.uow.ClaimErr != nil {
		return nil, n.uow.ClaimErr
	}
	var due []shared.NotificationJob
	for _, j := range n.uow.Jobs {
		if len(due) == limit {
			break
		}
		if j.Status == shared.JobStatusQueued && !j.RunAt.After(now) {
			due = append(due, j.NotificationJob)
		}
	}
	return due, nil
}

func (n *fakeNotifications) MarkSent(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	j := n.uow.findJob(id)
	if j == nil {
		return infra.WrapRepoErr("job not found", nil, infra.KindNotFound)
	}
	j.Status = shared.JobStatusSent
	j.Attempts++
	j.LastError = ""
	return nil
}

func (n *fakeNotifications) MarkFailed(_ context.Context, _ db.DBTX, id uuid.UUID, lastError string, nextRunAt time.Time, giveUp bool) error {
	j := n.uow.findJob(id)
	if j == nil {
		return infra.WrapRepoErr("job not found", nil, infra.KindNotFound)
	}
	j.Attempts++
	j.LastError = lastError
	j.RunAt = nextRunAt
	j.Status = shared.JobStatusQueued
	if giveUp {
		j.Status = shared.JobStatusFailed
	}
	return nil
}
