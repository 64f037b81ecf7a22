package repository

import (
	"context"
	"time"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	createNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

	claimDueNotificationJobsSQL = `
SELECT id, kind, topic, payload, run_at, attempts
FROM notification_jobs
WHERE status = 'queued'
  AND run_at <= $1
ORDER BY run_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

	markNotificationJobSentSQL = `
UPDATE notification_jobs
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = now()
WHERE id = $1`

	markNotificationJobFailedSQL = `
UPDATE notification_jobs
SET status = $2, attempts = attempts + 1, last_error = $3, run_at = $4, updated_at = now()
WHERE id = $1`
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, createNotificationJobSQL,
		kind,
		topic,
		payload,
		pgconv.TimeToPgtype(runAt),
		shared.JobStatusQueued,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := tx.Query(ctx, claimDueNotificationJobsSQL, pgconv.TimeToPgtype(now), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	jobs := make([]shared.NotificationJob, 0, limit)
	for rows.Next() {
		var (
			job   shared.NotificationJob
			runAt pgtype.Timestamptz
		)
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &runAt, &job.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		job.RunAt = pgconv.TimeFromPgtype(runAt)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}

	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, markNotificationJobSentSQL, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkFailed requeues the job at nextRunAt, or parks it as failed when giveUp is set.
func (r *NotificationRepository) MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string, nextRunAt time.Time, giveUp bool) error {
	status := shared.JobStatusQueued
	if giveUp {
		status = shared.JobStatusFailed
	}

	_, err := tx.Exec(ctx, markNotificationJobFailedSQL,
		id,
		status,
		pgtype.Text{String: lastError, Valid: lastError != ""},
		pgconv.TimeToPgtype(nextRunAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
