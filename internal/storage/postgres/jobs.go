package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"dealscout/internal/domain"
)

type JobStore struct {
	db *sqlx.DB
}

func NewJobStore(db *sqlx.DB) *JobStore {
	return &JobStore{db: db}
}

func (s *JobStore) Enqueue(ctx context.Context, jobType string, payload []byte) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO job_queue (type, payload, status)
		VALUES ($1, $2, 'pending')
		RETURNING id`,
		jobType, payload,
	).Scan(&id)
	return id, err
}

// ClaimNext atomically claims the oldest pending job, or returns nil when the
// queue is empty. SKIP LOCKED lets concurrent drainers claim disjoint jobs.
func (s *JobStore) ClaimNext(ctx context.Context) (*domain.Job, error) {
	query := `
		UPDATE job_queue
		SET status = 'processing', started_at = now()
		WHERE id = (
			SELECT id FROM job_queue
			WHERE status = 'pending'
			ORDER BY created_at, id
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING id, type, payload, status, created_at, started_at`

	var job domain.Job
	err := s.db.QueryRowxContext(ctx, query).Scan(
		&job.ID, &job.Type, &job.Payload, &job.Status, &job.CreatedAt, &job.StartedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobStore) MarkCompleted(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE job_queue SET status = 'completed', completed_at = now() WHERE id = $1`,
		id,
	)
	return err
}

func (s *JobStore) MarkFailed(ctx context.Context, id int64, reason string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE job_queue SET status = 'failed', error = $2, completed_at = now() WHERE id = $1`,
		id, reason,
	)
	return err
}
