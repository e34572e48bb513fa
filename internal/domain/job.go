package domain

import (
	"encoding/json"
	"time"
)

type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Known job types.
const (
	JobObserveListing = "observe_listing"
	JobSweepListings  = "sweep_listings"
	JobPurgeListings  = "purge_listings"
)

// Job is one unit of deferred work in the database-backed queue.
type Job struct {
	ID          int64           `db:"id"`
	Type        string          `db:"type"`
	Payload     json.RawMessage `db:"payload"`
	Status      JobStatus       `db:"status"`
	Error       *string         `db:"error"`
	CreatedAt   time.Time       `db:"created_at"`
	StartedAt   *time.Time      `db:"started_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}
