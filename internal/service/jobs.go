package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"dealscout/internal/domain"
)

// JobRunner drains the database-backed job queue. Each drain pass claims and
// executes jobs until the queue is empty; a failing job is marked failed and
// the pass continues.
type JobRunner struct {
	jobs      JobStore
	lifecycle *LifecycleService
	logger    *slog.Logger
}

func NewJobRunner(jobs JobStore, lifecycle *LifecycleService, logger *slog.Logger) *JobRunner {
	return &JobRunner{
		jobs:      jobs,
		lifecycle: lifecycle,
		logger:    logger.With("component", "jobs"),
	}
}

func (r *JobRunner) Drain(ctx context.Context) (*domain.DrainStats, error) {
	start := time.Now()
	stats := &domain.DrainStats{}

	for {
		job, err := r.jobs.ClaimNext(ctx)
		if err != nil {
			return stats, fmt.Errorf("claim next job: %w", err)
		}
		if job == nil {
			break
		}
		stats.Claimed++

		if err := r.execute(ctx, job); err != nil {
			r.logger.Warn("job failed", "job_id", job.ID, "type", job.Type, "error", err)
			if markErr := r.jobs.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
				r.logger.Error("failed to mark job failed", "job_id", job.ID, "error", markErr)
			}
			stats.Failed++
			continue
		}

		if err := r.jobs.MarkCompleted(ctx, job.ID); err != nil {
			r.logger.Error("failed to mark job completed", "job_id", job.ID, "error", err)
			stats.Failed++
			continue
		}
		stats.Completed++
	}

	stats.Duration = time.Since(start)

	if stats.Claimed > 0 {
		r.logger.Info("queue drained",
			"claimed", stats.Claimed,
			"completed", stats.Completed,
			"failed", stats.Failed,
			"duration", stats.Duration,
		)
	}

	return stats, nil
}

func (r *JobRunner) execute(ctx context.Context, job *domain.Job) error {
	switch job.Type {
	case domain.JobObserveListing:
		var listing domain.Listing
		if err := json.Unmarshal(job.Payload, &listing); err != nil {
			return fmt.Errorf("decode listing payload: %w", err)
		}
		return r.lifecycle.Observe(ctx, &listing)
	case domain.JobSweepListings:
		_, err := r.lifecycle.SweepStale(ctx)
		return err
	case domain.JobPurgeListings:
		_, err := r.lifecycle.Purge(ctx)
		return err
	default:
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
}
