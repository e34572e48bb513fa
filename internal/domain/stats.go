package domain

import "time"

// SweepStats holds the outcome of one stale-listing sweep.
type SweepStats struct {
	Scanned   int
	Marked    int
	Errors    int
	Published int
	Duration  time.Duration
}

// PurgeStats holds the outcome of one retention purge.
type PurgeStats struct {
	Deleted  int64
	Duration time.Duration
}

// DrainStats holds the outcome of one job-queue drain pass.
type DrainStats struct {
	Claimed   int
	Completed int
	Failed    int
	Duration  time.Duration
}
