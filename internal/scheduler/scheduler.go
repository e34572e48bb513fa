package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Task is one named periodic operation.
type Task struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Run      func(ctx context.Context) error

	running atomic.Bool
}

// Scheduler drives independent periodic tasks, each on its own ticker. A task
// still running when its ticker fires again is skipped for that tick, so slow
// sweeps never overlap themselves.
type Scheduler struct {
	tasks  []*Task
	logger *slog.Logger
}

func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

func (s *Scheduler) Add(task *Task) {
	s.tasks = append(s.tasks, task)
}

// Start runs every task immediately and then on its interval until the
// context is cancelled. It blocks until all task loops have stopped.
func (s *Scheduler) Start(ctx context.Context) error {
	var wg sync.WaitGroup

	for _, task := range s.tasks {
		s.logger.Info("task scheduled", "task", task.Name, "interval", task.Interval)

		wg.Add(1)
		go func(t *Task) {
			defer wg.Done()

			s.runTask(ctx, t)

			ticker := time.NewTicker(t.Interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					s.runTask(ctx, t)
				}
			}
		}(task)
	}

	wg.Wait()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runTask(ctx context.Context, t *Task) {
	if !t.running.CompareAndSwap(false, true) {
		s.logger.Warn("previous run still in progress, skipping tick", "task", t.Name)
		return
	}
	defer t.running.Store(false)

	runCtx := ctx
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	if err := t.Run(runCtx); err != nil {
		s.logger.Error("task failed", "task", t.Name, "error", err)
	}
}
