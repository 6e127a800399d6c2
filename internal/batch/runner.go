package batch

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Runner executes batch jobs in the background. Job concurrency lives inside
// Service.Run; the runner only needs a single worker per slot to keep whole
// jobs from competing for the upstream API.
type Runner struct {
	svc     *Service
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan uuid.UUID
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type RunnerOption func(*Runner)

func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithQueueSize(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.ch = make(chan uuid.UUID, n)
		}
	}
}

func WithJobTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewRunner(svc *Service, logger *slog.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		svc:     svc,
		logger:  logger,
		workers: 1,
		timeout: 2 * time.Hour,
		ch:      make(chan uuid.UUID, 64),
	}
	for _, o := range opts {
		o(r)
	}
	r.start()
	return r
}

func (r *Runner) start() {
	r.once.Do(func() {
		for i := 0; i < r.workers; i++ {
			r.wg.Add(1)
			go func(workerID int) {
				defer r.wg.Done()
				r.logger.Info("batch worker started", "worker_id", workerID)

				for jobID := range r.ch {
					ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
					_, err := r.svc.Run(ctx, jobID)
					cancel()

					if err != nil {
						r.logger.Error("batch run failed", "worker_id", workerID, "job_id", jobID, "error", err)
					}
				}

				r.logger.Info("batch worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue schedules a job for background processing. A full queue blocks the
// caller rather than dropping the job.
func (r *Runner) Enqueue(_ context.Context, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		r.logger.Warn("cannot enqueue: runner is shutting down", "job_id", jobID)
		return nil
	}
	select {
	case r.ch <- jobID:
		r.logger.Info("queued batch job", "job_id", jobID)
	default:
		r.logger.Warn("runner queue full, applying backpressure", "job_id", jobID)
		r.ch <- jobID
	}
	return nil
}

// Shutdown stops accepting jobs and waits for in-flight runs to drain or the
// context to expire.
func (r *Runner) Shutdown(ctx context.Context) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.ch)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); r.wg.Wait() }()

	select {
	case <-ctx.Done():
		r.logger.Warn("runner shutdown interrupted by context")
	case <-done:
		r.logger.Info("runner drained, shutdown complete")
	}
}
