package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pvillanueva/fup-consult/constants"
	"github.com/pvillanueva/fup-consult/internal/common"
	"github.com/pvillanueva/fup-consult/internal/entity"
)

// ErrNotCancellable is returned by Cancel when the job is not processing.
var ErrNotCancellable = fmt.Errorf("job is not in a cancellable state")

// sampleResultsLimit caps how many completed payloads a Status snapshot
// carries.
const sampleResultsLimit = 10

// Service runs batch jobs: it claims a pending job, processes its items in
// bounded-concurrency retry rounds, assembles the consolidated result file
// and drives the job to a terminal status.
type Service struct {
	jobs      JobStore
	items     ItemStore
	lookup    Lookup
	assembler Assembler
	cfg       common.BatchConfig
	logger    *slog.Logger
}

func NewService(jobs JobStore, items ItemStore, lookup Lookup, assembler Assembler, cfg common.BatchConfig, logger *slog.Logger) *Service {
	return &Service{
		jobs:      jobs,
		items:     items,
		lookup:    lookup,
		assembler: assembler,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run processes a job to completion. Re-running a processing job resumes it:
// only outstanding items are re-fetched, already completed ones keep their
// results. Running a settled job is a no-op that returns its current state.
func (s *Service) Run(ctx context.Context, jobID uuid.UUID) (*entity.BatchJob, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status.Terminal() {
		s.logger.Info("batch job already settled", "job_id", jobID, "status", job.Status)
		return job, nil
	}

	if err := s.jobs.MarkStarted(ctx, jobID); err != nil {
		return nil, err
	}
	s.logger.Info("started batch job", "job_id", jobID, "total_items", job.TotalItems)

	if err := s.processAllItems(ctx, jobID); err != nil {
		s.failJob(jobID, err)
		return nil, err
	}

	// Cancellation may have landed while items were in flight.
	job, err = s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == constants.JobStatusCancelled {
		s.logger.Info("batch job cancelled, skipping assembly", "job_id", jobID)
		return job, nil
	}

	if err := s.assembleResult(ctx, job); err != nil {
		s.failJob(jobID, fmt.Errorf("assemble result: %w", err))
		return nil, err
	}
	if err := s.jobs.MarkCompleted(ctx, jobID); err != nil {
		return nil, err
	}
	s.logger.Info("completed batch job", "job_id", jobID)
	return s.jobs.Get(ctx, jobID)
}

// processAllItems runs up to MaxRetries+1 rounds. Each round re-queries the
// outstanding items so retries pick up exactly the ones that failed, and
// stops early once nothing is pending or retrying.
func (s *Service) processAllItems(ctx context.Context, jobID uuid.UUID) error {
	maxRounds := s.cfg.MaxRetries + 1
	chunkSize := s.cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 100
	}
	maxConcurrent := s.cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 20
	}
	sem := make(chan struct{}, maxConcurrent)

	for round := 0; round < maxRounds; round++ {
		job, err := s.jobs.Get(ctx, jobID)
		if err != nil {
			return err
		}
		if job.Status == constants.JobStatusCancelled {
			return nil
		}

		items, err := s.items.ListOutstanding(ctx, jobID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			break
		}
		s.logger.Info("processing round",
			"job_id", jobID, "round", round+1, "items", len(items), "workers", maxConcurrent)

		for start := 0; start < len(items); start += chunkSize {
			end := min(start+chunkSize, len(items))
			s.logger.Info("processing chunk", "job_id", jobID, "from", start+1, "to", end)

			var wg sync.WaitGroup
			for _, item := range items[start:end] {
				wg.Add(1)
				go func(item *entity.BatchItem) {
					defer wg.Done()
					sem <- struct{}{}
					defer func() { <-sem }()
					s.processItem(ctx, item)
				}(item)
			}
			wg.Wait()
		}

		if round < maxRounds-1 && s.cfg.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.cfg.RetryDelay):
			}
		}
	}
	return nil
}

func (s *Service) processItem(ctx context.Context, item *entity.BatchItem) {
	if err := s.items.MarkProcessing(ctx, item.ID); err != nil {
		s.logger.Error("mark processing failed", "item_id", item.ID, "err", err)
		return
	}

	rec, err := s.lookup.GetProviderData(ctx, item.RUC)
	if err != nil {
		s.markItemFailed(ctx, item, err.Error())
		return
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		s.markItemFailed(ctx, item, fmt.Sprintf("encode result: %v", err))
		return
	}

	if err := s.items.MarkCompleted(ctx, item.ID, payload); err != nil {
		s.logger.Error("mark completed failed", "item_id", item.ID, "err", err)
		return
	}
	if err := s.jobs.IncrementCompleted(ctx, item.JobID); err != nil {
		s.logger.Error("increment completed failed", "job_id", item.JobID, "err", err)
	}
	s.logger.Info("processed ruc", "ruc", item.RUC)
}

// markItemFailed bumps the retry counter and either schedules the item for
// the next round or fails it for good once its retries are spent. Only the
// final failure counts against the job.
func (s *Service) markItemFailed(ctx context.Context, item *entity.BatchItem, message string) {
	retryCount := item.RetryCount + 1
	if retryCount < item.MaxRetries {
		if err := s.items.MarkRetrying(ctx, item.ID, retryCount, message); err != nil {
			s.logger.Error("mark retrying failed", "item_id", item.ID, "err", err)
		}
	} else {
		if err := s.items.MarkFailed(ctx, item.ID, retryCount, message); err != nil {
			s.logger.Error("mark failed failed", "item_id", item.ID, "err", err)
		}
		if err := s.jobs.IncrementFailed(ctx, item.JobID); err != nil {
			s.logger.Error("increment failed failed", "job_id", item.JobID, "err", err)
		}
	}
	s.logger.Warn("failed to process ruc",
		"ruc", item.RUC, "retry_count", retryCount, "error", message)
}

func (s *Service) assembleResult(ctx context.Context, job *entity.BatchJob) error {
	items, err := s.items.ListCompleted(ctx, job.ID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		s.logger.Warn("no completed items, skipping result file", "job_id", job.ID)
		return nil
	}
	path, err := s.assembler.AssembleResult(ctx, job, items)
	if err != nil {
		return err
	}
	return s.jobs.AttachResult(ctx, job.ID, path)
}

// failJob records the failure on a fresh context so a cancelled run can
// still reach its terminal state.
func (s *Service) failJob(jobID uuid.UUID, cause error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(context.Background()), 5*time.Second)
	defer cancel()
	if err := s.jobs.MarkFailed(ctx, jobID, cause.Error()); err != nil {
		s.logger.Error("mark job failed failed", "job_id", jobID, "err", err)
	}
}

// Cancel flips a processing job to cancelled. In-flight items finish their
// current attempt; the runner observes the status at the next round boundary.
func (s *Service) Cancel(ctx context.Context, jobID uuid.UUID) error {
	ok, err := s.jobs.MarkCancelled(ctx, jobID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotCancellable
	}
	return nil
}

// Job returns the persisted job record.
func (s *Service) Job(ctx context.Context, jobID uuid.UUID) (*entity.BatchJob, error) {
	return s.jobs.Get(ctx, jobID)
}

// Status is a point-in-time snapshot of a job.
type Status struct {
	ID                 uuid.UUID                    `json:"id"`
	Filename           string                       `json:"filename"`
	Status             constants.JobStatus          `json:"status"`
	TotalItems         int                          `json:"total_items"`
	CompletedItems     int                          `json:"completed_items"`
	FailedItems        int                          `json:"failed_items"`
	PendingItems       int                          `json:"pending_items"`
	ProgressPercentage int                          `json:"progress_percentage"`
	ItemsByStatus      map[constants.ItemStatus]int `json:"items_by_status"`
	CreatedAt          time.Time                    `json:"created_at"`
	StartedAt          *time.Time                   `json:"started_at,omitempty"`
	CompletedAt        *time.Time                   `json:"completed_at,omitempty"`
	HasResultFile      bool                         `json:"has_result_file"`
	ErrorMessage       *string                      `json:"error_message,omitempty"`
	SampleResults      []json.RawMessage            `json:"sample_results,omitempty"`
}

// Status reports the job's progress, the per-status item breakdown and a
// small sample of completed payloads in creation order.
func (s *Service) Status(ctx context.Context, jobID uuid.UUID) (*Status, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.items.CountByStatus(ctx, jobID)
	if err != nil {
		return nil, err
	}

	var samples []json.RawMessage
	if byStatus[constants.ItemStatusCompleted] > 0 {
		completed, err := s.items.ListCompleted(ctx, jobID)
		if err != nil {
			return nil, err
		}
		for _, item := range completed[:min(sampleResultsLimit, len(completed))] {
			if len(item.ResultData) > 0 {
				samples = append(samples, item.ResultData)
			}
		}
	}

	return &Status{
		ID:                 job.ID,
		Filename:           job.Filename,
		Status:             job.Status,
		TotalItems:         job.TotalItems,
		CompletedItems:     job.CompletedItems,
		FailedItems:        job.FailedItems,
		PendingItems:       job.PendingItems(),
		ProgressPercentage: job.ProgressPercentage(),
		ItemsByStatus:      byStatus,
		CreatedAt:          job.CreatedAt,
		StartedAt:          job.StartedAt,
		CompletedAt:        job.CompletedAt,
		HasResultFile:      job.HasResultFile(),
		ErrorMessage:       job.ErrorMessage,
		SampleResults:      samples,
	}, nil
}
