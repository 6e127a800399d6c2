package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pvillanueva/fup-consult/constants"
	"github.com/pvillanueva/fup-consult/gen/ent"
	entjob "github.com/pvillanueva/fup-consult/gen/ent/batchjob"
	"github.com/pvillanueva/fup-consult/internal/common"
	"github.com/pvillanueva/fup-consult/internal/entity"
)

// BatchJobRepository persists batch jobs. It satisfies batch.JobStore.
type BatchJobRepository interface {
	CreateWithItems(ctx context.Context, filename string, rucs []string, maxRetries int) (*entity.BatchJob, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.BatchJob, error)
	MarkStarted(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementCompleted(ctx context.Context, id uuid.UUID) error
	IncrementFailed(ctx context.Context, id uuid.UUID) error
	AttachResult(ctx context.Context, id uuid.UUID, path string) error
}

type batchJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBatchJobRepository(entc *ent.Client, log *slog.Logger) BatchJobRepository {
	return &batchJobRepo{ent: entc, log: log}
}

// CreateWithItems creates the job and one item per RUC in a single
// transaction: callers never observe a job with a mismatched item count.
func (r *batchJobRepo) CreateWithItems(ctx context.Context, filename string, rucs []string, maxRetries int) (*entity.BatchJob, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin transaction")
	}

	row, err := tx.BatchJob.
		Create().
		SetFilename(filename).
		SetTotalItems(len(rucs)).
		SetStatus(string(constants.JobStatusPending)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("batch_job create failed", "filename", filename, "err", err)
		return nil, err
	}

	builders := make([]*ent.BatchItemCreate, 0, len(rucs))
	for _, ruc := range rucs {
		builders = append(builders, tx.BatchItem.
			Create().
			SetJobID(row.ID).
			SetRuc(ruc).
			SetMaxRetries(maxRetries))
	}
	if _, err := tx.BatchItem.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		r.log.Error("batch_item bulk create failed", "job_id", row.ID, "err", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit transaction")
	}
	r.log.Info("batch job created", "job_id", row.ID, "filename", filename, "total_items", len(rucs))
	return jobToEntity(row), nil
}

func (r *batchJobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.BatchJob, error) {
	row, err := r.ent.BatchJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return jobToEntity(row), nil
}

// MarkStarted claims a pending job. The conditional update makes repeated
// calls a no-op once the job is processing.
func (r *batchJobRepo) MarkStarted(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.BatchJob.
		Update().
		Where(entjob.ID(id), entjob.StatusEQ(string(constants.JobStatusPending))).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("batch_job mark started failed", "job_id", id, "err", err)
	}
	return err
}

func (r *batchJobRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.BatchJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusCompleted)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("batch_job mark completed failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("batch job completed", "job_id", id)
	return nil
}

func (r *batchJobRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.BatchJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetCompletedAt(time.Now()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("batch_job mark failed failed", "job_id", id, "err", err)
		return err
	}
	r.log.Warn("batch job failed", "job_id", id, "error", message)
	return nil
}

// MarkCancelled cancels a processing job. Returns false when the job was not
// in a cancellable state.
func (r *batchJobRepo) MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.BatchJob.
		Update().
		Where(entjob.ID(id), entjob.StatusEQ(string(constants.JobStatusProcessing))).
		SetStatus(string(constants.JobStatusCancelled)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("batch_job cancel failed", "job_id", id, "err", err)
		return false, err
	}
	if n > 0 {
		r.log.Info("batch job cancelled", "job_id", id)
	}
	return n > 0, nil
}

// IncrementCompleted bumps the completed counter with a single-field atomic
// add; concurrent item tasks never lose updates.
func (r *batchJobRepo) IncrementCompleted(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.BatchJob.
		Update().
		Where(entjob.ID(id)).
		AddCompletedItems(1).
		Save(ctx)
	return err
}

func (r *batchJobRepo) IncrementFailed(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.BatchJob.
		Update().
		Where(entjob.ID(id)).
		AddFailedItems(1).
		Save(ctx)
	return err
}

func (r *batchJobRepo) AttachResult(ctx context.Context, id uuid.UUID, path string) error {
	_, err := r.ent.BatchJob.
		UpdateOneID(id).
		SetResultFile(path).
		Save(ctx)
	if err != nil {
		r.log.Error("batch_job attach result failed", "job_id", id, "path", path, "err", err)
	}
	return err
}

func jobToEntity(row *ent.BatchJob) *entity.BatchJob {
	return &entity.BatchJob{
		ID:             row.ID,
		Filename:       row.Filename,
		Status:         constants.JobStatus(row.Status),
		TotalItems:     row.TotalItems,
		CompletedItems: row.CompletedItems,
		FailedItems:    row.FailedItems,
		CreatedAt:      row.CreatedAt,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
		ResultFile:     row.ResultFile,
		ErrorMessage:   row.ErrorMessage,
	}
}
