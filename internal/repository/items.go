package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pvillanueva/fup-consult/constants"
	"github.com/pvillanueva/fup-consult/gen/ent"
	entitem "github.com/pvillanueva/fup-consult/gen/ent/batchitem"
	"github.com/pvillanueva/fup-consult/internal/entity"
)

// BatchItemRepository persists batch items. It satisfies batch.ItemStore.
type BatchItemRepository interface {
	ListOutstanding(ctx context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error)
	ListCompleted(ctx context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error)
	CountByStatus(ctx context.Context, jobID uuid.UUID) (map[constants.ItemStatus]int, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, result json.RawMessage) error
	MarkRetrying(ctx context.Context, id uuid.UUID, retryCount int, message string) error
	MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, message string) error
}

type batchItemRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBatchItemRepository(entc *ent.Client, log *slog.Logger) BatchItemRepository {
	return &batchItemRepo{ent: entc, log: log}
}

// ListOutstanding returns the job's pending and retrying items in creation
// order. Re-querying every round (instead of carrying a worklist) is what
// makes the retry loop self-healing.
func (r *batchItemRepo) ListOutstanding(ctx context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error) {
	rows, err := r.ent.BatchItem.Query().
		Where(
			entitem.JobID(jobID),
			entitem.StatusIn(
				string(constants.ItemStatusPending),
				string(constants.ItemStatusRetrying),
			),
		).
		Order(ent.Asc(entitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("list outstanding items failed", "job_id", jobID, "err", err)
		return nil, err
	}
	return itemsToEntity(rows), nil
}

// ListCompleted returns completed items in creation order so assembled
// artifacts are deterministic.
func (r *batchItemRepo) ListCompleted(ctx context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error) {
	rows, err := r.ent.BatchItem.Query().
		Where(
			entitem.JobID(jobID),
			entitem.StatusEQ(string(constants.ItemStatusCompleted)),
		).
		Order(ent.Asc(entitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("list completed items failed", "job_id", jobID, "err", err)
		return nil, err
	}
	return itemsToEntity(rows), nil
}

// CountByStatus groups the job's items by status in one query, so the
// snapshot never double-counts an item across two buckets.
func (r *batchItemRepo) CountByStatus(ctx context.Context, jobID uuid.UUID) (map[constants.ItemStatus]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.ent.BatchItem.Query().
		Where(entitem.JobID(jobID)).
		GroupBy(entitem.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.log.Error("count items by status failed", "job_id", jobID, "err", err)
		return nil, err
	}
	counts := make(map[constants.ItemStatus]int, len(constants.ItemStatuses))
	for _, s := range constants.ItemStatuses {
		counts[constants.ItemStatus(s)] = 0
	}
	for _, row := range rows {
		counts[constants.ItemStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *batchItemRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.BatchItem.
		UpdateOneID(id).
		SetStatus(string(constants.ItemStatusProcessing)).
		Save(ctx)
	return err
}

func (r *batchItemRepo) MarkCompleted(ctx context.Context, id uuid.UUID, result json.RawMessage) error {
	_, err := r.ent.BatchItem.
		UpdateOneID(id).
		SetStatus(string(constants.ItemStatusCompleted)).
		SetResultData(result).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("batch_item mark completed failed", "item_id", id, "err", err)
	}
	return err
}

func (r *batchItemRepo) MarkRetrying(ctx context.Context, id uuid.UUID, retryCount int, message string) error {
	_, err := r.ent.BatchItem.
		UpdateOneID(id).
		SetStatus(string(constants.ItemStatusRetrying)).
		SetRetryCount(retryCount).
		SetErrorMessage(message).
		SetProcessedAt(time.Now()).
		Save(ctx)
	return err
}

func (r *batchItemRepo) MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, message string) error {
	_, err := r.ent.BatchItem.
		UpdateOneID(id).
		SetStatus(string(constants.ItemStatusFailed)).
		SetRetryCount(retryCount).
		SetErrorMessage(message).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("batch_item mark failed failed", "item_id", id, "err", err)
	}
	return err
}

func itemsToEntity(rows []*ent.BatchItem) []*entity.BatchItem {
	out := make([]*entity.BatchItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, itemToEntity(row))
	}
	return out
}

func itemToEntity(row *ent.BatchItem) *entity.BatchItem {
	return &entity.BatchItem{
		ID:           row.ID,
		JobID:        row.JobID,
		RUC:          row.Ruc,
		Status:       constants.ItemStatus(row.Status),
		RetryCount:   row.RetryCount,
		MaxRetries:   row.MaxRetries,
		ErrorMessage: row.ErrorMessage,
		ResultData:   row.ResultData,
		CreatedAt:    row.CreatedAt,
		ProcessedAt:  row.ProcessedAt,
	}
}
