// Package batch implements the consult batch lifecycle: ingesting RUC lists,
// running the concurrent fetch rounds, and assembling the consolidated result.
package batch

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/pvillanueva/fup-consult/constants"
	"github.com/pvillanueva/fup-consult/internal/entity"
	"github.com/pvillanueva/fup-consult/internal/provider"
)

// JobStore is the persistence contract for batch jobs. The repository
// package provides the ent-backed implementation.
type JobStore interface {
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

// ItemStore is the persistence contract for batch items.
type ItemStore interface {
	ListOutstanding(ctx context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error)
	ListCompleted(ctx context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error)
	CountByStatus(ctx context.Context, jobID uuid.UUID) (map[constants.ItemStatus]int, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, result json.RawMessage) error
	MarkRetrying(ctx context.Context, id uuid.UUID, retryCount int, message string) error
	MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, message string) error
}

// Lookup resolves a single RUC into its consolidated provider record.
type Lookup interface {
	GetProviderData(ctx context.Context, ruc string) (*provider.Record, error)
}

// Assembler writes the consolidated result file for a finished job and
// returns its path.
type Assembler interface {
	AssembleResult(ctx context.Context, job *entity.BatchJob, items []*entity.BatchItem) (string, error)
}
