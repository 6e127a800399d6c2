package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pvillanueva/fup-consult/constants"
)

// BatchJob represents a batch job for data transfer between layers.
type BatchJob struct {
	ID             uuid.UUID           `json:"id"`
	Filename       string              `json:"filename"`
	Status         constants.JobStatus `json:"status"`
	TotalItems     int                 `json:"total_items"`
	CompletedItems int                 `json:"completed_items"`
	FailedItems    int                 `json:"failed_items"`
	CreatedAt      time.Time           `json:"created_at"`
	StartedAt      *time.Time          `json:"started_at,omitempty"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	ResultFile     *string             `json:"result_file,omitempty"`
	ErrorMessage   *string             `json:"error_message,omitempty"`
}

// PendingItems is the number of items that have not reached a terminal state.
func (j *BatchJob) PendingItems() int {
	return j.TotalItems - j.CompletedItems - j.FailedItems
}

// ProgressPercentage is completed*100/total, 0 for an empty job.
func (j *BatchJob) ProgressPercentage() int {
	if j.TotalItems == 0 {
		return 0
	}
	return j.CompletedItems * 100 / j.TotalItems
}

// HasResultFile reports whether assembly produced an artifact.
func (j *BatchJob) HasResultFile() bool {
	return j.ResultFile != nil && *j.ResultFile != ""
}
