package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pvillanueva/fup-consult/constants"
)

// BatchItem represents one RUC within a batch job for data transfer between layers.
type BatchItem struct {
	ID           uuid.UUID            `json:"id"`
	JobID        uuid.UUID            `json:"job_id"`
	RUC          string               `json:"ruc"`
	Status       constants.ItemStatus `json:"status"`
	RetryCount   int                  `json:"retry_count"`
	MaxRetries   int                  `json:"max_retries"`
	ErrorMessage *string              `json:"error_message,omitempty"`
	ResultData   json.RawMessage      `json:"result_data,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	ProcessedAt  *time.Time           `json:"processed_at,omitempty"`
}
