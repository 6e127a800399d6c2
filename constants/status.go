package constants

// JobStatus is the canonical status for rows in batch_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"    // created, not yet claimed
	JobStatusProcessing JobStatus = "processing" // orchestrator is driving it
	JobStatusCompleted  JobStatus = "completed"  // terminal, artifact attached
	JobStatusFailed     JobStatus = "failed"     // terminal, error_message set
	JobStatusCancelled  JobStatus = "cancelled"  // terminal, cancelled by caller
)

// ItemStatus is the canonical status for rows in batch_items.
type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusProcessing ItemStatus = "processing"
	ItemStatusCompleted  ItemStatus = "completed"
	ItemStatusFailed     ItemStatus = "failed"
	ItemStatusRetrying   ItemStatus = "retrying"
)

// JobStatuses lists every job status in declaration order.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
	string(JobStatusCancelled),
}

// ItemStatuses lists every item status in declaration order.
var ItemStatuses = []string{
	string(ItemStatusPending),
	string(ItemStatusProcessing),
	string(ItemStatusCompleted),
	string(ItemStatusFailed),
	string(ItemStatusRetrying),
}

// Terminal reports whether a job status admits no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}

// Terminal reports whether an item status admits no further transitions.
func (s ItemStatus) Terminal() bool {
	return s == ItemStatusCompleted || s == ItemStatusFailed
}
