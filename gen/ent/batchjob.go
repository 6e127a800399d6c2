// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pvillanueva/fup-consult/gen/ent/batchjob"
)

// BatchJob is the model entity for the BatchJob schema.
type BatchJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TotalItems holds the value of the "total_items" field.
	TotalItems int `json:"total_items,omitempty"`
	// CompletedItems holds the value of the "completed_items" field.
	CompletedItems int `json:"completed_items,omitempty"`
	// FailedItems holds the value of the "failed_items" field.
	FailedItems int `json:"failed_items,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ResultFile holds the value of the "result_file" field.
	ResultFile *string `json:"result_file,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BatchJobQuery when eager-loading is set.
	Edges        BatchJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BatchJobEdges holds the relations/edges for other nodes in the graph.
type BatchJobEdges struct {
	// Items holds the value of the items edge.
	Items []*BatchItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e BatchJobEdges) ItemsOrErr() ([]*BatchItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BatchJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batchjob.FieldTotalItems, batchjob.FieldCompletedItems, batchjob.FieldFailedItems:
			values[i] = new(sql.NullInt64)
		case batchjob.FieldFilename, batchjob.FieldStatus, batchjob.FieldResultFile, batchjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case batchjob.FieldCreatedAt, batchjob.FieldStartedAt, batchjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case batchjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BatchJob fields.
func (_m *BatchJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batchjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case batchjob.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case batchjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case batchjob.FieldTotalItems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_items", values[i])
			} else if value.Valid {
				_m.TotalItems = int(value.Int64)
			}
		case batchjob.FieldCompletedItems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_items", values[i])
			} else if value.Valid {
				_m.CompletedItems = int(value.Int64)
			}
		case batchjob.FieldFailedItems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_items", values[i])
			} else if value.Valid {
				_m.FailedItems = int(value.Int64)
			}
		case batchjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case batchjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case batchjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case batchjob.FieldResultFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_file", values[i])
			} else if value.Valid {
				_m.ResultFile = new(string)
				*_m.ResultFile = value.String
			}
		case batchjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BatchJob.
// This includes values selected through modifiers, order, etc.
func (_m *BatchJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the BatchJob entity.
func (_m *BatchJob) QueryItems() *BatchItemQuery {
	return NewBatchJobClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this BatchJob.
// Note that you need to call BatchJob.Unwrap() before calling this method if this BatchJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BatchJob) Update() *BatchJobUpdateOne {
	return NewBatchJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BatchJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BatchJob) Unwrap() *BatchJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BatchJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BatchJob) String() string {
	var builder strings.Builder
	builder.WriteString("BatchJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("total_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalItems))
	builder.WriteString(", ")
	builder.WriteString("completed_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedItems))
	builder.WriteString(", ")
	builder.WriteString("failed_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedItems))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResultFile; v != nil {
		builder.WriteString("result_file=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// BatchJobs is a parsable slice of BatchJob.
type BatchJobs []*BatchJob
