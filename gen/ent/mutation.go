// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pvillanueva/fup-consult/gen/ent/batchitem"
	"github.com/pvillanueva/fup-consult/gen/ent/batchjob"
	"github.com/pvillanueva/fup-consult/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBatchItem = "BatchItem"
	TypeBatchJob  = "BatchJob"
)

// BatchItemMutation represents an operation that mutates the BatchItem nodes in the graph.
type BatchItemMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	ruc               *string
	status            *string
	retry_count       *int
	addretry_count    *int
	max_retries       *int
	addmax_retries    *int
	error_message     *string
	result_data       *json.RawMessage
	appendresult_data json.RawMessage
	created_at        *time.Time
	processed_at      *time.Time
	clearedFields     map[string]struct{}
	job               *uuid.UUID
	clearedjob        bool
	done              bool
	oldValue          func(context.Context) (*BatchItem, error)
	predicates        []predicate.BatchItem
}

var _ ent.Mutation = (*BatchItemMutation)(nil)

// batchitemOption allows management of the mutation configuration using functional options.
type batchitemOption func(*BatchItemMutation)

// newBatchItemMutation creates new mutation for the BatchItem entity.
func newBatchItemMutation(c config, op Op, opts ...batchitemOption) *BatchItemMutation {
	m := &BatchItemMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchItemID sets the ID field of the mutation.
func withBatchItemID(id uuid.UUID) batchitemOption {
	return func(m *BatchItemMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchItem
		)
		m.oldValue = func(ctx context.Context) (*BatchItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchItem sets the old BatchItem of the mutation.
func withBatchItem(node *BatchItem) batchitemOption {
	return func(m *BatchItemMutation) {
		m.oldValue = func(context.Context) (*BatchItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BatchItem entities.
func (m *BatchItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *BatchItemMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *BatchItemMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *BatchItemMutation) ResetJobID() {
	m.job = nil
}

// SetRuc sets the "ruc" field.
func (m *BatchItemMutation) SetRuc(s string) {
	m.ruc = &s
}

// Ruc returns the value of the "ruc" field in the mutation.
func (m *BatchItemMutation) Ruc() (r string, exists bool) {
	v := m.ruc
	if v == nil {
		return
	}
	return *v, true
}

// OldRuc returns the old "ruc" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldRuc(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuc: %w", err)
	}
	return oldValue.Ruc, nil
}

// ResetRuc resets all changes to the "ruc" field.
func (m *BatchItemMutation) ResetRuc() {
	m.ruc = nil
}

// SetStatus sets the "status" field.
func (m *BatchItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchItemMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *BatchItemMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *BatchItemMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *BatchItemMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *BatchItemMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *BatchItemMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *BatchItemMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *BatchItemMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *BatchItemMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *BatchItemMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *BatchItemMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *BatchItemMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BatchItemMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BatchItemMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[batchitem.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BatchItemMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BatchItemMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, batchitem.FieldErrorMessage)
}

// SetResultData sets the "result_data" field.
func (m *BatchItemMutation) SetResultData(jm json.RawMessage) {
	m.result_data = &jm
	m.appendresult_data = nil
}

// ResultData returns the value of the "result_data" field in the mutation.
func (m *BatchItemMutation) ResultData() (r json.RawMessage, exists bool) {
	v := m.result_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResultData returns the old "result_data" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldResultData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultData: %w", err)
	}
	return oldValue.ResultData, nil
}

// AppendResultData adds jm to the "result_data" field.
func (m *BatchItemMutation) AppendResultData(jm json.RawMessage) {
	m.appendresult_data = append(m.appendresult_data, jm...)
}

// AppendedResultData returns the list of values that were appended to the "result_data" field in this mutation.
func (m *BatchItemMutation) AppendedResultData() (json.RawMessage, bool) {
	if len(m.appendresult_data) == 0 {
		return nil, false
	}
	return m.appendresult_data, true
}

// ClearResultData clears the value of the "result_data" field.
func (m *BatchItemMutation) ClearResultData() {
	m.result_data = nil
	m.appendresult_data = nil
	m.clearedFields[batchitem.FieldResultData] = struct{}{}
}

// ResultDataCleared returns if the "result_data" field was cleared in this mutation.
func (m *BatchItemMutation) ResultDataCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldResultData]
	return ok
}

// ResetResultData resets all changes to the "result_data" field.
func (m *BatchItemMutation) ResetResultData() {
	m.result_data = nil
	m.appendresult_data = nil
	delete(m.clearedFields, batchitem.FieldResultData)
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *BatchItemMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *BatchItemMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *BatchItemMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[batchitem.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *BatchItemMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *BatchItemMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, batchitem.FieldProcessedAt)
}

// ClearJob clears the "job" edge to the BatchJob entity.
func (m *BatchItemMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[batchitem.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the BatchJob entity was cleared.
func (m *BatchItemMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *BatchItemMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *BatchItemMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the BatchItemMutation builder.
func (m *BatchItemMutation) Where(ps ...predicate.BatchItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchItem).
func (m *BatchItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job != nil {
		fields = append(fields, batchitem.FieldJobID)
	}
	if m.ruc != nil {
		fields = append(fields, batchitem.FieldRuc)
	}
	if m.status != nil {
		fields = append(fields, batchitem.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, batchitem.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, batchitem.FieldMaxRetries)
	}
	if m.error_message != nil {
		fields = append(fields, batchitem.FieldErrorMessage)
	}
	if m.result_data != nil {
		fields = append(fields, batchitem.FieldResultData)
	}
	if m.created_at != nil {
		fields = append(fields, batchitem.FieldCreatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, batchitem.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchitem.FieldJobID:
		return m.JobID()
	case batchitem.FieldRuc:
		return m.Ruc()
	case batchitem.FieldStatus:
		return m.Status()
	case batchitem.FieldRetryCount:
		return m.RetryCount()
	case batchitem.FieldMaxRetries:
		return m.MaxRetries()
	case batchitem.FieldErrorMessage:
		return m.ErrorMessage()
	case batchitem.FieldResultData:
		return m.ResultData()
	case batchitem.FieldCreatedAt:
		return m.CreatedAt()
	case batchitem.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchitem.FieldJobID:
		return m.OldJobID(ctx)
	case batchitem.FieldRuc:
		return m.OldRuc(ctx)
	case batchitem.FieldStatus:
		return m.OldStatus(ctx)
	case batchitem.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case batchitem.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case batchitem.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case batchitem.FieldResultData:
		return m.OldResultData(ctx)
	case batchitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case batchitem.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BatchItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchitem.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case batchitem.FieldRuc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuc(v)
		return nil
	case batchitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batchitem.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case batchitem.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case batchitem.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case batchitem.FieldResultData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultData(v)
		return nil
	case batchitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case batchitem.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BatchItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchItemMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, batchitem.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, batchitem.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchitem.FieldRetryCount:
		return m.AddedRetryCount()
	case batchitem.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchitem.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case batchitem.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown BatchItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchitem.FieldErrorMessage) {
		fields = append(fields, batchitem.FieldErrorMessage)
	}
	if m.FieldCleared(batchitem.FieldResultData) {
		fields = append(fields, batchitem.FieldResultData)
	}
	if m.FieldCleared(batchitem.FieldProcessedAt) {
		fields = append(fields, batchitem.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchItemMutation) ClearField(name string) error {
	switch name {
	case batchitem.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case batchitem.FieldResultData:
		m.ClearResultData()
		return nil
	case batchitem.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchItemMutation) ResetField(name string) error {
	switch name {
	case batchitem.FieldJobID:
		m.ResetJobID()
		return nil
	case batchitem.FieldRuc:
		m.ResetRuc()
		return nil
	case batchitem.FieldStatus:
		m.ResetStatus()
		return nil
	case batchitem.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case batchitem.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case batchitem.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case batchitem.FieldResultData:
		m.ResetResultData()
		return nil
	case batchitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case batchitem.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, batchitem.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batchitem.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, batchitem.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchItemMutation) EdgeCleared(name string) bool {
	switch name {
	case batchitem.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchItemMutation) ClearEdge(name string) error {
	switch name {
	case batchitem.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown BatchItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchItemMutation) ResetEdge(name string) error {
	switch name {
	case batchitem.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown BatchItem edge %s", name)
}

// BatchJobMutation represents an operation that mutates the BatchJob nodes in the graph.
type BatchJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	filename           *string
	status             *string
	total_items        *int
	addtotal_items     *int
	completed_items    *int
	addcompleted_items *int
	failed_items       *int
	addfailed_items    *int
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	result_file        *string
	error_message      *string
	clearedFields      map[string]struct{}
	items              map[uuid.UUID]struct{}
	removeditems       map[uuid.UUID]struct{}
	cleareditems       bool
	done               bool
	oldValue           func(context.Context) (*BatchJob, error)
	predicates         []predicate.BatchJob
}

var _ ent.Mutation = (*BatchJobMutation)(nil)

// batchjobOption allows management of the mutation configuration using functional options.
type batchjobOption func(*BatchJobMutation)

// newBatchJobMutation creates new mutation for the BatchJob entity.
func newBatchJobMutation(c config, op Op, opts ...batchjobOption) *BatchJobMutation {
	m := &BatchJobMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchJobID sets the ID field of the mutation.
func withBatchJobID(id uuid.UUID) batchjobOption {
	return func(m *BatchJobMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchJob
		)
		m.oldValue = func(ctx context.Context) (*BatchJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchJob sets the old BatchJob of the mutation.
func withBatchJob(node *BatchJob) batchjobOption {
	return func(m *BatchJobMutation) {
		m.oldValue = func(context.Context) (*BatchJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BatchJob entities.
func (m *BatchJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *BatchJobMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *BatchJobMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *BatchJobMutation) ResetFilename() {
	m.filename = nil
}

// SetStatus sets the "status" field.
func (m *BatchJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchJobMutation) ResetStatus() {
	m.status = nil
}

// SetTotalItems sets the "total_items" field.
func (m *BatchJobMutation) SetTotalItems(i int) {
	m.total_items = &i
	m.addtotal_items = nil
}

// TotalItems returns the value of the "total_items" field in the mutation.
func (m *BatchJobMutation) TotalItems() (r int, exists bool) {
	v := m.total_items
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalItems returns the old "total_items" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldTotalItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalItems: %w", err)
	}
	return oldValue.TotalItems, nil
}

// AddTotalItems adds i to the "total_items" field.
func (m *BatchJobMutation) AddTotalItems(i int) {
	if m.addtotal_items != nil {
		*m.addtotal_items += i
	} else {
		m.addtotal_items = &i
	}
}

// AddedTotalItems returns the value that was added to the "total_items" field in this mutation.
func (m *BatchJobMutation) AddedTotalItems() (r int, exists bool) {
	v := m.addtotal_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalItems resets all changes to the "total_items" field.
func (m *BatchJobMutation) ResetTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
}

// SetCompletedItems sets the "completed_items" field.
func (m *BatchJobMutation) SetCompletedItems(i int) {
	m.completed_items = &i
	m.addcompleted_items = nil
}

// CompletedItems returns the value of the "completed_items" field in the mutation.
func (m *BatchJobMutation) CompletedItems() (r int, exists bool) {
	v := m.completed_items
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedItems returns the old "completed_items" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldCompletedItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedItems: %w", err)
	}
	return oldValue.CompletedItems, nil
}

// AddCompletedItems adds i to the "completed_items" field.
func (m *BatchJobMutation) AddCompletedItems(i int) {
	if m.addcompleted_items != nil {
		*m.addcompleted_items += i
	} else {
		m.addcompleted_items = &i
	}
}

// AddedCompletedItems returns the value that was added to the "completed_items" field in this mutation.
func (m *BatchJobMutation) AddedCompletedItems() (r int, exists bool) {
	v := m.addcompleted_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedItems resets all changes to the "completed_items" field.
func (m *BatchJobMutation) ResetCompletedItems() {
	m.completed_items = nil
	m.addcompleted_items = nil
}

// SetFailedItems sets the "failed_items" field.
func (m *BatchJobMutation) SetFailedItems(i int) {
	m.failed_items = &i
	m.addfailed_items = nil
}

// FailedItems returns the value of the "failed_items" field in the mutation.
func (m *BatchJobMutation) FailedItems() (r int, exists bool) {
	v := m.failed_items
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedItems returns the old "failed_items" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldFailedItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedItems: %w", err)
	}
	return oldValue.FailedItems, nil
}

// AddFailedItems adds i to the "failed_items" field.
func (m *BatchJobMutation) AddFailedItems(i int) {
	if m.addfailed_items != nil {
		*m.addfailed_items += i
	} else {
		m.addfailed_items = &i
	}
}

// AddedFailedItems returns the value that was added to the "failed_items" field in this mutation.
func (m *BatchJobMutation) AddedFailedItems() (r int, exists bool) {
	v := m.addfailed_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedItems resets all changes to the "failed_items" field.
func (m *BatchJobMutation) ResetFailedItems() {
	m.failed_items = nil
	m.addfailed_items = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *BatchJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *BatchJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *BatchJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[batchjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *BatchJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[batchjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *BatchJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, batchjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *BatchJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BatchJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BatchJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[batchjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BatchJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[batchjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BatchJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, batchjob.FieldCompletedAt)
}

// SetResultFile sets the "result_file" field.
func (m *BatchJobMutation) SetResultFile(s string) {
	m.result_file = &s
}

// ResultFile returns the value of the "result_file" field in the mutation.
func (m *BatchJobMutation) ResultFile() (r string, exists bool) {
	v := m.result_file
	if v == nil {
		return
	}
	return *v, true
}

// OldResultFile returns the old "result_file" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldResultFile(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultFile: %w", err)
	}
	return oldValue.ResultFile, nil
}

// ClearResultFile clears the value of the "result_file" field.
func (m *BatchJobMutation) ClearResultFile() {
	m.result_file = nil
	m.clearedFields[batchjob.FieldResultFile] = struct{}{}
}

// ResultFileCleared returns if the "result_file" field was cleared in this mutation.
func (m *BatchJobMutation) ResultFileCleared() bool {
	_, ok := m.clearedFields[batchjob.FieldResultFile]
	return ok
}

// ResetResultFile resets all changes to the "result_file" field.
func (m *BatchJobMutation) ResetResultFile() {
	m.result_file = nil
	delete(m.clearedFields, batchjob.FieldResultFile)
}

// SetErrorMessage sets the "error_message" field.
func (m *BatchJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BatchJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BatchJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[batchjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BatchJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[batchjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BatchJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, batchjob.FieldErrorMessage)
}

// AddItemIDs adds the "items" edge to the BatchItem entity by ids.
func (m *BatchJobMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the BatchItem entity.
func (m *BatchJobMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the BatchItem entity was cleared.
func (m *BatchJobMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the BatchItem entity by IDs.
func (m *BatchJobMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the BatchItem entity.
func (m *BatchJobMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *BatchJobMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *BatchJobMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the BatchJobMutation builder.
func (m *BatchJobMutation) Where(ps ...predicate.BatchJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchJob).
func (m *BatchJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.filename != nil {
		fields = append(fields, batchjob.FieldFilename)
	}
	if m.status != nil {
		fields = append(fields, batchjob.FieldStatus)
	}
	if m.total_items != nil {
		fields = append(fields, batchjob.FieldTotalItems)
	}
	if m.completed_items != nil {
		fields = append(fields, batchjob.FieldCompletedItems)
	}
	if m.failed_items != nil {
		fields = append(fields, batchjob.FieldFailedItems)
	}
	if m.created_at != nil {
		fields = append(fields, batchjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, batchjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, batchjob.FieldCompletedAt)
	}
	if m.result_file != nil {
		fields = append(fields, batchjob.FieldResultFile)
	}
	if m.error_message != nil {
		fields = append(fields, batchjob.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchjob.FieldFilename:
		return m.Filename()
	case batchjob.FieldStatus:
		return m.Status()
	case batchjob.FieldTotalItems:
		return m.TotalItems()
	case batchjob.FieldCompletedItems:
		return m.CompletedItems()
	case batchjob.FieldFailedItems:
		return m.FailedItems()
	case batchjob.FieldCreatedAt:
		return m.CreatedAt()
	case batchjob.FieldStartedAt:
		return m.StartedAt()
	case batchjob.FieldCompletedAt:
		return m.CompletedAt()
	case batchjob.FieldResultFile:
		return m.ResultFile()
	case batchjob.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchjob.FieldFilename:
		return m.OldFilename(ctx)
	case batchjob.FieldStatus:
		return m.OldStatus(ctx)
	case batchjob.FieldTotalItems:
		return m.OldTotalItems(ctx)
	case batchjob.FieldCompletedItems:
		return m.OldCompletedItems(ctx)
	case batchjob.FieldFailedItems:
		return m.OldFailedItems(ctx)
	case batchjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case batchjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case batchjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case batchjob.FieldResultFile:
		return m.OldResultFile(ctx)
	case batchjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown BatchJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchjob.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case batchjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batchjob.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalItems(v)
		return nil
	case batchjob.FieldCompletedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedItems(v)
		return nil
	case batchjob.FieldFailedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedItems(v)
		return nil
	case batchjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case batchjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case batchjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case batchjob.FieldResultFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultFile(v)
		return nil
	case batchjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown BatchJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_items != nil {
		fields = append(fields, batchjob.FieldTotalItems)
	}
	if m.addcompleted_items != nil {
		fields = append(fields, batchjob.FieldCompletedItems)
	}
	if m.addfailed_items != nil {
		fields = append(fields, batchjob.FieldFailedItems)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchjob.FieldTotalItems:
		return m.AddedTotalItems()
	case batchjob.FieldCompletedItems:
		return m.AddedCompletedItems()
	case batchjob.FieldFailedItems:
		return m.AddedFailedItems()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchjob.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalItems(v)
		return nil
	case batchjob.FieldCompletedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedItems(v)
		return nil
	case batchjob.FieldFailedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedItems(v)
		return nil
	}
	return fmt.Errorf("unknown BatchJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchjob.FieldStartedAt) {
		fields = append(fields, batchjob.FieldStartedAt)
	}
	if m.FieldCleared(batchjob.FieldCompletedAt) {
		fields = append(fields, batchjob.FieldCompletedAt)
	}
	if m.FieldCleared(batchjob.FieldResultFile) {
		fields = append(fields, batchjob.FieldResultFile)
	}
	if m.FieldCleared(batchjob.FieldErrorMessage) {
		fields = append(fields, batchjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchJobMutation) ClearField(name string) error {
	switch name {
	case batchjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case batchjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case batchjob.FieldResultFile:
		m.ClearResultFile()
		return nil
	case batchjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown BatchJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchJobMutation) ResetField(name string) error {
	switch name {
	case batchjob.FieldFilename:
		m.ResetFilename()
		return nil
	case batchjob.FieldStatus:
		m.ResetStatus()
		return nil
	case batchjob.FieldTotalItems:
		m.ResetTotalItems()
		return nil
	case batchjob.FieldCompletedItems:
		m.ResetCompletedItems()
		return nil
	case batchjob.FieldFailedItems:
		m.ResetFailedItems()
		return nil
	case batchjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case batchjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case batchjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case batchjob.FieldResultFile:
		m.ResetResultFile()
		return nil
	case batchjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown BatchJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, batchjob.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batchjob.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, batchjob.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batchjob.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, batchjob.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchJobMutation) EdgeCleared(name string) bool {
	switch name {
	case batchjob.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BatchJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchJobMutation) ResetEdge(name string) error {
	switch name {
	case batchjob.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown BatchJob edge %s", name)
}
