// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pvillanueva/fup-consult/gen/ent/batchitem"
	"github.com/pvillanueva/fup-consult/gen/ent/batchjob"
	"github.com/pvillanueva/fup-consult/gen/ent/predicate"
)

// BatchJobUpdate is the builder for updating BatchJob entities.
type BatchJobUpdate struct {
	config
	hooks    []Hook
	mutation *BatchJobMutation
}

// Where appends a list predicates to the BatchJobUpdate builder.
func (_u *BatchJobUpdate) Where(ps ...predicate.BatchJob) *BatchJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *BatchJobUpdate) SetFilename(v string) *BatchJobUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *BatchJobUpdate) SetNillableFilename(v *string) *BatchJobUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchJobUpdate) SetStatus(v string) *BatchJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchJobUpdate) SetNillableStatus(v *string) *BatchJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedItems sets the "completed_items" field.
func (_u *BatchJobUpdate) SetCompletedItems(v int) *BatchJobUpdate {
	_u.mutation.ResetCompletedItems()
	_u.mutation.SetCompletedItems(v)
	return _u
}

// SetNillableCompletedItems sets the "completed_items" field if the given value is not nil.
func (_u *BatchJobUpdate) SetNillableCompletedItems(v *int) *BatchJobUpdate {
	if v != nil {
		_u.SetCompletedItems(*v)
	}
	return _u
}

// AddCompletedItems adds value to the "completed_items" field.
func (_u *BatchJobUpdate) AddCompletedItems(v int) *BatchJobUpdate {
	_u.mutation.AddCompletedItems(v)
	return _u
}

// SetFailedItems sets the "failed_items" field.
func (_u *BatchJobUpdate) SetFailedItems(v int) *BatchJobUpdate {
	_u.mutation.ResetFailedItems()
	_u.mutation.SetFailedItems(v)
	return _u
}

// SetNillableFailedItems sets the "failed_items" field if the given value is not nil.
func (_u *BatchJobUpdate) SetNillableFailedItems(v *int) *BatchJobUpdate {
	if v != nil {
		_u.SetFailedItems(*v)
	}
	return _u
}

// AddFailedItems adds value to the "failed_items" field.
func (_u *BatchJobUpdate) AddFailedItems(v int) *BatchJobUpdate {
	_u.mutation.AddFailedItems(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BatchJobUpdate) SetStartedAt(v time.Time) *BatchJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BatchJobUpdate) SetNillableStartedAt(v *time.Time) *BatchJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *BatchJobUpdate) ClearStartedAt() *BatchJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchJobUpdate) SetCompletedAt(v time.Time) *BatchJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchJobUpdate) SetNillableCompletedAt(v *time.Time) *BatchJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchJobUpdate) ClearCompletedAt() *BatchJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetResultFile sets the "result_file" field.
func (_u *BatchJobUpdate) SetResultFile(v string) *BatchJobUpdate {
	_u.mutation.SetResultFile(v)
	return _u
}

// SetNillableResultFile sets the "result_file" field if the given value is not nil.
func (_u *BatchJobUpdate) SetNillableResultFile(v *string) *BatchJobUpdate {
	if v != nil {
		_u.SetResultFile(*v)
	}
	return _u
}

// ClearResultFile clears the value of the "result_file" field.
func (_u *BatchJobUpdate) ClearResultFile() *BatchJobUpdate {
	_u.mutation.ClearResultFile()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchJobUpdate) SetErrorMessage(v string) *BatchJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchJobUpdate) SetNillableErrorMessage(v *string) *BatchJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchJobUpdate) ClearErrorMessage() *BatchJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddItemIDs adds the "items" edge to the BatchItem entity by IDs.
func (_u *BatchJobUpdate) AddItemIDs(ids ...uuid.UUID) *BatchJobUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the BatchItem entity.
func (_u *BatchJobUpdate) AddItems(v ...*BatchItem) *BatchJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the BatchJobMutation object of the builder.
func (_u *BatchJobUpdate) Mutation() *BatchJobMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the BatchItem entity.
func (_u *BatchJobUpdate) ClearItems() *BatchJobUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to BatchItem entities by IDs.
func (_u *BatchJobUpdate) RemoveItemIDs(ids ...uuid.UUID) *BatchJobUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to BatchItem entities.
func (_u *BatchJobUpdate) RemoveItems(v ...*BatchItem) *BatchJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchJobUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := batchjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BatchJob.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedItems(); ok {
		if err := batchjob.CompletedItemsValidator(v); err != nil {
			return &ValidationError{Name: "completed_items", err: fmt.Errorf(`ent: validator failed for field "BatchJob.completed_items": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedItems(); ok {
		if err := batchjob.FailedItemsValidator(v); err != nil {
			return &ValidationError{Name: "failed_items", err: fmt.Errorf(`ent: validator failed for field "BatchJob.failed_items": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchjob.Table, batchjob.Columns, sqlgraph.NewFieldSpec(batchjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(batchjob.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedItems(); ok {
		_spec.SetField(batchjob.FieldCompletedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedItems(); ok {
		_spec.AddField(batchjob.FieldCompletedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedItems(); ok {
		_spec.SetField(batchjob.FieldFailedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedItems(); ok {
		_spec.AddField(batchjob.FieldFailedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(batchjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(batchjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batchjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batchjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResultFile(); ok {
		_spec.SetField(batchjob.FieldResultFile, field.TypeString, value)
	}
	if _u.mutation.ResultFileCleared() {
		_spec.ClearField(batchjob.FieldResultFile, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batchjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batchjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchjob.ItemsTable,
			Columns: []string{batchjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchjob.ItemsTable,
			Columns: []string{batchjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchjob.ItemsTable,
			Columns: []string{batchjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchJobUpdateOne is the builder for updating a single BatchJob entity.
type BatchJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchJobMutation
}

// SetFilename sets the "filename" field.
func (_u *BatchJobUpdateOne) SetFilename(v string) *BatchJobUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *BatchJobUpdateOne) SetNillableFilename(v *string) *BatchJobUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchJobUpdateOne) SetStatus(v string) *BatchJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchJobUpdateOne) SetNillableStatus(v *string) *BatchJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedItems sets the "completed_items" field.
func (_u *BatchJobUpdateOne) SetCompletedItems(v int) *BatchJobUpdateOne {
	_u.mutation.ResetCompletedItems()
	_u.mutation.SetCompletedItems(v)
	return _u
}

// SetNillableCompletedItems sets the "completed_items" field if the given value is not nil.
func (_u *BatchJobUpdateOne) SetNillableCompletedItems(v *int) *BatchJobUpdateOne {
	if v != nil {
		_u.SetCompletedItems(*v)
	}
	return _u
}

// AddCompletedItems adds value to the "completed_items" field.
func (_u *BatchJobUpdateOne) AddCompletedItems(v int) *BatchJobUpdateOne {
	_u.mutation.AddCompletedItems(v)
	return _u
}

// SetFailedItems sets the "failed_items" field.
func (_u *BatchJobUpdateOne) SetFailedItems(v int) *BatchJobUpdateOne {
	_u.mutation.ResetFailedItems()
	_u.mutation.SetFailedItems(v)
	return _u
}

// SetNillableFailedItems sets the "failed_items" field if the given value is not nil.
func (_u *BatchJobUpdateOne) SetNillableFailedItems(v *int) *BatchJobUpdateOne {
	if v != nil {
		_u.SetFailedItems(*v)
	}
	return _u
}

// AddFailedItems adds value to the "failed_items" field.
func (_u *BatchJobUpdateOne) AddFailedItems(v int) *BatchJobUpdateOne {
	_u.mutation.AddFailedItems(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BatchJobUpdateOne) SetStartedAt(v time.Time) *BatchJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BatchJobUpdateOne) SetNillableStartedAt(v *time.Time) *BatchJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *BatchJobUpdateOne) ClearStartedAt() *BatchJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchJobUpdateOne) SetCompletedAt(v time.Time) *BatchJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchJobUpdateOne) SetNillableCompletedAt(v *time.Time) *BatchJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchJobUpdateOne) ClearCompletedAt() *BatchJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetResultFile sets the "result_file" field.
func (_u *BatchJobUpdateOne) SetResultFile(v string) *BatchJobUpdateOne {
	_u.mutation.SetResultFile(v)
	return _u
}

// SetNillableResultFile sets the "result_file" field if the given value is not nil.
func (_u *BatchJobUpdateOne) SetNillableResultFile(v *string) *BatchJobUpdateOne {
	if v != nil {
		_u.SetResultFile(*v)
	}
	return _u
}

// ClearResultFile clears the value of the "result_file" field.
func (_u *BatchJobUpdateOne) ClearResultFile() *BatchJobUpdateOne {
	_u.mutation.ClearResultFile()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchJobUpdateOne) SetErrorMessage(v string) *BatchJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchJobUpdateOne) SetNillableErrorMessage(v *string) *BatchJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchJobUpdateOne) ClearErrorMessage() *BatchJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddItemIDs adds the "items" edge to the BatchItem entity by IDs.
func (_u *BatchJobUpdateOne) AddItemIDs(ids ...uuid.UUID) *BatchJobUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the BatchItem entity.
func (_u *BatchJobUpdateOne) AddItems(v ...*BatchItem) *BatchJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the BatchJobMutation object of the builder.
func (_u *BatchJobUpdateOne) Mutation() *BatchJobMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the BatchItem entity.
func (_u *BatchJobUpdateOne) ClearItems() *BatchJobUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to BatchItem entities by IDs.
func (_u *BatchJobUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *BatchJobUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to BatchItem entities.
func (_u *BatchJobUpdateOne) RemoveItems(v ...*BatchItem) *BatchJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the BatchJobUpdate builder.
func (_u *BatchJobUpdateOne) Where(ps ...predicate.BatchJob) *BatchJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchJobUpdateOne) Select(field string, fields ...string) *BatchJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchJob entity.
func (_u *BatchJobUpdateOne) Save(ctx context.Context) (*BatchJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchJobUpdateOne) SaveX(ctx context.Context) *BatchJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchJobUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := batchjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BatchJob.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedItems(); ok {
		if err := batchjob.CompletedItemsValidator(v); err != nil {
			return &ValidationError{Name: "completed_items", err: fmt.Errorf(`ent: validator failed for field "BatchJob.completed_items": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedItems(); ok {
		if err := batchjob.FailedItemsValidator(v); err != nil {
			return &ValidationError{Name: "failed_items", err: fmt.Errorf(`ent: validator failed for field "BatchJob.failed_items": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchJobUpdateOne) sqlSave(ctx context.Context) (_node *BatchJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchjob.Table, batchjob.Columns, sqlgraph.NewFieldSpec(batchjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchjob.FieldID)
		for _, f := range fields {
			if !batchjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(batchjob.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedItems(); ok {
		_spec.SetField(batchjob.FieldCompletedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedItems(); ok {
		_spec.AddField(batchjob.FieldCompletedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedItems(); ok {
		_spec.SetField(batchjob.FieldFailedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedItems(); ok {
		_spec.AddField(batchjob.FieldFailedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(batchjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(batchjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batchjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batchjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResultFile(); ok {
		_spec.SetField(batchjob.FieldResultFile, field.TypeString, value)
	}
	if _u.mutation.ResultFileCleared() {
		_spec.ClearField(batchjob.FieldResultFile, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batchjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batchjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchjob.ItemsTable,
			Columns: []string{batchjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchjob.ItemsTable,
			Columns: []string{batchjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchjob.ItemsTable,
			Columns: []string{batchjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BatchJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
