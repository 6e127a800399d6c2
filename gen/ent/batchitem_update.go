// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pvillanueva/fup-consult/gen/ent/batchitem"
	"github.com/pvillanueva/fup-consult/gen/ent/batchjob"
	"github.com/pvillanueva/fup-consult/gen/ent/predicate"
)

// BatchItemUpdate is the builder for updating BatchItem entities.
type BatchItemUpdate struct {
	config
	hooks    []Hook
	mutation *BatchItemMutation
}

// Where appends a list predicates to the BatchItemUpdate builder.
func (_u *BatchItemUpdate) Where(ps ...predicate.BatchItem) *BatchItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *BatchItemUpdate) SetJobID(v uuid.UUID) *BatchItemUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableJobID(v *uuid.UUID) *BatchItemUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetRuc sets the "ruc" field.
func (_u *BatchItemUpdate) SetRuc(v string) *BatchItemUpdate {
	_u.mutation.SetRuc(v)
	return _u
}

// SetNillableRuc sets the "ruc" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableRuc(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetRuc(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchItemUpdate) SetStatus(v string) *BatchItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableStatus(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *BatchItemUpdate) SetRetryCount(v int) *BatchItemUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableRetryCount(v *int) *BatchItemUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *BatchItemUpdate) AddRetryCount(v int) *BatchItemUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *BatchItemUpdate) SetMaxRetries(v int) *BatchItemUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableMaxRetries(v *int) *BatchItemUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *BatchItemUpdate) AddMaxRetries(v int) *BatchItemUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchItemUpdate) SetErrorMessage(v string) *BatchItemUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableErrorMessage(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchItemUpdate) ClearErrorMessage() *BatchItemUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *BatchItemUpdate) SetResultData(v json.RawMessage) *BatchItemUpdate {
	_u.mutation.SetResultData(v)
	return _u
}

// AppendResultData appends value to the "result_data" field.
func (_u *BatchItemUpdate) AppendResultData(v json.RawMessage) *BatchItemUpdate {
	_u.mutation.AppendResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *BatchItemUpdate) ClearResultData() *BatchItemUpdate {
	_u.mutation.ClearResultData()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *BatchItemUpdate) SetProcessedAt(v time.Time) *BatchItemUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableProcessedAt(v *time.Time) *BatchItemUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *BatchItemUpdate) ClearProcessedAt() *BatchItemUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetJob sets the "job" edge to the BatchJob entity.
func (_u *BatchItemUpdate) SetJob(v *BatchJob) *BatchItemUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the BatchItemMutation object of the builder.
func (_u *BatchItemUpdate) Mutation() *BatchItemMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the BatchJob entity.
func (_u *BatchItemUpdate) ClearJob() *BatchItemUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchItemUpdate) check() error {
	if v, ok := _u.mutation.Ruc(); ok {
		if err := batchitem.RucValidator(v); err != nil {
			return &ValidationError{Name: "ruc", err: fmt.Errorf(`ent: validator failed for field "BatchItem.ruc": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := batchitem.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "BatchItem.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := batchitem.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "BatchItem.max_retries": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchItem.job"`)
	}
	return nil
}

func (_u *BatchItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchitem.Table, batchitem.Columns, sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ruc(); ok {
		_spec.SetField(batchitem.FieldRuc, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(batchitem.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(batchitem.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(batchitem.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(batchitem.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batchitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batchitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(batchitem.FieldResultData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchitem.FieldResultData, value)
		})
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(batchitem.FieldResultData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(batchitem.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(batchitem.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batchitem.JobTable,
			Columns: []string{batchitem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batchitem.JobTable,
			Columns: []string{batchitem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchItemUpdateOne is the builder for updating a single BatchItem entity.
type BatchItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchItemMutation
}

// SetJobID sets the "job_id" field.
func (_u *BatchItemUpdateOne) SetJobID(v uuid.UUID) *BatchItemUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableJobID(v *uuid.UUID) *BatchItemUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetRuc sets the "ruc" field.
func (_u *BatchItemUpdateOne) SetRuc(v string) *BatchItemUpdateOne {
	_u.mutation.SetRuc(v)
	return _u
}

// SetNillableRuc sets the "ruc" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableRuc(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetRuc(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchItemUpdateOne) SetStatus(v string) *BatchItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableStatus(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *BatchItemUpdateOne) SetRetryCount(v int) *BatchItemUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableRetryCount(v *int) *BatchItemUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *BatchItemUpdateOne) AddRetryCount(v int) *BatchItemUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *BatchItemUpdateOne) SetMaxRetries(v int) *BatchItemUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableMaxRetries(v *int) *BatchItemUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *BatchItemUpdateOne) AddMaxRetries(v int) *BatchItemUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchItemUpdateOne) SetErrorMessage(v string) *BatchItemUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableErrorMessage(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchItemUpdateOne) ClearErrorMessage() *BatchItemUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *BatchItemUpdateOne) SetResultData(v json.RawMessage) *BatchItemUpdateOne {
	_u.mutation.SetResultData(v)
	return _u
}

// AppendResultData appends value to the "result_data" field.
func (_u *BatchItemUpdateOne) AppendResultData(v json.RawMessage) *BatchItemUpdateOne {
	_u.mutation.AppendResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *BatchItemUpdateOne) ClearResultData() *BatchItemUpdateOne {
	_u.mutation.ClearResultData()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *BatchItemUpdateOne) SetProcessedAt(v time.Time) *BatchItemUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableProcessedAt(v *time.Time) *BatchItemUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *BatchItemUpdateOne) ClearProcessedAt() *BatchItemUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetJob sets the "job" edge to the BatchJob entity.
func (_u *BatchItemUpdateOne) SetJob(v *BatchJob) *BatchItemUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the BatchItemMutation object of the builder.
func (_u *BatchItemUpdateOne) Mutation() *BatchItemMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the BatchJob entity.
func (_u *BatchItemUpdateOne) ClearJob() *BatchItemUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the BatchItemUpdate builder.
func (_u *BatchItemUpdateOne) Where(ps ...predicate.BatchItem) *BatchItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchItemUpdateOne) Select(field string, fields ...string) *BatchItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchItem entity.
func (_u *BatchItemUpdateOne) Save(ctx context.Context) (*BatchItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchItemUpdateOne) SaveX(ctx context.Context) *BatchItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchItemUpdateOne) check() error {
	if v, ok := _u.mutation.Ruc(); ok {
		if err := batchitem.RucValidator(v); err != nil {
			return &ValidationError{Name: "ruc", err: fmt.Errorf(`ent: validator failed for field "BatchItem.ruc": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := batchitem.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "BatchItem.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := batchitem.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "BatchItem.max_retries": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchItem.job"`)
	}
	return nil
}

func (_u *BatchItemUpdateOne) sqlSave(ctx context.Context) (_node *BatchItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchitem.Table, batchitem.Columns, sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchitem.FieldID)
		for _, f := range fields {
			if !batchitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchitem.FieldID {
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
	if value, ok := _u.mutation.Ruc(); ok {
		_spec.SetField(batchitem.FieldRuc, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(batchitem.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(batchitem.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(batchitem.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(batchitem.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batchitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batchitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(batchitem.FieldResultData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchitem.FieldResultData, value)
		})
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(batchitem.FieldResultData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(batchitem.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(batchitem.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batchitem.JobTable,
			Columns: []string{batchitem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batchitem.JobTable,
			Columns: []string{batchitem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BatchItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
