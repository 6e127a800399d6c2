// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pvillanueva/fup-consult/gen/ent/batchitem"
	"github.com/pvillanueva/fup-consult/gen/ent/batchjob"
)

// BatchItemCreate is the builder for creating a BatchItem entity.
type BatchItemCreate struct {
	config
	mutation *BatchItemMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *BatchItemCreate) SetJobID(v uuid.UUID) *BatchItemCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetRuc sets the "ruc" field.
func (_c *BatchItemCreate) SetRuc(v string) *BatchItemCreate {
	_c.mutation.SetRuc(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchItemCreate) SetStatus(v string) *BatchItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableStatus(v *string) *BatchItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *BatchItemCreate) SetRetryCount(v int) *BatchItemCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableRetryCount(v *int) *BatchItemCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *BatchItemCreate) SetMaxRetries(v int) *BatchItemCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableMaxRetries(v *int) *BatchItemCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BatchItemCreate) SetErrorMessage(v string) *BatchItemCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableErrorMessage(v *string) *BatchItemCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResultData sets the "result_data" field.
func (_c *BatchItemCreate) SetResultData(v json.RawMessage) *BatchItemCreate {
	_c.mutation.SetResultData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchItemCreate) SetCreatedAt(v time.Time) *BatchItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableCreatedAt(v *time.Time) *BatchItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *BatchItemCreate) SetProcessedAt(v time.Time) *BatchItemCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableProcessedAt(v *time.Time) *BatchItemCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchItemCreate) SetID(v uuid.UUID) *BatchItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableID(v *uuid.UUID) *BatchItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the BatchJob entity.
func (_c *BatchItemCreate) SetJob(v *BatchJob) *BatchItemCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the BatchItemMutation object of the builder.
func (_c *BatchItemCreate) Mutation() *BatchItemMutation {
	return _c.mutation
}

// Save creates the BatchItem in the database.
func (_c *BatchItemCreate) Save(ctx context.Context) (*BatchItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchItemCreate) SaveX(ctx context.Context) *BatchItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := batchitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := batchitem.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := batchitem.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batchitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := batchitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchItemCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "BatchItem.job_id"`)}
	}
	if _, ok := _c.mutation.Ruc(); !ok {
		return &ValidationError{Name: "ruc", err: errors.New(`ent: missing required field "BatchItem.ruc"`)}
	}
	if v, ok := _c.mutation.Ruc(); ok {
		if err := batchitem.RucValidator(v); err != nil {
			return &ValidationError{Name: "ruc", err: fmt.Errorf(`ent: validator failed for field "BatchItem.ruc": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BatchItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batchitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "BatchItem.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := batchitem.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "BatchItem.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "BatchItem.max_retries"`)}
	}
	if v, ok := _c.mutation.MaxRetries(); ok {
		if err := batchitem.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "BatchItem.max_retries": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BatchItem.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "BatchItem.job"`)}
	}
	return nil
}

func (_c *BatchItemCreate) sqlSave(ctx context.Context) (*BatchItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchItemCreate) createSpec() (*BatchItem, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchitem.Table, sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Ruc(); ok {
		_spec.SetField(batchitem.FieldRuc, field.TypeString, value)
		_node.Ruc = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batchitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(batchitem.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(batchitem.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(batchitem.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ResultData(); ok {
		_spec.SetField(batchitem.FieldResultData, field.TypeJSON, value)
		_node.ResultData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batchitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(batchitem.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchItemCreateBulk is the builder for creating many BatchItem entities in bulk.
type BatchItemCreateBulk struct {
	config
	err      error
	builders []*BatchItemCreate
}

// Save creates the BatchItem entities in the database.
func (_c *BatchItemCreateBulk) Save(ctx context.Context) ([]*BatchItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BatchItemCreateBulk) SaveX(ctx context.Context) []*BatchItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
