// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/pvillanueva/fup-consult/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pvillanueva/fup-consult/gen/ent/batchitem"
	"github.com/pvillanueva/fup-consult/gen/ent/batchjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BatchItem is the client for interacting with the BatchItem builders.
	BatchItem *BatchItemClient
	// BatchJob is the client for interacting with the BatchJob builders.
	BatchJob *BatchJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BatchItem = NewBatchItemClient(c.config)
	c.BatchJob = NewBatchJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		BatchItem: NewBatchItemClient(cfg),
		BatchJob:  NewBatchJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		BatchItem: NewBatchItemClient(cfg),
		BatchJob:  NewBatchJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BatchItem.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.BatchItem.Use(hooks...)
	c.BatchJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BatchItem.Intercept(interceptors...)
	c.BatchJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BatchItemMutation:
		return c.BatchItem.mutate(ctx, m)
	case *BatchJobMutation:
		return c.BatchJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BatchItemClient is a client for the BatchItem schema.
type BatchItemClient struct {
	config
}

// NewBatchItemClient returns a client for the BatchItem from the given config.
func NewBatchItemClient(c config) *BatchItemClient {
	return &BatchItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batchitem.Hooks(f(g(h())))`.
func (c *BatchItemClient) Use(hooks ...Hook) {
	c.hooks.BatchItem = append(c.hooks.BatchItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batchitem.Intercept(f(g(h())))`.
func (c *BatchItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatchItem = append(c.inters.BatchItem, interceptors...)
}

// Create returns a builder for creating a BatchItem entity.
func (c *BatchItemClient) Create() *BatchItemCreate {
	mutation := newBatchItemMutation(c.config, OpCreate)
	return &BatchItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatchItem entities.
func (c *BatchItemClient) CreateBulk(builders ...*BatchItemCreate) *BatchItemCreateBulk {
	return &BatchItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchItemClient) MapCreateBulk(slice any, setFunc func(*BatchItemCreate, int)) *BatchItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchItemCreateBulk{err: fmt.Errorf("calling to BatchItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatchItem.
func (c *BatchItemClient) Update() *BatchItemUpdate {
	mutation := newBatchItemMutation(c.config, OpUpdate)
	return &BatchItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchItemClient) UpdateOne(_m *BatchItem) *BatchItemUpdateOne {
	mutation := newBatchItemMutation(c.config, OpUpdateOne, withBatchItem(_m))
	return &BatchItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchItemClient) UpdateOneID(id uuid.UUID) *BatchItemUpdateOne {
	mutation := newBatchItemMutation(c.config, OpUpdateOne, withBatchItemID(id))
	return &BatchItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatchItem.
func (c *BatchItemClient) Delete() *BatchItemDelete {
	mutation := newBatchItemMutation(c.config, OpDelete)
	return &BatchItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchItemClient) DeleteOne(_m *BatchItem) *BatchItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchItemClient) DeleteOneID(id uuid.UUID) *BatchItemDeleteOne {
	builder := c.Delete().Where(batchitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchItemDeleteOne{builder}
}

// Query returns a query builder for BatchItem.
func (c *BatchItemClient) Query() *BatchItemQuery {
	return &BatchItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatchItem},
		inters: c.Interceptors(),
	}
}

// Get returns a BatchItem entity by its id.
func (c *BatchItemClient) Get(ctx context.Context, id uuid.UUID) (*BatchItem, error) {
	return c.Query().Where(batchitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchItemClient) GetX(ctx context.Context, id uuid.UUID) *BatchItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a BatchItem.
func (c *BatchItemClient) QueryJob(_m *BatchItem) *BatchJobQuery {
	query := (&BatchJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batchitem.Table, batchitem.FieldID, id),
			sqlgraph.To(batchjob.Table, batchjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, batchitem.JobTable, batchitem.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchItemClient) Hooks() []Hook {
	return c.hooks.BatchItem
}

// Interceptors returns the client interceptors.
func (c *BatchItemClient) Interceptors() []Interceptor {
	return c.inters.BatchItem
}

func (c *BatchItemClient) mutate(ctx context.Context, m *BatchItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatchItem mutation op: %q", m.Op())
	}
}

// BatchJobClient is a client for the BatchJob schema.
type BatchJobClient struct {
	config
}

// NewBatchJobClient returns a client for the BatchJob from the given config.
func NewBatchJobClient(c config) *BatchJobClient {
	return &BatchJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batchjob.Hooks(f(g(h())))`.
func (c *BatchJobClient) Use(hooks ...Hook) {
	c.hooks.BatchJob = append(c.hooks.BatchJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batchjob.Intercept(f(g(h())))`.
func (c *BatchJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatchJob = append(c.inters.BatchJob, interceptors...)
}

// Create returns a builder for creating a BatchJob entity.
func (c *BatchJobClient) Create() *BatchJobCreate {
	mutation := newBatchJobMutation(c.config, OpCreate)
	return &BatchJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatchJob entities.
func (c *BatchJobClient) CreateBulk(builders ...*BatchJobCreate) *BatchJobCreateBulk {
	return &BatchJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchJobClient) MapCreateBulk(slice any, setFunc func(*BatchJobCreate, int)) *BatchJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchJobCreateBulk{err: fmt.Errorf("calling to BatchJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatchJob.
func (c *BatchJobClient) Update() *BatchJobUpdate {
	mutation := newBatchJobMutation(c.config, OpUpdate)
	return &BatchJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchJobClient) UpdateOne(_m *BatchJob) *BatchJobUpdateOne {
	mutation := newBatchJobMutation(c.config, OpUpdateOne, withBatchJob(_m))
	return &BatchJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchJobClient) UpdateOneID(id uuid.UUID) *BatchJobUpdateOne {
	mutation := newBatchJobMutation(c.config, OpUpdateOne, withBatchJobID(id))
	return &BatchJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatchJob.
func (c *BatchJobClient) Delete() *BatchJobDelete {
	mutation := newBatchJobMutation(c.config, OpDelete)
	return &BatchJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchJobClient) DeleteOne(_m *BatchJob) *BatchJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchJobClient) DeleteOneID(id uuid.UUID) *BatchJobDeleteOne {
	builder := c.Delete().Where(batchjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchJobDeleteOne{builder}
}

// Query returns a query builder for BatchJob.
func (c *BatchJobClient) Query() *BatchJobQuery {
	return &BatchJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatchJob},
		inters: c.Interceptors(),
	}
}

// Get returns a BatchJob entity by its id.
func (c *BatchJobClient) Get(ctx context.Context, id uuid.UUID) (*BatchJob, error) {
	return c.Query().Where(batchjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchJobClient) GetX(ctx context.Context, id uuid.UUID) *BatchJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a BatchJob.
func (c *BatchJobClient) QueryItems(_m *BatchJob) *BatchItemQuery {
	query := (&BatchItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batchjob.Table, batchjob.FieldID, id),
			sqlgraph.To(batchitem.Table, batchitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, batchjob.ItemsTable, batchjob.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchJobClient) Hooks() []Hook {
	return c.hooks.BatchJob
}

// Interceptors returns the client interceptors.
func (c *BatchJobClient) Interceptors() []Interceptor {
	return c.inters.BatchJob
}

func (c *BatchJobClient) mutate(ctx context.Context, m *BatchJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatchJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BatchItem, BatchJob []ent.Hook
	}
	inters struct {
		BatchItem, BatchJob []ent.Interceptor
	}
)
