// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/design4music/sni-platform-sub000/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/ent/title"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EventFamily is the client for interacting with the EventFamily builders.
	EventFamily *EventFamilyClient
	// MergeEvent is the client for interacting with the MergeEvent builders.
	MergeEvent *MergeEventClient
	// PipelineRun is the client for interacting with the PipelineRun builders.
	PipelineRun *PipelineRunClient
	// Title is the client for interacting with the Title builders.
	Title *TitleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EventFamily = NewEventFamilyClient(c.config)
	c.MergeEvent = NewMergeEventClient(c.config)
	c.PipelineRun = NewPipelineRunClient(c.config)
	c.Title = NewTitleClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		EventFamily: NewEventFamilyClient(cfg),
		MergeEvent:  NewMergeEventClient(cfg),
		PipelineRun: NewPipelineRunClient(cfg),
		Title:       NewTitleClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		EventFamily: NewEventFamilyClient(cfg),
		MergeEvent:  NewMergeEventClient(cfg),
		PipelineRun: NewPipelineRunClient(cfg),
		Title:       NewTitleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EventFamily.
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
	c.EventFamily.Use(hooks...)
	c.MergeEvent.Use(hooks...)
	c.PipelineRun.Use(hooks...)
	c.Title.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EventFamily.Intercept(interceptors...)
	c.MergeEvent.Intercept(interceptors...)
	c.PipelineRun.Intercept(interceptors...)
	c.Title.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EventFamilyMutation:
		return c.EventFamily.mutate(ctx, m)
	case *MergeEventMutation:
		return c.MergeEvent.mutate(ctx, m)
	case *PipelineRunMutation:
		return c.PipelineRun.mutate(ctx, m)
	case *TitleMutation:
		return c.Title.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EventFamilyClient is a client for the EventFamily schema.
type EventFamilyClient struct {
	config
}

// NewEventFamilyClient returns a client for the EventFamily from the given config.
func NewEventFamilyClient(c config) *EventFamilyClient {
	return &EventFamilyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventfamily.Hooks(f(g(h())))`.
func (c *EventFamilyClient) Use(hooks ...Hook) {
	c.hooks.EventFamily = append(c.hooks.EventFamily, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventfamily.Intercept(f(g(h())))`.
func (c *EventFamilyClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventFamily = append(c.inters.EventFamily, interceptors...)
}

// Create returns a builder for creating a EventFamily entity.
func (c *EventFamilyClient) Create() *EventFamilyCreate {
	mutation := newEventFamilyMutation(c.config, OpCreate)
	return &EventFamilyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventFamily entities.
func (c *EventFamilyClient) CreateBulk(builders ...*EventFamilyCreate) *EventFamilyCreateBulk {
	return &EventFamilyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventFamilyClient) MapCreateBulk(slice any, setFunc func(*EventFamilyCreate, int)) *EventFamilyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventFamilyCreateBulk{err: fmt.Errorf("calling to EventFamilyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventFamilyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventFamilyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventFamily.
func (c *EventFamilyClient) Update() *EventFamilyUpdate {
	mutation := newEventFamilyMutation(c.config, OpUpdate)
	return &EventFamilyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventFamilyClient) UpdateOne(_m *EventFamily) *EventFamilyUpdateOne {
	mutation := newEventFamilyMutation(c.config, OpUpdateOne, withEventFamily(_m))
	return &EventFamilyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventFamilyClient) UpdateOneID(id string) *EventFamilyUpdateOne {
	mutation := newEventFamilyMutation(c.config, OpUpdateOne, withEventFamilyID(id))
	return &EventFamilyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventFamily.
func (c *EventFamilyClient) Delete() *EventFamilyDelete {
	mutation := newEventFamilyMutation(c.config, OpDelete)
	return &EventFamilyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventFamilyClient) DeleteOne(_m *EventFamily) *EventFamilyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventFamilyClient) DeleteOneID(id string) *EventFamilyDeleteOne {
	builder := c.Delete().Where(eventfamily.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventFamilyDeleteOne{builder}
}

// Query returns a query builder for EventFamily.
func (c *EventFamilyClient) Query() *EventFamilyQuery {
	return &EventFamilyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventFamily},
		inters: c.Interceptors(),
	}
}

// Get returns a EventFamily entity by its id.
func (c *EventFamilyClient) Get(ctx context.Context, id string) (*EventFamily, error) {
	return c.Query().Where(eventfamily.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventFamilyClient) GetX(ctx context.Context, id string) *EventFamily {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTitles queries the titles edge of a EventFamily.
func (c *EventFamilyClient) QueryTitles(_m *EventFamily) *TitleQuery {
	query := (&TitleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventfamily.Table, eventfamily.FieldID, id),
			sqlgraph.To(title.Table, title.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, eventfamily.TitlesTable, eventfamily.TitlesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMergedInto queries the merged_into edge of a EventFamily.
func (c *EventFamilyClient) QueryMergedInto(_m *EventFamily) *EventFamilyQuery {
	query := (&EventFamilyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventfamily.Table, eventfamily.FieldID, id),
			sqlgraph.To(eventfamily.Table, eventfamily.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventfamily.MergedIntoTable, eventfamily.MergedIntoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAbsorbed queries the absorbed edge of a EventFamily.
func (c *EventFamilyClient) QueryAbsorbed(_m *EventFamily) *EventFamilyQuery {
	query := (&EventFamilyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventfamily.Table, eventfamily.FieldID, id),
			sqlgraph.To(eventfamily.Table, eventfamily.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, eventfamily.AbsorbedTable, eventfamily.AbsorbedColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMergeEvents queries the merge_events edge of a EventFamily.
func (c *EventFamilyClient) QueryMergeEvents(_m *EventFamily) *MergeEventQuery {
	query := (&MergeEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventfamily.Table, eventfamily.FieldID, id),
			sqlgraph.To(mergeevent.Table, mergeevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, eventfamily.MergeEventsTable, eventfamily.MergeEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventFamilyClient) Hooks() []Hook {
	return c.hooks.EventFamily
}

// Interceptors returns the client interceptors.
func (c *EventFamilyClient) Interceptors() []Interceptor {
	return c.inters.EventFamily
}

func (c *EventFamilyClient) mutate(ctx context.Context, m *EventFamilyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventFamilyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventFamilyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventFamilyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventFamilyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventFamily mutation op: %q", m.Op())
	}
}

// MergeEventClient is a client for the MergeEvent schema.
type MergeEventClient struct {
	config
}

// NewMergeEventClient returns a client for the MergeEvent from the given config.
func NewMergeEventClient(c config) *MergeEventClient {
	return &MergeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mergeevent.Hooks(f(g(h())))`.
func (c *MergeEventClient) Use(hooks ...Hook) {
	c.hooks.MergeEvent = append(c.hooks.MergeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mergeevent.Intercept(f(g(h())))`.
func (c *MergeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MergeEvent = append(c.inters.MergeEvent, interceptors...)
}

// Create returns a builder for creating a MergeEvent entity.
func (c *MergeEventClient) Create() *MergeEventCreate {
	mutation := newMergeEventMutation(c.config, OpCreate)
	return &MergeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MergeEvent entities.
func (c *MergeEventClient) CreateBulk(builders ...*MergeEventCreate) *MergeEventCreateBulk {
	return &MergeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MergeEventClient) MapCreateBulk(slice any, setFunc func(*MergeEventCreate, int)) *MergeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MergeEventCreateBulk{err: fmt.Errorf("calling to MergeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MergeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MergeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MergeEvent.
func (c *MergeEventClient) Update() *MergeEventUpdate {
	mutation := newMergeEventMutation(c.config, OpUpdate)
	return &MergeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MergeEventClient) UpdateOne(_m *MergeEvent) *MergeEventUpdateOne {
	mutation := newMergeEventMutation(c.config, OpUpdateOne, withMergeEvent(_m))
	return &MergeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MergeEventClient) UpdateOneID(id string) *MergeEventUpdateOne {
	mutation := newMergeEventMutation(c.config, OpUpdateOne, withMergeEventID(id))
	return &MergeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MergeEvent.
func (c *MergeEventClient) Delete() *MergeEventDelete {
	mutation := newMergeEventMutation(c.config, OpDelete)
	return &MergeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MergeEventClient) DeleteOne(_m *MergeEvent) *MergeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MergeEventClient) DeleteOneID(id string) *MergeEventDeleteOne {
	builder := c.Delete().Where(mergeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MergeEventDeleteOne{builder}
}

// Query returns a query builder for MergeEvent.
func (c *MergeEventClient) Query() *MergeEventQuery {
	return &MergeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMergeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MergeEvent entity by its id.
func (c *MergeEventClient) Get(ctx context.Context, id string) (*MergeEvent, error) {
	return c.Query().Where(mergeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MergeEventClient) GetX(ctx context.Context, id string) *MergeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a MergeEvent.
func (c *MergeEventClient) QueryRun(_m *MergeEvent) *PipelineRunQuery {
	query := (&PipelineRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mergeevent.Table, mergeevent.FieldID, id),
			sqlgraph.To(pipelinerun.Table, pipelinerun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mergeevent.RunTable, mergeevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySurvivor queries the survivor edge of a MergeEvent.
func (c *MergeEventClient) QuerySurvivor(_m *MergeEvent) *EventFamilyQuery {
	query := (&EventFamilyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mergeevent.Table, mergeevent.FieldID, id),
			sqlgraph.To(eventfamily.Table, eventfamily.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mergeevent.SurvivorTable, mergeevent.SurvivorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MergeEventClient) Hooks() []Hook {
	return c.hooks.MergeEvent
}

// Interceptors returns the client interceptors.
func (c *MergeEventClient) Interceptors() []Interceptor {
	return c.inters.MergeEvent
}

func (c *MergeEventClient) mutate(ctx context.Context, m *MergeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MergeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MergeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MergeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MergeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MergeEvent mutation op: %q", m.Op())
	}
}

// PipelineRunClient is a client for the PipelineRun schema.
type PipelineRunClient struct {
	config
}

// NewPipelineRunClient returns a client for the PipelineRun from the given config.
func NewPipelineRunClient(c config) *PipelineRunClient {
	return &PipelineRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinerun.Hooks(f(g(h())))`.
func (c *PipelineRunClient) Use(hooks ...Hook) {
	c.hooks.PipelineRun = append(c.hooks.PipelineRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinerun.Intercept(f(g(h())))`.
func (c *PipelineRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineRun = append(c.inters.PipelineRun, interceptors...)
}

// Create returns a builder for creating a PipelineRun entity.
func (c *PipelineRunClient) Create() *PipelineRunCreate {
	mutation := newPipelineRunMutation(c.config, OpCreate)
	return &PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineRun entities.
func (c *PipelineRunClient) CreateBulk(builders ...*PipelineRunCreate) *PipelineRunCreateBulk {
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineRunClient) MapCreateBulk(slice any, setFunc func(*PipelineRunCreate, int)) *PipelineRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineRunCreateBulk{err: fmt.Errorf("calling to PipelineRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineRun.
func (c *PipelineRunClient) Update() *PipelineRunUpdate {
	mutation := newPipelineRunMutation(c.config, OpUpdate)
	return &PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineRunClient) UpdateOne(_m *PipelineRun) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRun(_m))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineRunClient) UpdateOneID(id string) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRunID(id))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineRun.
func (c *PipelineRunClient) Delete() *PipelineRunDelete {
	mutation := newPipelineRunMutation(c.config, OpDelete)
	return &PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineRunClient) DeleteOne(_m *PipelineRun) *PipelineRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineRunClient) DeleteOneID(id string) *PipelineRunDeleteOne {
	builder := c.Delete().Where(pipelinerun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineRunDeleteOne{builder}
}

// Query returns a query builder for PipelineRun.
func (c *PipelineRunClient) Query() *PipelineRunQuery {
	return &PipelineRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineRun entity by its id.
func (c *PipelineRunClient) Get(ctx context.Context, id string) (*PipelineRun, error) {
	return c.Query().Where(pipelinerun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineRunClient) GetX(ctx context.Context, id string) *PipelineRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMergeEvents queries the merge_events edge of a PipelineRun.
func (c *PipelineRunClient) QueryMergeEvents(_m *PipelineRun) *MergeEventQuery {
	query := (&MergeEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinerun.Table, pipelinerun.FieldID, id),
			sqlgraph.To(mergeevent.Table, mergeevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipelinerun.MergeEventsTable, pipelinerun.MergeEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineRunClient) Hooks() []Hook {
	return c.hooks.PipelineRun
}

// Interceptors returns the client interceptors.
func (c *PipelineRunClient) Interceptors() []Interceptor {
	return c.inters.PipelineRun
}

func (c *PipelineRunClient) mutate(ctx context.Context, m *PipelineRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineRun mutation op: %q", m.Op())
	}
}

// TitleClient is a client for the Title schema.
type TitleClient struct {
	config
}

// NewTitleClient returns a client for the Title from the given config.
func NewTitleClient(c config) *TitleClient {
	return &TitleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `title.Hooks(f(g(h())))`.
func (c *TitleClient) Use(hooks ...Hook) {
	c.hooks.Title = append(c.hooks.Title, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `title.Intercept(f(g(h())))`.
func (c *TitleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Title = append(c.inters.Title, interceptors...)
}

// Create returns a builder for creating a Title entity.
func (c *TitleClient) Create() *TitleCreate {
	mutation := newTitleMutation(c.config, OpCreate)
	return &TitleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Title entities.
func (c *TitleClient) CreateBulk(builders ...*TitleCreate) *TitleCreateBulk {
	return &TitleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TitleClient) MapCreateBulk(slice any, setFunc func(*TitleCreate, int)) *TitleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TitleCreateBulk{err: fmt.Errorf("calling to TitleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TitleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TitleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Title.
func (c *TitleClient) Update() *TitleUpdate {
	mutation := newTitleMutation(c.config, OpUpdate)
	return &TitleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TitleClient) UpdateOne(_m *Title) *TitleUpdateOne {
	mutation := newTitleMutation(c.config, OpUpdateOne, withTitle(_m))
	return &TitleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TitleClient) UpdateOneID(id string) *TitleUpdateOne {
	mutation := newTitleMutation(c.config, OpUpdateOne, withTitleID(id))
	return &TitleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Title.
func (c *TitleClient) Delete() *TitleDelete {
	mutation := newTitleMutation(c.config, OpDelete)
	return &TitleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TitleClient) DeleteOne(_m *Title) *TitleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TitleClient) DeleteOneID(id string) *TitleDeleteOne {
	builder := c.Delete().Where(title.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TitleDeleteOne{builder}
}

// Query returns a query builder for Title.
func (c *TitleClient) Query() *TitleQuery {
	return &TitleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTitle},
		inters: c.Interceptors(),
	}
}

// Get returns a Title entity by its id.
func (c *TitleClient) Get(ctx context.Context, id string) (*Title, error) {
	return c.Query().Where(title.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TitleClient) GetX(ctx context.Context, id string) *Title {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEventFamily queries the event_family edge of a Title.
func (c *TitleClient) QueryEventFamily(_m *Title) *EventFamilyQuery {
	query := (&EventFamilyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(title.Table, title.FieldID, id),
			sqlgraph.To(eventfamily.Table, eventfamily.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, title.EventFamilyTable, title.EventFamilyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TitleClient) Hooks() []Hook {
	return c.hooks.Title
}

// Interceptors returns the client interceptors.
func (c *TitleClient) Interceptors() []Interceptor {
	return c.inters.Title
}

func (c *TitleClient) mutate(ctx context.Context, m *TitleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TitleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TitleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TitleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TitleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Title mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EventFamily, MergeEvent, PipelineRun, Title []ent.Hook
	}
	inters struct {
		EventFamily, MergeEvent, PipelineRun, Title []ent.Interceptor
	}
)
