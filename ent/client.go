// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ijoka-ai/ijoka/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/commit"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/insight"
	"github.com/ijoka-ai/ijoka/ent/project"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/ent/step"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentSession is the client for interacting with the AgentSession builders.
	AgentSession *AgentSessionClient
	// Commit is the client for interacting with the Commit builders.
	Commit *CommitClient
	// Feature is the client for interacting with the Feature builders.
	Feature *FeatureClient
	// FeatureDependency is the client for interacting with the FeatureDependency builders.
	FeatureDependency *FeatureDependencyClient
	// HookEvent is the client for interacting with the HookEvent builders.
	HookEvent *HookEventClient
	// Insight is the client for interacting with the Insight builders.
	Insight *InsightClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// StatusEvent is the client for interacting with the StatusEvent builders.
	StatusEvent *StatusEventClient
	// Step is the client for interacting with the Step builders.
	Step *StepClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentSession = NewAgentSessionClient(c.config)
	c.Commit = NewCommitClient(c.config)
	c.Feature = NewFeatureClient(c.config)
	c.FeatureDependency = NewFeatureDependencyClient(c.config)
	c.HookEvent = NewHookEventClient(c.config)
	c.Insight = NewInsightClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.StatusEvent = NewStatusEventClient(c.config)
	c.Step = NewStepClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AgentSession:      NewAgentSessionClient(cfg),
		Feature:           NewFeatureClient(cfg),
		FeatureDependency: NewFeatureDependencyClient(cfg),
		HookEvent:         NewHookEventClient(cfg),
		Insight:           NewInsightClient(cfg),
		Project:           NewProjectClient(cfg),
		StatusEvent:       NewStatusEventClient(cfg),
		Step:              NewStepClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AgentSession:      NewAgentSessionClient(cfg),
		Feature:           NewFeatureClient(cfg),
		FeatureDependency: NewFeatureDependencyClient(cfg),
		HookEvent:         NewHookEventClient(cfg),
		Insight:           NewInsightClient(cfg),
		Project:           NewProjectClient(cfg),
		StatusEvent:       NewStatusEventClient(cfg),
		Step:              NewStepClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentSession.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentSession, c.Commit, c.Feature, c.FeatureDependency, c.HookEvent,
		c.Insight, c.Project, c.StatusEvent, c.Step,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentSession, c.Commit, c.Feature, c.FeatureDependency, c.HookEvent,
		c.Insight, c.Project, c.StatusEvent, c.Step,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentSessionMutation:
		return c.AgentSession.mutate(ctx, m)
	case *CommitMutation:
		return c.Commit.mutate(ctx, m)
	case *FeatureMutation:
		return c.Feature.mutate(ctx, m)
	case *FeatureDependencyMutation:
		return c.FeatureDependency.mutate(ctx, m)
	case *HookEventMutation:
		return c.HookEvent.mutate(ctx, m)
	case *InsightMutation:
		return c.Insight.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *StatusEventMutation:
		return c.StatusEvent.mutate(ctx, m)
	case *StepMutation:
		return c.Step.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentSessionClient is a client for the AgentSession schema.
type AgentSessionClient struct {
	config
}

// NewAgentSessionClient returns a client for the AgentSession from the given config.
func NewAgentSessionClient(c config) *AgentSessionClient {
	return &AgentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsession.Hooks(f(g(h())))`.
func (c *AgentSessionClient) Use(hooks ...Hook) {
	c.hooks.AgentSession = append(c.hooks.AgentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsession.Intercept(f(g(h())))`.
func (c *AgentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSession = append(c.inters.AgentSession, interceptors...)
}

// Create returns a builder for creating a AgentSession entity.
func (c *AgentSessionClient) Create() *AgentSessionCreate {
	mutation := newAgentSessionMutation(c.config, OpCreate)
	return &AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSession entities.
func (c *AgentSessionClient) CreateBulk(builders ...*AgentSessionCreate) *AgentSessionCreateBulk {
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSessionClient) MapCreateBulk(slice any, setFunc func(*AgentSessionCreate, int)) *AgentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSessionCreateBulk{err: fmt.Errorf("calling to AgentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSession.
func (c *AgentSessionClient) Update() *AgentSessionUpdate {
	mutation := newAgentSessionMutation(c.config, OpUpdate)
	return &AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSessionClient) UpdateOne(_m *AgentSession) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSession(_m))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSessionClient) UpdateOneID(id string) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSessionID(id))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSession.
func (c *AgentSessionClient) Delete() *AgentSessionDelete {
	mutation := newAgentSessionMutation(c.config, OpDelete)
	return &AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSessionClient) DeleteOne(_m *AgentSession) *AgentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSessionClient) DeleteOneID(id string) *AgentSessionDeleteOne {
	builder := c.Delete().Where(agentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSessionDeleteOne{builder}
}

// Query returns a query builder for AgentSession.
func (c *AgentSessionClient) Query() *AgentSessionQuery {
	return &AgentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSession entity by its id.
func (c *AgentSessionClient) Get(ctx context.Context, id string) (*AgentSession, error) {
	return c.Query().Where(agentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSessionClient) GetX(ctx context.Context, id string) *AgentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a AgentSession.
func (c *AgentSessionClient) QueryProject(_m *AgentSession) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsession.ProjectTable, agentsession.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContinuedFrom queries the continued_from edge of a AgentSession.
func (c *AgentSessionClient) QueryContinuedFrom(_m *AgentSession) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsession.ContinuedFromTable, agentsession.ContinuedFromColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContinuations queries the continuations edge of a AgentSession.
func (c *AgentSessionClient) QueryContinuations(_m *AgentSession) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.ContinuationsTable, agentsession.ContinuationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a AgentSession.
func (c *AgentSessionClient) QueryEvents(_m *AgentSession) *HookEventQuery {
	query := (&HookEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(hookevent.Table, hookevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.EventsTable, agentsession.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommits queries the commits edge of a AgentSession.
func (c *AgentSessionClient) QueryCommits(_m *AgentSession) *CommitQuery {
	query := (&CommitClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(commit.Table, commit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.CommitsTable, agentsession.CommitsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentSessionClient) Hooks() []Hook {
	return c.hooks.AgentSession
}

// Interceptors returns the client interceptors.
func (c *AgentSessionClient) Interceptors() []Interceptor {
	return c.inters.AgentSession
}

func (c *AgentSessionClient) mutate(ctx context.Context, m *AgentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSession mutation op: %q", m.Op())
	}
}

// CommitClient is a client for the Commit schema.
type CommitClient struct {
	config
}

// NewCommitClient returns a client for the Commit from the given config.
func NewCommitClient(c config) *CommitClient {
	return &CommitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commit.Hooks(f(g(h())))`.
func (c *CommitClient) Use(hooks ...Hook) {
	c.hooks.Commit = append(c.hooks.Commit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commit.Intercept(f(g(h())))`.
func (c *CommitClient) Intercept(interceptors ...Interceptor) {
	c.inters.Commit = append(c.inters.Commit, interceptors...)
}

// Create returns a builder for creating a Commit entity.
func (c *CommitClient) Create() *CommitCreate {
	mutation := newCommitMutation(c.config, OpCreate)
	return &CommitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Commit entities.
func (c *CommitClient) CreateBulk(builders ...*CommitCreate) *CommitCreateBulk {
	return &CommitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommitClient) MapCreateBulk(slice any, setFunc func(*CommitCreate, int)) *CommitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommitCreateBulk{err: fmt.Errorf("calling to CommitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Commit.
func (c *CommitClient) Update() *CommitUpdate {
	mutation := newCommitMutation(c.config, OpUpdate)
	return &CommitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommitClient) UpdateOne(_m *Commit) *CommitUpdateOne {
	mutation := newCommitMutation(c.config, OpUpdateOne, withCommit(_m))
	return &CommitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommitClient) UpdateOneID(id string) *CommitUpdateOne {
	mutation := newCommitMutation(c.config, OpUpdateOne, withCommitID(id))
	return &CommitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Commit.
func (c *CommitClient) Delete() *CommitDelete {
	mutation := newCommitMutation(c.config, OpDelete)
	return &CommitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommitClient) DeleteOne(_m *Commit) *CommitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommitClient) DeleteOneID(id string) *CommitDeleteOne {
	builder := c.Delete().Where(commit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommitDeleteOne{builder}
}

// Query returns a query builder for Commit.
func (c *CommitClient) Query() *CommitQuery {
	return &CommitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommit},
		inters: c.Interceptors(),
	}
}

// Get returns a Commit entity by its id.
func (c *CommitClient) Get(ctx context.Context, id string) (*Commit, error) {
	return c.Query().Where(commit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommitClient) GetX(ctx context.Context, id string) *Commit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Commit.
func (c *CommitClient) QuerySession(_m *Commit) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commit.Table, commit.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commit.SessionTable, commit.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeature queries the feature edge of a Commit.
func (c *CommitClient) QueryFeature(_m *Commit) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commit.Table, commit.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commit.FeatureTable, commit.FeatureColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommitClient) Hooks() []Hook {
	return c.hooks.Commit
}

// Interceptors returns the client interceptors.
func (c *CommitClient) Interceptors() []Interceptor {
	return c.inters.Commit
}

func (c *CommitClient) mutate(ctx context.Context, m *CommitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Commit mutation op: %q", m.Op())
	}
}

// FeatureClient is a client for the Feature schema.
type FeatureClient struct {
	config
}

// NewFeatureClient returns a client for the Feature from the given config.
func NewFeatureClient(c config) *FeatureClient {
	return &FeatureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feature.Hooks(f(g(h())))`.
func (c *FeatureClient) Use(hooks ...Hook) {
	c.hooks.Feature = append(c.hooks.Feature, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feature.Intercept(f(g(h())))`.
func (c *FeatureClient) Intercept(interceptors ...Interceptor) {
	c.inters.Feature = append(c.inters.Feature, interceptors...)
}

// Create returns a builder for creating a Feature entity.
func (c *FeatureClient) Create() *FeatureCreate {
	mutation := newFeatureMutation(c.config, OpCreate)
	return &FeatureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Feature entities.
func (c *FeatureClient) CreateBulk(builders ...*FeatureCreate) *FeatureCreateBulk {
	return &FeatureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeatureClient) MapCreateBulk(slice any, setFunc func(*FeatureCreate, int)) *FeatureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeatureCreateBulk{err: fmt.Errorf("calling to FeatureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeatureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeatureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Feature.
func (c *FeatureClient) Update() *FeatureUpdate {
	mutation := newFeatureMutation(c.config, OpUpdate)
	return &FeatureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeatureClient) UpdateOne(_m *Feature) *FeatureUpdateOne {
	mutation := newFeatureMutation(c.config, OpUpdateOne, withFeature(_m))
	return &FeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeatureClient) UpdateOneID(id string) *FeatureUpdateOne {
	mutation := newFeatureMutation(c.config, OpUpdateOne, withFeatureID(id))
	return &FeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Feature.
func (c *FeatureClient) Delete() *FeatureDelete {
	mutation := newFeatureMutation(c.config, OpDelete)
	return &FeatureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeatureClient) DeleteOne(_m *Feature) *FeatureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeatureClient) DeleteOneID(id string) *FeatureDeleteOne {
	builder := c.Delete().Where(feature.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeatureDeleteOne{builder}
}

// Query returns a query builder for Feature.
func (c *FeatureClient) Query() *FeatureQuery {
	return &FeatureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeature},
		inters: c.Interceptors(),
	}
}

// Get returns a Feature entity by its id.
func (c *FeatureClient) Get(ctx context.Context, id string) (*Feature, error) {
	return c.Query().Where(feature.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeatureClient) GetX(ctx context.Context, id string) *Feature {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Feature.
func (c *FeatureClient) QueryProject(_m *Feature) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, feature.ProjectTable, feature.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParent queries the parent edge of a Feature.
func (c *FeatureClient) QueryParent(_m *Feature) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, feature.ParentTable, feature.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a Feature.
func (c *FeatureClient) QueryChildren(_m *Feature) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.ChildrenTable, feature.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a Feature.
func (c *FeatureClient) QuerySteps(_m *Feature) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.StepsTable, feature.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStatusEvents queries the status_events edge of a Feature.
func (c *FeatureClient) QueryStatusEvents(_m *Feature) *StatusEventQuery {
	query := (&StatusEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(statusevent.Table, statusevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.StatusEventsTable, feature.StatusEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInsights queries the insights edge of a Feature.
func (c *FeatureClient) QueryInsights(_m *Feature) *InsightQuery {
	query := (&InsightClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(insight.Table, insight.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.InsightsTable, feature.InsightsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommits queries the commits edge of a Feature.
func (c *FeatureClient) QueryCommits(_m *Feature) *CommitQuery {
	query := (&CommitClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(commit.Table, commit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.CommitsTable, feature.CommitsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutgoingDeps queries the outgoing_deps edge of a Feature.
func (c *FeatureClient) QueryOutgoingDeps(_m *Feature) *FeatureDependencyQuery {
	query := (&FeatureDependencyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(featuredependency.Table, featuredependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.OutgoingDepsTable, feature.OutgoingDepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIncomingDeps queries the incoming_deps edge of a Feature.
func (c *FeatureClient) QueryIncomingDeps(_m *Feature) *FeatureDependencyQuery {
	query := (&FeatureDependencyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(featuredependency.Table, featuredependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.IncomingDepsTable, feature.IncomingDepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Feature.
func (c *FeatureClient) QueryEvents(_m *Feature) *HookEventQuery {
	query := (&HookEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, id),
			sqlgraph.To(hookevent.Table, hookevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, feature.EventsTable, feature.EventsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FeatureClient) Hooks() []Hook {
	return c.hooks.Feature
}

// Interceptors returns the client interceptors.
func (c *FeatureClient) Interceptors() []Interceptor {
	return c.inters.Feature
}

func (c *FeatureClient) mutate(ctx context.Context, m *FeatureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeatureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeatureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeatureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Feature mutation op: %q", m.Op())
	}
}

// FeatureDependencyClient is a client for the FeatureDependency schema.
type FeatureDependencyClient struct {
	config
}

// NewFeatureDependencyClient returns a client for the FeatureDependency from the given config.
func NewFeatureDependencyClient(c config) *FeatureDependencyClient {
	return &FeatureDependencyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `featuredependency.Hooks(f(g(h())))`.
func (c *FeatureDependencyClient) Use(hooks ...Hook) {
	c.hooks.FeatureDependency = append(c.hooks.FeatureDependency, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `featuredependency.Intercept(f(g(h())))`.
func (c *FeatureDependencyClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeatureDependency = append(c.inters.FeatureDependency, interceptors...)
}

// Create returns a builder for creating a FeatureDependency entity.
func (c *FeatureDependencyClient) Create() *FeatureDependencyCreate {
	mutation := newFeatureDependencyMutation(c.config, OpCreate)
	return &FeatureDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeatureDependency entities.
func (c *FeatureDependencyClient) CreateBulk(builders ...*FeatureDependencyCreate) *FeatureDependencyCreateBulk {
	return &FeatureDependencyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeatureDependencyClient) MapCreateBulk(slice any, setFunc func(*FeatureDependencyCreate, int)) *FeatureDependencyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeatureDependencyCreateBulk{err: fmt.Errorf("calling to FeatureDependencyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeatureDependencyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeatureDependencyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeatureDependency.
func (c *FeatureDependencyClient) Update() *FeatureDependencyUpdate {
	mutation := newFeatureDependencyMutation(c.config, OpUpdate)
	return &FeatureDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeatureDependencyClient) UpdateOne(_m *FeatureDependency) *FeatureDependencyUpdateOne {
	mutation := newFeatureDependencyMutation(c.config, OpUpdateOne, withFeatureDependency(_m))
	return &FeatureDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeatureDependencyClient) UpdateOneID(id string) *FeatureDependencyUpdateOne {
	mutation := newFeatureDependencyMutation(c.config, OpUpdateOne, withFeatureDependencyID(id))
	return &FeatureDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeatureDependency.
func (c *FeatureDependencyClient) Delete() *FeatureDependencyDelete {
	mutation := newFeatureDependencyMutation(c.config, OpDelete)
	return &FeatureDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeatureDependencyClient) DeleteOne(_m *FeatureDependency) *FeatureDependencyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeatureDependencyClient) DeleteOneID(id string) *FeatureDependencyDeleteOne {
	builder := c.Delete().Where(featuredependency.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeatureDependencyDeleteOne{builder}
}

// Query returns a query builder for FeatureDependency.
func (c *FeatureDependencyClient) Query() *FeatureDependencyQuery {
	return &FeatureDependencyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeatureDependency},
		inters: c.Interceptors(),
	}
}

// Get returns a FeatureDependency entity by its id.
func (c *FeatureDependencyClient) Get(ctx context.Context, id string) (*FeatureDependency, error) {
	return c.Query().Where(featuredependency.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeatureDependencyClient) GetX(ctx context.Context, id string) *FeatureDependency {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySource queries the source edge of a FeatureDependency.
func (c *FeatureDependencyClient) QuerySource(_m *FeatureDependency) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(featuredependency.Table, featuredependency.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, featuredependency.SourceTable, featuredependency.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTarget queries the target edge of a FeatureDependency.
func (c *FeatureDependencyClient) QueryTarget(_m *FeatureDependency) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(featuredependency.Table, featuredependency.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, featuredependency.TargetTable, featuredependency.TargetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FeatureDependencyClient) Hooks() []Hook {
	return c.hooks.FeatureDependency
}

// Interceptors returns the client interceptors.
func (c *FeatureDependencyClient) Interceptors() []Interceptor {
	return c.inters.FeatureDependency
}

func (c *FeatureDependencyClient) mutate(ctx context.Context, m *FeatureDependencyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeatureDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeatureDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeatureDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeatureDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeatureDependency mutation op: %q", m.Op())
	}
}

// HookEventClient is a client for the HookEvent schema.
type HookEventClient struct {
	config
}

// NewHookEventClient returns a client for the HookEvent from the given config.
func NewHookEventClient(c config) *HookEventClient {
	return &HookEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hookevent.Hooks(f(g(h())))`.
func (c *HookEventClient) Use(hooks ...Hook) {
	c.hooks.HookEvent = append(c.hooks.HookEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hookevent.Intercept(f(g(h())))`.
func (c *HookEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.HookEvent = append(c.inters.HookEvent, interceptors...)
}

// Create returns a builder for creating a HookEvent entity.
func (c *HookEventClient) Create() *HookEventCreate {
	mutation := newHookEventMutation(c.config, OpCreate)
	return &HookEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HookEvent entities.
func (c *HookEventClient) CreateBulk(builders ...*HookEventCreate) *HookEventCreateBulk {
	return &HookEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HookEventClient) MapCreateBulk(slice any, setFunc func(*HookEventCreate, int)) *HookEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HookEventCreateBulk{err: fmt.Errorf("calling to HookEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HookEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HookEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HookEvent.
func (c *HookEventClient) Update() *HookEventUpdate {
	mutation := newHookEventMutation(c.config, OpUpdate)
	return &HookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HookEventClient) UpdateOne(_m *HookEvent) *HookEventUpdateOne {
	mutation := newHookEventMutation(c.config, OpUpdateOne, withHookEvent(_m))
	return &HookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HookEventClient) UpdateOneID(id string) *HookEventUpdateOne {
	mutation := newHookEventMutation(c.config, OpUpdateOne, withHookEventID(id))
	return &HookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HookEvent.
func (c *HookEventClient) Delete() *HookEventDelete {
	mutation := newHookEventMutation(c.config, OpDelete)
	return &HookEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HookEventClient) DeleteOne(_m *HookEvent) *HookEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HookEventClient) DeleteOneID(id string) *HookEventDeleteOne {
	builder := c.Delete().Where(hookevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HookEventDeleteOne{builder}
}

// Query returns a query builder for HookEvent.
func (c *HookEventClient) Query() *HookEventQuery {
	return &HookEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHookEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a HookEvent entity by its id.
func (c *HookEventClient) Get(ctx context.Context, id string) (*HookEvent, error) {
	return c.Query().Where(hookevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HookEventClient) GetX(ctx context.Context, id string) *HookEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a HookEvent.
func (c *HookEventClient) QuerySession(_m *HookEvent) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hookevent.Table, hookevent.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hookevent.SessionTable, hookevent.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStep queries the step edge of a HookEvent.
func (c *HookEventClient) QueryStep(_m *HookEvent) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hookevent.Table, hookevent.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hookevent.StepTable, hookevent.StepColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeatures queries the features edge of a HookEvent.
func (c *HookEventClient) QueryFeatures(_m *HookEvent) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hookevent.Table, hookevent.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, hookevent.FeaturesTable, hookevent.FeaturesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HookEventClient) Hooks() []Hook {
	return c.hooks.HookEvent
}

// Interceptors returns the client interceptors.
func (c *HookEventClient) Interceptors() []Interceptor {
	return c.inters.HookEvent
}

func (c *HookEventClient) mutate(ctx context.Context, m *HookEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HookEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HookEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HookEvent mutation op: %q", m.Op())
	}
}

// InsightClient is a client for the Insight schema.
type InsightClient struct {
	config
}

// NewInsightClient returns a client for the Insight from the given config.
func NewInsightClient(c config) *InsightClient {
	return &InsightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insight.Hooks(f(g(h())))`.
func (c *InsightClient) Use(hooks ...Hook) {
	c.hooks.Insight = append(c.hooks.Insight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insight.Intercept(f(g(h())))`.
func (c *InsightClient) Intercept(interceptors ...Interceptor) {
	c.inters.Insight = append(c.inters.Insight, interceptors...)
}

// Create returns a builder for creating a Insight entity.
func (c *InsightClient) Create() *InsightCreate {
	mutation := newInsightMutation(c.config, OpCreate)
	return &InsightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Insight entities.
func (c *InsightClient) CreateBulk(builders ...*InsightCreate) *InsightCreateBulk {
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsightClient) MapCreateBulk(slice any, setFunc func(*InsightCreate, int)) *InsightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsightCreateBulk{err: fmt.Errorf("calling to InsightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Insight.
func (c *InsightClient) Update() *InsightUpdate {
	mutation := newInsightMutation(c.config, OpUpdate)
	return &InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsightClient) UpdateOne(_m *Insight) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsight(_m))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsightClient) UpdateOneID(id string) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsightID(id))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Insight.
func (c *InsightClient) Delete() *InsightDelete {
	mutation := newInsightMutation(c.config, OpDelete)
	return &InsightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsightClient) DeleteOne(_m *Insight) *InsightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsightClient) DeleteOneID(id string) *InsightDeleteOne {
	builder := c.Delete().Where(insight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsightDeleteOne{builder}
}

// Query returns a query builder for Insight.
func (c *InsightClient) Query() *InsightQuery {
	return &InsightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsight},
		inters: c.Interceptors(),
	}
}

// Get returns a Insight entity by its id.
func (c *InsightClient) Get(ctx context.Context, id string) (*Insight, error) {
	return c.Query().Where(insight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsightClient) GetX(ctx context.Context, id string) *Insight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFeature queries the feature edge of a Insight.
func (c *InsightClient) QueryFeature(_m *Insight) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insight.Table, insight.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, insight.FeatureTable, insight.FeatureColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InsightClient) Hooks() []Hook {
	return c.hooks.Insight
}

// Interceptors returns the client interceptors.
func (c *InsightClient) Interceptors() []Interceptor {
	return c.inters.Insight
}

func (c *InsightClient) mutate(ctx context.Context, m *InsightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Insight mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a Project.
func (c *ProjectClient) QuerySessions(_m *Project) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SessionsTable, project.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeatures queries the features edge of a Project.
func (c *ProjectClient) QueryFeatures(_m *Project) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.FeaturesTable, project.FeaturesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// StatusEventClient is a client for the StatusEvent schema.
type StatusEventClient struct {
	config
}

// NewStatusEventClient returns a client for the StatusEvent from the given config.
func NewStatusEventClient(c config) *StatusEventClient {
	return &StatusEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statusevent.Hooks(f(g(h())))`.
func (c *StatusEventClient) Use(hooks ...Hook) {
	c.hooks.StatusEvent = append(c.hooks.StatusEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statusevent.Intercept(f(g(h())))`.
func (c *StatusEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StatusEvent = append(c.inters.StatusEvent, interceptors...)
}

// Create returns a builder for creating a StatusEvent entity.
func (c *StatusEventClient) Create() *StatusEventCreate {
	mutation := newStatusEventMutation(c.config, OpCreate)
	return &StatusEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StatusEvent entities.
func (c *StatusEventClient) CreateBulk(builders ...*StatusEventCreate) *StatusEventCreateBulk {
	return &StatusEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StatusEventClient) MapCreateBulk(slice any, setFunc func(*StatusEventCreate, int)) *StatusEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StatusEventCreateBulk{err: fmt.Errorf("calling to StatusEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StatusEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StatusEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StatusEvent.
func (c *StatusEventClient) Update() *StatusEventUpdate {
	mutation := newStatusEventMutation(c.config, OpUpdate)
	return &StatusEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StatusEventClient) UpdateOne(_m *StatusEvent) *StatusEventUpdateOne {
	mutation := newStatusEventMutation(c.config, OpUpdateOne, withStatusEvent(_m))
	return &StatusEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StatusEventClient) UpdateOneID(id string) *StatusEventUpdateOne {
	mutation := newStatusEventMutation(c.config, OpUpdateOne, withStatusEventID(id))
	return &StatusEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StatusEvent.
func (c *StatusEventClient) Delete() *StatusEventDelete {
	mutation := newStatusEventMutation(c.config, OpDelete)
	return &StatusEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StatusEventClient) DeleteOne(_m *StatusEvent) *StatusEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StatusEventClient) DeleteOneID(id string) *StatusEventDeleteOne {
	builder := c.Delete().Where(statusevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StatusEventDeleteOne{builder}
}

// Query returns a query builder for StatusEvent.
func (c *StatusEventClient) Query() *StatusEventQuery {
	return &StatusEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStatusEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StatusEvent entity by its id.
func (c *StatusEventClient) Get(ctx context.Context, id string) (*StatusEvent, error) {
	return c.Query().Where(statusevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StatusEventClient) GetX(ctx context.Context, id string) *StatusEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFeature queries the feature edge of a StatusEvent.
func (c *StatusEventClient) QueryFeature(_m *StatusEvent) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(statusevent.Table, statusevent.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, statusevent.FeatureTable, statusevent.FeatureColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StatusEventClient) Hooks() []Hook {
	return c.hooks.StatusEvent
}

// Interceptors returns the client interceptors.
func (c *StatusEventClient) Interceptors() []Interceptor {
	return c.inters.StatusEvent
}

func (c *StatusEventClient) mutate(ctx context.Context, m *StatusEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StatusEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StatusEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StatusEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StatusEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StatusEvent mutation op: %q", m.Op())
	}
}

// StepClient is a client for the Step schema.
type StepClient struct {
	config
}

// NewStepClient returns a client for the Step from the given config.
func NewStepClient(c config) *StepClient {
	return &StepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `step.Hooks(f(g(h())))`.
func (c *StepClient) Use(hooks ...Hook) {
	c.hooks.Step = append(c.hooks.Step, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `step.Intercept(f(g(h())))`.
func (c *StepClient) Intercept(interceptors ...Interceptor) {
	c.inters.Step = append(c.inters.Step, interceptors...)
}

// Create returns a builder for creating a Step entity.
func (c *StepClient) Create() *StepCreate {
	mutation := newStepMutation(c.config, OpCreate)
	return &StepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Step entities.
func (c *StepClient) CreateBulk(builders ...*StepCreate) *StepCreateBulk {
	return &StepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepClient) MapCreateBulk(slice any, setFunc func(*StepCreate, int)) *StepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepCreateBulk{err: fmt.Errorf("calling to StepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Step.
func (c *StepClient) Update() *StepUpdate {
	mutation := newStepMutation(c.config, OpUpdate)
	return &StepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepClient) UpdateOne(_m *Step) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStep(_m))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepClient) UpdateOneID(id string) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStepID(id))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Step.
func (c *StepClient) Delete() *StepDelete {
	mutation := newStepMutation(c.config, OpDelete)
	return &StepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepClient) DeleteOne(_m *Step) *StepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepClient) DeleteOneID(id string) *StepDeleteOne {
	builder := c.Delete().Where(step.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepDeleteOne{builder}
}

// Query returns a query builder for Step.
func (c *StepClient) Query() *StepQuery {
	return &StepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStep},
		inters: c.Interceptors(),
	}
}

// Get returns a Step entity by its id.
func (c *StepClient) Get(ctx context.Context, id string) (*Step, error) {
	return c.Query().Where(step.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepClient) GetX(ctx context.Context, id string) *Step {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFeature queries the feature edge of a Step.
func (c *StepClient) QueryFeature(_m *Step) *FeatureQuery {
	query := (&FeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, step.FeatureTable, step.FeatureColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Step.
func (c *StepClient) QueryEvents(_m *Step) *HookEventQuery {
	query := (&HookEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(hookevent.Table, hookevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, step.EventsTable, step.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepClient) Hooks() []Hook {
	return c.hooks.Step
}

// Interceptors returns the client interceptors.
func (c *StepClient) Interceptors() []Interceptor {
	return c.inters.Step
}

func (c *StepClient) mutate(ctx context.Context, m *StepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Step mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentSession, Commit, Feature, FeatureDependency, HookEvent, Insight, Project,
		StatusEvent, Step []ent.Hook
	}
	inters struct {
		AgentSession, Commit, Feature, FeatureDependency, HookEvent, Insight, Project,
		StatusEvent, Step []ent.Interceptor
	}
)
