// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/commit"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/predicate"
	"github.com/ijoka-ai/ijoka/ent/project"
)

// AgentSessionQuery is the builder for querying AgentSession entities.
type AgentSessionQuery struct {
	config
	ctx               *QueryContext
	order             []agentsession.OrderOption
	inters            []Interceptor
	predicates        []predicate.AgentSession
	withProject       *ProjectQuery
	withContinuedFrom *AgentSessionQuery
	withContinuations *AgentSessionQuery
	withEvents        *HookEventQuery
	withCommits       *CommitQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgentSessionQuery builder.
func (_q *AgentSessionQuery) Where(ps ...predicate.AgentSession) *AgentSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AgentSessionQuery) Limit(limit int) *AgentSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AgentSessionQuery) Offset(offset int) *AgentSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AgentSessionQuery) Unique(unique bool) *AgentSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AgentSessionQuery) Order(o ...agentsession.OrderOption) *AgentSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProject chains the current query on the "project" edge.
func (_q *AgentSessionQuery) QueryProject() *ProjectQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsession.ProjectTable, agentsession.ProjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryContinuedFrom chains the current query on the "continued_from" edge.
func (_q *AgentSessionQuery) QueryContinuedFrom() *AgentSessionQuery {
	query := (&AgentSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, selector),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsession.ContinuedFromTable, agentsession.ContinuedFromColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryContinuations chains the current query on the "continuations" edge.
func (_q *AgentSessionQuery) QueryContinuations() *AgentSessionQuery {
	query := (&AgentSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, selector),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.ContinuationsTable, agentsession.ContinuationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *AgentSessionQuery) QueryEvents() *HookEventQuery {
	query := (&HookEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, selector),
			sqlgraph.To(hookevent.Table, hookevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.EventsTable, agentsession.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCommits chains the current query on the "commits" edge.
func (_q *AgentSessionQuery) QueryCommits() *CommitQuery {
	query := (&CommitClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, selector),
			sqlgraph.To(commit.Table, commit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.CommitsTable, agentsession.CommitsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AgentSession entity from the query.
// Returns a *NotFoundError when no AgentSession was found.
func (_q *AgentSessionQuery) First(ctx context.Context) (*AgentSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agentsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AgentSessionQuery) FirstX(ctx context.Context) *AgentSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AgentSession ID from the query.
// Returns a *NotFoundError when no AgentSession ID was found.
func (_q *AgentSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agentsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AgentSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AgentSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AgentSession entity is found.
// Returns a *NotFoundError when no AgentSession entities are found.
func (_q *AgentSessionQuery) Only(ctx context.Context) (*AgentSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agentsession.Label}
	default:
		return nil, &NotSingularError{agentsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AgentSessionQuery) OnlyX(ctx context.Context) *AgentSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AgentSession ID in the query.
// Returns a *NotSingularError when more than one AgentSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AgentSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agentsession.Label}
	default:
		err = &NotSingularError{agentsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AgentSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AgentSessions.
func (_q *AgentSessionQuery) All(ctx context.Context) ([]*AgentSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AgentSession, *AgentSessionQuery]()
	return withInterceptors[[]*AgentSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AgentSessionQuery) AllX(ctx context.Context) []*AgentSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AgentSession IDs.
func (_q *AgentSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(agentsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AgentSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AgentSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AgentSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AgentSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AgentSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AgentSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgentSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AgentSessionQuery) Clone() *AgentSessionQuery {
	if _q == nil {
		return nil
	}
	return &AgentSessionQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]agentsession.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.AgentSession{}, _q.predicates...),
		withProject:       _q.withProject.Clone(),
		withContinuedFrom: _q.withContinuedFrom.Clone(),
		withContinuations: _q.withContinuations.Clone(),
		withEvents:        _q.withEvents.Clone(),
		withCommits:       _q.withCommits.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProject tells the query-builder to eager-load the nodes that are connected to
// the "project" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentSessionQuery) WithProject(opts ...func(*ProjectQuery)) *AgentSessionQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProject = query
	return _q
}

// WithContinuedFrom tells the query-builder to eager-load the nodes that are connected to
// the "continued_from" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentSessionQuery) WithContinuedFrom(opts ...func(*AgentSessionQuery)) *AgentSessionQuery {
	query := (&AgentSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContinuedFrom = query
	return _q
}

// WithContinuations tells the query-builder to eager-load the nodes that are connected to
// the "continuations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentSessionQuery) WithContinuations(opts ...func(*AgentSessionQuery)) *AgentSessionQuery {
	query := (&AgentSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContinuations = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentSessionQuery) WithEvents(opts ...func(*HookEventQuery)) *AgentSessionQuery {
	query := (&HookEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithCommits tells the query-builder to eager-load the nodes that are connected to
// the "commits" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentSessionQuery) WithCommits(opts ...func(*CommitQuery)) *AgentSessionQuery {
	query := (&CommitClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCommits = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Agent string `json:"agent,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AgentSession.Query().
//		GroupBy(agentsession.FieldAgent).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AgentSessionQuery) GroupBy(field string, fields ...string) *AgentSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgentSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = agentsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Agent string `json:"agent,omitempty"`
//	}
//
//	client.AgentSession.Query().
//		Select(agentsession.FieldAgent).
//		Scan(ctx, &v)
func (_q *AgentSessionQuery) Select(fields ...string) *AgentSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AgentSessionSelect{AgentSessionQuery: _q}
	sbuild.label = agentsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgentSessionSelect configured with the given aggregations.
func (_q *AgentSessionQuery) Aggregate(fns ...AggregateFunc) *AgentSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AgentSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !agentsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AgentSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AgentSession, error) {
	var (
		nodes       = []*AgentSession{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withProject != nil,
			_q.withContinuedFrom != nil,
			_q.withContinuations != nil,
			_q.withEvents != nil,
			_q.withCommits != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AgentSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AgentSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withProject; query != nil {
		if err := _q.loadProject(ctx, query, nodes, nil,
			func(n *AgentSession, e *Project) { n.Edges.Project = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withContinuedFrom; query != nil {
		if err := _q.loadContinuedFrom(ctx, query, nodes, nil,
			func(n *AgentSession, e *AgentSession) { n.Edges.ContinuedFrom = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withContinuations; query != nil {
		if err := _q.loadContinuations(ctx, query, nodes,
			func(n *AgentSession) { n.Edges.Continuations = []*AgentSession{} },
			func(n *AgentSession, e *AgentSession) { n.Edges.Continuations = append(n.Edges.Continuations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *AgentSession) { n.Edges.Events = []*HookEvent{} },
			func(n *AgentSession, e *HookEvent) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCommits; query != nil {
		if err := _q.loadCommits(ctx, query, nodes,
			func(n *AgentSession) { n.Edges.Commits = []*Commit{} },
			func(n *AgentSession, e *Commit) { n.Edges.Commits = append(n.Edges.Commits, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AgentSessionQuery) loadProject(ctx context.Context, query *ProjectQuery, nodes []*AgentSession, init func(*AgentSession), assign func(*AgentSession, *Project)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AgentSession)
	for i := range nodes {
		fk := nodes[i].ProjectID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(project.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "project_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AgentSessionQuery) loadContinuedFrom(ctx context.Context, query *AgentSessionQuery, nodes []*AgentSession, init func(*AgentSession), assign func(*AgentSession, *AgentSession)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AgentSession)
	for i := range nodes {
		if nodes[i].ContinuedFromID == nil {
			continue
		}
		fk := *nodes[i].ContinuedFromID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agentsession.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "continued_from_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AgentSessionQuery) loadContinuations(ctx context.Context, query *AgentSessionQuery, nodes []*AgentSession, init func(*AgentSession), assign func(*AgentSession, *AgentSession)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentsession.FieldContinuedFromID)
	}
	query.Where(predicate.AgentSession(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentsession.ContinuationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ContinuedFromID
		if fk == nil {
			return fmt.Errorf(`foreign-key "continued_from_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "continued_from_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentSessionQuery) loadEvents(ctx context.Context, query *HookEventQuery, nodes []*AgentSession, init func(*AgentSession), assign func(*AgentSession, *HookEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(hookevent.FieldSessionID)
	}
	query.Where(predicate.HookEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentsession.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentSessionQuery) loadCommits(ctx context.Context, query *CommitQuery, nodes []*AgentSession, init func(*AgentSession), assign func(*AgentSession, *Commit)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(commit.FieldSessionID)
	}
	query.Where(predicate.Commit(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentsession.CommitsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AgentSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AgentSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for i := range fields {
			if fields[i] != agentsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProject != nil {
			_spec.Node.AddColumnOnce(agentsession.FieldProjectID)
		}
		if _q.withContinuedFrom != nil {
			_spec.Node.AddColumnOnce(agentsession.FieldContinuedFromID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AgentSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(agentsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = agentsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AgentSessionGroupBy is the group-by builder for AgentSession entities.
type AgentSessionGroupBy struct {
	selector
	build *AgentSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AgentSessionGroupBy) Aggregate(fns ...AggregateFunc) *AgentSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AgentSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentSessionQuery, *AgentSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AgentSessionGroupBy) sqlScan(ctx context.Context, root *AgentSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AgentSessionSelect is the builder for selecting fields of AgentSession entities.
type AgentSessionSelect struct {
	*AgentSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AgentSessionSelect) Aggregate(fns ...AggregateFunc) *AgentSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AgentSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentSessionQuery, *AgentSessionSelect](ctx, _s.AgentSessionQuery, _s, _s.inters, v)
}

func (_s *AgentSessionSelect) sqlScan(ctx context.Context, root *AgentSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
