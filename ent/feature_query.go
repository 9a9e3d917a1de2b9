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
	"github.com/ijoka-ai/ijoka/ent/commit"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/insight"
	"github.com/ijoka-ai/ijoka/ent/predicate"
	"github.com/ijoka-ai/ijoka/ent/project"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/ent/step"
)

// FeatureQuery is the builder for querying Feature entities.
type FeatureQuery struct {
	config
	ctx              *QueryContext
	order            []feature.OrderOption
	inters           []Interceptor
	predicates       []predicate.Feature
	withProject      *ProjectQuery
	withParent       *FeatureQuery
	withChildren     *FeatureQuery
	withSteps        *StepQuery
	withStatusEvents *StatusEventQuery
	withInsights     *InsightQuery
	withCommits      *CommitQuery
	withOutgoingDeps *FeatureDependencyQuery
	withIncomingDeps *FeatureDependencyQuery
	withEvents       *HookEventQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FeatureQuery builder.
func (_q *FeatureQuery) Where(ps ...predicate.Feature) *FeatureQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FeatureQuery) Limit(limit int) *FeatureQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FeatureQuery) Offset(offset int) *FeatureQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FeatureQuery) Unique(unique bool) *FeatureQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FeatureQuery) Order(o ...feature.OrderOption) *FeatureQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProject chains the current query on the "project" edge.
func (_q *FeatureQuery) QueryProject() *ProjectQuery {
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
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, feature.ProjectTable, feature.ProjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryParent chains the current query on the "parent" edge.
func (_q *FeatureQuery) QueryParent() *FeatureQuery {
	query := (&FeatureClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, feature.ParentTable, feature.ParentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChildren chains the current query on the "children" edge.
func (_q *FeatureQuery) QueryChildren() *FeatureQuery {
	query := (&FeatureClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.ChildrenTable, feature.ChildrenColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySteps chains the current query on the "steps" edge.
func (_q *FeatureQuery) QuerySteps() *StepQuery {
	query := (&StepClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.StepsTable, feature.StepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStatusEvents chains the current query on the "status_events" edge.
func (_q *FeatureQuery) QueryStatusEvents() *StatusEventQuery {
	query := (&StatusEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(statusevent.Table, statusevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.StatusEventsTable, feature.StatusEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInsights chains the current query on the "insights" edge.
func (_q *FeatureQuery) QueryInsights() *InsightQuery {
	query := (&InsightClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(insight.Table, insight.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.InsightsTable, feature.InsightsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCommits chains the current query on the "commits" edge.
func (_q *FeatureQuery) QueryCommits() *CommitQuery {
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
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(commit.Table, commit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.CommitsTable, feature.CommitsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOutgoingDeps chains the current query on the "outgoing_deps" edge.
func (_q *FeatureQuery) QueryOutgoingDeps() *FeatureDependencyQuery {
	query := (&FeatureDependencyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(featuredependency.Table, featuredependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.OutgoingDepsTable, feature.OutgoingDepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryIncomingDeps chains the current query on the "incoming_deps" edge.
func (_q *FeatureQuery) QueryIncomingDeps() *FeatureDependencyQuery {
	query := (&FeatureDependencyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(featuredependency.Table, featuredependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, feature.IncomingDepsTable, feature.IncomingDepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *FeatureQuery) QueryEvents() *HookEventQuery {
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
			sqlgraph.From(feature.Table, feature.FieldID, selector),
			sqlgraph.To(hookevent.Table, hookevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, feature.EventsTable, feature.EventsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Feature entity from the query.
// Returns a *NotFoundError when no Feature was found.
func (_q *FeatureQuery) First(ctx context.Context) (*Feature, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{feature.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FeatureQuery) FirstX(ctx context.Context) *Feature {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Feature ID from the query.
// Returns a *NotFoundError when no Feature ID was found.
func (_q *FeatureQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{feature.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FeatureQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Feature entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Feature entity is found.
// Returns a *NotFoundError when no Feature entities are found.
func (_q *FeatureQuery) Only(ctx context.Context) (*Feature, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{feature.Label}
	default:
		return nil, &NotSingularError{feature.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FeatureQuery) OnlyX(ctx context.Context) *Feature {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Feature ID in the query.
// Returns a *NotSingularError when more than one Feature ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FeatureQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{feature.Label}
	default:
		err = &NotSingularError{feature.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FeatureQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Features.
func (_q *FeatureQuery) All(ctx context.Context) ([]*Feature, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Feature, *FeatureQuery]()
	return withInterceptors[[]*Feature](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FeatureQuery) AllX(ctx context.Context) []*Feature {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Feature IDs.
func (_q *FeatureQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(feature.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FeatureQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FeatureQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FeatureQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FeatureQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FeatureQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *FeatureQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FeatureQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FeatureQuery) Clone() *FeatureQuery {
	if _q == nil {
		return nil
	}
	return &FeatureQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]feature.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Feature{}, _q.predicates...),
		withProject:      _q.withProject.Clone(),
		withParent:       _q.withParent.Clone(),
		withChildren:     _q.withChildren.Clone(),
		withSteps:        _q.withSteps.Clone(),
		withStatusEvents: _q.withStatusEvents.Clone(),
		withInsights:     _q.withInsights.Clone(),
		withCommits:      _q.withCommits.Clone(),
		withOutgoingDeps: _q.withOutgoingDeps.Clone(),
		withIncomingDeps: _q.withIncomingDeps.Clone(),
		withEvents:       _q.withEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProject tells the query-builder to eager-load the nodes that are connected to
// the "project" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithProject(opts ...func(*ProjectQuery)) *FeatureQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProject = query
	return _q
}

// WithParent tells the query-builder to eager-load the nodes that are connected to
// the "parent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithParent(opts ...func(*FeatureQuery)) *FeatureQuery {
	query := (&FeatureClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParent = query
	return _q
}

// WithChildren tells the query-builder to eager-load the nodes that are connected to
// the "children" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithChildren(opts ...func(*FeatureQuery)) *FeatureQuery {
	query := (&FeatureClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChildren = query
	return _q
}

// WithSteps tells the query-builder to eager-load the nodes that are connected to
// the "steps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithSteps(opts ...func(*StepQuery)) *FeatureQuery {
	query := (&StepClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSteps = query
	return _q
}

// WithStatusEvents tells the query-builder to eager-load the nodes that are connected to
// the "status_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithStatusEvents(opts ...func(*StatusEventQuery)) *FeatureQuery {
	query := (&StatusEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStatusEvents = query
	return _q
}

// WithInsights tells the query-builder to eager-load the nodes that are connected to
// the "insights" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithInsights(opts ...func(*InsightQuery)) *FeatureQuery {
	query := (&InsightClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInsights = query
	return _q
}

// WithCommits tells the query-builder to eager-load the nodes that are connected to
// the "commits" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithCommits(opts ...func(*CommitQuery)) *FeatureQuery {
	query := (&CommitClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCommits = query
	return _q
}

// WithOutgoingDeps tells the query-builder to eager-load the nodes that are connected to
// the "outgoing_deps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithOutgoingDeps(opts ...func(*FeatureDependencyQuery)) *FeatureQuery {
	query := (&FeatureDependencyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOutgoingDeps = query
	return _q
}

// WithIncomingDeps tells the query-builder to eager-load the nodes that are connected to
// the "incoming_deps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithIncomingDeps(opts ...func(*FeatureDependencyQuery)) *FeatureQuery {
	query := (&FeatureDependencyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withIncomingDeps = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureQuery) WithEvents(opts ...func(*HookEventQuery)) *FeatureQuery {
	query := (&HookEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Description string `json:"description,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Feature.Query().
//		GroupBy(feature.FieldDescription).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FeatureQuery) GroupBy(field string, fields ...string) *FeatureGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FeatureGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = feature.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Description string `json:"description,omitempty"`
//	}
//
//	client.Feature.Query().
//		Select(feature.FieldDescription).
//		Scan(ctx, &v)
func (_q *FeatureQuery) Select(fields ...string) *FeatureSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FeatureSelect{FeatureQuery: _q}
	sbuild.label = feature.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FeatureSelect configured with the given aggregations.
func (_q *FeatureQuery) Aggregate(fns ...AggregateFunc) *FeatureSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FeatureQuery) prepareQuery(ctx context.Context) error {
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
		if !feature.ValidColumn(f) {
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

func (_q *FeatureQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Feature, error) {
	var (
		nodes       = []*Feature{}
		_spec       = _q.querySpec()
		loadedTypes = [10]bool{
			_q.withProject != nil,
			_q.withParent != nil,
			_q.withChildren != nil,
			_q.withSteps != nil,
			_q.withStatusEvents != nil,
			_q.withInsights != nil,
			_q.withCommits != nil,
			_q.withOutgoingDeps != nil,
			_q.withIncomingDeps != nil,
			_q.withEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Feature).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Feature{config: _q.config}
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
			func(n *Feature, e *Project) { n.Edges.Project = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withParent; query != nil {
		if err := _q.loadParent(ctx, query, nodes, nil,
			func(n *Feature, e *Feature) { n.Edges.Parent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChildren; query != nil {
		if err := _q.loadChildren(ctx, query, nodes,
			func(n *Feature) { n.Edges.Children = []*Feature{} },
			func(n *Feature, e *Feature) { n.Edges.Children = append(n.Edges.Children, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSteps; query != nil {
		if err := _q.loadSteps(ctx, query, nodes,
			func(n *Feature) { n.Edges.Steps = []*Step{} },
			func(n *Feature, e *Step) { n.Edges.Steps = append(n.Edges.Steps, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStatusEvents; query != nil {
		if err := _q.loadStatusEvents(ctx, query, nodes,
			func(n *Feature) { n.Edges.StatusEvents = []*StatusEvent{} },
			func(n *Feature, e *StatusEvent) { n.Edges.StatusEvents = append(n.Edges.StatusEvents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withInsights; query != nil {
		if err := _q.loadInsights(ctx, query, nodes,
			func(n *Feature) { n.Edges.Insights = []*Insight{} },
			func(n *Feature, e *Insight) { n.Edges.Insights = append(n.Edges.Insights, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCommits; query != nil {
		if err := _q.loadCommits(ctx, query, nodes,
			func(n *Feature) { n.Edges.Commits = []*Commit{} },
			func(n *Feature, e *Commit) { n.Edges.Commits = append(n.Edges.Commits, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOutgoingDeps; query != nil {
		if err := _q.loadOutgoingDeps(ctx, query, nodes,
			func(n *Feature) { n.Edges.OutgoingDeps = []*FeatureDependency{} },
			func(n *Feature, e *FeatureDependency) { n.Edges.OutgoingDeps = append(n.Edges.OutgoingDeps, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withIncomingDeps; query != nil {
		if err := _q.loadIncomingDeps(ctx, query, nodes,
			func(n *Feature) { n.Edges.IncomingDeps = []*FeatureDependency{} },
			func(n *Feature, e *FeatureDependency) { n.Edges.IncomingDeps = append(n.Edges.IncomingDeps, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Feature) { n.Edges.Events = []*HookEvent{} },
			func(n *Feature, e *HookEvent) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FeatureQuery) loadProject(ctx context.Context, query *ProjectQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *Project)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Feature)
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
func (_q *FeatureQuery) loadParent(ctx context.Context, query *FeatureQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *Feature)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Feature)
	for i := range nodes {
		if nodes[i].ParentID == nil {
			continue
		}
		fk := *nodes[i].ParentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(feature.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "parent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FeatureQuery) loadChildren(ctx context.Context, query *FeatureQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *Feature)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Feature)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(feature.FieldParentID)
	}
	query.Where(predicate.Feature(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(feature.ChildrenColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParentID
		if fk == nil {
			return fmt.Errorf(`foreign-key "parent_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "parent_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FeatureQuery) loadSteps(ctx context.Context, query *StepQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *Step)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Feature)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(step.FieldFeatureID)
	}
	query.Where(predicate.Step(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(feature.StepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FeatureID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "feature_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FeatureQuery) loadStatusEvents(ctx context.Context, query *StatusEventQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *StatusEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Feature)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(statusevent.FieldFeatureID)
	}
	query.Where(predicate.StatusEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(feature.StatusEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FeatureID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "feature_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FeatureQuery) loadInsights(ctx context.Context, query *InsightQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *Insight)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Feature)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(insight.FieldFeatureID)
	}
	query.Where(predicate.Insight(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(feature.InsightsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FeatureID
		if fk == nil {
			return fmt.Errorf(`foreign-key "feature_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "feature_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FeatureQuery) loadCommits(ctx context.Context, query *CommitQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *Commit)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Feature)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(commit.FieldFeatureID)
	}
	query.Where(predicate.Commit(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(feature.CommitsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FeatureID
		if fk == nil {
			return fmt.Errorf(`foreign-key "feature_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "feature_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FeatureQuery) loadOutgoingDeps(ctx context.Context, query *FeatureDependencyQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *FeatureDependency)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Feature)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(featuredependency.FieldSourceID)
	}
	query.Where(predicate.FeatureDependency(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(feature.OutgoingDepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SourceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "source_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FeatureQuery) loadIncomingDeps(ctx context.Context, query *FeatureDependencyQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *FeatureDependency)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Feature)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(featuredependency.FieldTargetID)
	}
	query.Where(predicate.FeatureDependency(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(feature.IncomingDepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TargetID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "target_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FeatureQuery) loadEvents(ctx context.Context, query *HookEventQuery, nodes []*Feature, init func(*Feature), assign func(*Feature, *HookEvent)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*Feature)
	nids := make(map[string]map[*Feature]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(feature.EventsTable)
		s.Join(joinT).On(s.C(hookevent.FieldID), joinT.C(feature.EventsPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(feature.EventsPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(feature.EventsPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*Feature]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*HookEvent](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "events" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *FeatureQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FeatureQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(feature.Table, feature.Columns, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feature.FieldID)
		for i := range fields {
			if fields[i] != feature.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProject != nil {
			_spec.Node.AddColumnOnce(feature.FieldProjectID)
		}
		if _q.withParent != nil {
			_spec.Node.AddColumnOnce(feature.FieldParentID)
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

func (_q *FeatureQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(feature.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = feature.Columns
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

// FeatureGroupBy is the group-by builder for Feature entities.
type FeatureGroupBy struct {
	selector
	build *FeatureQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FeatureGroupBy) Aggregate(fns ...AggregateFunc) *FeatureGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FeatureGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FeatureQuery, *FeatureGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FeatureGroupBy) sqlScan(ctx context.Context, root *FeatureQuery, v any) error {
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

// FeatureSelect is the builder for selecting fields of Feature entities.
type FeatureSelect struct {
	*FeatureQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FeatureSelect) Aggregate(fns ...AggregateFunc) *FeatureSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FeatureSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FeatureQuery, *FeatureSelect](ctx, _s.FeatureQuery, _s, _s.inters, v)
}

func (_s *FeatureSelect) sqlScan(ctx context.Context, root *FeatureQuery, v any) error {
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
