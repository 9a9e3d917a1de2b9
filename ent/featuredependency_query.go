// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// FeatureDependencyQuery is the builder for querying FeatureDependency entities.
type FeatureDependencyQuery struct {
	config
	ctx        *QueryContext
	order      []featuredependency.OrderOption
	inters     []Interceptor
	predicates []predicate.FeatureDependency
	withSource *FeatureQuery
	withTarget *FeatureQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FeatureDependencyQuery builder.
func (_q *FeatureDependencyQuery) Where(ps ...predicate.FeatureDependency) *FeatureDependencyQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FeatureDependencyQuery) Limit(limit int) *FeatureDependencyQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FeatureDependencyQuery) Offset(offset int) *FeatureDependencyQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FeatureDependencyQuery) Unique(unique bool) *FeatureDependencyQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FeatureDependencyQuery) Order(o ...featuredependency.OrderOption) *FeatureDependencyQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySource chains the current query on the "source" edge.
func (_q *FeatureDependencyQuery) QuerySource() *FeatureQuery {
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
			sqlgraph.From(featuredependency.Table, featuredependency.FieldID, selector),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, featuredependency.SourceTable, featuredependency.SourceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTarget chains the current query on the "target" edge.
func (_q *FeatureDependencyQuery) QueryTarget() *FeatureQuery {
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
			sqlgraph.From(featuredependency.Table, featuredependency.FieldID, selector),
			sqlgraph.To(feature.Table, feature.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, featuredependency.TargetTable, featuredependency.TargetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first FeatureDependency entity from the query.
// Returns a *NotFoundError when no FeatureDependency was found.
func (_q *FeatureDependencyQuery) First(ctx context.Context) (*FeatureDependency, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{featuredependency.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FeatureDependencyQuery) FirstX(ctx context.Context) *FeatureDependency {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FeatureDependency ID from the query.
// Returns a *NotFoundError when no FeatureDependency ID was found.
func (_q *FeatureDependencyQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{featuredependency.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FeatureDependencyQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FeatureDependency entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FeatureDependency entity is found.
// Returns a *NotFoundError when no FeatureDependency entities are found.
func (_q *FeatureDependencyQuery) Only(ctx context.Context) (*FeatureDependency, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{featuredependency.Label}
	default:
		return nil, &NotSingularError{featuredependency.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FeatureDependencyQuery) OnlyX(ctx context.Context) *FeatureDependency {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FeatureDependency ID in the query.
// Returns a *NotSingularError when more than one FeatureDependency ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FeatureDependencyQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{featuredependency.Label}
	default:
		err = &NotSingularError{featuredependency.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FeatureDependencyQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FeatureDependencies.
func (_q *FeatureDependencyQuery) All(ctx context.Context) ([]*FeatureDependency, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FeatureDependency, *FeatureDependencyQuery]()
	return withInterceptors[[]*FeatureDependency](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FeatureDependencyQuery) AllX(ctx context.Context) []*FeatureDependency {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FeatureDependency IDs.
func (_q *FeatureDependencyQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(featuredependency.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FeatureDependencyQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FeatureDependencyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FeatureDependencyQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FeatureDependencyQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FeatureDependencyQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *FeatureDependencyQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FeatureDependencyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FeatureDependencyQuery) Clone() *FeatureDependencyQuery {
	if _q == nil {
		return nil
	}
	return &FeatureDependencyQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]featuredependency.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.FeatureDependency{}, _q.predicates...),
		withSource: _q.withSource.Clone(),
		withTarget: _q.withTarget.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSource tells the query-builder to eager-load the nodes that are connected to
// the "source" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureDependencyQuery) WithSource(opts ...func(*FeatureQuery)) *FeatureDependencyQuery {
	query := (&FeatureClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSource = query
	return _q
}

// WithTarget tells the query-builder to eager-load the nodes that are connected to
// the "target" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FeatureDependencyQuery) WithTarget(opts ...func(*FeatureQuery)) *FeatureDependencyQuery {
	query := (&FeatureClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTarget = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Kind featuredependency.Kind `json:"kind,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.FeatureDependency.Query().
//		GroupBy(featuredependency.FieldKind).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FeatureDependencyQuery) GroupBy(field string, fields ...string) *FeatureDependencyGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FeatureDependencyGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = featuredependency.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Kind featuredependency.Kind `json:"kind,omitempty"`
//	}
//
//	client.FeatureDependency.Query().
//		Select(featuredependency.FieldKind).
//		Scan(ctx, &v)
func (_q *FeatureDependencyQuery) Select(fields ...string) *FeatureDependencySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FeatureDependencySelect{FeatureDependencyQuery: _q}
	sbuild.label = featuredependency.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FeatureDependencySelect configured with the given aggregations.
func (_q *FeatureDependencyQuery) Aggregate(fns ...AggregateFunc) *FeatureDependencySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FeatureDependencyQuery) prepareQuery(ctx context.Context) error {
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
		if !featuredependency.ValidColumn(f) {
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

func (_q *FeatureDependencyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FeatureDependency, error) {
	var (
		nodes       = []*FeatureDependency{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSource != nil,
			_q.withTarget != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FeatureDependency).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FeatureDependency{config: _q.config}
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
	if query := _q.withSource; query != nil {
		if err := _q.loadSource(ctx, query, nodes, nil,
			func(n *FeatureDependency, e *Feature) { n.Edges.Source = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTarget; query != nil {
		if err := _q.loadTarget(ctx, query, nodes, nil,
			func(n *FeatureDependency, e *Feature) { n.Edges.Target = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FeatureDependencyQuery) loadSource(ctx context.Context, query *FeatureQuery, nodes []*FeatureDependency, init func(*FeatureDependency), assign func(*FeatureDependency, *Feature)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*FeatureDependency)
	for i := range nodes {
		fk := nodes[i].SourceID
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
			return fmt.Errorf(`unexpected foreign-key "source_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FeatureDependencyQuery) loadTarget(ctx context.Context, query *FeatureQuery, nodes []*FeatureDependency, init func(*FeatureDependency), assign func(*FeatureDependency, *Feature)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*FeatureDependency)
	for i := range nodes {
		fk := nodes[i].TargetID
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
			return fmt.Errorf(`unexpected foreign-key "target_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *FeatureDependencyQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FeatureDependencyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(featuredependency.Table, featuredependency.Columns, sqlgraph.NewFieldSpec(featuredependency.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, featuredependency.FieldID)
		for i := range fields {
			if fields[i] != featuredependency.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSource != nil {
			_spec.Node.AddColumnOnce(featuredependency.FieldSourceID)
		}
		if _q.withTarget != nil {
			_spec.Node.AddColumnOnce(featuredependency.FieldTargetID)
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

func (_q *FeatureDependencyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(featuredependency.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = featuredependency.Columns
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

// FeatureDependencyGroupBy is the group-by builder for FeatureDependency entities.
type FeatureDependencyGroupBy struct {
	selector
	build *FeatureDependencyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FeatureDependencyGroupBy) Aggregate(fns ...AggregateFunc) *FeatureDependencyGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FeatureDependencyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FeatureDependencyQuery, *FeatureDependencyGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FeatureDependencyGroupBy) sqlScan(ctx context.Context, root *FeatureDependencyQuery, v any) error {
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

// FeatureDependencySelect is the builder for selecting fields of FeatureDependency entities.
type FeatureDependencySelect struct {
	*FeatureDependencyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FeatureDependencySelect) Aggregate(fns ...AggregateFunc) *FeatureDependencySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FeatureDependencySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FeatureDependencyQuery, *FeatureDependencySelect](ctx, _s.FeatureDependencyQuery, _s, _s.inters, v)
}

func (_s *FeatureDependencySelect) sqlScan(ctx context.Context, root *FeatureDependencyQuery, v any) error {
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
