// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/predicate"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
)

// SpaceMembershipQuery is the builder for querying SpaceMembership entities.
type SpaceMembershipQuery struct {
	config
	ctx        *QueryContext
	order      []spacemembership.OrderOption
	inters     []Interceptor
	predicates []predicate.SpaceMembership
	withSpace  *SpaceQuery
	withRuns   *ConversationRunQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SpaceMembershipQuery builder.
func (_q *SpaceMembershipQuery) Where(ps ...predicate.SpaceMembership) *SpaceMembershipQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SpaceMembershipQuery) Limit(limit int) *SpaceMembershipQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SpaceMembershipQuery) Offset(offset int) *SpaceMembershipQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SpaceMembershipQuery) Unique(unique bool) *SpaceMembershipQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SpaceMembershipQuery) Order(o ...spacemembership.OrderOption) *SpaceMembershipQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySpace chains the current query on the "space" edge.
func (_q *SpaceMembershipQuery) QuerySpace() *SpaceQuery {
	query := (&SpaceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(spacemembership.Table, spacemembership.FieldID, selector),
			sqlgraph.To(space.Table, space.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, spacemembership.SpaceTable, spacemembership.SpaceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRuns chains the current query on the "runs" edge.
func (_q *SpaceMembershipQuery) QueryRuns() *ConversationRunQuery {
	query := (&ConversationRunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(spacemembership.Table, spacemembership.FieldID, selector),
			sqlgraph.To(conversationrun.Table, conversationrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, spacemembership.RunsTable, spacemembership.RunsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SpaceMembership entity from the query.
// Returns a *NotFoundError when no SpaceMembership was found.
func (_q *SpaceMembershipQuery) First(ctx context.Context) (*SpaceMembership, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{spacemembership.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SpaceMembershipQuery) FirstX(ctx context.Context) *SpaceMembership {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SpaceMembership ID from the query.
// Returns a *NotFoundError when no SpaceMembership ID was found.
func (_q *SpaceMembershipQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{spacemembership.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SpaceMembershipQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SpaceMembership entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SpaceMembership entity is found.
// Returns a *NotFoundError when no SpaceMembership entities are found.
func (_q *SpaceMembershipQuery) Only(ctx context.Context) (*SpaceMembership, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{spacemembership.Label}
	default:
		return nil, &NotSingularError{spacemembership.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SpaceMembershipQuery) OnlyX(ctx context.Context) *SpaceMembership {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SpaceMembership ID in the query.
// Returns a *NotSingularError when more than one SpaceMembership ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SpaceMembershipQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{spacemembership.Label}
	default:
		err = &NotSingularError{spacemembership.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SpaceMembershipQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SpaceMemberships.
func (_q *SpaceMembershipQuery) All(ctx context.Context) ([]*SpaceMembership, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SpaceMembership, *SpaceMembershipQuery]()
	return withInterceptors[[]*SpaceMembership](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SpaceMembershipQuery) AllX(ctx context.Context) []*SpaceMembership {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SpaceMembership IDs.
func (_q *SpaceMembershipQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(spacemembership.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SpaceMembershipQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SpaceMembershipQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SpaceMembershipQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SpaceMembershipQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SpaceMembershipQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SpaceMembershipQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SpaceMembershipQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SpaceMembershipQuery) Clone() *SpaceMembershipQuery {
	if _q == nil {
		return nil
	}
	return &SpaceMembershipQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]spacemembership.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.SpaceMembership{}, _q.predicates...),
		withSpace:  _q.withSpace.Clone(),
		withRuns:   _q.withRuns.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSpace tells the query-builder to eager-load the nodes that are connected to
// the "space" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SpaceMembershipQuery) WithSpace(opts ...func(*SpaceQuery)) *SpaceMembershipQuery {
	query := (&SpaceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSpace = query
	return _q
}

// WithRuns tells the query-builder to eager-load the nodes that are connected to
// the "runs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SpaceMembershipQuery) WithRuns(opts ...func(*ConversationRunQuery)) *SpaceMembershipQuery {
	query := (&ConversationRunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRuns = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SpaceID string `json:"space_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SpaceMembership.Query().
//		GroupBy(spacemembership.FieldSpaceID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SpaceMembershipQuery) GroupBy(field string, fields ...string) *SpaceMembershipGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SpaceMembershipGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = spacemembership.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SpaceID string `json:"space_id,omitempty"`
//	}
//
//	client.SpaceMembership.Query().
//		Select(spacemembership.FieldSpaceID).
//		Scan(ctx, &v)
func (_q *SpaceMembershipQuery) Select(fields ...string) *SpaceMembershipSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SpaceMembershipSelect{SpaceMembershipQuery: _q}
	sbuild.label = spacemembership.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SpaceMembershipSelect configured with the given aggregations.
func (_q *SpaceMembershipQuery) Aggregate(fns ...AggregateFunc) *SpaceMembershipSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SpaceMembershipQuery) prepareQuery(ctx context.Context) error {
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
		if !spacemembership.ValidColumn(f) {
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

func (_q *SpaceMembershipQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SpaceMembership, error) {
	var (
		nodes       = []*SpaceMembership{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSpace != nil,
			_q.withRuns != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SpaceMembership).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SpaceMembership{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withSpace; query != nil {
		if err := _q.loadSpace(ctx, query, nodes, nil,
			func(n *SpaceMembership, e *Space) { n.Edges.Space = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRuns; query != nil {
		if err := _q.loadRuns(ctx, query, nodes,
			func(n *SpaceMembership) { n.Edges.Runs = []*ConversationRun{} },
			func(n *SpaceMembership, e *ConversationRun) { n.Edges.Runs = append(n.Edges.Runs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SpaceMembershipQuery) loadSpace(ctx context.Context, query *SpaceQuery, nodes []*SpaceMembership, init func(*SpaceMembership), assign func(*SpaceMembership, *Space)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*SpaceMembership)
	for i := range nodes {
		fk := nodes[i].SpaceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(space.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "space_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SpaceMembershipQuery) loadRuns(ctx context.Context, query *ConversationRunQuery, nodes []*SpaceMembership, init func(*SpaceMembership), assign func(*SpaceMembership, *ConversationRun)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*SpaceMembership)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(conversationrun.FieldSpeakerMembershipID)
	}
	query.Where(predicate.ConversationRun(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(spacemembership.RunsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SpeakerMembershipID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "speaker_membership_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SpaceMembershipQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SpaceMembershipQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(spacemembership.Table, spacemembership.Columns, sqlgraph.NewFieldSpec(spacemembership.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, spacemembership.FieldID)
		for i := range fields {
			if fields[i] != spacemembership.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSpace != nil {
			_spec.Node.AddColumnOnce(spacemembership.FieldSpaceID)
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

func (_q *SpaceMembershipQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(spacemembership.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = spacemembership.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *SpaceMembershipQuery) ForUpdate(opts ...sql.LockOption) *SpaceMembershipQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *SpaceMembershipQuery) ForShare(opts ...sql.LockOption) *SpaceMembershipQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SpaceMembershipGroupBy is the group-by builder for SpaceMembership entities.
type SpaceMembershipGroupBy struct {
	selector
	build *SpaceMembershipQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SpaceMembershipGroupBy) Aggregate(fns ...AggregateFunc) *SpaceMembershipGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SpaceMembershipGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SpaceMembershipQuery, *SpaceMembershipGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SpaceMembershipGroupBy) sqlScan(ctx context.Context, root *SpaceMembershipQuery, v any) error {
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

// SpaceMembershipSelect is the builder for selecting fields of SpaceMembership entities.
type SpaceMembershipSelect struct {
	*SpaceMembershipQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SpaceMembershipSelect) Aggregate(fns ...AggregateFunc) *SpaceMembershipSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SpaceMembershipSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SpaceMembershipQuery, *SpaceMembershipSelect](ctx, _s.SpaceMembershipQuery, _s, _s.inters, v)
}

func (_s *SpaceMembershipSelect) sqlScan(ctx context.Context, root *SpaceMembershipQuery, v any) error {
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
