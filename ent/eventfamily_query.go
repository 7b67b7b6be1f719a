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
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/predicate"
	"github.com/design4music/sni-platform-sub000/ent/title"
)

// EventFamilyQuery is the builder for querying EventFamily entities.
type EventFamilyQuery struct {
	config
	ctx             *QueryContext
	order           []eventfamily.OrderOption
	inters          []Interceptor
	predicates      []predicate.EventFamily
	withTitles      *TitleQuery
	withMergedInto  *EventFamilyQuery
	withAbsorbed    *EventFamilyQuery
	withMergeEvents *MergeEventQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EventFamilyQuery builder.
func (_q *EventFamilyQuery) Where(ps ...predicate.EventFamily) *EventFamilyQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EventFamilyQuery) Limit(limit int) *EventFamilyQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EventFamilyQuery) Offset(offset int) *EventFamilyQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EventFamilyQuery) Unique(unique bool) *EventFamilyQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EventFamilyQuery) Order(o ...eventfamily.OrderOption) *EventFamilyQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTitles chains the current query on the "titles" edge.
func (_q *EventFamilyQuery) QueryTitles() *TitleQuery {
	query := (&TitleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(eventfamily.Table, eventfamily.FieldID, selector),
			sqlgraph.To(title.Table, title.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, eventfamily.TitlesTable, eventfamily.TitlesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMergedInto chains the current query on the "merged_into" edge.
func (_q *EventFamilyQuery) QueryMergedInto() *EventFamilyQuery {
	query := (&EventFamilyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(eventfamily.Table, eventfamily.FieldID, selector),
			sqlgraph.To(eventfamily.Table, eventfamily.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventfamily.MergedIntoTable, eventfamily.MergedIntoColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAbsorbed chains the current query on the "absorbed" edge.
func (_q *EventFamilyQuery) QueryAbsorbed() *EventFamilyQuery {
	query := (&EventFamilyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(eventfamily.Table, eventfamily.FieldID, selector),
			sqlgraph.To(eventfamily.Table, eventfamily.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, eventfamily.AbsorbedTable, eventfamily.AbsorbedColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMergeEvents chains the current query on the "merge_events" edge.
func (_q *EventFamilyQuery) QueryMergeEvents() *MergeEventQuery {
	query := (&MergeEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(eventfamily.Table, eventfamily.FieldID, selector),
			sqlgraph.To(mergeevent.Table, mergeevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, eventfamily.MergeEventsTable, eventfamily.MergeEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EventFamily entity from the query.
// Returns a *NotFoundError when no EventFamily was found.
func (_q *EventFamilyQuery) First(ctx context.Context) (*EventFamily, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{eventfamily.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EventFamilyQuery) FirstX(ctx context.Context) *EventFamily {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EventFamily ID from the query.
// Returns a *NotFoundError when no EventFamily ID was found.
func (_q *EventFamilyQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{eventfamily.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EventFamilyQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EventFamily entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EventFamily entity is found.
// Returns a *NotFoundError when no EventFamily entities are found.
func (_q *EventFamilyQuery) Only(ctx context.Context) (*EventFamily, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{eventfamily.Label}
	default:
		return nil, &NotSingularError{eventfamily.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EventFamilyQuery) OnlyX(ctx context.Context) *EventFamily {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EventFamily ID in the query.
// Returns a *NotSingularError when more than one EventFamily ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EventFamilyQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{eventfamily.Label}
	default:
		err = &NotSingularError{eventfamily.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EventFamilyQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EventFamilies.
func (_q *EventFamilyQuery) All(ctx context.Context) ([]*EventFamily, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EventFamily, *EventFamilyQuery]()
	return withInterceptors[[]*EventFamily](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EventFamilyQuery) AllX(ctx context.Context) []*EventFamily {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EventFamily IDs.
func (_q *EventFamilyQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(eventfamily.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EventFamilyQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EventFamilyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EventFamilyQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EventFamilyQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EventFamilyQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *EventFamilyQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EventFamilyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EventFamilyQuery) Clone() *EventFamilyQuery {
	if _q == nil {
		return nil
	}
	return &EventFamilyQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]eventfamily.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.EventFamily{}, _q.predicates...),
		withTitles:      _q.withTitles.Clone(),
		withMergedInto:  _q.withMergedInto.Clone(),
		withAbsorbed:    _q.withAbsorbed.Clone(),
		withMergeEvents: _q.withMergeEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTitles tells the query-builder to eager-load the nodes that are connected to
// the "titles" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EventFamilyQuery) WithTitles(opts ...func(*TitleQuery)) *EventFamilyQuery {
	query := (&TitleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTitles = query
	return _q
}

// WithMergedInto tells the query-builder to eager-load the nodes that are connected to
// the "merged_into" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EventFamilyQuery) WithMergedInto(opts ...func(*EventFamilyQuery)) *EventFamilyQuery {
	query := (&EventFamilyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMergedInto = query
	return _q
}

// WithAbsorbed tells the query-builder to eager-load the nodes that are connected to
// the "absorbed" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EventFamilyQuery) WithAbsorbed(opts ...func(*EventFamilyQuery)) *EventFamilyQuery {
	query := (&EventFamilyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAbsorbed = query
	return _q
}

// WithMergeEvents tells the query-builder to eager-load the nodes that are connected to
// the "merge_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EventFamilyQuery) WithMergeEvents(opts ...func(*MergeEventQuery)) *EventFamilyQuery {
	query := (&MergeEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMergeEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		EfKey string `json:"ef_key,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EventFamily.Query().
//		GroupBy(eventfamily.FieldEfKey).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EventFamilyQuery) GroupBy(field string, fields ...string) *EventFamilyGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EventFamilyGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = eventfamily.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		EfKey string `json:"ef_key,omitempty"`
//	}
//
//	client.EventFamily.Query().
//		Select(eventfamily.FieldEfKey).
//		Scan(ctx, &v)
func (_q *EventFamilyQuery) Select(fields ...string) *EventFamilySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EventFamilySelect{EventFamilyQuery: _q}
	sbuild.label = eventfamily.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EventFamilySelect configured with the given aggregations.
func (_q *EventFamilyQuery) Aggregate(fns ...AggregateFunc) *EventFamilySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EventFamilyQuery) prepareQuery(ctx context.Context) error {
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
		if !eventfamily.ValidColumn(f) {
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

func (_q *EventFamilyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EventFamily, error) {
	var (
		nodes       = []*EventFamily{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withTitles != nil,
			_q.withMergedInto != nil,
			_q.withAbsorbed != nil,
			_q.withMergeEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EventFamily).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EventFamily{config: _q.config}
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
	if query := _q.withTitles; query != nil {
		if err := _q.loadTitles(ctx, query, nodes,
			func(n *EventFamily) { n.Edges.Titles = []*Title{} },
			func(n *EventFamily, e *Title) { n.Edges.Titles = append(n.Edges.Titles, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMergedInto; query != nil {
		if err := _q.loadMergedInto(ctx, query, nodes, nil,
			func(n *EventFamily, e *EventFamily) { n.Edges.MergedInto = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAbsorbed; query != nil {
		if err := _q.loadAbsorbed(ctx, query, nodes,
			func(n *EventFamily) { n.Edges.Absorbed = []*EventFamily{} },
			func(n *EventFamily, e *EventFamily) { n.Edges.Absorbed = append(n.Edges.Absorbed, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMergeEvents; query != nil {
		if err := _q.loadMergeEvents(ctx, query, nodes,
			func(n *EventFamily) { n.Edges.MergeEvents = []*MergeEvent{} },
			func(n *EventFamily, e *MergeEvent) { n.Edges.MergeEvents = append(n.Edges.MergeEvents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EventFamilyQuery) loadTitles(ctx context.Context, query *TitleQuery, nodes []*EventFamily, init func(*EventFamily), assign func(*EventFamily, *Title)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EventFamily)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(title.FieldEventFamilyID)
	}
	query.Where(predicate.Title(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(eventfamily.TitlesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EventFamilyID
		if fk == nil {
			return fmt.Errorf(`foreign-key "event_family_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "event_family_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EventFamilyQuery) loadMergedInto(ctx context.Context, query *EventFamilyQuery, nodes []*EventFamily, init func(*EventFamily), assign func(*EventFamily, *EventFamily)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*EventFamily)
	for i := range nodes {
		if nodes[i].MergedIntoID == nil {
			continue
		}
		fk := *nodes[i].MergedIntoID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(eventfamily.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "merged_into_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *EventFamilyQuery) loadAbsorbed(ctx context.Context, query *EventFamilyQuery, nodes []*EventFamily, init func(*EventFamily), assign func(*EventFamily, *EventFamily)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EventFamily)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(eventfamily.FieldMergedIntoID)
	}
	query.Where(predicate.EventFamily(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(eventfamily.AbsorbedColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MergedIntoID
		if fk == nil {
			return fmt.Errorf(`foreign-key "merged_into_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "merged_into_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EventFamilyQuery) loadMergeEvents(ctx context.Context, query *MergeEventQuery, nodes []*EventFamily, init func(*EventFamily), assign func(*EventFamily, *MergeEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EventFamily)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(mergeevent.FieldSurvivorEfID)
	}
	query.Where(predicate.MergeEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(eventfamily.MergeEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SurvivorEfID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "survivor_ef_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EventFamilyQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *EventFamilyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(eventfamily.Table, eventfamily.Columns, sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventfamily.FieldID)
		for i := range fields {
			if fields[i] != eventfamily.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMergedInto != nil {
			_spec.Node.AddColumnOnce(eventfamily.FieldMergedIntoID)
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

func (_q *EventFamilyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(eventfamily.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = eventfamily.Columns
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
func (_q *EventFamilyQuery) ForUpdate(opts ...sql.LockOption) *EventFamilyQuery {
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
func (_q *EventFamilyQuery) ForShare(opts ...sql.LockOption) *EventFamilyQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// EventFamilyGroupBy is the group-by builder for EventFamily entities.
type EventFamilyGroupBy struct {
	selector
	build *EventFamilyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EventFamilyGroupBy) Aggregate(fns ...AggregateFunc) *EventFamilyGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EventFamilyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EventFamilyQuery, *EventFamilyGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EventFamilyGroupBy) sqlScan(ctx context.Context, root *EventFamilyQuery, v any) error {
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

// EventFamilySelect is the builder for selecting fields of EventFamily entities.
type EventFamilySelect struct {
	*EventFamilyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EventFamilySelect) Aggregate(fns ...AggregateFunc) *EventFamilySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EventFamilySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EventFamilyQuery, *EventFamilySelect](ctx, _s.EventFamilyQuery, _s, _s.inters, v)
}

func (_s *EventFamilySelect) sqlScan(ctx context.Context, root *EventFamilyQuery, v any) error {
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
