package engine

import (
	"context"
	"log/slog"

	"github.com/roach88/sqldouble/internal/binder"
	"github.com/roach88/sqldouble/internal/filter"
	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/statement"
	"github.com/roach88/sqldouble/internal/table"
	"github.com/roach88/sqldouble/internal/value"
)

// Engine executes statements against an in-memory table.Store.
//
// Every call runs to completion synchronously. Errors are never returned:
// unknown tables, malformed text and unrecognised predicates degrade to
// empty results or zero affected rows.
type Engine struct {
	store      *table.Store
	classifier statement.Classifier
	binder     *binder.Binder
	filter     filter.Engine
	logger     *slog.Logger
}

var (
	_ Executor     = (*Engine)(nil)
	_ table.Seeder = (*Engine)(nil)
)

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier replaces the statement classifier.
func WithClassifier(c statement.Classifier) Option {
	return func(e *Engine) { e.classifier = c }
}

// WithBinder replaces the parameter binder.
func WithBinder(b *binder.Binder) Option {
	return func(e *Engine) { e.binder = b }
}

// WithFilter replaces the row filter engine.
func WithFilter(f filter.Engine) Option {
	return func(e *Engine) { e.filter = f }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an Engine over store. The store is initialized if it has not
// been already.
func New(store *table.Store, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		classifier: statement.Scanner{},
		binder:     binder.Default(),
		filter:     filter.TextFilter{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	store.Initialize()
	return e
}

// Store returns the underlying store for seeding and lifecycle calls.
func (e *Engine) Store() *table.Store {
	return e.store
}

// Seed appends row to the named table of the underlying store.
func (e *Engine) Seed(ctx context.Context, name string, row table.Row) error {
	return e.store.Seed(ctx, name, row)
}

// ExecuteQuery runs a select. Non-select text yields an empty result set.
// The result holds the columns named in the select list, in that order;
// unknown names are skipped and an empty or "*" list selects every column.
func (e *Engine) ExecuteQuery(_ context.Context, text string, params ...statement.Param) (*table.ResultSet, error) {
	stmt := e.classifier.Classify(text)
	if stmt.Kind != statement.KindSelect {
		e.logger.Debug("query ignored: not a select", "kind", stmt.Kind.String())
		return &table.ResultSet{}, nil
	}

	tbl := e.store.GetTable(stmt.Table)
	sch := tbl.Schema()
	if !tbl.Resolved() {
		e.logger.Debug("query against unresolved table", "table", stmt.Table)
	}

	pred := e.filter.Resolve(stmt, sch, params)
	idx := e.filter.Apply(tbl, pred)

	cols := projection(sch, stmt.Columns)
	rs := &table.ResultSet{
		Columns: cols,
		Rows:    make([]table.Row, 0, len(idx)),
	}
	for _, i := range idx {
		rs.Rows = append(rs.Rows, tbl.At(i).Project(cols))
	}

	e.logger.Debug("query executed",
		"table", stmt.Table,
		"predicate", pred.String(),
		"rows", len(rs.Rows),
	)
	return rs, nil
}

// ExecuteMutation runs an insert, update or delete and returns the affected
// row count. A select returns 0.
func (e *Engine) ExecuteMutation(_ context.Context, text string, params ...statement.Param) (int, error) {
	stmt := e.classifier.Classify(text)

	var affected int
	switch stmt.Kind {
	case statement.KindInsert:
		affected = e.insert(stmt, params)
	case statement.KindUpdate:
		affected = e.update(stmt, params)
	case statement.KindDelete:
		affected = e.delete(stmt, params)
	default:
		e.logger.Debug("mutation ignored: not a write", "kind", stmt.Kind.String())
		return 0, nil
	}

	e.logger.Debug("mutation executed",
		"kind", stmt.Kind.String(),
		"table", stmt.Table,
		"affected", affected,
	)
	return affected, nil
}

// insert adds one row. An unresolved table reports 1 without storing
// anything.
func (e *Engine) insert(stmt statement.Statement, params []statement.Param) int {
	tbl := e.store.GetTable(stmt.Table)
	if !tbl.Resolved() {
		e.logger.Debug("insert into unresolved table reported as success", "table", stmt.Table)
		return 1
	}

	sch := tbl.Schema()
	row := tbl.NewRow()
	for _, a := range e.binder.Assignments(sch, params, "") {
		row[a.Column] = a.Value
	}

	if sch.AutoIdentity() {
		id, _ := sch.Identity()
		row[id.Name] = value.Int(tbl.NextIdentity())
	}

	tbl.Append(row)
	return 1
}

// update applies every non-id parameter to the rows matching @id.
func (e *Engine) update(stmt statement.Statement, params []statement.Param) int {
	tbl, idx, ok := e.targetRows(stmt, params)
	if !ok {
		return 0
	}

	assignments := e.binder.Assignments(tbl.Schema(), params, binder.IDMarker)
	for _, i := range idx {
		for _, a := range assignments {
			tbl.Set(i, a.Column, a.Value)
		}
	}
	return len(idx)
}

// delete removes the rows matching @id immediately.
func (e *Engine) delete(stmt statement.Statement, params []statement.Param) int {
	tbl, idx, ok := e.targetRows(stmt, params)
	if !ok {
		return 0
	}
	return tbl.Delete(idx)
}

// targetRows resolves the rows a write applies to by identity. ok is false
// when no @id parameter was supplied.
func (e *Engine) targetRows(stmt statement.Statement, params []statement.Param) (*table.Table, []int, bool) {
	id, ok := binder.FindID(params)
	if !ok {
		e.logger.Debug("write without @id affects no rows", "kind", stmt.Kind.String(), "table", stmt.Table)
		return nil, nil, false
	}

	tbl := e.store.GetTable(stmt.Table)
	col, _ := tbl.Schema().Identity()
	idx := e.filter.Apply(tbl, filter.IdentityEquals{Column: col.Name, Value: id.Value})
	return tbl, idx, true
}

// projection resolves a select list against the schema.
func projection(sch schema.Table, requested []string) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, name := range requested {
		col, ok := sch.ColumnFold(name)
		if !ok || seen[col.Name] {
			continue
		}
		seen[col.Name] = true
		cols = append(cols, col.Name)
	}
	if len(cols) == 0 {
		return sch.ColumnNames()
	}
	return cols
}
