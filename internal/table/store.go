package table

import (
	"context"
	"sort"

	"github.com/roach88/sqldouble/internal/schema"
)

// Store owns the named tables of one in-memory database.
//
// The store is plain mutable state with no locking. Callers serialise access;
// concurrent mutation is undefined.
type Store struct {
	catalog     []schema.Table
	tables      map[string]*Table
	initialized bool
}

// NewStore creates an uninitialized store for the given catalog.
// Call Initialize before use; until then every table lookup resolves to an
// empty table.
func NewStore(catalog []schema.Table) *Store {
	cat := make([]schema.Table, len(catalog))
	for i, t := range catalog {
		cat[i] = t.Clone()
	}
	return &Store{catalog: cat, tables: make(map[string]*Table)}
}

// NewRestaurantStore returns an initialized store over the built-in catalog.
func NewRestaurantStore() *Store {
	s := NewStore(schema.Restaurant())
	s.Initialize()
	return s
}

// Initialize creates every catalog table. Calling it again is a no-op.
func (s *Store) Initialize() {
	if s.initialized {
		return
	}
	for _, def := range s.catalog {
		s.tables[def.Name] = newTable(def)
	}
	s.initialized = true
}

// Initialized reports whether Initialize has run since creation or Reset.
func (s *Store) Initialized() bool { return s.initialized }

// GetTable returns the named table. It never fails: an unknown or empty name
// yields a fresh schema-less table that is not registered in the store.
func (s *Store) GetTable(name string) *Table {
	if t, ok := s.tables[name]; ok {
		return t
	}
	return newTable(schema.Table{})
}

// Clear removes every row from every table and keeps the schemas.
func (s *Store) Clear() {
	for _, t := range s.tables {
		t.clear()
	}
}

// Reset discards all tables and initializes the catalog again.
func (s *Store) Reset() {
	s.tables = make(map[string]*Table)
	s.initialized = false
	s.Initialize()
}

// AddData appends a copy of row to the named table, bypassing statement
// parsing. Unknown tables are ignored.
func (s *Store) AddData(name string, row Row) {
	if t, ok := s.tables[name]; ok {
		t.Append(row)
	}
}

// Seeder loads a single row into a named table.
type Seeder interface {
	Seed(ctx context.Context, table string, row Row) error
}

var _ Seeder = (*Store)(nil)

// Seed implements Seeder. It never fails.
func (s *Store) Seed(_ context.Context, name string, row Row) error {
	s.AddData(name, row)
	return nil
}

// TableNames returns the registered table names, sorted.
func (s *Store) TableNames() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog returns a copy of the schemas this store was built from.
func (s *Store) Catalog() []schema.Table {
	out := make([]schema.Table, len(s.catalog))
	for i, t := range s.catalog {
		out[i] = t.Clone()
	}
	return out
}
