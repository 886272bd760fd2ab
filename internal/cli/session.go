package cli

import (
	"context"
	"fmt"

	"github.com/roach88/sqldouble/internal/binder"
	"github.com/roach88/sqldouble/internal/engine"
	"github.com/roach88/sqldouble/internal/fixture"
	"github.com/roach88/sqldouble/internal/harness"
	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/sqlite"
	"github.com/roach88/sqldouble/internal/table"
)

// session is one opened backend with its catalog.
type session struct {
	target  harness.Target
	catalog []schema.Table
	close   func() error
}

// openSession loads the catalog, opens the configured backend and applies
// the global fixture, if any. Failures are command errors.
func openSession(ctx context.Context, opts *RootOptions) (*session, error) {
	catalog, err := LoadCatalog(opts.Catalog)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load catalog", err)
	}

	s := &session{catalog: catalog, close: func() error { return nil }}

	switch opts.Backend {
	case BackendSQLite:
		path := opts.Database
		if path == "" {
			path = sqlite.MemoryPath
		}
		opts.Logger.Debug("opening database", "path", path)
		db, err := sqlite.Open(path, catalog, sqlite.WithLogger(opts.Logger))
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open backend", err)
		}
		s.target = db
		s.close = db.Close
	default:
		store := table.NewStore(catalog)
		s.target = engine.New(store,
			engine.WithBinder(binder.Restaurant()),
			engine.WithLogger(opts.Logger),
		)
	}

	if opts.Fixture != "" {
		if err := s.seed(ctx, opts.Fixture); err != nil {
			s.close()
			return nil, err
		}
		opts.Logger.Debug("fixture applied", "path", opts.Fixture)
	}

	return s, nil
}

func (s *session) seed(ctx context.Context, path string) error {
	fx, err := fixture.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load fixture", err)
	}
	if err := fixture.Apply(ctx, s.target, fx, s.catalog); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to apply fixture %s", fx.Name), err)
	}
	return nil
}
