package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/sqldouble/internal/engine"
	"github.com/roach88/sqldouble/internal/fixture"
	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/table"
)

// Target is an executor that can also be seeded.
type Target interface {
	engine.Executor
	table.Seeder
}

// Harness runs fixture steps against a Target.
type Harness struct {
	target  Target
	catalog []schema.Table
	logger  *slog.Logger
}

// New creates a Harness. A nil logger uses slog.Default().
func New(target Target, catalog []schema.Table, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.Default()
	}
	return &Harness{target: target, catalog: catalog, logger: logger}
}

// Run seeds the fixture and executes its steps in order.
//
// Seeding or executor errors stop the run and are returned. Unmet
// expectations do not: they are recorded on the step and flip Result.Pass.
func (h *Harness) Run(ctx context.Context, fx *fixture.Fixture) (*Result, error) {
	if err := fixture.Apply(ctx, h.target, fx, h.catalog); err != nil {
		return nil, fmt.Errorf("apply fixture %s: %w", fx.Name, err)
	}

	result := NewResult(fx.Name)
	for i, step := range fx.Steps {
		sr, err := h.runStep(ctx, i, step)
		if err != nil {
			return nil, err
		}
		result.Add(sr)
		h.logger.Debug("step finished",
			"fixture", fx.Name,
			"step", sr.Label(),
			"kind", sr.Kind,
			"passed", sr.Passed(),
		)
	}
	return result, nil
}

func (h *Harness) runStep(ctx context.Context, index int, step fixture.Step) (StepResult, error) {
	sr := StepResult{Index: index, Name: step.Name}

	params, err := step.Bind()
	if err != nil {
		return sr, fmt.Errorf("%s: %w", sr.Label(), err)
	}

	if step.Query != "" {
		sr.Kind = StepQuery
		rs, err := h.target.ExecuteQuery(ctx, step.Query, params...)
		if err != nil {
			return sr, fmt.Errorf("%s: %w", sr.Label(), err)
		}
		sr.Rows = rs.Len()
		sr.Failures = checkQuery(step.Expect, rs)
		return sr, nil
	}

	sr.Kind = StepExec
	n, err := h.target.ExecuteMutation(ctx, step.Exec, params...)
	if err != nil {
		return sr, fmt.Errorf("%s: %w", sr.Label(), err)
	}
	sr.Affected = n
	sr.Failures = checkExec(step.Expect, n)
	return sr, nil
}
