package harness

import (
	"fmt"
	"strings"
)

// Step kinds recorded in a StepResult.
const (
	StepQuery = "query"
	StepExec  = "exec"
)

// StepResult is the outcome of one fixture step.
type StepResult struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Kind  string `json:"kind"`

	// Rows is the number of rows a query returned.
	Rows int `json:"rows,omitempty"`

	// Affected is the count a mutation reported.
	Affected int `json:"affected,omitempty"`

	// Failures lists every expectation the step missed.
	Failures []string `json:"failures,omitempty"`
}

// Passed reports whether the step met all its expectations.
func (s StepResult) Passed() bool { return len(s.Failures) == 0 }

// Label names the step for reports.
func (s StepResult) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("steps[%d]", s.Index)
}

// Result is the outcome of running a fixture.
type Result struct {
	Fixture string       `json:"fixture"`
	Pass    bool         `json:"pass"`
	Steps   []StepResult `json:"steps"`
}

// NewResult creates a new passing result.
func NewResult(fixture string) *Result {
	return &Result{Fixture: fixture, Pass: true, Steps: []StepResult{}}
}

// Add records a step outcome and marks the result failed if the step failed.
func (r *Result) Add(s StepResult) {
	r.Steps = append(r.Steps, s)
	if !s.Passed() {
		r.Pass = false
	}
}

// Summary renders one line per step followed by the overall verdict.
func (r *Result) Summary() string {
	var b strings.Builder
	failed := 0
	for _, s := range r.Steps {
		status := "ok"
		if !s.Passed() {
			status = "FAIL"
			failed++
		}
		switch s.Kind {
		case StepQuery:
			fmt.Fprintf(&b, "%-4s %s (%d rows)\n", status, s.Label(), s.Rows)
		default:
			fmt.Fprintf(&b, "%-4s %s (%d affected)\n", status, s.Label(), s.Affected)
		}
		for _, f := range s.Failures {
			fmt.Fprintf(&b, "     %s\n", f)
		}
	}
	if r.Pass {
		fmt.Fprintf(&b, "PASS %s: %d steps\n", r.Fixture, len(r.Steps))
	} else {
		fmt.Fprintf(&b, "FAIL %s: %d of %d steps failed\n", r.Fixture, failed, len(r.Steps))
	}
	return b.String()
}
