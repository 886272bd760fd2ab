package fixture

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Fixture is a named data set: seed rows per table plus optional steps
// that exercise an executor after seeding.
type Fixture struct {
	// Name identifies the fixture in reports.
	Name string `yaml:"name"`

	// Description explains what the data represents.
	Description string `yaml:"description,omitempty"`

	// Tables maps a table name to its rows in insertion order.
	Tables map[string][]map[string]any `yaml:"tables"`

	// Steps run in order after seeding. See the harness package.
	Steps []Step `yaml:"steps,omitempty"`
}

// Step is one statement executed against a seeded executor.
// Exactly one of Query or Exec is set.
type Step struct {
	Name string `yaml:"name,omitempty"`

	// Query is select text run with ExecuteQuery.
	Query string `yaml:"query,omitempty"`

	// Exec is insert, update or delete text run with ExecuteMutation.
	Exec string `yaml:"exec,omitempty"`

	// Params maps a marker ("@id") to its value.
	Params map[string]any `yaml:"params,omitempty"`

	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect describes the outcome a step must produce.
type Expect struct {
	// Rows is the exact number of rows a query returns.
	Rows *int `yaml:"rows,omitempty"`

	// Affected is the exact count a mutation reports.
	Affected *int `yaml:"affected,omitempty"`

	// Contains lists partial rows that must each match some result row.
	Contains []map[string]any `yaml:"contains,omitempty"`
}

// TableNames returns the fixture's table names, sorted.
func (f *Fixture) TableNames() []string {
	names := make([]string, 0, len(f.Tables))
	for name := range f.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and parses a fixture YAML file.
// Returns an error if the file doesn't exist, is malformed, contains unknown
// fields, or is missing required fields.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	fx, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fx, nil
}

// Parse decodes fixture YAML with strict field checking.
func Parse(data []byte) (*Fixture, error) {
	var fx Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fx); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateFixture(&fx); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	return &fx, nil
}

// validateFixture checks the shape of a fixture without a catalog.
func validateFixture(f *Fixture) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(f.Tables) == 0 {
		return fmt.Errorf("tables map is required and must be non-empty")
	}

	for i, step := range f.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	return nil
}

func validateStep(index int, s *Step) error {
	switch {
	case s.Query == "" && s.Exec == "":
		return fmt.Errorf("steps[%d]: one of query or exec is required", index)
	case s.Query != "" && s.Exec != "":
		return fmt.Errorf("steps[%d]: query and exec are mutually exclusive", index)
	}

	if s.Expect == nil {
		return nil
	}
	if s.Exec != "" && (s.Expect.Rows != nil || len(s.Expect.Contains) > 0) {
		return fmt.Errorf("steps[%d].expect: rows and contains apply to queries only", index)
	}
	if s.Query != "" && s.Expect.Affected != nil {
		return fmt.Errorf("steps[%d].expect: affected applies to exec only", index)
	}
	return nil
}
