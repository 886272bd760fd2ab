package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedTraceGenerator(t *testing.T) {
	g := NewFixedTraceGenerator("abc")
	assert.Equal(t, "abc", g.Generate())
	assert.Equal(t, "abc", g.Generate())

	assert.Equal(t, "test-trace-default", NewFixedTraceGenerator("").Generate())
}

func TestEmployeeRowsAreFresh(t *testing.T) {
	a := EmployeeRows()
	b := EmployeeRows()
	a[0]["FirstName"] = nil
	assert.NotNil(t, b[0]["FirstName"])
	assert.Len(t, a, 3)
}
