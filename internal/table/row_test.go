package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sqldouble/internal/value"
)

func TestRowTypedReads(t *testing.T) {
	hired := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	r := Row{
		"EmployeeId": value.Int(1),
		"FirstName":  value.Text("John"),
		"Price":      value.MustDecimal("12.99"),
		"IsActive":   value.Bool(true),
		"HireDate":   value.Timestamp(hired),
		"Role":       value.Null{},
	}

	id, err := r.Int("EmployeeId")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	name, err := r.Text("FirstName")
	require.NoError(t, err)
	assert.Equal(t, "John", name)

	price, err := r.Decimal("Price")
	require.NoError(t, err)
	assert.Equal(t, "12.99", price.String())

	active, err := r.Bool("IsActive")
	require.NoError(t, err)
	assert.True(t, active)

	hd, err := r.Time("HireDate")
	require.NoError(t, err)
	assert.True(t, hired.Equal(hd))

	assert.True(t, r.IsNull("Role"))
	assert.True(t, r.IsNull("Missing"))
}

func TestRowNullReadIsTypeError(t *testing.T) {
	r := Row{"Role": value.Null{}}

	_, err := r.Text("Role")
	require.Error(t, err)

	var te *value.TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "Role", te.Column)
	assert.Equal(t, value.TypeText, te.Want)
	assert.Equal(t, value.TypeNull, te.Got)
	assert.Contains(t, err.Error(), `column "Role"`)
}

func TestRowWrongTypeIsTypeError(t *testing.T) {
	r := Row{"IsActive": value.Text("yes")}

	_, err := r.Bool("IsActive")
	assert.True(t, value.IsTypeError(err))
}

func TestRowProject(t *testing.T) {
	r := Row{"A": value.Int(1), "B": value.Int(2)}
	p := r.Project([]string{"B", "C"})

	assert.Equal(t, Row{"B": value.Int(2), "C": value.Null{}}, p)
}

func TestResultSetHelpers(t *testing.T) {
	var empty *ResultSet
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.Empty())
	assert.Empty(t, empty.Records())

	rs := &ResultSet{
		Columns: []string{"Id", "Name"},
		Rows:    []Row{{"Id": value.Int(3), "Name": value.Null{}}},
	}
	first, ok := rs.First()
	require.True(t, ok)
	assert.Equal(t, value.Int(3), first.Get("Id"))

	assert.Equal(t, []map[string]any{{"Id": int64(3), "Name": nil}}, rs.Records())
}

func TestResultSetString(t *testing.T) {
	rs := &ResultSet{
		Columns: []string{"Id", "Name"},
		Rows: []Row{
			{"Id": value.Int(1), "Name": value.Text("John")},
			{"Id": value.Int(2)},
		},
	}
	assert.Equal(t, "Id | Name\n1 | John\n2 | NULL\n", rs.String())

	var nilRS *ResultSet
	assert.Equal(t, "", nilRS.String())
}
