package schema

import (
	"testing"

	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sqldouble/internal/value"
)

func TestRestaurantCatalog(t *testing.T) {
	tables := Restaurant()
	require.Len(t, tables, 4)

	var names []string
	for _, tbl := range tables {
		names = append(names, tbl.Name)
	}
	assert.Equal(t, []string{"Employees", "MenuItems", "Orders", "Tables"}, names)

	employees, ok := Find(tables, "Employees")
	require.True(t, ok)
	assert.Equal(t,
		[]string{"EmployeeId", "FirstName", "LastName", "Role", "HireDate", "IsActive"},
		employees.ColumnNames())

	hire, ok := employees.Column("HireDate")
	require.True(t, ok)
	assert.Equal(t, value.TypeTimestamp, hire.Type)

	menu, _ := Find(tables, "MenuItems")
	price, ok := menu.Column("Price")
	require.True(t, ok)
	assert.Equal(t, value.TypeDecimal, price.Type)
}

func TestRestaurantIdentityColumns(t *testing.T) {
	for _, tbl := range Restaurant() {
		id, ok := tbl.Identity()
		require.True(t, ok, tbl.Name)
		assert.Equal(t, value.TypeInteger, id.Type, tbl.Name)
		assert.True(t, tbl.AutoIdentity(), tbl.Name)
	}
}

func TestCompileFromValue(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		tables: [{
			name: "Widgets"
			columns: [
				{name: "Code", type: "text"},
				{name: "Qty", type: "int"},
			]
		}]
	`)
	require.NoError(t, v.Err())

	tables, err := Compile(v)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "Widgets", tables[0].Name)
	assert.Equal(t, []Column{
		{Name: "Code", Type: value.TypeText},
		{Name: "Qty", Type: value.TypeInteger},
	}, tables[0].Columns)
	assert.False(t, tables[0].AutoIdentity(), "Code does not follow the identity naming convention")
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{
			name:    "missing tables",
			src:     `other: 1`,
			wantMsg: "tables list is required",
		},
		{
			name:    "unknown type",
			src:     `tables: [{name: "T", columns: [{name: "A", type: "blob"}]}]`,
			wantMsg: "unknown column type",
		},
		{
			name:    "duplicate table",
			src:     `tables: [{name: "T", columns: [{name: "A", type: "text"}]}, {name: "T", columns: [{name: "A", type: "text"}]}]`,
			wantMsg: "duplicate table",
		},
		{
			name:    "duplicate column",
			src:     `tables: [{name: "T", columns: [{name: "A", type: "text"}, {name: "A", type: "text"}]}]`,
			wantMsg: "duplicate column",
		},
		{
			name:    "no columns",
			src:     `tables: [{name: "T", columns: []}]`,
			wantMsg: "at least one column",
		},
		{
			name:    "missing name",
			src:     `tables: [{columns: [{name: "A", type: "text"}]}]`,
			wantMsg: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var ce *CompileError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestLoadSyntaxErrorHasPosition(t *testing.T) {
	_, err := Load(`tables: [{name: "T",`)
	require.Error(t, err)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.Pos.IsValid())
}

func TestTableHelpers(t *testing.T) {
	tbl := Table{Name: "T", Columns: []Column{
		{Name: "TId", Type: value.TypeInteger},
		{Name: "IsOpen", Type: value.TypeBoolean},
	}}

	c, ok := tbl.ColumnFold("isopen")
	require.True(t, ok)
	assert.Equal(t, "IsOpen", c.Name)

	_, ok = tbl.Column("isopen")
	assert.False(t, ok)

	clone := tbl.Clone()
	clone.Columns[0].Name = "changed"
	assert.Equal(t, "TId", tbl.Columns[0].Name)

	_, ok = Table{}.Identity()
	assert.False(t, ok)
	assert.False(t, Table{}.AutoIdentity())

	_, ok = Find(nil, "T")
	assert.False(t, ok)
}
