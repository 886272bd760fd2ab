package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/sqldouble/internal/value"
)

func TestClassifyKindAndTable(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		kind  Kind
		table string
	}{
		{
			name:  "select",
			sql:   "SELECT EmployeeId, FirstName FROM Employees",
			kind:  KindSelect,
			table: "Employees",
		},
		{
			name:  "select lowercase",
			sql:   "select * from MenuItems where IsAvailable = 1",
			kind:  KindSelect,
			table: "MenuItems",
		},
		{
			name: "insert multiline",
			sql: `INSERT INTO Employees (FirstName, LastName, Role, HireDate, IsActive)
                  VALUES (@fn, @ln, @role, @hd, @act)`,
			kind:  KindInsert,
			table: "Employees",
		},
		{
			name:  "insert column list glued to name",
			sql:   "insert into Orders(TableId, Status) values (@TableId, @Status)",
			kind:  KindInsert,
			table: "Orders",
		},
		{
			name:  "update",
			sql:   "UPDATE Employees SET FirstName=@fn, LastName=@ln WHERE EmployeeId=@id",
			kind:  KindUpdate,
			table: "Employees",
		},
		{
			name:  "delete",
			sql:   "DELETE FROM Tables WHERE TableId = @id",
			kind:  KindDelete,
			table: "Tables",
		},
		{
			name:  "bracketed and qualified name",
			sql:   "SELECT * FROM [dbo].[Employees];",
			kind:  KindSelect,
			table: "Employees",
		},
		{
			name:  "unknown keyword falls back to select",
			sql:   "MERGE Employees USING x",
			kind:  KindSelect,
			table: "",
		},
		{
			name:  "insert without INTO",
			sql:   "INSERT Employees VALUES (1)",
			kind:  KindInsert,
			table: "",
		},
		{
			name:  "empty text",
			sql:   "   ",
			kind:  KindSelect,
			table: "",
		},
		{
			name:  "anchor is last token",
			sql:   "SELECT * FROM",
			kind:  KindSelect,
			table: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := Classify(tt.sql)
			assert.Equal(t, tt.kind, stmt.Kind)
			assert.Equal(t, tt.table, stmt.Table)
			assert.Equal(t, tt.sql, stmt.Text)
		})
	}
}

func TestClassifyWhere(t *testing.T) {
	stmt := Classify("SELECT * FROM Employees WHERE IsActive = 1 ORDER BY LastName, FirstName")
	assert.True(t, stmt.HasWhere)
	assert.Equal(t, "IsActive = 1", stmt.Where)

	stmt = Classify("SELECT * FROM Employees where EmployeeId = @id")
	assert.True(t, stmt.HasWhere)
	assert.Equal(t, "EmployeeId = @id", stmt.Where)

	stmt = Classify("SELECT * FROM Employees ORDER BY LastName")
	assert.False(t, stmt.HasWhere)
	assert.Empty(t, stmt.Where)

	stmt = Classify("SELECT Somewhere FROM Places")
	assert.False(t, stmt.HasWhere, "WHERE must be a whole word")
}

func TestClassifySelectList(t *testing.T) {
	stmt := Classify("SELECT EmployeeId, FirstName,LastName FROM Employees")
	assert.Equal(t, []string{"EmployeeId", "FirstName", "LastName"}, stmt.Columns)

	stmt = Classify("SELECT e.FirstName, [Role] FROM Employees e")
	assert.Equal(t, []string{"FirstName", "Role"}, stmt.Columns)

	assert.Nil(t, Classify("SELECT * FROM Employees").Columns)
	assert.Nil(t, Classify("SELECT e.* FROM Employees e").Columns)
	assert.Nil(t, Classify("DELETE FROM Employees").Columns)
	assert.Nil(t, Classify("SELECT 1").Columns)
}

func TestKindHelpers(t *testing.T) {
	assert.Equal(t, "insert", KindInsert.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.False(t, KindSelect.IsMutation())
	assert.True(t, KindDelete.IsMutation())
}

func TestP(t *testing.T) {
	p := P("@id", 3)
	assert.Equal(t, Param{Marker: "@id", Value: value.Int(3)}, p)

	assert.Equal(t, value.Null{}, P("@x", nil).Value)
	assert.Panics(t, func() { P("@x", struct{}{}) })
}

func TestScannerSatisfiesClassifier(t *testing.T) {
	var c Classifier = Scanner{}
	assert.Equal(t, KindDelete, c.Classify("delete from Orders where OrderId = @id").Kind)
}
