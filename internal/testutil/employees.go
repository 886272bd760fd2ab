package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/sqldouble/internal/table"
	"github.com/roach88/sqldouble/internal/value"
)

// Hire dates for the seeded employees. Fixed so golden output is stable.
var (
	JohnHired = time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	JaneHired = time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	BobHired  = time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC)
)

// Employee builds a fully populated Employees row.
func Employee(id int64, first, last, role string, hired time.Time, active bool) table.Row {
	return table.Row{
		"EmployeeId": value.Int(id),
		"FirstName":  value.Text(first),
		"LastName":   value.Text(last),
		"Role":       value.Text(role),
		"HireDate":   value.Timestamp(hired),
		"IsActive":   value.Bool(active),
	}
}

// EmployeeRows returns the standard three-employee roster: John and Jane
// active, Bob inactive. Each call returns fresh rows.
func EmployeeRows() []table.Row {
	return []table.Row{
		Employee(1, "John", "Doe", "Server", JohnHired, true),
		Employee(2, "Jane", "Smith", "Cook", JaneHired, true),
		Employee(3, "Bob", "Johnson", "Server", BobHired, false),
	}
}

// SeedEmployees loads EmployeeRows into s.
func SeedEmployees(t *testing.T, s table.Seeder) {
	t.Helper()
	ctx := context.Background()
	for _, row := range EmployeeRows() {
		require.NoError(t, s.Seed(ctx, "Employees", row))
	}
}

// MenuItem builds a fully populated MenuItems row.
func MenuItem(id int64, name, desc, price string, category int64, available bool) table.Row {
	return table.Row{
		"MenuItemId":  value.Int(id),
		"Name":        value.Text(name),
		"Description": value.Text(desc),
		"Price":       value.MustDecimal(price),
		"CategoryId":  value.Int(category),
		"IsAvailable": value.Bool(available),
	}
}

// MenuItemRows returns a small menu with one unavailable item.
func MenuItemRows() []table.Row {
	return []table.Row{
		MenuItem(1, "Burger", "Beef patty", "12.99", 1, true),
		MenuItem(2, "Salad", "Garden greens", "8.50", 1, true),
		MenuItem(3, "Soup of the Day", "Seasonal", "6.00", 2, false),
	}
}

// SeedMenuItems loads MenuItemRows into s.
func SeedMenuItems(t *testing.T, s table.Seeder) {
	t.Helper()
	ctx := context.Background()
	for _, row := range MenuItemRows() {
		require.NoError(t, s.Seed(ctx, "MenuItems", row))
	}
}

// Names extracts the FirstName (or Name) column of every row, in order.
func Names(t *testing.T, rs *table.ResultSet) []string {
	t.Helper()
	col := "FirstName"
	if len(rs.Rows) > 0 {
		if _, ok := rs.Rows[0]["FirstName"]; !ok {
			col = "Name"
		}
	}
	out := make([]string, 0, rs.Len())
	for _, r := range rs.Rows {
		n, err := r.Text(col)
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}
