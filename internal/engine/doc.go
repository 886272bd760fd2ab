// Package engine runs SQL statement text against the in-memory table store.
//
// The Engine wires the statement classifier, parameter binder and row filter
// together behind the Executor interface:
//
//	store := table.NewRestaurantStore()
//	eng := engine.New(store)
//
//	n, _ := eng.ExecuteMutation(ctx,
//	    "INSERT INTO Employees (FirstName, LastName) VALUES (@fn, @ln)",
//	    statement.P("@fn", "Alice"), statement.P("@ln", "Smith"))
//
//	rs, _ := eng.ExecuteQuery(ctx,
//	    "SELECT EmployeeId, FirstName FROM Employees WHERE EmployeeId = @id",
//	    statement.P("@id", 1))
//
// Supported shapes:
//   - SELECT <cols> FROM <table> [WHERE <predicate>]
//   - INSERT INTO <table> (<cols>) VALUES (<placeholders>)
//   - UPDATE <table> SET <assignments> WHERE <id predicate>
//   - DELETE FROM <table> WHERE <id predicate>
//
// # Fail-soft behaviour
//
// The engine never returns an error. An unknown table reads as empty; an
// INSERT into it still reports one affected row without storing anything;
// UPDATE and DELETE without an @id parameter affect nothing; a WHERE the
// filter does not recognise returns every row. The only error a caller can
// see comes later, from reading a result column as the wrong type.
//
// Each component is replaceable through an Option (WithClassifier,
// WithBinder, WithFilter), and the sqlite package provides a real-database
// Executor for the same statements.
package engine
