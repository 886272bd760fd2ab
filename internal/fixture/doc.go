// Package fixture loads seed data from YAML.
//
// A fixture names its tables and lists rows as plain maps:
//
//	name: three-employees
//	description: two active staff and one who left
//	tables:
//	  Employees:
//	    - {EmployeeId: 1, FirstName: John, LastName: Doe, IsActive: true}
//	    - {EmployeeId: 3, FirstName: Bob, LastName: Johnson, IsActive: false}
//
// Scalars are converted to the declared column types when the fixture is
// applied, so dates may be written as "2023-01-15" and decimals as 12.99.
// Unknown fields, tables and columns are rejected.
package fixture
