// Package cli implements the sqldouble command line.
//
// Commands:
//
//	sqldouble query <sql>   run a SELECT and print its rows
//	sqldouble exec <sql>    run an INSERT, UPDATE or DELETE
//	sqldouble tables        list catalog tables
//	sqldouble check <yaml>  seed a fixture and verify its steps
//
// Global flags can also come from SQLDOUBLE_* environment variables or a
// YAML file named by --config.
package cli
