// Package sqlite provides a SQLite-backed implementation of the
// RunStore driven port. The database lives in ~/.sqlfan/data/runs.db
// and is created on first use via embedded migrations.
//
// The driver is modernc.org/sqlite, a pure-Go SQLite port, so the
// binary builds without cgo.
package sqlite
