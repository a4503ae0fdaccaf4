package domain

import "fmt"

// Target is one (server, database) pair read from the CSV input.
// Targets keep their input order; nothing reorders, deduplicates or
// groups them.
type Target struct {
	// Server is the SQL Server instance to connect to.
	Server string

	// Database is the database to switch to after connecting.
	Database string

	// Ordinal is the 1-based position among valid data rows.
	// Used only for human-readable labelling in the output.
	Ordinal int
}

// Label returns the operator-visible label for this target,
// e.g. "[3] Billing on SQLPROD02".
func (t Target) Label() string {
	return fmt.Sprintf("[%d] %s on %s", t.Ordinal, t.Database, t.Server)
}
