// Package domain defines the core business entities for sqlfan.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Target: One (server, database) pair parsed from the CSV
//   - GenerationRequest: Everything the assembler needs for one run
//   - GeneratedScript: The produced SQLCMD document and its filename
//   - Run: A recorded generation run for history
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
