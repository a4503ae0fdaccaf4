// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal
// architecture. Core services depend on these interfaces, and
// infrastructure adapters implement them.
//
//   - ConfigStore: Application configuration (TOML file adapter)
//   - RunStore: Generation history persistence (SQLite adapter)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
