// Package memory provides in-memory implementations of the driven
// storage ports, used by service and adapter tests.
package memory
