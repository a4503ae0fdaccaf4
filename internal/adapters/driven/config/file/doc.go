// Package file provides a TOML file-backed implementation of the
// ConfigStore driven port. Configuration lives in ~/.sqlfan/config.toml.
package file
