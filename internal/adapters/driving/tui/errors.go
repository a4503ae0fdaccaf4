package tui

import "errors"

// ErrMissingGeneratorService is returned when the generator service is not provided.
var ErrMissingGeneratorService = errors.New("tui: generator service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
