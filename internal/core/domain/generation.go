package domain

// GenerationRequest carries everything the script assembler needs for
// one generation run. It is built once from external inputs and
// consumed once; it is never persisted.
type GenerationRequest struct {
	// Targets is the ordered sequence of (server, database) pairs.
	// Must be non-empty.
	Targets []Target

	// ScriptPath is the path to the user-supplied SQL script.
	// It is an opaque reference: the assembler embeds it in a
	// :setvar binding and never opens it.
	ScriptPath string

	// Username is embedded verbatim in the USERNAME variable binding.
	Username string

	// Password is embedded verbatim in the PASSWORD variable binding.
	// Plain-text embedding is a documented property of the output
	// format, not an accident.
	Password string
}

// Validate checks the request is structurally usable.
// Empty credentials are permitted by the format; callers warn instead.
func (r *GenerationRequest) Validate() error {
	if len(r.Targets) == 0 {
		return ErrNoTargets
	}
	if r.ScriptPath == "" {
		return &FormatError{Reason: "script path is empty"}
	}
	return nil
}

// GeneratedScript is the terminal artifact of a generation run.
// Ownership passes to the caller, which decides where (or whether)
// to write it.
type GeneratedScript struct {
	// Content is the full SQLCMD document text.
	Content string

	// Filename is the suggested output filename, derived from the
	// generation timestamp. Lexicographic order of filenames equals
	// chronological order of runs.
	Filename string
}
