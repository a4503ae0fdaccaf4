package domain

import "time"

// Run records one completed generation for the history view.
type Run struct {
	// ID is the unique identifier for the run.
	ID string `json:"id"`

	// GeneratedAt is the timestamp the script was generated with.
	// The output filename is derived from this instant.
	GeneratedAt time.Time `json:"generated_at"`

	// CSVPath is the tabular input the targets came from.
	CSVPath string `json:"csv_path"`

	// ScriptPath is the SQL script the generated document includes.
	ScriptPath string `json:"script_path"`

	// OutputPath is where the generated document was written.
	// Empty when the document went to stdout.
	OutputPath string `json:"output_path,omitempty"`

	// TargetCount is the number of execution blocks generated.
	TargetCount int `json:"target_count"`
}
