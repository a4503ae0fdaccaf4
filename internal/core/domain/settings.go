package domain

// Settings holds persisted user preferences for generation.
type Settings struct {
	// DefaultUsername is used when the generate command is not given
	// an explicit username.
	DefaultUsername string

	// OutputDir overrides the default output location (the CSV's
	// directory) when set.
	OutputDir string

	// HistoryEnabled controls whether generation runs are recorded.
	HistoryEnabled bool
}

// DefaultSettings returns the settings used before anything is stored.
func DefaultSettings() Settings {
	return Settings{
		HistoryEnabled: true,
	}
}
