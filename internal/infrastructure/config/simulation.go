package config

// SimulationConfig holds the tunable parameters of the market simulation.
// Defaults match the documented engine constants.
type SimulationConfig struct {
	// RNG seed; 0 means derive one from the wall clock at startup.
	Seed int64 `mapstructure:"seed"`

	// Maximum number of concurrently active trade events.
	MaxActiveEvents int `mapstructure:"max_active_events" validate:"min=1"`

	// Per-day probability of spawning a new trade event.
	EventSpawnChance float64 `mapstructure:"event_spawn_chance" validate:"gt=0,lte=1"`

	// Number of transaction prices retained per (city, good) pair.
	PriceHistoryWindow int `mapstructure:"price_history_window" validate:"min=2"`

	// Path of the JSON save file.
	SavePath string `mapstructure:"save_path"`
}
