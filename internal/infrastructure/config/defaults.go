package config

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "tradewinds.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "tradewinds"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "tradewinds"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	// Simulation defaults
	if cfg.Simulation.MaxActiveEvents == 0 {
		cfg.Simulation.MaxActiveEvents = 10
	}
	if cfg.Simulation.EventSpawnChance == 0 {
		cfg.Simulation.EventSpawnChance = 0.10
	}
	if cfg.Simulation.PriceHistoryWindow == 0 {
		cfg.Simulation.PriceHistoryWindow = 30
	}
	if cfg.Simulation.SavePath == "" {
		cfg.Simulation.SavePath = "tradewinds-save.json"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}
