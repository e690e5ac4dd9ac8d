package cli

import (
	"fmt"
	"log"
	"time"

	staticcatalog "github.com/saltroad/tradewinds/internal/adapters/catalog"
	"github.com/saltroad/tradewinds/internal/adapters/persistence"
	"github.com/saltroad/tradewinds/internal/application/engine"
	"github.com/saltroad/tradewinds/internal/domain/catalog"
	"github.com/saltroad/tradewinds/internal/infrastructure/config"
	"github.com/saltroad/tradewinds/internal/infrastructure/database"
)

// session bundles one CLI invocation's engine and the paths it saves to.
// Each invocation owns its engine instance; there is no process-wide market
// singleton.
type session struct {
	engine   *MarketSession
	savePath string
}

// MarketSession is the engine plus the collaborators the CLI needs around it.
type MarketSession struct {
	*engine.MarketEngine
}

// openSession builds the engine from config and flags, loads the save file
// if one exists and attaches the trade recorder.
func openSession() (*session, error) {
	cfg := config.LoadConfigOrDefault(configPath)

	if savePath != "" {
		cfg.Simulation.SavePath = savePath
	}
	if seed != 0 {
		cfg.Simulation.Seed = seed
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}

	e := engine.NewMarketEngine(
		staticcatalog.DefaultGoodCatalog(),
		staticcatalog.DefaultLocationCatalog(),
		engine.Options{
			Seed:            cfg.Simulation.Seed,
			MaxActiveEvents: cfg.Simulation.MaxActiveEvents,
			SpawnChance:     cfg.Simulation.EventSpawnChance,
			HistoryWindow:   cfg.Simulation.PriceHistoryWindow,
		},
	)

	loaded, err := persistence.LoadMarket(cfg.Simulation.SavePath, e)
	if err != nil {
		// Malformed saves are not fatal: continue with a fresh market.
		log.Printf("warning: %v, starting with a fresh market", err)
	} else if loaded {
		log.Printf("loaded market state from %s", cfg.Simulation.SavePath)
	}

	if !noDatabase {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			log.Printf("warning: database unavailable, trades will not be recorded: %v", err)
		} else {
			if err := database.AutoMigrate(db); err != nil {
				return nil, fmt.Errorf("migrate database: %w", err)
			}
			e.SetRecorder(persistence.NewDBTradeRecorder(db))
		}
	}

	return &session{
		engine:   &MarketSession{MarketEngine: e},
		savePath: cfg.Simulation.SavePath,
	}, nil
}

// save writes the session's market state back to the save file.
func (s *session) save() error {
	return persistence.SaveMarket(s.savePath, s.engine.MarketEngine)
}

// staticGood resolves a good from the built-in catalog.
func staticGood(goodID int) (*catalog.Good, error) {
	return staticcatalog.DefaultGoodCatalog().GetGood(goodID)
}
