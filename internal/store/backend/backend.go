// Package backend selects the store implementation from config.
package backend

import (
	"github.com/rs/zerolog/log"

	"github.com/xcelliti/website/internal/config"
	gormadapter "github.com/xcelliti/website/internal/logger/adapter/gorm"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/store/memory"
	"github.com/xcelliti/website/internal/store/relational"
)

// Open returns the memory store for the memory engine and a migrated
// relational store for every other engine.
func Open(cfg *config.Config) (store.Store, error) {
	if cfg.DB.Engine == config.EngineMemory {
		log.Warn().Msg("using the memory store, data is lost on restart")

		return memory.New(), nil
	}

	s, err := relational.Open(&cfg.DB, gormadapter.New(log.Logger, cfg.Log.SlowQueryThreshold))
	if err != nil {
		return nil, err
	}

	log.Info().Str("engine", cfg.DB.Engine).Msg("database connected")

	return s, nil
}
