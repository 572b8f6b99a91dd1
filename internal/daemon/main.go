// Package daemon wires config, storage, sessions and the web service
// together and runs them until the process is asked to stop.
package daemon

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	sessionmemory "github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/xcelliti/website/internal/config"
	"github.com/xcelliti/website/internal/db/dsn"
	"github.com/xcelliti/website/internal/logger"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/store/backend"
	"github.com/xcelliti/website/internal/web"
)

// sessionTable holds server side sessions when they live in the database.
const sessionTable = "sessions"

// Daemon represents the main application daemon.
type Daemon struct {
	cfg            *config.Config
	store          store.Store
	sessionStorage fiber.Storage
	webService     *web.Service
}

// Start runs the web service and blocks until it stopped after SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	defer d.close()

	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(addr)
}

func (d *Daemon) close() {
	if err := d.sessionStorage.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close session storage")
	}

	if err := d.store.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, config.ErrConfigNil
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	st, err := backend.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = seed(cfg, st); err != nil {
		_ = st.Close()

		return nil, err
	}

	sessionStorage := NewSessionStorage(cfg)

	webService, err := web.New(cfg, st, sessionStorage)
	if err != nil {
		_ = sessionStorage.Close()
		_ = st.Close()

		return nil, err
	}

	return &Daemon{
		cfg:            cfg,
		store:          st,
		sessionStorage: sessionStorage,
		webService:     webService,
	}, nil
}

// NewSessionStorage initializes the fiber storage holding sessions. The
// database storages create their table on first use.
func NewSessionStorage(cfg *config.Config) fiber.Storage {
	if cfg.Webserver.Session.Storage != config.SessionStorageDatabase {
		return sessionmemory.New()
	}

	switch cfg.DB.Engine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(&cfg.DB),
			Table:         sessionTable,
		})
	default:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(&cfg.DB),
			Table:         sessionTable,
		})
	}
}
