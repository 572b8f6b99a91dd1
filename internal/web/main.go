// Package web serves the JSON API, the health check, metrics and
// optionally the built front end.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/xcelliti/website/internal/auth"
	"github.com/xcelliti/website/internal/config"
	fiberlog "github.com/xcelliti/website/internal/logger/adapter/fiber"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/web/handler"
	"github.com/xcelliti/website/internal/web/handler/admin/profile"
	"github.com/xcelliti/website/internal/web/handler/blogpost"
	"github.com/xcelliti/website/internal/web/handler/client"
	"github.com/xcelliti/website/internal/web/handler/contact"
	"github.com/xcelliti/website/internal/web/handler/job"
	"github.com/xcelliti/website/internal/web/handler/login"
	"github.com/xcelliti/website/internal/web/handler/logout"
	"github.com/xcelliti/website/internal/web/handler/partner"
	"github.com/xcelliti/website/internal/web/handler/service"
	"github.com/xcelliti/website/internal/web/metrics"
	authmiddleware "github.com/xcelliti/website/internal/web/middleware/auth"
	"github.com/xcelliti/website/internal/web/session"
)

// CheckAlivePath answers load balancer health checks.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	store        store.Store
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails the health check for the configured drain time and stops
// the http server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration, store and
// session storage backend.
func New(cfg *config.Config, st store.Store, sessionStorage fiber.Storage) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if st == nil {
		return nil, errors.New("store cannot be nil")
	}

	authService, err := auth.NewService(st)
	if err != nil {
		return nil, err
	}

	sessions, err := session.NewManager(sessionStorage, cfg)
	if err != nil {
		return nil, err
	}

	title := cfg.Title
	if title == "" {
		title = "xcelliti"
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        title,
			CaseSensitive:  cfg.Webserver.CaseSensitive,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   ErrorHandler,
		},
	)

	svc := &Service{
		App:          app,
		cfg:          cfg,
		store:        st,
		fastShutDown: cfg.DevMode,
	}
	svc.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	var requestMetrics *metrics.Metrics
	if cfg.Webserver.Metrics {
		requestMetrics = metrics.New(title)
		app.Use(requestMetrics.Middleware())
	}

	// the admin is read from locals once the chain has run
	app.Use(fiberlog.New(fiberlog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
		User:          authmiddleware.Username,
	}))

	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: session.CookieKey(cfg.Webserver.Session.Secret, cfg.Webserver.Argon2Salt),
	}))

	app.Use(authmiddleware.Attach(sessions))

	app.Get(CheckAlivePath, svc.checkAlive)

	if requestMetrics != nil {
		app.Get(metrics.Path, requestMetrics.Handler())
	}

	deps := &handler.Deps{
		Config:   cfg,
		Store:    st,
		Auth:     authService,
		Sessions: sessions,
		Gate:     authmiddleware.RequireAdmin,
	}

	api := app.Group(handler.APIPrefix)

	// init handlers (they register their own routes with the admin gate)
	for _, h := range []handler.Service{
		new(service.Service),
		new(blogpost.Service),
		new(job.Service),
		new(client.Service),
		new(partner.Service),
		new(contact.Service),
		new(login.Service),
		new(logout.Service),
		new(profile.Service),
	} {
		if err = h.Init(api, deps); err != nil {
			return nil, err
		}
	}

	if cfg.Webserver.StaticDir != "" {
		app.Use(staticFiles(cfg.Webserver.StaticDir))
		log.Info().Str("dir", cfg.Webserver.StaticDir).Msg("serving front end")
	}

	return svc, nil
}

// checkAlive answers 200 while the service accepts traffic and 503 while draining.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	if err := s.store.Ping(c.UserContext()); err != nil {
		log.Error().Err(err).Msg("check alive: database unreachable")

		return c.Status(fiber.StatusServiceUnavailable).SendString("database unreachable")
	}

	return c.SendString("OK")
}

// staticFiles serves the built front end. Unknown paths get index.html so
// the client side router can take over, the api keeps its JSON 404s.
func staticFiles(dir string) fiber.Handler {
	return filesystem.New(filesystem.Config{
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), handler.APIPrefix+"/") || c.Path() == handler.APIPrefix
		},
		Root:         http.Dir(dir),
		Index:        "index.html",
		NotFoundFile: "index.html",
		MaxAge:       3600, //nolint:mnd
	})
}

// ErrorHandler turns handler errors into their JSON bodies. Unexpected
// errors are logged and answered with a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		herr *handler.Error
		ferr *fiber.Error
	)

	switch {
	case errors.As(err, &herr):
		return c.Status(herr.Status).JSON(herr)
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(handler.NotFound(""))
	case errors.As(err, &ferr):
		return c.Status(ferr.Code).JSON(fiber.Map{"message": ferr.Message})
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": handler.MsgInternalServerError})
}
