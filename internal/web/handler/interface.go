package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xcelliti/website/internal/auth"
	"github.com/xcelliti/website/internal/config"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/web/session"
)

// Deps are the dependencies shared by all handler services.
type Deps struct {
	Config   *config.Config
	Store    store.Store
	Auth     *auth.Service
	Sessions *session.Manager
	// Gate rejects requests without an authenticated admin.
	Gate fiber.Handler
}

// Valid reports whether every dependency is set.
func (d *Deps) Valid() bool {
	return d != nil && d.Config != nil && d.Store != nil && d.Auth != nil && d.Sessions != nil && d.Gate != nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(api fiber.Router, deps *Deps) error
}
