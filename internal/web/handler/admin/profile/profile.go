// Package profile tells the admin area who is logged in.
package profile

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xcelliti/website/internal/web/handler"
	authmiddleware "github.com/xcelliti/website/internal/web/middleware/auth"
)

// Path is the path of the current admin endpoint below the api prefix.
const Path = "/admin/me"

// Service is the profile handler service.
type Service struct {
	handler.Service
}

// Init initializes the profile handler.
func (s *Service) Init(api fiber.Router, deps *handler.Deps) error {
	if api == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	api.Get(Path, deps.Gate, s.Get)

	return nil
}

// Get returns the admin of the session.
func (s *Service) Get(c *fiber.Ctx) error {
	admin, ok := authmiddleware.CurrentAdmin(c)
	if !ok {
		return handler.Unauthorized(handler.MsgUnauthorized)
	}

	return c.JSON(admin)
}
