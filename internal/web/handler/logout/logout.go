// Package logout ends admin sessions.
package logout

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xcelliti/website/internal/web/handler"
	"github.com/xcelliti/website/internal/web/session"
)

const (
	// Path is the path of the logout endpoint below the api prefix.
	Path = "/admin/logout"

	// MsgLoggedOut is the body message of a successful logout.
	MsgLoggedOut = "Logged out successfully"
)

// Service is the logout handler service.
type Service struct {
	handler.Service
	sessions *session.Manager
}

// Init initializes the logout handler. Logging out needs no session.
func (s *Service) Init(api fiber.Router, deps *handler.Deps) error {
	if api == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.sessions = deps.Sessions

	api.Post(Path, s.Logout)

	return nil
}

// Logout deletes the session record and clears the cookie.
func (s *Service) Logout(c *fiber.Ctx) error {
	if err := s.sessions.Destroy(c); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": MsgLoggedOut})
}
