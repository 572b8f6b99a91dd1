// Package login authenticates admins and starts their session.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/xcelliti/website/internal/auth"
	"github.com/xcelliti/website/internal/web/handler"
	"github.com/xcelliti/website/internal/web/session"
)

const (
	// Path is the path of the login endpoint below the api prefix.
	Path = "/admin/login"
)

// Credentials is the login payload. Empty fields are not rejected up front,
// they fail the credential check like any other mismatch.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	auth     *auth.Service
	sessions *session.Manager
}

// Init initializes the login handler.
func (s *Service) Init(api fiber.Router, deps *handler.Deps) error {
	if api == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.auth = deps.Auth
	s.sessions = deps.Sessions

	api.Post(Path, s.Post)

	return nil
}

// Post checks the credentials and sets the session cookie. Unknown users
// and wrong passwords get the same answer.
func (s *Service) Post(c *fiber.Ctx) error {
	creds := new(Credentials)
	if err := handler.Bind(c, creds); err != nil {
		return err
	}

	admin, err := s.auth.Login(c.UserContext(), creds.Username, creds.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Warn().Str("IP", c.IP()).Msg("failed admin login")

		return handler.Unauthorized(handler.MsgInvalidCredentials)
	}

	if err != nil {
		return err
	}

	if err = s.sessions.Create(c, admin); err != nil {
		return err
	}

	return c.JSON(admin)
}
