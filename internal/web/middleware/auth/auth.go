package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/web/handler"
	"github.com/xcelliti/website/internal/web/session"
)

// LocalsKey is the request locals key holding the current admin.
const LocalsKey = "CurrentAdmin"

// Attach returns a middleware loading the session of the request. Requests
// without a valid session continue anonymously.
func Attach(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := sessions.Load(c)

		switch {
		case err == nil:
			c.Locals(LocalsKey, data.Admin)
		case errors.Is(err, session.ErrNoSession):
		default:
			// a broken session backend must not take the public pages down
			log.Error().Err(err).Str("path", c.Path()).Msg("failed to load session")
		}

		return c.Next()
	}
}

// RequireAdmin rejects requests without an attached admin.
func RequireAdmin(c *fiber.Ctx) error {
	if _, ok := CurrentAdmin(c); !ok {
		return handler.Unauthorized(handler.MsgUnauthorized)
	}

	return c.Next()
}

// CurrentAdmin returns the admin attached to the request.
func CurrentAdmin(c *fiber.Ctx) (models.AdminProfile, bool) {
	admin, ok := c.Locals(LocalsKey).(models.AdminProfile)

	return admin, ok && admin.ID > 0
}

// Username returns the current admin's username or an empty string. It
// feeds the access log.
func Username(c *fiber.Ctx) string {
	if admin, ok := CurrentAdmin(c); ok {
		return admin.Username
	}

	return ""
}
