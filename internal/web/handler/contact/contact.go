// Package contact accepts contact form submissions and lists them to admins.
package contact

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/web/handler"
)

const (
	// Path receives the public contact form.
	Path = "/contact"

	// SubmissionsPath lists the received submissions.
	SubmissionsPath = "/contact-submissions"
)

// Service is the contact handler service.
type Service struct {
	handler.Service
	store store.ContactStore
}

// Init registers the routes. Submitting is public, reading needs an admin.
func (s *Service) Init(api fiber.Router, deps *handler.Deps) error {
	if api == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.store = deps.Store

	api.Post(Path, s.Submit)
	api.Get(SubmissionsPath, deps.Gate, s.List)

	return nil
}

// Submit stores a contact form submission.
func (s *Service) Submit(c *fiber.Ctx) error {
	in := new(models.ContactInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	created, err := s.store.CreateContactSubmission(c.UserContext(), in.ContactSubmission())
	if err != nil {
		return err
	}

	log.Info().Uint64("id", created.ID).Msg("contact submission received")

	return c.JSON(created)
}

// List returns every submission in arrival order.
func (s *Service) List(c *fiber.Ctx) error {
	submissions, err := s.store.ListContactSubmissions(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(submissions)
}
