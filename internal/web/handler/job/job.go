// Package job serves the careers page.
package job

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/web/handler"
)

const (
	// Path is the route group of jobs.
	Path = "/jobs"

	// QueryIncludeInactive lists closed positions as well when set to "true".
	QueryIncludeInactive = "includeInactive"
)

// Service is the jobs handler service.
type Service struct {
	handler.Service
	store store.JobStore
}

// Init registers the routes. Reads are public, writes need an admin.
func (s *Service) Init(api fiber.Router, deps *handler.Deps) error {
	if api == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.store = deps.Store

	api.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Post(handler.RootPath, deps.Gate, s.Create)
		router.Patch(handler.IDPath, deps.Gate, s.Update)
		router.Delete(handler.IDPath, deps.Gate, s.Delete)
	})

	return nil
}

// List returns active jobs, or all jobs with includeInactive=true.
func (s *Service) List(c *fiber.Ctx) error {
	jobs, err := s.store.ListJobs(c.UserContext(), handler.QueryFlag(c, QueryIncludeInactive))
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// Create stores a new job, active unless stated otherwise.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(models.JobInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	created, err := s.store.CreateJob(c.UserContext(), in.Job())
	if err != nil {
		return err
	}

	return c.JSON(created)
}

// Update applies a partial update.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	patch := new(models.JobPatch)
	if err = handler.Bind(c, patch); err != nil {
		return err
	}

	updated, err := s.store.UpdateJob(c.UserContext(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return handler.NotFound("Job not found")
	}

	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Delete removes a job.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = s.store.DeleteJob(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
