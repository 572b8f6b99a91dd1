// Package service serves the services shown on the services page.
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/web/handler"
)

// Path is the route group of services.
const Path = "/services"

// Service is the services handler service.
type Service struct {
	handler.Service
	store store.ServiceStore
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

// List returns all services by display order.
func (s *Service) List(c *fiber.Ctx) error {
	services, err := s.store.ListServices(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(services)
}

// Create stores a new service.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(models.ServiceInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	created, err := s.store.CreateService(c.UserContext(), in.Service())
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

	patch := new(models.ServicePatch)
	if err = handler.Bind(c, patch); err != nil {
		return err
	}

	updated, err := s.store.UpdateService(c.UserContext(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return handler.NotFound("Service not found")
	}

	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Delete removes a service. Unknown ids succeed as well.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = s.store.DeleteService(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
