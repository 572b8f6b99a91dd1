// Package partner serves the technology partners. Inactive partners are
// listed too, the front end filters them.
package partner

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/web/handler"
)

// Path is the route group of partners.
const Path = "/partners"

// Service is the partners handler service.
type Service struct {
	handler.Service
	store store.PartnerStore
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

// List returns all partners by display order.
func (s *Service) List(c *fiber.Ctx) error {
	partners, err := s.store.ListPartners(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(partners)
}

// Create stores a new partner, active unless stated otherwise.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(models.PartnerInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	created, err := s.store.CreatePartner(c.UserContext(), in.Partner())
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

	patch := new(models.PartnerPatch)
	if err = handler.Bind(c, patch); err != nil {
		return err
	}

	updated, err := s.store.UpdatePartner(c.UserContext(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return handler.NotFound("Partner not found")
	}

	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Delete removes a partner.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = s.store.DeletePartner(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
