// Package blogpost serves the blog. Drafts are only listed on request, the
// admin area asks for them with includeUnpublished=true.
package blogpost

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/web/handler"
)

const (
	// Path is the route group of blog posts.
	Path = "/blog-posts"

	// QueryIncludeUnpublished lists drafts as well when set to "true".
	QueryIncludeUnpublished = "includeUnpublished"

	msgNotFound = "Blog post not found"
)

// Service is the blog post handler service.
type Service struct {
	handler.Service
	store store.BlogPostStore
}

// Init registers the routes. Reads are public, writes need an admin.
func (s *Service) Init(api fiber.Router, deps *handler.Deps) error {
	if api == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.store = deps.Store

	api.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get(handler.IDPath, s.Get)
		router.Post(handler.RootPath, deps.Gate, s.Create)
		router.Patch(handler.IDPath, deps.Gate, s.Update)
		router.Delete(handler.IDPath, deps.Gate, s.Delete)
	})

	return nil
}

// List returns published posts, or all posts with includeUnpublished=true.
func (s *Service) List(c *fiber.Ctx) error {
	posts, err := s.store.ListBlogPosts(c.UserContext(), handler.QueryFlag(c, QueryIncludeUnpublished))
	if err != nil {
		return err
	}

	return c.JSON(posts)
}

// Get returns a single post by id, drafts included.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	post, err := s.store.GetBlogPost(c.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return handler.NotFound(msgNotFound)
	}

	if err != nil {
		return err
	}

	return c.JSON(post)
}

// Create stores a new post. The publish time is set by the store.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(models.BlogPostInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	created, err := s.store.CreateBlogPost(c.UserContext(), in.BlogPost())
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

	patch := new(models.BlogPostPatch)
	if err = handler.Bind(c, patch); err != nil {
		return err
	}

	updated, err := s.store.UpdateBlogPost(c.UserContext(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return handler.NotFound(msgNotFound)
	}

	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Delete removes a post.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = s.store.DeleteBlogPost(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
