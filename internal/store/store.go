// Package store defines the persistence capabilities of the website.
// Implementations live in the memory and relational subpackages; backend
// picks one from config.
package store

import (
	"context"

	"github.com/xcelliti/website/internal/db/models"
)

// ServiceStore persists services.
type ServiceStore interface {
	// ListServices returns all services ordered by display order, ties by id.
	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, s models.Service) (models.Service, error)
	UpdateService(ctx context.Context, id uint64, p *models.ServicePatch) (models.Service, error)
	DeleteService(ctx context.Context, id uint64) error
}

// BlogPostStore persists blog posts.
type BlogPostStore interface {
	// ListBlogPosts returns published posts, or all of them when
	// includeUnpublished is set, ordered by id.
	ListBlogPosts(ctx context.Context, includeUnpublished bool) ([]models.BlogPost, error)
	GetBlogPost(ctx context.Context, id uint64) (models.BlogPost, error)
	// CreateBlogPost stamps PublishedAt with the current time.
	CreateBlogPost(ctx context.Context, b models.BlogPost) (models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id uint64, p *models.BlogPostPatch) (models.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id uint64) error
}

// JobStore persists job postings.
type JobStore interface {
	// ListJobs returns active jobs, or all of them when includeInactive is set.
	ListJobs(ctx context.Context, includeInactive bool) ([]models.Job, error)
	CreateJob(ctx context.Context, j models.Job) (models.Job, error)
	UpdateJob(ctx context.Context, id uint64, p *models.JobPatch) (models.Job, error)
	DeleteJob(ctx context.Context, id uint64) error
}

// ContactStore persists contact form submissions. They are never changed
// after creation.
type ContactStore interface {
	ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error)
	// CreateContactSubmission stamps CreatedAt with the current time.
	CreateContactSubmission(ctx context.Context, c models.ContactSubmission) (models.ContactSubmission, error)
}

// ClientStore persists clients.
type ClientStore interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	CreateClient(ctx context.Context, c models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, id uint64, p *models.ClientPatch) (models.Client, error)
	DeleteClient(ctx context.Context, id uint64) error
}

// PartnerStore persists partners.
type PartnerStore interface {
	ListPartners(ctx context.Context) ([]models.Partner, error)
	CreatePartner(ctx context.Context, p models.Partner) (models.Partner, error)
	UpdatePartner(ctx context.Context, id uint64, p *models.PartnerPatch) (models.Partner, error)
	DeletePartner(ctx context.Context, id uint64) error
}

// AdminStore persists admin accounts.
type AdminStore interface {
	GetAdminByUsername(ctx context.Context, username string) (models.Admin, error)
	CreateAdmin(ctx context.Context, a models.Admin) (models.Admin, error)
}

// Store is the full set of capabilities the handlers depend on.
//
// Update methods return ErrNotFound for an unknown id. Delete methods
// succeed for unknown ids.
type Store interface {
	ServiceStore
	BlogPostStore
	JobStore
	ContactStore
	ClientStore
	PartnerStore
	AdminStore

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying connections.
	Close() error
}
