package relational

import (
	"context"

	"github.com/xcelliti/website/internal/db/models"
)

// ListServices implements store.ServiceStore.
func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	return list[models.Service](ctx, s.db, byOrder, nil)
}

// CreateService implements store.ServiceStore.
func (s *Store) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	svc.ID = 0

	return create(ctx, s.db, svc)
}

// UpdateService implements store.ServiceStore.
func (s *Store) UpdateService(ctx context.Context, id uint64, p *models.ServicePatch) (models.Service, error) {
	return update[models.Service](ctx, s.db, id, p.Columns())
}

// DeleteService implements store.ServiceStore.
func (s *Store) DeleteService(ctx context.Context, id uint64) error {
	return remove[models.Service](ctx, s.db, id)
}

// ListBlogPosts implements store.BlogPostStore.
func (s *Store) ListBlogPosts(ctx context.Context, includeUnpublished bool) ([]models.BlogPost, error) {
	if includeUnpublished {
		return list[models.BlogPost](ctx, s.db, byID, nil)
	}

	return list[models.BlogPost](ctx, s.db, byID, "is_published = ?", true)
}

// GetBlogPost implements store.BlogPostStore.
func (s *Store) GetBlogPost(ctx context.Context, id uint64) (models.BlogPost, error) {
	return get[models.BlogPost](ctx, s.db, id)
}

// CreateBlogPost implements store.BlogPostStore.
func (s *Store) CreateBlogPost(ctx context.Context, b models.BlogPost) (models.BlogPost, error) {
	b.ID = 0
	b.PublishedAt = s.now()

	return create(ctx, s.db, b)
}

// UpdateBlogPost implements store.BlogPostStore.
func (s *Store) UpdateBlogPost(ctx context.Context, id uint64, p *models.BlogPostPatch) (models.BlogPost, error) {
	return update[models.BlogPost](ctx, s.db, id, p.Columns())
}

// DeleteBlogPost implements store.BlogPostStore.
func (s *Store) DeleteBlogPost(ctx context.Context, id uint64) error {
	return remove[models.BlogPost](ctx, s.db, id)
}

// ListJobs implements store.JobStore.
func (s *Store) ListJobs(ctx context.Context, includeInactive bool) ([]models.Job, error) {
	if includeInactive {
		return list[models.Job](ctx, s.db, byID, nil)
	}

	return list[models.Job](ctx, s.db, byID, "is_active = ?", true)
}

// CreateJob implements store.JobStore.
func (s *Store) CreateJob(ctx context.Context, j models.Job) (models.Job, error) {
	j.ID = 0

	return create(ctx, s.db, j)
}

// UpdateJob implements store.JobStore.
func (s *Store) UpdateJob(ctx context.Context, id uint64, p *models.JobPatch) (models.Job, error) {
	return update[models.Job](ctx, s.db, id, p.Columns())
}

// DeleteJob implements store.JobStore.
func (s *Store) DeleteJob(ctx context.Context, id uint64) error {
	return remove[models.Job](ctx, s.db, id)
}

// ListContactSubmissions implements store.ContactStore.
func (s *Store) ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	return list[models.ContactSubmission](ctx, s.db, byID, nil)
}

// CreateContactSubmission implements store.ContactStore.
func (s *Store) CreateContactSubmission(ctx context.Context, c models.ContactSubmission) (models.ContactSubmission, error) {
	c.ID = 0
	c.CreatedAt = s.now()

	return create(ctx, s.db, c)
}

// ListClients implements store.ClientStore.
func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	return list[models.Client](ctx, s.db, byOrder, nil)
}

// CreateClient implements store.ClientStore.
func (s *Store) CreateClient(ctx context.Context, c models.Client) (models.Client, error) {
	c.ID = 0

	return create(ctx, s.db, c)
}

// UpdateClient implements store.ClientStore.
func (s *Store) UpdateClient(ctx context.Context, id uint64, p *models.ClientPatch) (models.Client, error) {
	return update[models.Client](ctx, s.db, id, p.Columns())
}

// DeleteClient implements store.ClientStore.
func (s *Store) DeleteClient(ctx context.Context, id uint64) error {
	return remove[models.Client](ctx, s.db, id)
}

// ListPartners implements store.PartnerStore.
func (s *Store) ListPartners(ctx context.Context) ([]models.Partner, error) {
	return list[models.Partner](ctx, s.db, byOrder, nil)
}

// CreatePartner implements store.PartnerStore.
func (s *Store) CreatePartner(ctx context.Context, p models.Partner) (models.Partner, error) {
	p.ID = 0

	return create(ctx, s.db, p)
}

// UpdatePartner implements store.PartnerStore.
func (s *Store) UpdatePartner(ctx context.Context, id uint64, p *models.PartnerPatch) (models.Partner, error) {
	return update[models.Partner](ctx, s.db, id, p.Columns())
}

// DeletePartner implements store.PartnerStore.
func (s *Store) DeletePartner(ctx context.Context, id uint64) error {
	return remove[models.Partner](ctx, s.db, id)
}
