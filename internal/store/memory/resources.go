package memory

import (
	"context"

	"github.com/xcelliti/website/internal/db/models"
)

// ListServices implements store.ServiceStore.
func (s *Store) ListServices(_ context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.services.sorted(nil, func(a, b models.Service) bool {
		return byOrder(a.Order, a.ID, b.Order, b.ID)
	}), nil
}

// CreateService implements store.ServiceStore.
func (s *Store) CreateService(_ context.Context, svc models.Service) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc.ID = s.services.nextID()
	s.services.records[svc.ID] = svc

	return svc, nil
}

// UpdateService implements store.ServiceStore.
func (s *Store) UpdateService(_ context.Context, id uint64, p *models.ServicePatch) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.services.update(id, p.Apply)
}

// DeleteService implements store.ServiceStore.
func (s *Store) DeleteService(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.services.delete(id)

	return nil
}

// ListBlogPosts implements store.BlogPostStore.
func (s *Store) ListBlogPosts(_ context.Context, includeUnpublished bool) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.posts.sorted(
		func(b models.BlogPost) bool { return includeUnpublished || b.IsPublished },
		func(a, b models.BlogPost) bool { return a.ID < b.ID },
	), nil
}

// GetBlogPost implements store.BlogPostStore.
func (s *Store) GetBlogPost(_ context.Context, id uint64) (models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.posts.get(id)
}

// CreateBlogPost implements store.BlogPostStore.
func (s *Store) CreateBlogPost(_ context.Context, b models.BlogPost) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.posts.nextID()
	b.PublishedAt = s.now()
	s.posts.records[b.ID] = b

	return b, nil
}

// UpdateBlogPost implements store.BlogPostStore.
func (s *Store) UpdateBlogPost(_ context.Context, id uint64, p *models.BlogPostPatch) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.posts.update(id, p.Apply)
}

// DeleteBlogPost implements store.BlogPostStore.
func (s *Store) DeleteBlogPost(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts.delete(id)

	return nil
}

// ListJobs implements store.JobStore.
func (s *Store) ListJobs(_ context.Context, includeInactive bool) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.jobs.sorted(
		func(j models.Job) bool { return includeInactive || j.IsActive },
		func(a, b models.Job) bool { return a.ID < b.ID },
	), nil
}

// CreateJob implements store.JobStore.
func (s *Store) CreateJob(_ context.Context, j models.Job) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j.ID = s.jobs.nextID()
	s.jobs.records[j.ID] = j

	return j, nil
}

// UpdateJob implements store.JobStore.
func (s *Store) UpdateJob(_ context.Context, id uint64, p *models.JobPatch) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.jobs.update(id, p.Apply)
}

// DeleteJob implements store.JobStore.
func (s *Store) DeleteJob(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs.delete(id)

	return nil
}

// ListContactSubmissions implements store.ContactStore.
func (s *Store) ListContactSubmissions(_ context.Context) ([]models.ContactSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.contacts.sorted(nil, func(a, b models.ContactSubmission) bool { return a.ID < b.ID }), nil
}

// CreateContactSubmission implements store.ContactStore.
func (s *Store) CreateContactSubmission(_ context.Context, c models.ContactSubmission) (models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.contacts.nextID()
	c.CreatedAt = s.now()
	s.contacts.records[c.ID] = c

	return c, nil
}

// ListClients implements store.ClientStore.
func (s *Store) ListClients(_ context.Context) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.clients.sorted(nil, func(a, b models.Client) bool {
		return byOrder(a.Order, a.ID, b.Order, b.ID)
	}), nil
}

// CreateClient implements store.ClientStore.
func (s *Store) CreateClient(_ context.Context, c models.Client) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.clients.nextID()
	s.clients.records[c.ID] = c

	return c, nil
}

// UpdateClient implements store.ClientStore.
func (s *Store) UpdateClient(_ context.Context, id uint64, p *models.ClientPatch) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clients.update(id, p.Apply)
}

// DeleteClient implements store.ClientStore.
func (s *Store) DeleteClient(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients.delete(id)

	return nil
}

// ListPartners implements store.PartnerStore.
func (s *Store) ListPartners(_ context.Context) ([]models.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.partners.sorted(nil, func(a, b models.Partner) bool {
		return byOrder(a.Order, a.ID, b.Order, b.ID)
	}), nil
}

// CreatePartner implements store.PartnerStore.
func (s *Store) CreatePartner(_ context.Context, p models.Partner) (models.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.partners.nextID()
	s.partners.records[p.ID] = p

	return p, nil
}

// UpdatePartner implements store.PartnerStore.
func (s *Store) UpdatePartner(_ context.Context, id uint64, p *models.PartnerPatch) (models.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.partners.update(id, p.Apply)
}

// DeletePartner implements store.PartnerStore.
func (s *Store) DeletePartner(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.partners.delete(id)

	return nil
}
