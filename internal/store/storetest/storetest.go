// Package storetest holds the behaviour every store.Store implementation
// must share. Implementations call Run from their own tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
)

// Factory returns a fresh, empty store for one test.
type Factory func(t *testing.T) store.Store

// Run executes the conformance suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store)
	}{
		{"empty lists", testEmptyLists},
		{"services", testServices},
		{"service patch", testServicePatch},
		{"blog posts", testBlogPosts},
		{"blog post patch", testBlogPostPatch},
		{"jobs", testJobs},
		{"contact submissions", testContactSubmissions},
		{"clients", testClients},
		{"partners", testPartners},
		{"missing ids", testMissingIDs},
		{"admins", testAdmins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

func ptr[T any](v T) *T { return &v }

func testEmptyLists(t *testing.T, s store.Store) {
	ctx := context.Background()

	services, err := s.ListServices(ctx)
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)

	posts, err := s.ListBlogPosts(ctx, true)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	contacts, err := s.ListContactSubmissions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func testServices(t *testing.T, s store.Store) {
	ctx := context.Background()

	create := func(title string, order int) models.Service {
		svc, err := s.CreateService(ctx, models.Service{
			ID: 99, Title: title, Description: "d", Image: "/i.png", Order: order,
		})
		require.NoError(t, err)

		return svc
	}

	b := create("b", 2)
	a := create("a", 1)
	c := create("c", 2)
	d := create("d", -1)

	// caller ids are ignored and every id is unique
	ids := map[uint64]bool{a.ID: true, b.ID: true, c.ID: true, d.ID: true}
	assert.Len(t, ids, 4)
	assert.Less(t, b.ID, c.ID)

	list, err := s.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, []string{"d", "a", "b", "c"}, titles(list, func(s models.Service) string { return s.Title }))

	require.NoError(t, s.DeleteService(ctx, a.ID))
	require.NoError(t, s.DeleteService(ctx, a.ID))

	e := create("e", 0)
	assert.Greater(t, e.ID, d.ID, "ids are never reused")

	list, err = s.ListServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e", "b", "c"}, titles(list, func(s models.Service) string { return s.Title }))
}

func testServicePatch(t *testing.T, s store.Store) {
	ctx := context.Background()

	svc, err := s.CreateService(ctx, models.Service{Title: "old", Description: "desc", Image: "/a.png", Order: 5})
	require.NoError(t, err)

	got, err := s.UpdateService(ctx, svc.ID, &models.ServicePatch{})
	require.NoError(t, err)
	assert.Equal(t, svc, got, "empty patch changes nothing")

	patch := &models.ServicePatch{Title: ptr("new"), Order: ptr(0)}

	got, err = s.UpdateService(ctx, svc.ID, patch)
	require.NoError(t, err)

	again, err := s.UpdateService(ctx, svc.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, got, again, "patch is idempotent")

	want := models.Service{ID: svc.ID, Title: "new", Description: "desc", Image: "/a.png", Order: 0}
	assert.Equal(t, want, got)

	list, err := s.ListServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Service{want}, list)
}

func testBlogPosts(t *testing.T, s store.Store) {
	ctx := context.Background()
	before := time.Now().Add(-time.Second)

	draft, err := s.CreateBlogPost(ctx, models.BlogPost{
		Title: "draft", Content: "c", Author: "a",
		PublishedAt: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, draft.IsPublished)
	assert.NotZero(t, draft.ID)
	assert.WithinRange(t, draft.PublishedAt, before, time.Now().Add(time.Second), "publish time is server set")

	published, err := s.CreateBlogPost(ctx, models.BlogPost{
		Title: "live", Content: "c", Author: "a", IsPublished: true, Category: ptr("news"),
	})
	require.NoError(t, err)

	public, err := s.ListBlogPosts(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []uint64{published.ID}, postIDs(public))

	all, err := s.ListBlogPosts(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []uint64{draft.ID, published.ID}, postIDs(all))

	got, err := s.GetBlogPost(ctx, published.ID)
	require.NoError(t, err)
	assert.Equal(t, "live", got.Title)
	require.NotNil(t, got.Category)
	assert.Equal(t, "news", *got.Category)
	assert.Nil(t, got.Thumbnail)
	assert.True(t, got.PublishedAt.Equal(published.PublishedAt))

	_, err = s.UpdateBlogPost(ctx, draft.ID, &models.BlogPostPatch{IsPublished: ptr(true)})
	require.NoError(t, err)

	public, err = s.ListBlogPosts(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []uint64{draft.ID, published.ID}, postIDs(public))

	require.NoError(t, s.DeleteBlogPost(ctx, draft.ID))

	_, err = s.GetBlogPost(ctx, draft.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testBlogPostPatch(t *testing.T, s store.Store) {
	ctx := context.Background()

	post, err := s.CreateBlogPost(ctx, models.BlogPost{
		Title: "t", Content: "c", Author: "a", Excerpt: ptr("short"), Category: ptr("news"),
	})
	require.NoError(t, err)

	got, err := s.UpdateBlogPost(ctx, post.ID, &models.BlogPostPatch{Excerpt: ptr(""), Author: ptr("b")})
	require.NoError(t, err)

	assert.Nil(t, got.Excerpt)
	assert.Equal(t, "b", got.Author)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, "c", got.Content)
	require.NotNil(t, got.Category)
	assert.Equal(t, "news", *got.Category)
	assert.True(t, got.PublishedAt.Equal(post.PublishedAt))
}

func testJobs(t *testing.T, s store.Store) {
	ctx := context.Background()

	active, err := s.CreateJob(ctx, models.Job{
		Title: "dev", Description: "d", Requirements: "r", Location: "remote", IsActive: true,
	})
	require.NoError(t, err)

	closed, err := s.CreateJob(ctx, models.Job{
		Title: "ops", Description: "d", Requirements: "r", Location: "office",
	})
	require.NoError(t, err)

	open, err := s.ListJobs(ctx, false)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, active.ID, open[0].ID)

	all, err := s.ListJobs(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := s.UpdateJob(ctx, active.ID, &models.JobPatch{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "remote", got.Location)

	open, err = s.ListJobs(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, open)

	require.NoError(t, s.DeleteJob(ctx, closed.ID))

	all, err = s.ListJobs(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func testContactSubmissions(t *testing.T, s store.Store) {
	ctx := context.Background()
	before := time.Now().Add(-time.Second)

	sub, err := s.CreateContactSubmission(ctx, models.ContactSubmission{
		Name: "Ada", Email: "ada@example.com", Message: "hello",
		CreatedAt: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.WithinRange(t, sub.CreatedAt, before, time.Now().Add(time.Second))

	list, err := s.ListContactSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sub.ID, list[0].ID)
	assert.Equal(t, "hello", list[0].Message)
	assert.Nil(t, list[0].Phone)
}

func testClients(t *testing.T, s store.Store) {
	ctx := context.Background()

	second, err := s.CreateClient(ctx, models.Client{Name: "second", Logo: "/2.png", Order: 2})
	require.NoError(t, err)

	first, err := s.CreateClient(ctx, models.Client{Name: "first", Logo: "/1.png", Order: 1, Website: ptr("https://example.com")})
	require.NoError(t, err)

	list, err := s.ListClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, titles(list, func(c models.Client) string { return c.Name }))

	got, err := s.UpdateClient(ctx, second.ID, &models.ClientPatch{Order: ptr(0), Description: ptr("big")})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Order)
	require.NotNil(t, got.Description)
	assert.Equal(t, "big", *got.Description)

	list, err = s.ListClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, titles(list, func(c models.Client) string { return c.Name }))

	require.NoError(t, s.DeleteClient(ctx, first.ID))

	list, err = s.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func testPartners(t *testing.T, s store.Store) {
	ctx := context.Background()

	active, err := s.CreatePartner(ctx, models.Partner{
		Name: "aws", Logo: "/aws.png", Order: 1, Description: "cloud", IsActive: true,
	})
	require.NoError(t, err)

	inactive, err := s.CreatePartner(ctx, models.Partner{
		Name: "old", Logo: "/old.png", Order: 1, Description: "retired",
	})
	require.NoError(t, err)

	list, err := s.ListPartners(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2, "inactive partners are listed too")
	assert.Equal(t, active.ID, list[0].ID)
	assert.Equal(t, inactive.ID, list[1].ID)
	assert.False(t, list[1].IsActive)

	got, err := s.UpdatePartner(ctx, inactive.ID, &models.PartnerPatch{IsActive: ptr(true), Website: ptr("https://x.example")})
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, "retired", got.Description)

	require.NoError(t, s.DeletePartner(ctx, active.ID))
	require.NoError(t, s.DeletePartner(ctx, inactive.ID))

	list, err = s.ListPartners(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func testMissingIDs(t *testing.T, s store.Store) {
	ctx := context.Background()

	const missing = 4242

	_, err := s.UpdateService(ctx, missing, &models.ServicePatch{Title: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UpdateService(ctx, missing, &models.ServicePatch{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UpdateBlogPost(ctx, missing, &models.BlogPostPatch{Title: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetBlogPost(ctx, missing)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UpdateJob(ctx, missing, &models.JobPatch{Title: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UpdateClient(ctx, missing, &models.ClientPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UpdatePartner(ctx, missing, &models.PartnerPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.NoError(t, s.DeleteService(ctx, missing))
	assert.NoError(t, s.DeleteBlogPost(ctx, missing))
	assert.NoError(t, s.DeleteJob(ctx, missing))
	assert.NoError(t, s.DeleteClient(ctx, missing))
	assert.NoError(t, s.DeletePartner(ctx, missing))
}

func testAdmins(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.GetAdminByUsername(ctx, "admin")
	assert.ErrorIs(t, err, store.ErrNotFound)

	admin, err := s.CreateAdmin(ctx, models.Admin{Username: "admin", Password: "hash", Email: "a@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, admin.ID)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	got, err := s.GetAdminByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, admin, got)

	_, err = s.CreateAdmin(ctx, models.Admin{Username: "admin", Password: "other", Email: "b@example.com"})
	assert.ErrorIs(t, err, store.ErrAdminExists)

	editor, err := s.CreateAdmin(ctx, models.Admin{Username: "editor", Password: "hash", Email: "e@example.com", Role: "editor"})
	require.NoError(t, err)
	assert.Equal(t, "editor", editor.Role)
	assert.NotEqual(t, admin.ID, editor.ID)
}

func titles[T any](list []T, name func(T) string) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, name(r))
	}

	return out
}

func postIDs(list []models.BlogPost) []uint64 {
	out := make([]uint64, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}

	return out
}
