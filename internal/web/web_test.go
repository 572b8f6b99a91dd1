package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xcelliti/website/internal/config"
	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
	storememory "github.com/xcelliti/website/internal/store/memory"
	"github.com/xcelliti/website/internal/store/relational"
)

const (
	adminUser     = "admin"
	adminPassword = "admin123"
)

func testConfig() *config.Config {
	return &config.Config{
		DevMode: true,
		Title:   "xcelliti-test",
		Webserver: config.Webserver{
			Port:       5000,
			URL:        "http://localhost:5000",
			Metrics:    true,
			Argon2Salt: "test-salt",
			Session: config.Session{
				CookieName: config.DefaultSessionCookieName,
				ExpiryTime: time.Hour,
				Secret:     "test-secret",
			},
		},
	}
}

type testServer struct {
	t      *testing.T
	svc    *Service
	cookie *http.Cookie
}

func newTestServer(t *testing.T, cfg *config.Config, st store.Store) *testServer {
	t.Helper()

	if st == nil {
		st = storememory.New()
	}

	hash, err := models.HashPassword(adminPassword)
	require.NoError(t, err)

	_, err = st.CreateAdmin(context.Background(), models.Admin{
		Username: adminUser, Password: hash, Email: "admin@xcelliti.com",
	})
	require.NoError(t, err)

	storage := memory.New()
	t.Cleanup(func() { _ = storage.Close() })

	svc, err := New(cfg, st, storage)
	require.NoError(t, err)

	return &testServer{t: t, svc: svc}
}

// do sends a request with the current session cookie and returns status and body.
func (ts *testServer) do(method, target, body string) (int, string) {
	ts.t.Helper()

	resp := ts.raw(method, target, body)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(ts.t, err)

	return resp.StatusCode, string(raw)
}

func (ts *testServer) raw(method, target, body string) *http.Response {
	ts.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	if ts.cookie != nil {
		req.AddCookie(&http.Cookie{Name: ts.cookie.Name, Value: ts.cookie.Value})
	}

	resp, err := ts.svc.App.Test(req, -1)
	require.NoError(ts.t, err)

	return resp
}

func (ts *testServer) login() {
	ts.t.Helper()

	resp := ts.raw(http.MethodPost, "/api/admin/login",
		`{"username":"`+adminUser+`","password":"`+adminPassword+`"}`)
	require.Equal(ts.t, http.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == config.DefaultSessionCookieName {
			ts.cookie = c
		}
	}

	require.NotNil(ts.t, ts.cookie, "login must set the session cookie")
}

// forEachStore runs fn against the memory store and a sqlite backed
// relational store, both must answer the same.
func forEachStore(t *testing.T, fn func(t *testing.T, st store.Store)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, storememory.New())
	})

	t.Run("relational", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
			TranslateError: true,
		})
		require.NoError(t, err)

		// every connection to :memory: is a new database
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = sqlDB.Close() })

		require.NoError(t, db.AutoMigrate(relational.Tables()...))

		st, err := relational.New(db)
		require.NoError(t, err)

		fn(t, st)
	})
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal([]byte(body), &out), body)

	return out
}

func TestBlogPostScenario(t *testing.T) {
	forEachStore(t, func(t *testing.T, st store.Store) {
		ts := newTestServer(t, testConfig(), st)
		ts.login()

		before := time.Now().Add(-time.Second)

		status, body := ts.do(http.MethodPost, "/api/blog-posts",
			`{"title":"Hello","content":"World","author":"Ada","publishedAt":"2001-01-01T00:00:00Z"}`)
		require.Equal(t, http.StatusOK, status, body)

		created := decode[map[string]any](t, body)
		assert.Equal(t, false, created["isPublished"])
		assert.Equal(t, float64(1), created["id"])

		publishedAt, err := time.Parse(time.RFC3339Nano, created["publishedAt"].(string))
		require.NoError(t, err)
		assert.WithinRange(t, publishedAt, before, time.Now().Add(time.Second))

		// drafts are hidden from the public list
		status, body = ts.do(http.MethodGet, "/api/blog-posts", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, body)

		status, body = ts.do(http.MethodGet, "/api/blog-posts?includeUnpublished=true", "")
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, decode[[]models.BlogPost](t, body), 1)

		status, body = ts.do(http.MethodPatch, "/api/blog-posts/1", `{"isPublished":true}`)
		require.Equal(t, http.StatusOK, status, body)

		updated := decode[models.BlogPost](t, body)
		assert.True(t, updated.IsPublished)
		assert.Equal(t, "Hello", updated.Title)
		assert.Equal(t, "Ada", updated.Author)

		ts.cookie = nil

		status, body = ts.do(http.MethodGet, "/api/blog-posts", "")
		require.Equal(t, http.StatusOK, status)

		public := decode[[]models.BlogPost](t, body)
		require.Len(t, public, 1)
		assert.Equal(t, uint64(1), public[0].ID)

		status, _ = ts.do(http.MethodGet, "/api/blog-posts/1", "")
		assert.Equal(t, http.StatusOK, status)

		ts.login()

		status, _ = ts.do(http.MethodDelete, "/api/blog-posts/1", "")
		assert.Equal(t, http.StatusNoContent, status)

		status, body = ts.do(http.MethodGet, "/api/blog-posts/1", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.JSONEq(t, `{"message":"Blog post not found"}`, body)
	})
}

func TestContactScenario(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)

	status, body := ts.do(http.MethodPost, "/api/contact",
		`{"name":"Grace","email":"grace@example.com","message":"Call me"}`)
	require.Equal(t, http.StatusOK, status, body)

	created := decode[models.ContactSubmission](t, body)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	status, body = ts.do(http.MethodGet, "/api/contact-submissions", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, body)

	ts.login()

	status, body = ts.do(http.MethodGet, "/api/contact-submissions", "")
	require.Equal(t, http.StatusOK, status)

	list := decode[[]models.ContactSubmission](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Call me", list[0].Message)
}

func TestWritesNeedAdmin(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/services"},
		{http.MethodPatch, "/api/services/1"},
		{http.MethodDelete, "/api/services/1"},
		{http.MethodPost, "/api/blog-posts"},
		{http.MethodPatch, "/api/blog-posts/1"},
		{http.MethodDelete, "/api/blog-posts/1"},
		{http.MethodPost, "/api/jobs"},
		{http.MethodPatch, "/api/jobs/1"},
		{http.MethodDelete, "/api/jobs/1"},
		{http.MethodPost, "/api/clients"},
		{http.MethodPatch, "/api/clients/1"},
		{http.MethodDelete, "/api/clients/1"},
		{http.MethodPost, "/api/partners"},
		{http.MethodPatch, "/api/partners/1"},
		{http.MethodDelete, "/api/partners/1"},
		{http.MethodGet, "/api/contact-submissions"},
		{http.MethodGet, "/api/admin/me"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			status, body := ts.do(tt.method, tt.target, `{}`)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.JSONEq(t, `{"message":"Unauthorized"}`, body)
		})
	}
}

func TestPublicReads(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)

	for _, target := range []string{
		"/api/services", "/api/blog-posts", "/api/jobs", "/api/clients", "/api/partners",
	} {
		status, body := ts.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, status, target)
		assert.JSONEq(t, `[]`, body, target)
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)

	wrongStatus, wrongBody := ts.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"wrong"}`)
	unknownStatus, unknownBody := ts.do(http.MethodPost, "/api/admin/login", `{"username":"nobody","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongStatus)
	assert.Equal(t, wrongStatus, unknownStatus)
	assert.Equal(t, wrongBody, unknownBody)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, wrongBody)
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)
	ts.login()

	// the cookie is encrypted on the wire
	assert.NotRegexp(t, `^[0-9a-f]{64}$`, ts.cookie.Value)

	status, body := ts.do(http.MethodGet, "/api/admin/me", "")
	require.Equal(t, http.StatusOK, status)

	me := decode[map[string]any](t, body)
	assert.Equal(t, "admin", me["username"])
	assert.Equal(t, "admin@xcelliti.com", me["email"])
	assert.Equal(t, "admin", me["role"])
	assert.NotContains(t, me, "password")

	status, body = ts.do(http.MethodPost, "/api/admin/logout", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, body)

	status, _ = ts.do(http.MethodGet, "/api/admin/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// logging out without a session is fine
	ts.cookie = nil
	status, _ = ts.do(http.MethodPost, "/api/admin/logout", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestTamperedCookie(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)
	ts.cookie = &http.Cookie{Name: config.DefaultSessionCookieName, Value: strings.Repeat("ab", 32)}

	status, _ := ts.do(http.MethodGet, "/api/admin/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestServicesCRUD(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)
	ts.login()

	for _, body := range []string{
		`{"title":"Cloud","description":"d","image":"/c.png","order":2}`,
		`{"title":"Data","description":"d","image":"/d.png","order":1}`,
		`{"title":"Edge","description":"d","image":"/e.png","order":2}`,
	} {
		status, resp := ts.do(http.MethodPost, "/api/services", body)
		require.Equal(t, http.StatusOK, status, resp)
	}

	status, body := ts.do(http.MethodGet, "/api/services", "")
	require.Equal(t, http.StatusOK, status)

	list := decode[[]models.Service](t, body)
	require.Len(t, list, 3)
	assert.Equal(t, "Data", list[0].Title)
	assert.Equal(t, "Cloud", list[1].Title)
	assert.Equal(t, "Edge", list[2].Title)

	status, body = ts.do(http.MethodPatch, "/api/services/1", `{}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, list[1], decode[models.Service](t, body))

	status, body = ts.do(http.MethodPatch, "/api/services/1", `{"order":0}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, decode[models.Service](t, body).Order)
	assert.Equal(t, "Cloud", decode[models.Service](t, body).Title)

	status, body = ts.do(http.MethodPatch, "/api/services/99", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Service not found"}`, body)

	status, body = ts.do(http.MethodPatch, "/api/services/abc", `{"title":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Invalid id"}`, body)

	status, body = ts.do(http.MethodPost, "/api/services", `{"title":"","description":"d","image":"/x.png"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	verr := decode[map[string]any](t, body)
	assert.Equal(t, "Validation failed", verr["message"])
	assert.Len(t, verr["errors"], 2)

	status, body = ts.do(http.MethodPost, "/api/services", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Invalid request body"}`, body)

	status, _ = ts.do(http.MethodDelete, "/api/services/2", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = ts.do(http.MethodDelete, "/api/services/2", "")
	assert.Equal(t, http.StatusNoContent, status, "deleting twice is fine")

	status, body = ts.do(http.MethodGet, "/api/services", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.Service](t, body), 2)
}

func TestJobsAndPartners(t *testing.T) {
	forEachStore(t, func(t *testing.T, st store.Store) {
		ts := newTestServer(t, testConfig(), st)
		ts.login()

		status, body := ts.do(http.MethodPost, "/api/jobs",
			`{"title":"Go developer","description":"d","requirements":"r","location":"Remote"}`)
		require.Equal(t, http.StatusOK, status, body)
		assert.True(t, decode[models.Job](t, body).IsActive)

		status, body = ts.do(http.MethodPost, "/api/jobs",
			`{"title":"Closed","description":"d","requirements":"r","location":"Office","isActive":false}`)
		require.Equal(t, http.StatusOK, status, body)

		_, body = ts.do(http.MethodGet, "/api/jobs", "")
		assert.Len(t, decode[[]models.Job](t, body), 1)

		_, body = ts.do(http.MethodGet, "/api/jobs?includeInactive=true", "")
		assert.Len(t, decode[[]models.Job](t, body), 2)

		_, body = ts.do(http.MethodGet, "/api/jobs?includeInactive=1", "")
		assert.Len(t, decode[[]models.Job](t, body), 1, "only the literal true counts")

		status, body = ts.do(http.MethodPost, "/api/partners",
			`{"name":"AWS","logo":"/aws.png","order":1,"description":"Cloud","isActive":false}`)
		require.Equal(t, http.StatusOK, status, body)

		status, body = ts.do(http.MethodPost, "/api/partners",
			`{"name":"Nope","logo":"/n.png","order":1}`)
		assert.Equal(t, http.StatusBadRequest, status, body)

		_, body = ts.do(http.MethodGet, "/api/partners", "")
		partners := decode[[]models.Partner](t, body)
		require.Len(t, partners, 1)
		assert.False(t, partners[0].IsActive)

		status, body = ts.do(http.MethodPost, "/api/clients",
			`{"name":"Acme","logo":"/acme.png","order":3,"website":"https://acme.example"}`)
		require.Equal(t, http.StatusOK, status, body)

		status, body = ts.do(http.MethodPatch, "/api/clients/1", `{"website":""}`)
		require.Equal(t, http.StatusOK, status, body)
		assert.Nil(t, decode[models.Client](t, body).Website)
	})
}

func TestIDsOutOfRange(t *testing.T) {
	forEachStore(t, func(t *testing.T, st store.Store) {
		ts := newTestServer(t, testConfig(), st)
		ts.login()

		tests := []struct {
			method     string
			target     string
			body       string
			wantStatus int
		}{
			{method: http.MethodGet, target: "/api/blog-posts/18446744073709551615", wantStatus: http.StatusBadRequest},
			{method: http.MethodPatch, target: "/api/jobs/18446744073709551615", body: `{"title":"x"}`, wantStatus: http.StatusBadRequest},
			{method: http.MethodDelete, target: "/api/services/18446744073709551615", wantStatus: http.StatusBadRequest},
			{method: http.MethodGet, target: "/api/blog-posts/9223372036854775807", wantStatus: http.StatusNotFound},
			{method: http.MethodPatch, target: "/api/jobs/9223372036854775807", body: `{"title":"x"}`, wantStatus: http.StatusNotFound},
			{method: http.MethodDelete, target: "/api/services/9223372036854775807", wantStatus: http.StatusNoContent},
		}

		for _, tt := range tests {
			status, body := ts.do(tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, status, "%s %s: %s", tt.method, tt.target, body)
		}
	})
}

// failingStore breaks every service listing.
type failingStore struct {
	store.Store
}

func (failingStore) ListServices(context.Context) ([]models.Service, error) {
	return nil, errors.New("connection reset")
}

func TestInternalErrorIsGeneric(t *testing.T) {
	ts := newTestServer(t, testConfig(), failingStore{Store: storememory.New()})

	status, body := ts.do(http.MethodGet, "/api/services", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"message":"Internal server error"}`, body)
	assert.NotContains(t, body, "connection reset")
}

func TestCheckAlive(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)

	status, body := ts.do(http.MethodGet, CheckAlivePath, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body)

	ts.svc.alive.Store(false)

	status, _ = ts.do(http.MethodGet, CheckAlivePath, "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)

	_, _ = ts.do(http.MethodGet, "/api/services", "")

	status, body := ts.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `route="/api/services"`)

	cfg := testConfig()
	cfg.Webserver.Metrics = false
	ts = newTestServer(t, cfg, nil)

	status, _ = ts.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStaticFrontEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>spa</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	cfg := testConfig()
	cfg.Webserver.StaticDir = dir
	ts := newTestServer(t, cfg, nil)

	tests := []struct {
		target     string
		wantStatus int
		contains   string
	}{
		{target: "/", wantStatus: http.StatusOK, contains: "spa"},
		{target: "/app.js", wantStatus: http.StatusOK, contains: "console.log"},
		{target: "/careers", wantStatus: http.StatusOK, contains: "spa"},
		{target: "/api/unknown", wantStatus: http.StatusNotFound, contains: "message"},
		{target: "/api/services", wantStatus: http.StatusOK, contains: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			status, body := ts.do(http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, body, tt.contains)
		})
	}
}

func TestNewNilArguments(t *testing.T) {
	_, err := New(nil, storememory.New(), memory.New())
	assert.Error(t, err)

	_, err = New(testConfig(), nil, memory.New())
	assert.Error(t, err)

	_, err = New(testConfig(), storememory.New(), nil)
	assert.Error(t, err)
}
