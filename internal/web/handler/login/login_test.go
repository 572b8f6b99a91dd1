package login

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcelliti/website/internal/auth"
	"github.com/xcelliti/website/internal/config"
	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store/memory"
	"github.com/xcelliti/website/internal/web/handler"
	websess "github.com/xcelliti/website/internal/web/session"
)

// testStorage is a minimal in-memory implementation of fiber.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ fiber.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func (s *testStorage) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

func newTestApp(t *testing.T) (*fiber.App, *testStorage) {
	t.Helper()

	cfg := &config.Config{
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}

	st := memory.New()

	authService, err := auth.NewService(st)
	require.NoError(t, err)

	_, err = authService.CreateAdmin(context.Background(), &models.AdminInput{
		Username: "admin", Password: "admin123", Email: "admin@xcelliti.com",
	})
	require.NoError(t, err)

	storage := &testStorage{data: make(map[string][]byte)}

	sessions, err := websess.NewManager(storage, cfg)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *handler.Error
			if errors.As(err, &e) {
				return c.Status(e.Status).JSON(e)
			}

			return fiber.DefaultErrorHandler(c, err)
		},
	})

	var s Service
	require.NoError(t, s.Init(app, &handler.Deps{
		Config:   cfg,
		Store:    st,
		Auth:     authService,
		Sessions: sessions,
		Gate:     func(c *fiber.Ctx) error { return c.Next() },
	}))

	return app, storage
}

func post(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, Path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestInitNilDeps(t *testing.T) {
	var s Service

	assert.ErrorIs(t, s.Init(nil, &handler.Deps{}), handler.ErrNilDeps)
	assert.ErrorIs(t, s.Init(fiber.New(), nil), handler.ErrNilDeps)
}

func TestPost(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
		wantCookie bool
	}{
		{
			name:       "valid credentials",
			body:       `{"username":"admin","password":"admin123"}`,
			wantStatus: fiber.StatusOK,
			wantBody:   `{"id":1,"username":"admin","email":"admin@xcelliti.com","role":"admin"}`,
			wantCookie: true,
		},
		{
			name:       "wrong password",
			body:       `{"username":"admin","password":"nope"}`,
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   `{"message":"Invalid credentials"}`,
		},
		{
			name:       "unknown user",
			body:       `{"username":"ghost","password":"admin123"}`,
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   `{"message":"Invalid credentials"}`,
		},
		{
			name:       "missing password",
			body:       `{"username":"admin"}`,
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   `{"message":"Invalid credentials"}`,
		},
		{
			name:       "empty password",
			body:       `{"username":"admin","password":""}`,
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   `{"message":"Invalid credentials"}`,
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   `{"message":"Invalid credentials"}`,
		},
		{
			name:       "malformed body",
			body:       `username=admin`,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   `{"message":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, storage := newTestApp(t)

			resp := post(t, app, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(body))

			var found *http.Cookie
			for _, c := range resp.Cookies() {
				if c.Name == config.DefaultSessionCookieName {
					found = c
				}
			}

			if !tt.wantCookie {
				assert.Nil(t, found)
				assert.Zero(t, storage.len())

				return
			}

			require.NotNil(t, found)
			assert.True(t, found.HttpOnly)
			assert.True(t, found.Secure)
			assert.Equal(t, 1, storage.len())

			// the password hash never reaches the client
			var m map[string]any
			require.NoError(t, json.Unmarshal(body, &m))
			assert.NotContains(t, m, "password")
		})
	}
}
