// Package session keeps admin sessions server side. The client only holds a
// random session id in an encrypted, HTTP only cookie.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/argon2"

	"github.com/xcelliti/website/internal/config"
	"github.com/xcelliti/website/internal/db/models"
)

const keyPrefix = "session:"

var (
	// ErrNoSession is returned when the request carries no valid session.
	ErrNoSession = errors.New("no session")

	// ErrStorageNil is returned when the manager is built without storage.
	ErrStorageNil = errors.New("session storage is nil")
)

// Data represents the session data structure.
type Data struct {
	Admin     models.AdminProfile `json:"admin"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Manager creates, loads and destroys sessions.
type Manager struct {
	storage    fiber.Storage
	cookieName string
	expiry     time.Duration
	secure     bool
}

// NewManager creates a session manager on top of a fiber storage backend.
func NewManager(storage fiber.Storage, cfg *config.Config) (*Manager, error) {
	if storage == nil {
		return nil, ErrStorageNil
	}

	name := cfg.Webserver.Session.CookieName
	if name == "" {
		name = config.DefaultSessionCookieName
	}

	expiry := cfg.Webserver.Session.ExpiryTime
	if expiry == 0 {
		expiry = config.DefaultSessionExpiry
	}

	return &Manager{
		storage:    storage,
		cookieName: name,
		expiry:     expiry,
		secure:     !cfg.DevMode,
	}, nil
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Create starts a new session for admin. A session the client already
// carries is destroyed first.
func (m *Manager) Create(c *fiber.Ctx, admin models.AdminProfile) error {
	if old := c.Cookies(m.cookieName); old != "" {
		if err := m.storage.Delete(keyPrefix + old); err != nil {
			return fmt.Errorf("failed to delete previous session: %w", err)
		}
	}

	sessionID, err := GenerateSessionID()
	if err != nil {
		return fmt.Errorf("failed to generate session id: %w", err)
	}

	out, err := json.Marshal(&Data{Admin: admin, CreatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	if err = m.storage.Set(keyPrefix+sessionID, out, m.expiry); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(m.expiry.Seconds()),
		Expires:  time.Now().Add(m.expiry),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return nil
}

// Load returns the session of the request or ErrNoSession.
func (m *Manager) Load(c *fiber.Ctx) (*Data, error) {
	sessionID := c.Cookies(m.cookieName)
	if sessionID == "" {
		return nil, ErrNoSession
	}

	raw, err := m.storage.Get(keyPrefix + sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	// storages return nil for unknown and expired keys
	if len(raw) == 0 {
		return nil, ErrNoSession
	}

	data := new(Data)
	if err = json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return data, nil
}

// Destroy removes the session record and clears the cookie.
func (m *Manager) Destroy(c *fiber.Ctx) error {
	if sessionID := c.Cookies(m.cookieName); sessionID != "" {
		if err := m.storage.Delete(keyPrefix + sessionID); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return nil
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// CookieKey derives the base64 encoded AES-256 key for the encryptcookie
// middleware from the session secret.
func CookieKey(secret, salt string) string {
	key := argon2.IDKey([]byte(secret), []byte(salt), 1, 64*1024, 4, 32) //nolint:mnd

	return base64.StdEncoding.EncodeToString(key)
}
