package config

import (
	"time"

	"github.com/xcelliti/website/internal/logger"
)

// Session settings.
type Session struct {
	CookieName string        // name of the session cookie, defaults to session_id
	ExpiryTime time.Duration // lifetime of a session record and its cookie
	Secret     string        // secret used to derive the cookie encryption key
	Storage    string        // memory or database
}

// Admin holds the account seeded on startup when it does not exist yet.
type Admin struct {
	Username string
	Password string
	Email    string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Admin     Admin
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CaseSensitive  bool    // treat /Foo and /foo as different routes
	DisableRecover bool    // disable recover middleware
	Metrics        bool    // expose prometheus metrics on /metrics
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	StaticDir      string  // directory of a built front end, empty disables static serving
	Argon2Salt     string  // salt for the cookie key derivation
	Session        Session // session settings
}
