package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrDatabaseURLMissing is returned when a relational engine is configured without connection settings.
	ErrDatabaseURLMissing = errors.New("database connection string is missing (set DATABASE_URL or db.url)")

	// ErrSessionSecretEmpty is returned when no session secret was supplied.
	ErrSessionSecretEmpty = errors.New("session secret is missing (set SESSION_SECRET or webserver.session.secret)")

	// ErrUnknownDBEngine is returned for an unsupported db.engine value.
	ErrUnknownDBEngine = errors.New("unknown db engine")

	// ErrUnknownSessionStorage is returned for an unsupported webserver.session.storage value.
	ErrUnknownSessionStorage = errors.New("unknown session storage")

	// ErrConfigNil is returned when a component is started without a config.
	ErrConfigNil = errors.New("config is nil")
)
