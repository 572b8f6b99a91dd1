// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// EnvConfigJSON holds a JSON document merged over the TOML config.
	EnvConfigJSON = "XCELLITI_CONFIG_JSON"

	// DefaultSessionCookieName matches the fiber session middleware default.
	DefaultSessionCookieName = "session_id"

	// DefaultSessionExpiry is the lifetime of an admin session.
	DefaultSessionExpiry = 24 * time.Hour

	// SessionStorageMemory keeps sessions in process memory.
	SessionStorageMemory = "memory"

	// SessionStorageDatabase keeps sessions in the configured relational database.
	SessionStorageDatabase = "database"

	masked = "********"
)

// Override mutates a decoded config before it is validated.
type Override func(c *Config)

// ReadConfig from config file.
func ReadConfig(path string, overrides ...Override) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	for _, o := range overrides {
		o(&c)
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// DumpConfig config as TOML String. Secrets are masked.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(maskSecrets(*c)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String. Secrets are masked.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(maskSecrets(*c)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

func maskSecrets(c Config) Config {
	for _, s := range []*string{
		&c.DB.URL,
		&c.DB.Password,
		&c.Admin.Password,
		&c.Webserver.Argon2Salt,
		&c.Webserver.Session.Secret,
	} {
		if *s != "" {
			*s = masked
		}
	}

	return c
}

// validate the settings the service can not start without and fill in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.DB.Engine == "" {
		c.DB.Engine = EnginePostgres
	}

	switch c.DB.Engine {
	case EngineMemory:
	case EnginePostgres, EngineMySQL:
		if c.DB.URL == "" && c.DB.Host == "" {
			return errors.Wrap(ErrDatabaseURLMissing, invalidErrMessage)
		}
	case EngineSQLite:
		if c.DB.URL == "" && c.DB.Name == "" {
			return errors.Wrap(ErrDatabaseURLMissing, invalidErrMessage)
		}
	default:
		return errors.Wrapf(ErrUnknownDBEngine, "%s: %q", invalidErrMessage, c.DB.Engine)
	}

	s := &c.Webserver.Session

	if s.Secret == "" {
		return errors.Wrap(ErrSessionSecretEmpty, invalidErrMessage)
	}

	if s.CookieName == "" {
		s.CookieName = DefaultSessionCookieName
	}

	if s.ExpiryTime == 0 {
		s.ExpiryTime = DefaultSessionExpiry
	}

	switch s.Storage {
	case "":
		s.Storage = SessionStorageMemory
	case SessionStorageMemory:
	case SessionStorageDatabase:
		if c.DB.Engine != EnginePostgres && c.DB.Engine != EngineMySQL {
			return errors.Wrapf(ErrUnknownSessionStorage,
				"%s: database sessions need a postgres or mysql engine", invalidErrMessage)
		}
	default:
		return errors.Wrapf(ErrUnknownSessionStorage, "%s: %q", invalidErrMessage, s.Storage)
	}

	return nil
}
