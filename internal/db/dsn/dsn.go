// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"

	"github.com/xcelliti/website/internal/config"
)

// Create builds the Data Source Name for the configured engine. A set URL
// always wins over the discrete connection fields.
func Create(dbCfg *config.DB) string {
	if dbCfg.URL != "" {
		return dbCfg.URL
	}

	switch dbCfg.Engine {
	case config.EngineMySQL:
		out := fmt.Sprintf("%s:%s@tcp(%s)/%s",
			dbCfg.User,
			dbCfg.Password,
			hostPort(dbCfg, 3306),
			dbCfg.Name,
		)

		if dbCfg.Extras != "" {
			out += "?" + dbCfg.Extras
		}

		return out

	case config.EngineSQLite:
		if dbCfg.Extras != "" {
			return dbCfg.Name + "?" + dbCfg.Extras
		}

		return dbCfg.Name

	default:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(dbCfg.User, dbCfg.Password),
			Host:     hostPort(dbCfg, 5432),
			Path:     "/" + dbCfg.Name,
			RawQuery: dbCfg.Extras,
		}

		return u.String()
	}
}

func hostPort(dbCfg *config.DB, defaultPort int) string {
	port := dbCfg.Port
	if port == 0 {
		port = defaultPort
	}

	return fmt.Sprintf("%s:%d", dbCfg.Host, port)
}
