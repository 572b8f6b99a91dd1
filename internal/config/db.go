package config

// Supported values for DB.Engine.
const (
	EngineMemory   = "memory"
	EnginePostgres = "postgres"
	EngineMySQL    = "mysql"
	EngineSQLite   = "sqlite"
)

// DB holds the database configuration settings.
// URL takes precedence over the discrete connection fields.
type DB struct {
	Engine   string
	URL      string
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}
