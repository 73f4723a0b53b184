package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// Table is the one identifier that is interpolated into SQL text; it is a
// deployment-time constant resolved exactly once at startup and never
// influenced by request content. Load rejects values that are not plain
// SQL identifiers.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"     validate:"required"`
	Port     int    `mapstructure:"port"     validate:"required,gt=0,lt=65536"`
	User     string `mapstructure:"user"     validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"     validate:"required"`
	Table    string `mapstructure:"table"    validate:"required"`

	// Connection pool bounds. The pool is the single shared mutable
	// resource of the process; every store call borrows a connection
	// and returns it on exit.
	MaxOpenConns           int `mapstructure:"max_open_conns"            validate:"gte=0"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
}

// AuthConfig contains the static credential pair and token settings.
// The service knows exactly one account; there is no user store.
type AuthConfig struct {
	Usuario              string `mapstructure:"usuario"                validate:"required"`
	Password             string `mapstructure:"password"               validate:"required"`
	TokenSecret          string `mapstructure:"token_secret"           validate:"required,min=16"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
