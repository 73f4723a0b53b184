package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// identifierPattern matches plain SQL identifiers. The configured table name
// is the only string that ever reaches SQL text without being bound as a
// parameter, so it must not be able to smuggle in anything else.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load reads configuration from environment variables with the CAMIONES_
// prefix, applies defaults for everything the deployment does not override,
// and validates the result.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Server defaults
	v.SetDefault("server.port", 8883)
	v.SetDefault("server.log_level", "info")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "camiones")
	v.SetDefault("database.table", "camion")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 30)

	// Auth defaults. The credential pair and signing secret have no
	// defaults on purpose; validation fails if they are not configured.
	v.SetDefault("auth.token_lifetime_minutes", 5)

	// Environment variables take precedence over defaults, e.g.
	// CAMIONES_DATABASE_HOST overrides database.host.
	v.SetEnvPrefix("CAMIONES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults must be bound explicitly or Unmarshal
	// never consults the environment for them.
	for _, key := range []string{"auth.usuario", "auth.password", "auth.token_secret"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if !identifierPattern.MatchString(cfg.Database.Table) {
		return nil, fmt.Errorf("invalid configuration: table name %q is not a plain SQL identifier", cfg.Database.Table)
	}

	return &cfg, nil
}
