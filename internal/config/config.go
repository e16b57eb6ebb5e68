package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the emergency response service.
// Environment variables are parsed from the EMERGENCY_SERVER_ prefix,
// e.g. EMERGENCY_SERVER_HTTP_PORT, EMERGENCY_SERVER_MONGO_URI.
type Config struct {
	// DBDriver selects the store backend: "mongo" or "postgres".
	DBDriver string `envconfig:"DB_DRIVER" default:"mongo"`

	// Mongo configuration (DBDriver=mongo).
	MongoURI      string `envconfig:"MONGO_URI" default:""`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:""`

	// Postgres configuration (DBDriver=postgres).
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// HTTP configuration.
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Startup and health probing.
	BootstrapTimeoutSeconds   int `envconfig:"BOOTSTRAP_TIMEOUT_SECONDS" default:"30"`
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// Validate checks that the selected driver has the settings it needs.
// The service must fail fast and loudly on a missing connection string
// rather than limp along and fail on the first request.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mongo":
		if c.MongoURI == "" {
			return fmt.Errorf("EMERGENCY_SERVER_MONGO_URI is required when DB_DRIVER=mongo")
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("EMERGENCY_SERVER_MONGO_DATABASE is required when DB_DRIVER=mongo")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("EMERGENCY_SERVER_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	return nil
}

// New creates a Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("EMERGENCY_SERVER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Bool("mongo_uri_present", cfg.MongoURI != "").
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
