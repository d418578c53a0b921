package config

import (
	"github.com/caarlos0/env/v11"

	"spend-guard/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Scheduler configures the reconcile ticker and the midnight resets.
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`

	Metrics configs.Metrics `envPrefix:"METRICS_"`

	// Telemetry configures OpenTelemetry tracing (OTEL_ prefix).
	Telemetry configs.Telemetry `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	return LoadEnv(nil)
}

// LoadEnv is Load with an explicit environment. A nil map reads the
// process environment.
func LoadEnv(environment map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Environment: environment}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, err
	}
	if _, err := cfg.Scheduler.Location(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
