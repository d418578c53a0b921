package configs

// Telemetry configures OpenTelemetry tracing. When Enabled is false a
// no-op tracer provider stays installed.
type Telemetry struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Endpoint is the OTLP/HTTP collector URL.
	Endpoint    string `env:"ENDPOINT" envDefault:"http://localhost:4318"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"spend-guard"`
}
