package configs

import (
	"fmt"
	"time"
)

// HTTP defines configuration for the admin and spend API server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout is how long in-flight requests get to finish on stop.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Addr returns the listen address for net/http.
func (c HTTP) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
