package httpserver

import "time"

// Config carries the env-derived server settings.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig builds a Server from env-derived settings. Zero config
// values keep the package defaults; opts are applied last and win.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	s := New()
	if cfg.Addr != "" {
		s.addr = cfg.Addr
	}
	if cfg.ReadTimeout > 0 {
		s.readTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		s.writeTimeout = cfg.WriteTimeout
	}
	if cfg.IdleTimeout > 0 {
		s.idleTimeout = cfg.IdleTimeout
	}
	if cfg.ShutdownTimeout > 0 {
		s.shutdownTimeout = cfg.ShutdownTimeout
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
