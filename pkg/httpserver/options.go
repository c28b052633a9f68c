package httpserver

import (
	"log/slog"
	"time"
)

// Option mutates a Server during construction. Options validating their
// input panic on bad values; server settings are programmer-controlled.
type Option func(*Server)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: WithAddr requires a non-empty address")
	}
	return func(s *Server) { s.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithReadTimeout requires a positive duration")
	}
	return func(s *Server) { s.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithWriteTimeout requires a positive duration")
	}
	return func(s *Server) { s.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithIdleTimeout requires a positive duration")
	}
	return func(s *Server) { s.idleTimeout = d }
}

func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithShutdownTimeout requires a positive duration")
	}
	return func(s *Server) { s.shutdownTimeout = d }
}

// WithLogger sets the logger passed to start and stop hooks. A nil logger
// keeps the default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStartHook registers a callback invoked just before the listener opens.
func WithStartHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: WithStartHook requires a hook")
	}
	return func(s *Server) { s.onStart = append(s.onStart, h) }
}

// WithStopHook registers a callback invoked after the drain completes.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: WithStopHook requires a hook")
	}
	return func(s *Server) { s.onStop = append(s.onStop, h) }
}
