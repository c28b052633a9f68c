// Package logger builds the service's slog.Logger. Environment presets pick
// level and format, and ContextExtractor callbacks pull request-scoped
// values (like the request ID) into every record at log time.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Environment names recognized by WithEnvironment.
const (
	envDevelopment = "development"
	envStaging     = "staging"
	envProduction  = "production"
)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat panics on unknown formats; a misconfigured logger should stop
// startup, not silently fall back.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Sprintf("logger: unknown format %q", f))
	}
	return func(c *config) { c.format = f }
}

func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr pins static attributes onto every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors registers callbacks that read attributes out of the
// context on every log call. Nil entries are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies the preset for the named deployment environment:
// production and staging log JSON at info, anything else is treated as
// development and logs text at debug. The service name is pinned on every
// record alongside the canonical environment name.
func WithEnvironment(env, service string) Option {
	level, format, canonical := slog.LevelDebug, FormatText, envDevelopment
	switch env {
	case envProduction, "prod":
		level, format, canonical = slog.LevelInfo, FormatJSON, envProduction
	case envStaging, "stage":
		level, format, canonical = slog.LevelInfo, FormatJSON, envStaging
	}
	return func(c *config) {
		c.level = level
		c.format = format
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", canonical),
		)
	}
}

// New builds the logger: JSON at info on stdout unless options say otherwise,
// wrapped so context extractors run on every record.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var handler slog.Handler
	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	return slog.New(withExtractors(handler, cfg.extractors))
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
