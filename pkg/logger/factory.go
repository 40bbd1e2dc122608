package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format selects the handler encoding.
type Format string

const (
	// FormatJSON emits structured records for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText emits human-readable records for development.
	FormatText Format = "text"
)

type config struct {
	level   slog.Level
	format  Format
	output  io.Writer
	attrs   []slog.Attr
	options *slog.HandlerOptions
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithJSONFormat selects the JSON handler.
func WithJSONFormat() Option {
	return func(c *config) { c.format = FormatJSON }
}

// WithTextFormat selects the text handler.
func WithTextFormat() Option {
	return func(c *config) { c.format = FormatText }
}

// WithOutput sets the output destination; nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttrs attaches static attributes to every record.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithHandlerOptions overrides the slog handler options; nil is ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.options = opts
		}
	}
}

// WithDevelopment applies development defaults: text format at debug level
// with a service attribute.
func WithDevelopment(service string) Option {
	return func(c *config) {
		c.format = FormatText
		c.level = slog.LevelDebug
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

// WithProduction applies production defaults: JSON format at info level
// with a service attribute.
func WithProduction(service string) Option {
	return func(c *config) {
		c.format = FormatJSON
		c.level = slog.LevelInfo
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

// New builds a logger from the options. Defaults are JSON format, info
// level, stdout.
func New(opts ...Option) *slog.Logger {
	c := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	handlerOpts := c.options
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: c.level}
	}

	var handler slog.Handler
	switch c.format {
	case FormatText:
		handler = slog.NewTextHandler(c.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(c.output, handlerOpts)
	}
	if len(c.attrs) > 0 {
		handler = handler.WithAttrs(c.attrs)
	}
	return slog.New(handler)
}

// NewDiscard returns a logger that drops every record.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetAsDefault installs l as the process default slog logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
