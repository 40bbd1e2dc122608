package i18n

import (
	"context"

	"github.com/profilekit/profilekit/pkg/config"
	"github.com/profilekit/profilekit/pkg/logger"
)

// Config holds environment-driven translator settings.
type Config struct {
	DefaultLocale string `env:"I18N_DEFAULT_LOCALE" envDefault:"en"` // Fallback locale and initial active locale.
	Directory     string `env:"I18N_TRANSLATIONS_DIR"`               // Optional directory of per-locale documents loaded at startup.
	FallbackToKey bool   `env:"I18N_FALLBACK_TO_KEY" envDefault:"true"`
	LogMissing    bool   `env:"I18N_LOG_MISSING" envDefault:"false"`
}

// NewFromConfig builds a Translator from a Config. When missing-translation
// logging is requested a real text logger is installed, since the default
// discard logger would swallow the warnings; explicit WithLogger options
// still win because they apply after the config-derived ones.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Translator, error) {
	base := []Option{
		WithDefaultLocale(cfg.DefaultLocale),
		WithFallbackToKey(cfg.FallbackToKey),
		WithMissingTranslationLogging(cfg.LogMissing),
	}
	if cfg.LogMissing {
		base = append(base, WithLogger(logger.New(logger.WithTextFormat())))
	}

	t, err := New(ctx, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	if cfg.Directory != "" {
		if err := t.LoadDirectory(ctx, cfg.Directory); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NewFromEnv builds a Translator configured from I18N_* environment
// variables (a .env file is honored if present).
func NewFromEnv(ctx context.Context, opts ...Option) (*Translator, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(ctx, cfg, opts...)
}
