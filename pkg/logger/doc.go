// Package logger builds configured *slog.Logger instances.
//
// New applies functional options over production-safe defaults (JSON
// handler, info level, stdout):
//
//	log := logger.New(
//		logger.WithTextFormat(),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttrs(slog.String("service", "profiler")),
//	)
//
// The package also provides attribute helpers for the fields this toolkit
// logs most, such as logger.Locale and logger.Key.
package logger
