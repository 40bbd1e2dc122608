package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Locale records a locale code under the key "locale".
func Locale(code string) slog.Attr {
	return slog.String("locale", code)
}

// Key records a translation key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// File records a file path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}
