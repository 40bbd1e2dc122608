package config

import "errors"

var (
	// ErrNilConfig is returned when Load is given a nil pointer.
	ErrNilConfig = errors.New("nil config pointer")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)
