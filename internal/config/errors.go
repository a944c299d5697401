package config

import "errors"

var (
	// ErrUnknownFormat indicates a config file extension with no parser.
	ErrUnknownFormat = errors.New("unknown config format")

	// ErrWatcherClosed indicates use of a closed watcher.
	ErrWatcherClosed = errors.New("watcher closed")
)

// ValidationError describes a rejected configuration value.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid config: " + e.Field + ": " + e.Message
}
