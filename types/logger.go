package types

// Logger defines methods for structured logging.
//
// The method set matches slog-style loggers: a message followed by
// alternating key-value pairs. internal/logging provides an slog adapter
// and a no-op implementation.
type Logger interface {
	// Debug logs a message at debug level. Used for per-element and per-metric detail.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warning level.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message and terminates the process with os.Exit(1).
	//
	// Test and no-op implementations may choose not to exit.
	Fatal(msg string, keysAndValues ...any)
}
