// Package logging provides a small structured-logging abstraction so the
// classification pipeline is not coupled to a specific logging framework.
package logging

// Logger is the structured logging interface used across the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields.
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields.
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields.
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields.
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached.
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached.
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program.
	Fatal(msg string, fields ...Field)

	// Fatalf logs a fatal-level message with formatting and exits the program.
	Fatalf(msg string, args ...interface{})

	// Infof logs an info-level message with formatting.
	Infof(format string, args ...interface{})

	// Warnf logs a warning-level message with formatting.
	Warnf(format string, args ...interface{})
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// NopLogger discards everything. It is the default when a component is
// constructed without a logger.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field)                    {}
func (NopLogger) Info(string, ...Field)                     {}
func (NopLogger) Warn(string, ...Field)                     {}
func (NopLogger) Error(string, ...Field)                    {}
func (NopLogger) Fatal(string, ...Field)                    {}
func (NopLogger) Fatalf(string, ...interface{})             {}
func (NopLogger) Infof(string, ...interface{})              {}
func (NopLogger) Warnf(string, ...interface{})              {}
func (n NopLogger) WithError(error) Logger                  { return n }
func (n NopLogger) WithField(string, interface{}) Logger    { return n }
func (n NopLogger) WithFields(...Field) Logger              { return n }
