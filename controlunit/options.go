package controlunit

import "time"

// DefaultTimeout bounds each request/response exchange unless overridden
// with WithTimeout.
const DefaultTimeout = 2 * time.Second

// Config holds the control unit configuration.
type Config struct {
	// Timeout bounds each request/response exchange
	Timeout time.Duration

	// Logger is used for logging exchanges (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
	}
}

// Option is a functional option for configuring the ControlUnit.
type Option func(*Config)

// WithTimeout sets the timeout used for control unit communication.
//
// Example:
//
//	cu := controlunit.New(backend, controlunit.WithTimeout(5*time.Second))
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.Timeout = timeout
		}
	}
}

// WithLogger sets a logger for the control unit operations.
//
// Example:
//
//	cu := controlunit.New(backend, controlunit.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Logger is an optional logging interface that can be provided to the
// control unit. This allows integration with any logging framework, e.g.
// zap through its SugaredLogger:
//
//	type zapLogger struct{ log *zap.SugaredLogger }
//
//	func (l zapLogger) Debug(msg string, kv ...interface{}) { l.log.Debugw(msg, kv...) }
//	func (l zapLogger) Info(msg string, kv ...interface{})  { l.log.Infow(msg, kv...) }
//	func (l zapLogger) Error(msg string, kv ...interface{}) { l.log.Errorw(msg, kv...) }
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
