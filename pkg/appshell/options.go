package appshell

import (
	"github.com/glasswing-io/appshell/internal/ports"
)

// Logger is the interface for structured logging.
type Logger = ports.Logger

// LogField represents a structured log field.
type LogField = ports.Field

// Option configures optional behavior of an App.
type Option func(*options)

// options holds the optional configuration for an App instance.
type options struct {
	logger    ports.Logger
	observers []Observer
	plugins   []Plugin
	windowSet ports.WindowSet
	exitFunc  func(code int)
}

func defaultOptions() options {
	return options{
		logger: &noopLogger{},
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithObserver registers a lifecycle observer. Observers are notified
// synchronously in registration order.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, observer)
	}
}

// WithPlugin registers a plugin to be initialized when the App runs.
// Plugins are initialized in registration order and shut down in reverse
// order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}

// WithWindowSet replaces the built-in window registry with an external
// window tracker. The embedder must forward the tracker's all-closed and
// close-cancelled events to App.WindowEvents().
func WithWindowSet(ws ports.WindowSet) Option {
	return func(o *options) {
		o.windowSet = ws
	}
}

// WithExitFunc overrides the function used to terminate the process when
// Exit is called before a host loop is bound. Defaults to os.Exit.
// Intended for tests and embedders that must not kill the process.
func WithExitFunc(fn func(code int)) Option {
	return func(o *options) {
		o.exitFunc = fn
	}
}

// noopLogger discards all log messages.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...ports.Field) {}
func (noopLogger) Info(msg string, fields ...ports.Field)  {}
func (noopLogger) Warn(msg string, fields ...ports.Field)  {}
func (noopLogger) Error(msg string, fields ...ports.Field) {}
