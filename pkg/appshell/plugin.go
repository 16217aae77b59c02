package appshell

import "context"

// Plugin extends an App with optional functionality. Plugins are
// initialized when Run starts and shut down in reverse order when the
// host loop stops.
type Plugin interface {
	// Name returns the plugin identifier.
	Name() string

	// Initialize sets up the plugin. Returning an error aborts Run.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown stops the plugin.
	Shutdown(ctx context.Context) error
}

// PluginConfig carries the application context handed to plugins.
type PluginConfig struct {
	// AppName is the resolved application name.
	AppName string

	// Version is the resolved application version.
	Version string

	// UserDataDir is the per-user data directory.
	UserDataDir string

	// Logger is the App's logger.
	Logger Logger

	// App is the owning application.
	App *App
}
