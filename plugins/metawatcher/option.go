package metawatcher

import "github.com/glasswing-io/appshell/pkg/appshell"

// WithMetaWatcher returns an appshell Option that enables live metadata
// overrides. The plugin monitors app.toml in the user data directory and
// applies name/version changes as they land.
//
// Usage:
//
//	app, err := appshell.New(cfg,
//	    metawatcher.WithMetaWatcher(metawatcher.Config{
//	        DebounceDelay: 100 * time.Millisecond,
//	    }),
//	)
func WithMetaWatcher(cfg Config) appshell.Option {
	plugin := New(cfg)
	return appshell.WithPlugin(plugin)
}

// WithDefaultMetaWatcher returns an appshell Option that enables metadata
// watching with default settings (debounce 100ms).
//
// Usage:
//
//	app, err := appshell.New(cfg, metawatcher.WithDefaultMetaWatcher())
func WithDefaultMetaWatcher() appshell.Option {
	return WithMetaWatcher(DefaultConfig())
}
