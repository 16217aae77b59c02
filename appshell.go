// Package appshell provides an application-lifecycle controller for
// long-lived GUI-hosting programs.
//
// Example usage:
//
//	app, err := appshell.New(appshell.Config{Name: "myapp"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go func() {
//	    <-app.WhenReady()
//	    app.Windows().Open("main")
//	}()
//	code, err := app.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(code)
package appshell

import (
	"github.com/glasswing-io/appshell/internal/cliconfig"
	"github.com/glasswing-io/appshell/pkg/appshell"
	"github.com/rs/zerolog"
)

// App is an embeddable application-lifecycle controller.
// Use New() to create an instance, then Run() to drive the host loop.
type App = appshell.App

// Config holds the configuration for an App.
type Config = appshell.Config

// Option configures optional behavior of an App.
type Option = appshell.Option

// Observer receives lifecycle notifications in registration order.
type Observer = appshell.Observer

// ObserverFuncs adapts a set of optional functions to the Observer interface.
type ObserverFuncs = appshell.ObserverFuncs

// New creates a new App with the given configuration.
func New(cfg Config, opts ...Option) (*App, error) {
	return appshell.New(cfg, opts...)
}

// Logger returns the package-level zerolog logger used by the CLI.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}
