package appshell

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/glasswing-io/appshell/internal/adapters/windows"
	"github.com/glasswing-io/appshell/internal/app"
	"github.com/glasswing-io/appshell/internal/ports"
)

// App is an embeddable application-lifecycle controller.
// Use New() to create an instance, then Run() to drive the host loop.
type App struct {
	config     Config
	opts       options
	controller *app.Controller
	registry   *windows.Registry
	host       *hostLoop
	logger     ports.Logger
	plugins    []Plugin

	mu      sync.Mutex
	running bool
}

// New creates a new App with the given configuration.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*App, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	info := &app.AppInfo{}
	if cfg.Name != "" {
		info.SetName(cfg.Name)
	}
	if cfg.Version != "" {
		info.SetVersion(cfg.Version)
	}

	a := &App{
		config:  cfg,
		opts:    o,
		host:    newHostLoop(),
		logger:  o.logger,
		plugins: o.plugins,
	}

	windowSet := o.windowSet
	if windowSet == nil {
		a.registry = windows.NewRegistry(o.logger)
		windowSet = a.registry
	}

	a.controller = app.NewController(app.ControllerConfig{
		Windows:     windowSet,
		Host:        a.host,
		Logger:      o.logger,
		Info:        info,
		UserDataDir: cfg.UserDataDir,
		ExitFunc:    o.exitFunc,
	})

	if a.registry != nil {
		a.registry.Subscribe(a.controller)
	}

	for _, obs := range o.observers {
		a.controller.Observers().Add(obs)
	}

	return a, nil
}

// Run drives the host loop: it initializes plugins, walks the launch
// phases, then blocks until shutdown consumes the terminate callback or
// the context is cancelled (which forces an exit). Returns the process
// exit code.
func (a *App) Run(ctx context.Context) (int, error) {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return 0, ErrAlreadyRunning
	}
	a.running = true
	a.mu.Unlock()

	pluginCfg := PluginConfig{
		AppName:     a.controller.Name(),
		Version:     a.controller.Version(),
		UserDataDir: a.config.UserDataDir,
		Logger:      a.logger,
		App:         a,
	}
	var initialized []Plugin
	for _, p := range a.plugins {
		if err := p.Initialize(ctx, pluginCfg); err != nil {
			a.logger.Error("plugin initialization failed",
				ports.String("plugin", p.Name()),
				ports.Err(err))
			a.shutdownPlugins(initialized)
			a.mu.Lock()
			a.running = false
			a.mu.Unlock()
			return 0, fmt.Errorf("initialize plugin %s: %w", p.Name(), err)
		}
		initialized = append(initialized, p)
		a.logger.Info("plugin initialized", ports.String("plugin", p.Name()))
	}

	a.controller.WillFinishLaunching()

	// Bind the host loop before the launch phases finish so Exit no
	// longer takes the fast path.
	a.host.bind()
	a.controller.SetTerminateCallback(a.host.terminate)

	a.controller.PreMainLoopRun()
	a.controller.DidFinishLaunching(LaunchInfo{
		"pid":  os.Getpid(),
		"args": os.Args,
	})

	a.logger.Info("host loop running",
		ports.String("name", a.controller.Name()),
		ports.String("version", a.controller.Version()),
	)

	select {
	case <-ctx.Done():
		// Cancellation is non-negotiable, like Exit.
		a.controller.Exit(0)
		<-a.host.stopped()
	case <-a.host.stopped():
	}

	a.shutdownPlugins(initialized)

	a.mu.Lock()
	a.running = false
	a.mu.Unlock()

	code := a.host.ExitCode()
	a.logger.Info("host loop stopped", ports.Int("code", code))
	return code, nil
}

// shutdownPlugins shuts plugins down in reverse initialization order.
func (a *App) shutdownPlugins(plugins []Plugin) {
	ctx := context.Background()
	for i := len(plugins) - 1; i >= 0; i-- {
		p := plugins[i]
		if err := p.Shutdown(ctx); err != nil {
			a.logger.Error("plugin shutdown failed",
				ports.String("plugin", p.Name()),
				ports.Err(err))
		} else {
			a.logger.Info("plugin shutdown complete", ports.String("plugin", p.Name()))
		}
	}
}

// Quit starts a cooperative, vetoable quit sequence.
func (a *App) Quit() { a.controller.Quit() }

// Exit ends the application with the given code, destroying windows
// without consent and soliciting no vetoes.
func (a *App) Exit(code int) { a.controller.Exit(code) }

// Shutdown executes the terminal shutdown step directly.
func (a *App) Shutdown() { a.controller.Shutdown() }

// WhenReady returns a handle closed once startup has finished. Safe to
// call from any goroutine; every call shares one resolution.
func (a *App) WhenReady() <-chan struct{} {
	return a.controller.WhenReady()
}

// IsReady reports whether startup has finished.
func (a *App) IsReady() bool { return a.controller.IsReady() }

// IsQuitting reports whether a quit sequence is in flight.
func (a *App) IsQuitting() bool { return a.controller.IsQuitting() }

// IsShutdown reports whether shutdown has executed.
func (a *App) IsShutdown() bool { return a.controller.IsShutdown() }

// Observe registers a lifecycle observer.
func (a *App) Observe(o Observer) { a.controller.Observers().Add(o) }

// Unobserve removes a lifecycle observer.
func (a *App) Unobserve(o Observer) { a.controller.Observers().Remove(o) }

// Windows returns the built-in window registry, or nil when an external
// window tracker was supplied via WithWindowSet.
func (a *App) Windows() *windows.Registry { return a.registry }

// WindowEvents returns the sink external window trackers must forward
// their events to.
func (a *App) WindowEvents() ports.WindowEvents { return a.controller }

// Name returns the application name.
func (a *App) Name() string { return a.controller.Name() }

// SetName overrides the application name.
func (a *App) SetName(name string) { a.controller.SetName(name) }

// Version returns the application version.
func (a *App) Version() string { return a.controller.Version() }

// SetVersion overrides the application version.
func (a *App) SetVersion(version string) { a.controller.SetVersion(version) }

// BadgeCount returns the badge counter.
func (a *App) BadgeCount() int { return a.controller.BadgeCount() }

// SetBadgeCount sets the badge counter.
func (a *App) SetBadgeCount(count int) { a.controller.SetBadgeCount(count) }

// OpenFile asks observers to open a file; reports whether any observer
// prevented the default handling.
func (a *App) OpenFile(path string) bool { return a.controller.OpenFile(path) }

// OpenURL asks observers to open a URL.
func (a *App) OpenURL(url string) { a.controller.OpenURL(url) }

// Activate notifies observers that the application was activated.
func (a *App) Activate(hasVisibleWindows bool) { a.controller.Activate(hasVisibleWindows) }

// NewWindowForTab notifies observers that the host requested a tab window.
func (a *App) NewWindowForTab() { a.controller.NewWindowForTab() }

// AccessibilitySupportChanged notifies observers that assistive
// technology attached or detached.
func (a *App) AccessibilitySupportChanged() { a.controller.AccessibilitySupportChanged() }

// RequestLogin forwards an authentication challenge to observers.
func (a *App) RequestLogin(handler LoginHandler, request AuthRequest) {
	a.controller.RequestLogin(handler, request)
}

// hostLoop is the App's own event loop stand-in. It implements
// ports.ProcessHost: exit codes are only accepted once the loop is bound.
type hostLoop struct {
	mu    sync.Mutex
	bound bool
	code  int

	stop     chan struct{}
	stopOnce sync.Once
}

func newHostLoop() *hostLoop {
	return &hostLoop{stop: make(chan struct{})}
}

func (h *hostLoop) bind() {
	h.mu.Lock()
	h.bound = true
	h.mu.Unlock()
}

// SetExitCode registers the exit code; fails until the loop is bound.
func (h *hostLoop) SetExitCode(code int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.bound {
		return false
	}
	h.code = code
	return true
}

// ExitCode returns the registered exit code.
func (h *hostLoop) ExitCode() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.code
}

// terminate stops the loop. Consumed as the controller's terminate
// callback; safe against repeated invocation.
func (h *hostLoop) terminate() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}

func (h *hostLoop) stopped() <-chan struct{} {
	return h.stop
}

// Ensure hostLoop satisfies the process host port.
var _ ports.ProcessHost = (*hostLoop)(nil)
