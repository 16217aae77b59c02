package app

import (
	"os"
	"sync"

	"github.com/glasswing-io/appshell/internal/ports"
)

// Controller owns the quit/exit/shutdown state machine for the process.
// Exactly one instance exists per process.
//
// Lifecycle commands may arrive from any goroutine: signal handlers,
// timers, and window callbacks all end up here. Observer and window
// fan-out runs without the lock held, so handlers may call back into
// the controller.
type Controller struct {
	observers *Registry
	windows   ports.WindowSet
	host      ports.ProcessHost
	logger    ports.Logger
	info      *AppInfo

	userDataDir string
	exitFunc    func(code int)

	// mu guards the lifecycle flags, the badge counter, and the
	// terminate callback.
	mu       sync.Mutex
	quitting bool
	exiting  bool // sticky, never reset
	shutdown bool // terminal, monotonic

	badgeCount int

	// terminate is consumed on first invocation.
	terminate func()

	// readyMu guards ready and readyGate: WhenReady may be called from
	// any goroutine while launching finishes.
	readyMu   sync.Mutex
	ready     bool // monotonic
	readyGate *ReadyGate
}

// ControllerConfig wires the controller's collaborators.
type ControllerConfig struct {
	Observers   *Registry
	Windows     ports.WindowSet
	Host        ports.ProcessHost
	Logger      ports.Logger
	Info        *AppInfo
	UserDataDir string

	// ExitFunc terminates the process on Exit's fast path.
	// Defaults to os.Exit.
	ExitFunc func(code int)
}

// NewController creates the process lifecycle controller.
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Observers == nil {
		cfg.Observers = NewRegistry()
	}
	if cfg.Info == nil {
		cfg.Info = &AppInfo{}
	}
	if cfg.ExitFunc == nil {
		cfg.ExitFunc = os.Exit
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	return &Controller{
		observers:   cfg.Observers,
		windows:     cfg.Windows,
		host:        cfg.Host,
		logger:      cfg.Logger,
		info:        cfg.Info,
		userDataDir: cfg.UserDataDir,
		exitFunc:    cfg.ExitFunc,
	}
}

// Observers returns the controller's observer registry.
func (c *Controller) Observers() *Registry {
	return c.observers
}

// IsQuitting reports whether a quit sequence is in flight.
func (c *Controller) IsQuitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quitting
}

// IsExiting reports whether a forced exit has been accepted.
func (c *Controller) IsExiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exiting
}

// IsShutdown reports whether shutdown has executed.
func (c *Controller) IsShutdown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shutdown
}

// IsReady reports whether startup has finished.
func (c *Controller) IsReady() bool {
	c.readyMu.Lock()
	defer c.readyMu.Unlock()
	return c.ready
}

// Quit starts a cooperative quit sequence. Any observer may veto it; a
// veto from an earlier attempt does not poison a later one. No-op while
// a quit is already in flight.
func (c *Controller) Quit() {
	c.mu.Lock()
	if c.quitting {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	accepted := c.handleBeforeQuit()
	c.mu.Lock()
	if c.exiting || c.shutdown {
		// A forced exit overtook the negotiation.
		c.mu.Unlock()
		return
	}
	c.quitting = accepted
	c.mu.Unlock()
	if !accepted {
		c.logger.Info("quit vetoed by observer")
		return
	}

	c.logger.Info("quit accepted")
	if c.windowsEmpty() {
		c.notifyAndShutdown()
	} else {
		c.windows.CloseAll()
	}
}

// Exit forces the application to end with the given code, destroying
// windows without asking and soliciting no vetoes. If no host loop is
// bound yet the process terminates immediately and synchronously.
func (c *Controller) Exit(code int) {
	if c.host == nil || !c.host.SetExitCode(code) {
		// Host loop is not ready; nothing can react, so quit directly.
		c.logger.Warn("exit before host loop, terminating", ports.Int("code", code))
		c.exitFunc(code)
		return
	}

	c.mu.Lock()
	c.quitting = true
	c.exiting = true
	c.mu.Unlock()

	c.logger.Info("exit requested", ports.Int("code", code))

	// Windows must be gone before quitting.
	if c.windowsEmpty() {
		c.Shutdown()
	} else {
		c.windows.DestroyAll()
	}
}

// Shutdown executes the terminal shutdown step: notify observers of the
// irrevocable quit and consume the terminate callback. Idempotent.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	if c.shutdown {
		c.mu.Unlock()
		return
	}
	c.shutdown = true
	c.quitting = true
	c.mu.Unlock()

	c.logger.Info("shutting down")
	c.observers.Notify(func(o Observer) { o.OnQuit() })

	c.mu.Lock()
	t := c.terminate
	c.terminate = nil
	c.mu.Unlock()
	if t != nil {
		t()
	}
	// Otherwise no host loop is bound yet; SetTerminateCallback invokes
	// its callback as soon as it arrives. Terminating now would leave
	// defunct work behind.
}

// SetTerminateCallback binds the host loop's stop function. It is invoked
// at most once. When shutdown already ran the callback fires immediately
// instead of being stored.
func (c *Controller) SetTerminateCallback(fn func()) {
	c.mu.Lock()
	if !c.shutdown {
		c.terminate = fn
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	fn()
}

// notifyAndShutdown runs the will-quit phase and, unless vetoed, shuts
// down. A veto cancels the whole quit sequence.
func (c *Controller) notifyAndShutdown() {
	c.mu.Lock()
	if c.shutdown {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if c.observers.NotifyVetoable(func(o Observer) bool { return o.OnWillQuit() }) {
		c.logger.Info("will-quit vetoed, quit cancelled")
		c.mu.Lock()
		c.quitting = false
		c.mu.Unlock()
		return
	}

	c.Shutdown()
}

// handleBeforeQuit runs the before-quit phase and reports whether the
// quit may proceed.
func (c *Controller) handleBeforeQuit() bool {
	return !c.observers.NotifyVetoable(func(o Observer) bool { return o.OnBeforeQuit() })
}

// OnWindowCloseCancelled reacts to a window refusing a graceful close.
// A single refusal aborts a whole-application quit.
func (c *Controller) OnWindowCloseCancelled(windowID string) {
	c.mu.Lock()
	cancelled := c.quitting
	c.quitting = false
	c.mu.Unlock()
	if cancelled {
		c.logger.Info("window refused to close, quit cancelled", ports.String("window", windowID))
	}
}

// OnWindowAllClosed reacts to the window set becoming empty.
func (c *Controller) OnWindowAllClosed() {
	c.mu.Lock()
	exiting, quitting := c.exiting, c.quitting
	c.mu.Unlock()

	if exiting {
		c.Shutdown()
	} else if quitting {
		c.notifyAndShutdown()
	} else {
		// The user closed the last window without quitting. Host policy
		// decides what happens next.
		c.observers.Notify(func(o Observer) { o.OnWindowAllClosed() })
	}
}

// WillFinishLaunching notifies observers that launching is about to finish.
func (c *Controller) WillFinishLaunching() {
	c.observers.Notify(func(o Observer) { o.OnWillFinishLaunching() })
}

// PreMainLoopRun notifies observers that the host loop is about to run.
func (c *Controller) PreMainLoopRun() {
	c.observers.Notify(func(o Observer) { o.OnPreMainLoopRun() })
}

// DidFinishLaunching marks the application ready: it ensures the user
// data directory exists, resolves the readiness gate, and fans out the
// finish-launching notification with the launch metadata.
func (c *Controller) DidFinishLaunching(info LaunchInfo) {
	// Best effort; a missing user data directory is not fatal to startup.
	if c.userDataDir != "" {
		if err := os.MkdirAll(c.userDataDir, 0o755); err != nil {
			c.logger.Warn("user data directory unavailable",
				ports.String("dir", c.userDataDir),
				ports.Err(err),
			)
		}
	}

	c.readyMu.Lock()
	c.ready = true
	if c.readyGate != nil {
		c.readyGate.Resolve()
	}
	c.readyMu.Unlock()

	c.observers.Notify(func(o Observer) { o.OnFinishLaunching(info) })
}

// WhenReady returns a handle that is closed once startup finishes. The
// gate is created lazily; every call shares the same single resolution.
func (c *Controller) WhenReady() <-chan struct{} {
	c.readyMu.Lock()
	defer c.readyMu.Unlock()
	if c.readyGate == nil {
		c.readyGate = NewReadyGate()
		if c.ready {
			c.readyGate.Resolve()
		}
	}
	return c.readyGate.Done()
}

// Activate notifies observers that the application was activated.
func (c *Controller) Activate(hasVisibleWindows bool) {
	c.observers.Notify(func(o Observer) { o.OnActivate(hasVisibleWindows) })
}

// NewWindowForTab notifies observers that the host requested a tab window.
func (c *Controller) NewWindowForTab() {
	c.observers.Notify(func(o Observer) { o.OnNewWindowForTab() })
}

// OpenFile asks observers to open a file. Returns true when any observer
// requested that the default handling be prevented; all observers run.
func (c *Controller) OpenFile(path string) bool {
	return c.observers.NotifyVetoable(func(o Observer) bool { return o.OnOpenFile(path) })
}

// OpenURL asks observers to open a URL.
func (c *Controller) OpenURL(url string) {
	c.observers.Notify(func(o Observer) { o.OnOpenURL(url) })
}

// AccessibilitySupportChanged notifies observers that assistive technology
// attached or detached.
func (c *Controller) AccessibilitySupportChanged() {
	c.observers.Notify(func(o Observer) { o.OnAccessibilitySupportChanged() })
}

// RequestLogin forwards an authentication challenge to observers.
func (c *Controller) RequestLogin(handler LoginHandler, request AuthRequest) {
	c.observers.Notify(func(o Observer) { o.OnLogin(handler, request) })
}

// BadgeCount returns the external-facing badge counter.
func (c *Controller) BadgeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.badgeCount
}

// SetBadgeCount sets the external-facing badge counter.
func (c *Controller) SetBadgeCount(count int) {
	c.mu.Lock()
	c.badgeCount = count
	c.mu.Unlock()
}

// Name returns the application name (override, then packaging metadata).
func (c *Controller) Name() string { return c.info.Name() }

// SetName overrides the application name.
func (c *Controller) SetName(name string) { c.info.SetName(name) }

// Version returns the application version (override, then packaging metadata).
func (c *Controller) Version() string { return c.info.Version() }

// SetVersion overrides the application version.
func (c *Controller) SetVersion(version string) { c.info.SetVersion(version) }

func (c *Controller) windowsEmpty() bool {
	return c.windows == nil || c.windows.IsEmpty()
}

// noopLogger discards all log messages.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...ports.Field) {}
func (noopLogger) Info(msg string, fields ...ports.Field)  {}
func (noopLogger) Warn(msg string, fields ...ports.Field)  {}
func (noopLogger) Error(msg string, fields ...ports.Field) {}

// Ensure the controller can subscribe to window tracker events.
var _ ports.WindowEvents = (*Controller)(nil)

