// Package windows provides an in-process window tracker implementing the
// lifecycle core's WindowSet port.
package windows

import (
	"sync"

	"github.com/google/uuid"

	"github.com/glasswing-io/appshell/internal/ports"
)

// CloseHook is consulted before a window closes gracefully.
// Returning false cancels the close.
type CloseHook func() bool

// Window is a tracked top-level window.
type Window struct {
	id        uuid.UUID
	title     string
	closeHook CloseHook
	reg       *Registry
}

// ID returns the window's identity.
func (w *Window) ID() string { return w.id.String() }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// SetCloseHook installs a hook consulted on graceful close.
func (w *Window) SetCloseHook(hook CloseHook) { w.closeHook = hook }

// Close asks the window to close. The close hook may cancel it, which is
// reported to the registry's event subscriber.
func (w *Window) Close() {
	if w.closeHook != nil && !w.closeHook() {
		w.reg.closeCancelled(w)
		return
	}
	w.reg.remove(w)
}

// Destroy tears the window down without consulting the close hook.
func (w *Window) Destroy() {
	w.reg.remove(w)
}

// Registry tracks the set of open windows and reports emptiness and
// close-cancellation to a single event subscriber. The registry holds no
// reference to the lifecycle controller beyond that subscriber interface.
type Registry struct {
	mu      sync.Mutex
	windows []*Window
	events  ports.WindowEvents
	logger  ports.Logger
}

// NewRegistry creates an empty window registry.
func NewRegistry(logger ports.Logger) *Registry {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Registry{logger: logger}
}

// Subscribe sets the event subscriber. At most one subscriber is
// supported; later calls replace the earlier one.
func (r *Registry) Subscribe(events ports.WindowEvents) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = events
}

// Open tracks a new window and returns it.
func (r *Registry) Open(title string) *Window {
	w := &Window{
		id:    uuid.New(),
		title: title,
		reg:   r,
	}

	r.mu.Lock()
	r.windows = append(r.windows, w)
	count := len(r.windows)
	r.mu.Unlock()

	r.logger.Debug("window opened",
		ports.String("window", w.ID()),
		ports.String("title", title),
		ports.Int("open", count),
	)
	return w
}

// IsEmpty reports whether no windows remain.
func (r *Registry) IsEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.windows) == 0
}

// Len returns the number of open windows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.windows)
}

// CloseAll asks every window to close gracefully. Windows whose close
// hook refuses stay open and surface a close-cancelled event.
func (r *Registry) CloseAll() {
	for _, w := range r.snapshot() {
		w.Close()
	}
}

// DestroyAll tears every window down unconditionally.
func (r *Registry) DestroyAll() {
	for _, w := range r.snapshot() {
		w.Destroy()
	}
}

func (r *Registry) snapshot() []*Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Window{}, r.windows...)
}

// remove drops a window from the set and, when the set empties, notifies
// the subscriber. Events are emitted outside the lock.
func (r *Registry) remove(w *Window) {
	r.mu.Lock()
	found := false
	for i, existing := range r.windows {
		if existing == w {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			found = true
			break
		}
	}
	empty := len(r.windows) == 0
	events := r.events
	r.mu.Unlock()

	if !found {
		return
	}

	r.logger.Debug("window closed", ports.String("window", w.ID()))
	if empty && events != nil {
		events.OnWindowAllClosed()
	}
}

func (r *Registry) closeCancelled(w *Window) {
	r.mu.Lock()
	events := r.events
	r.mu.Unlock()

	r.logger.Debug("window close cancelled", ports.String("window", w.ID()))
	if events != nil {
		events.OnWindowCloseCancelled(w.ID())
	}
}

// noopLogger discards all log messages.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...ports.Field) {}
func (noopLogger) Info(msg string, fields ...ports.Field)  {}
func (noopLogger) Warn(msg string, fields ...ports.Field)  {}
func (noopLogger) Error(msg string, fields ...ports.Field) {}

// Ensure Registry satisfies the lifecycle core's window port.
var _ ports.WindowSet = (*Registry)(nil)
