package ports

// WindowSet is the command surface of the window tracker. The lifecycle
// core holds a WindowSet; the tracker never holds the core.
type WindowSet interface {
	// IsEmpty reports whether no top-level windows remain.
	IsEmpty() bool

	// CloseAll asks every window to close. Each window may refuse, which
	// surfaces later through WindowEvents.OnWindowCloseCancelled.
	CloseAll()

	// DestroyAll tears every window down without asking.
	DestroyAll()
}

// WindowEvents receives notifications from the window tracker.
// The lifecycle controller implements this interface so it can react when
// the last window disappears or a close is refused.
type WindowEvents interface {
	// OnWindowAllClosed fires once the window set becomes empty.
	OnWindowAllClosed()

	// OnWindowCloseCancelled fires when a window refused a graceful close.
	OnWindowCloseCancelled(windowID string)
}
