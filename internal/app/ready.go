package app

import "sync"

// ReadyGate is a one-shot broadcast signal. Many waiters, one producer:
// resolving twice is a no-op, and waiters that register after resolution
// observe it immediately.
type ReadyGate struct {
	once sync.Once
	done chan struct{}
}

// NewReadyGate creates an unresolved gate.
func NewReadyGate() *ReadyGate {
	return &ReadyGate{done: make(chan struct{})}
}

// Resolve marks the gate resolved. Idempotent.
func (g *ReadyGate) Resolve() {
	g.once.Do(func() {
		close(g.done)
	})
}

// Resolved reports whether the gate has been resolved.
func (g *ReadyGate) Resolved() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the gate resolves.
// The same channel is returned on every call.
func (g *ReadyGate) Done() <-chan struct{} {
	return g.done
}
