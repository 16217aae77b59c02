package app

import "sync"

// Registry is an ordered set of lifecycle observers. Dispatch runs every
// observer sequentially in registration order; vetoable phases aggregate
// a single prevent flag without short-circuiting.
type Registry struct {
	mu        sync.Mutex
	observers []Observer
}

// NewRegistry creates an empty observer registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends an observer. Adding the same observer twice dispatches to
// it twice.
func (r *Registry) Add(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Remove drops the first registration of the given observer.
func (r *Registry) Remove(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.observers {
		if existing == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered observers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.observers)
}

// Notify dispatches fn to every observer in registration order.
// Dispatch runs outside the registry lock so observers may add or remove
// observers; such changes take effect on the next notification.
func (r *Registry) Notify(fn func(Observer)) {
	for _, o := range r.snapshot() {
		fn(o)
	}
}

// NotifyVetoable dispatches fn to every observer and reports whether any
// of them vetoed. All observers run even after a veto.
func (r *Registry) NotifyVetoable(fn func(Observer) bool) (vetoed bool) {
	for _, o := range r.snapshot() {
		if fn(o) {
			vetoed = true
		}
	}
	return vetoed
}

func (r *Registry) snapshot() []Observer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Observer{}, r.observers...)
}
