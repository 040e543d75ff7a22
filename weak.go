package ui

// Handle is an explicit liveness token. Objects that participate in weak
// ownership (an Event, an observer's owner, an animation ticking) carry a
// Handle; weak references built from it observe Destroy deterministically,
// with no coupling to the garbage collector.
type Handle struct {
	dead bool
}

// NewHandle returns a live handle.
func NewHandle() *Handle {
	return &Handle{}
}

// Alive reports whether the handle has not been destroyed.
// A nil handle is never alive.
func (h *Handle) Alive() bool {
	return h != nil && !h.dead
}

// Destroy marks the handle dead. Destroy is idempotent; destroying an
// already-dead handle is a no-op, never an error.
func (h *Handle) Destroy() {
	if h != nil {
		h.dead = true
	}
}

// Weak is a weak reference: a value paired with the liveness handle of its
// owner. Get returns the value only while the owner is alive. Holding a
// Weak never extends the owner's lifetime in any observable way.
type Weak[T any] struct {
	value T
	life  *Handle
}

// WeakOf builds a weak reference to v guarded by life.
func WeakOf[T any](v T, life *Handle) Weak[T] {
	return Weak[T]{value: v, life: life}
}

// Get returns the referenced value and true while the owner is alive,
// or the zero value and false after it has been destroyed.
func (w Weak[T]) Get() (T, bool) {
	if !w.life.Alive() {
		var zero T
		return zero, false
	}
	return w.value, true
}

// Alive reports whether the referenced owner is still alive.
func (w Weak[T]) Alive() bool {
	return w.life.Alive()
}
