package hooks

import "sync"

// Ref is a persistent mutable cell with the same lifetime as its Owner.
// UseRef returns the same Ref for a call site on every render, so values
// stored in it survive re-renders without being reset.
//
// Ref is safe for concurrent access and implements tracked.Cell.
type Ref struct {
	mu    sync.RWMutex
	value any
}

// Get returns the current value of the ref.
func (r *Ref) Get() any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// Set replaces the ref's value.
func (r *Ref) Set(value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
}

// UseRef returns this call site's persistent cell, creating it with
// initial on the first render. The initial value is ignored on
// subsequent renders.
//
// This is a hook-like API and must be called unconditionally during
// render. Panics if called outside Render.
func UseRef(initial any) *Ref {
	o := currentOwner()
	if o == nil {
		panic("hooks: UseRef called outside Render")
	}

	if v := o.useSlot(); v != nil {
		return v.(*Ref)
	}

	r := &Ref{value: initial}
	o.setSlot(r)
	return r
}
