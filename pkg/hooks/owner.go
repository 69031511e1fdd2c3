package hooks

import (
	"sync"
	"sync/atomic"
)

// Owner represents one mounted component instance. It owns the hook
// slots that give call sites stable identity across renders, the effects
// registered during render, and any manual cleanup functions.
//
// Owners form a hierarchy mirroring the component tree: disposing an
// Owner disposes its children and runs every outstanding cleanup exactly
// once.
type Owner struct {
	id uint64

	// parent is the parent Owner in the hierarchy, nil for a root.
	parent *Owner

	// children are child Owners (sub-components).
	children   []*Owner
	childrenMu sync.Mutex

	// cleanups are manual cleanup functions registered via OnCleanup.
	cleanups   []func()
	cleanupsMu sync.Mutex

	// slots hold per-call-site hook state, one entry per hook call,
	// indexed by call order within a render.
	slots   []any
	slotIdx int

	// layoutQueue collects pre-commit effects scheduled during the
	// current render; they run synchronously when Render returns.
	layoutQueue []*effectSlot

	// pending are post-commit effects awaiting Flush.
	pending   []*effectSlot
	pendingMu sync.Mutex

	// disposed indicates the Owner has been torn down.
	disposed atomic.Bool
}

// NewOwner creates a new Owner with the given parent. If parent is nil,
// the Owner is a root.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}

	if parent != nil {
		parent.addChild(o)
	}

	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil for a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true once the Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

// Render runs a component function with this Owner ambient, so hook
// calls inside fn resolve against this Owner's slots. Pre-commit
// (layout) effects whose dependencies changed run synchronously before
// Render returns; post-commit effects are queued for Flush.
//
// Renders of one Owner must not overlap; the runtime driving Render is
// responsible for serializing them.
func (o *Owner) Render(fn func()) {
	if o.disposed.Load() {
		return
	}

	o.slotIdx = 0
	o.layoutQueue = nil

	old := setCurrentOwner(o)
	func() {
		defer setCurrentOwner(old)
		fn()
	}()

	// Pre-commit phase: layout effects run before the host considers the
	// render committed.
	layout := o.layoutQueue
	o.layoutQueue = nil
	for _, e := range layout {
		e.run()
	}
}

// scheduleEffect queues a post-commit effect for the next Flush.
func (o *Owner) scheduleEffect(e *effectSlot) {
	if o.disposed.Load() {
		return
	}

	o.pendingMu.Lock()
	defer o.pendingMu.Unlock()
	o.pending = append(o.pending, e)
}

// Flush executes all pending post-commit effects for this Owner and its
// children. The runtime calls this after a render commits.
func (o *Owner) Flush() {
	if o.disposed.Load() {
		return
	}

	o.pendingMu.Lock()
	pending := o.pending
	o.pending = nil
	o.pendingMu.Unlock()

	for _, e := range pending {
		if e.pending {
			e.run()
		}
	}

	o.childrenMu.Lock()
	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	o.childrenMu.Unlock()

	for _, child := range children {
		child.Flush()
	}
}

// HasPending returns true if this Owner or any child has post-commit
// effects awaiting Flush.
func (o *Owner) HasPending() bool {
	if o.disposed.Load() {
		return false
	}

	o.pendingMu.Lock()
	hasPending := len(o.pending) > 0
	o.pendingMu.Unlock()

	if hasPending {
		return true
	}

	o.childrenMu.Lock()
	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	o.childrenMu.Unlock()

	for _, child := range children {
		if child.HasPending() {
			return true
		}
	}

	return false
}

// OnCleanup registers a cleanup function to run when this Owner is
// disposed. If the Owner is already disposed, fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}

	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// Dispose tears down the Owner: children are disposed in reverse order
// (last created first), outstanding effect cleanups run exactly once,
// then manual cleanups. Pending effects that never ran are dropped.
// Dispose is one-way; a disposed Owner cannot render again.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	o.childrenMu.Lock()
	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	for _, slot := range o.slots {
		if e, ok := slot.(*effectSlot); ok {
			e.dispose()
		}
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for _, fn := range cleanups {
		fn()
	}

	o.pendingMu.Lock()
	o.pending = nil
	o.pendingMu.Unlock()

	if o.parent != nil {
		o.parent.removeChild(o)
	}
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// useSlot returns the stored value for the current hook slot, or nil on
// the first render of this call site. Callers create their state and
// store it with setSlot when nil is returned.
func (o *Owner) useSlot() any {
	idx := o.slotIdx
	o.slotIdx++

	if idx < len(o.slots) {
		return o.slots[idx]
	}
	return nil
}

// setSlot stores a value in the current hook slot. Must be called after
// useSlot returned nil.
func (o *Owner) setSlot(value any) {
	o.slots = append(o.slots, value)
}
