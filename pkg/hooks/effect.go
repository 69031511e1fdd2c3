package hooks

import (
	"fmt"

	"github.com/vango-dev/tracked/pkg/tracked"
)

// Cleanup is a function returned by an effect body to undo its work.
// It runs before the body's next execution and on Owner disposal.
type Cleanup = tracked.Cleanup

// effectSlot is the per-call-site state of one UseEffect/UseLayoutEffect
// site: the dependency list from the last render, the body scheduled to
// run, and the cleanup from the last run.
type effectSlot struct {
	owner  *Owner
	layout bool

	// ran is false until this call site's first render.
	ran  bool
	deps []any

	body    func() Cleanup
	cleanup Cleanup
	pending bool
}

// UseEffect registers body with the post-commit effect phase. The body
// runs after the render that first registered it, and again after any
// render where an element of deps fails the tracked.Is comparison
// against the previous render's list. A nil deps runs the body on every
// render.
//
// A Cleanup returned by body runs before the body's next execution and
// when the Owner is disposed.
//
// Panics if called outside Render, or if the length of deps changes
// between renders for this call site.
func UseEffect(body func() Cleanup, deps []any) {
	useEffect(body, deps, false)
}

// UseLayoutEffect is UseEffect for the pre-commit phase: the body runs
// synchronously before Render returns instead of waiting for Flush.
func UseLayoutEffect(body func() Cleanup, deps []any) {
	useEffect(body, deps, true)
}

func useEffect(body func() Cleanup, deps []any, layout bool) {
	o := currentOwner()
	if o == nil {
		panic("hooks: UseEffect called outside Render")
	}

	var e *effectSlot
	if v := o.useSlot(); v != nil {
		e = v.(*effectSlot)
	} else {
		e = &effectSlot{owner: o, layout: layout}
		o.setSlot(e)
	}

	run := false
	switch {
	case !e.ran:
		run = true
	case deps == nil:
		run = true
	default:
		if len(deps) != len(e.deps) {
			panic(fmt.Sprintf("hooks: effect dependency list changed length between renders: %d, was %d", len(deps), len(e.deps)))
		}
		for i := range deps {
			if !tracked.Is(deps[i], e.deps[i]) {
				run = true
				break
			}
		}
	}

	e.ran = true
	e.deps = deps
	e.body = body

	if !run {
		return
	}

	e.pending = true
	if layout {
		o.layoutQueue = append(o.layoutQueue, e)
	} else {
		o.scheduleEffect(e)
	}
}

// run executes the slot's body, invoking the previous cleanup first.
func (e *effectSlot) run() {
	if e.owner.disposed.Load() {
		return
	}

	e.pending = false

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.cleanup = e.body()
}

// dispose runs the outstanding cleanup, if any. Called once from
// Owner.Dispose.
func (e *effectSlot) dispose() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.pending = false
}
