package hooks

import "github.com/vango-dev/tracked/pkg/tracked"

// host adapts the ambient hook surface to tracked.Host. It carries no
// state of its own; every method resolves against the Owner currently
// rendering on this goroutine.
type host struct{}

func (host) Effect(body func() tracked.Cleanup, deps []any)       { UseEffect(body, deps) }
func (host) LayoutEffect(body func() tracked.Cleanup, deps []any) { UseLayoutEffect(body, deps) }
func (host) Cell(initial any) tracked.Cell                        { return UseRef(initial) }

// CurrentHost returns a tracked.Host backed by this runtime's ambient
// hook primitives. It is only usable during Render.
func CurrentHost() tracked.Host {
	return host{}
}

// UseTrackedEffect registers a change-aware effect with the post-commit
// phase: fn receives a tracked.Summary describing which named
// dependencies changed since its last run.
//
//	hooks.UseTrackedEffect(func(s tracked.Summary) hooks.Cleanup {
//	    if s.Did["query"].Changed {
//	        refetch()
//	    }
//	    return nil
//	}, tracked.Deps{"query": query, "page": page})
func UseTrackedEffect(fn tracked.Callback, deps tracked.Deps, opts ...tracked.Option) {
	tracked.Effect(CurrentHost(), fn, deps, opts...)
}

// UseTrackedLayoutEffect is UseTrackedEffect for the pre-commit phase.
func UseTrackedLayoutEffect(fn tracked.Callback, deps tracked.Deps, opts ...tracked.Option) {
	tracked.LayoutEffect(CurrentHost(), fn, deps, opts...)
}
