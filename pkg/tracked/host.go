package tracked

// Cleanup is a function returned by an effect body to undo its work.
// The host primitive invokes it before the next body run and on teardown.
type Cleanup func()

// Cell is a persistent mutable cell with stable identity across renders.
// Hosts back this with their ref-like primitive.
type Cell interface {
	Get() any
	Set(v any)
}

// Host is the capability surface this package needs from a hook runtime.
//
// Effect and LayoutEffect register a body with the host's post-commit and
// pre-commit effect primitives respectively. The host re-runs the body
// when any element of deps fails its equality check versus the previous
// render, or on every render when deps is nil. Cell allocates a
// persistent cell for the current call site; repeated calls at the same
// call site across renders must return the same cell.
//
// All methods are hook-like: they must be called unconditionally during
// render, in a stable order.
type Host interface {
	Effect(body func() Cleanup, deps []any)
	LayoutEffect(body func() Cleanup, deps []any)
	Cell(initial any) Cell
}
