package tracked

// Deps is a named dependency set: a mapping from stable string keys to
// arbitrary values, supplied fresh on every render.
//
// A nil Deps means "absent": the effect runs on every trigger and no
// change tracking is performed beyond recomputing an empty Did each run.
// A non-nil empty Deps is a tracked set with zero keys.
//
// The key set is expected to stay stable across the lifetime of one
// wrapped effect; the host primitive rejects dependency lists that change
// size between renders.
type Deps map[string]any

// Change describes one dependency key's state for a single effect run.
// Changed and Unchanged are mutually exclusive and exhaustive.
type Change struct {
	Changed   bool
	Unchanged bool
}

// Summary is the change metadata handed to an effect callback. It is
// computed fresh for every execution and never retained by this package.
type Summary struct {
	// Did maps every key of the current dependency set to its change state.
	Did map[string]Change

	// Previous is a shallow copy of the dependency set from the previous
	// execution, taken before it was overwritten. On the first execution
	// it is empty, so every lookup reports "value absent".
	Previous map[string]any

	// ChangeCount is the number of keys whose Changed flag is true.
	ChangeCount int

	// IsMount is true only for the first execution after mount.
	IsMount bool
}

// Key returns the change state for name. Unlike direct access on Did, it
// distinguishes an untracked key from a zero Change by returning a
// *DependencyKeyError.
func (s Summary) Key(name string) (Change, error) {
	c, ok := s.Did[name]
	if !ok {
		return Change{}, &DependencyKeyError{Key: name}
	}
	return c, nil
}

// PreviousValue returns the value name had on the previous execution.
// The second result is false when no previous value exists, which is the
// case for every key on the first execution.
func (s Summary) PreviousValue(name string) (any, bool) {
	v, ok := s.Previous[name]
	return v, ok
}

// Callback is a user effect body. It receives the change summary for the
// current execution and may return a Cleanup, which is propagated to the
// host primitive unchanged.
type Callback func(Summary) Cleanup
