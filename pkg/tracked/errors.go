package tracked

import "fmt"

// DependencyKeyError is returned when a Summary is queried for a key that
// was never part of the tracked dependency set.
//
// It is only produced by the Summary.Key accessor. Direct map access on
// Summary.Did never raises it; a structurally built summary always has
// exactly the tracked key set.
type DependencyKeyError struct {
	// Key is the untracked key that was queried.
	Key string
}

// Error implements the error interface.
func (e *DependencyKeyError) Error() string {
	return fmt.Sprintf("tracked: dependency key %q is not tracked", e.Key)
}
