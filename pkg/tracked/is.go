package tracked

import (
	"math"
	"reflect"
)

// Is reports whether a and b are the same value under identity/primitive
// equality. This matches the comparison the host framework documents for
// its own dependency arrays:
//
//   - nil equals only nil
//   - NaN equals itself
//   - +0 and -0 are distinct
//   - comparable values use ==
//   - maps, slices, funcs, and channels compare by reference identity
//
// Structural equality is deliberately not performed: two distinct maps
// with equal contents are not the same value.
//
// Note: func values compare by code pointer, so two closures over the
// same function literal compare equal even when they capture different
// variables.
func Is(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && sameFloat(x, y)
	case float32:
		y, ok := b.(float32)
		return ok && sameFloat(float64(x), float64(y))
	}

	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}

	switch av.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		// Same backing array and length.
		return av.Len() == bv.Len() && av.Pointer() == bv.Pointer()
	}

	if !av.Type().Comparable() {
		return false
	}
	return a == b
}

func sameFloat(x, y float64) bool {
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}
	if x == 0 && y == 0 {
		return math.Signbit(x) == math.Signbit(y)
	}
	return x == y
}
