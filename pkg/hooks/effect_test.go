package hooks

import (
	"math"
	"testing"
)

func TestEffectRunsAfterFlush(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	ran := false
	owner.Render(func() {
		UseEffect(func() Cleanup {
			ran = true
			return nil
		}, []any{1})
	})

	if ran {
		t.Error("post-commit effect should not run during Render")
	}

	owner.Flush()
	if !ran {
		t.Error("effect should run on Flush after first render")
	}
}

func TestLayoutEffectRunsDuringRender(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	ran := false
	owner.Render(func() {
		UseLayoutEffect(func() Cleanup {
			ran = true
			return nil
		}, []any{1})
	})

	if !ran {
		t.Error("layout effect should run before Render returns")
	}
}

func TestEffectRerunsOnDepChange(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	count := 0
	runs := 0
	component := func() {
		UseEffect(func() Cleanup {
			runs++
			return nil
		}, []any{count})
	}

	owner.Render(component)
	owner.Flush()

	count = 1
	owner.Render(component)
	owner.Flush()

	if runs != 2 {
		t.Errorf("expected 2 runs after dep change, got %d", runs)
	}
}

func TestEffectSkipsOnEqualDeps(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	runs := 0
	component := func() {
		UseEffect(func() Cleanup {
			runs++
			return nil
		}, []any{42, "foo", math.NaN()})
	}

	for i := 0; i < 3; i++ {
		owner.Render(component)
		owner.Flush()
	}

	if runs != 1 {
		t.Errorf("expected 1 run with stable deps (NaN included), got %d", runs)
	}
}

func TestEffectNilDepsRunsEveryRender(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	runs := 0
	component := func() {
		UseEffect(func() Cleanup {
			runs++
			return nil
		}, nil)
	}

	for i := 0; i < 3; i++ {
		owner.Render(component)
		owner.Flush()
	}

	if runs != 3 {
		t.Errorf("expected 3 runs with nil deps, got %d", runs)
	}
}

func TestEffectEmptyDepsRunsOnce(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	runs := 0
	component := func() {
		UseEffect(func() Cleanup {
			runs++
			return nil
		}, []any{})
	}

	for i := 0; i < 3; i++ {
		owner.Render(component)
		owner.Flush()
	}

	if runs != 1 {
		t.Errorf("expected 1 run with empty deps, got %d", runs)
	}
}

func TestEffectCleanupBeforeRerun(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	count := 0
	var order []string
	component := func() {
		UseEffect(func() Cleanup {
			order = append(order, "run")
			return func() { order = append(order, "cleanup") }
		}, []any{count})
	}

	owner.Render(component)
	owner.Flush()

	count = 1
	owner.Render(component)
	owner.Flush()

	want := []string{"run", "cleanup", "run"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestEffectCleanupOnceOnDispose(t *testing.T) {
	owner := NewOwner(nil)

	cleanups := 0
	owner.Render(func() {
		UseEffect(func() Cleanup {
			return func() { cleanups++ }
		}, []any{1})
	})
	owner.Flush()

	owner.Dispose()
	owner.Dispose()

	if cleanups != 1 {
		t.Errorf("cleanup ran %d times on dispose, want 1", cleanups)
	}
}

func TestDisposeDropsPendingEffect(t *testing.T) {
	owner := NewOwner(nil)

	runs := 0
	owner.Render(func() {
		UseEffect(func() Cleanup {
			runs++
			return nil
		}, []any{1})
	})

	// Torn down before the scheduled body ever ran.
	owner.Dispose()
	owner.Flush()

	if runs != 0 {
		t.Errorf("pending effect ran %d times after dispose, want 0", runs)
	}
}

func TestEffectPanicsOnDepLengthChange(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	owner.Render(func() {
		UseEffect(func() Cleanup { return nil }, []any{1, 2})
	})
	owner.Flush()

	defer func() {
		if recover() == nil {
			t.Error("expected panic when dependency list length changes")
		}
	}()

	owner.Render(func() {
		UseEffect(func() Cleanup { return nil }, []any{1})
	})
}

func TestEffectPanicsOutsideRender(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when UseEffect is called outside Render")
		}
	}()

	UseEffect(func() Cleanup { return nil }, nil)
}

func TestCoalescedRendersRunBodyOnce(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	count := 0
	runs := 0
	seen := -1
	component := func() {
		UseEffect(func() Cleanup {
			runs++
			seen = count
			return nil
		}, []any{count})
	}

	owner.Render(component)
	count = 1
	owner.Render(component)
	count = 2
	owner.Render(component)
	owner.Flush()

	if runs != 1 {
		t.Errorf("expected 1 coalesced run, got %d", runs)
	}
	if seen != 2 {
		t.Errorf("body saw count=%d, want the latest render's 2", seen)
	}
}
