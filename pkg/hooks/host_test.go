package hooks

import (
	"testing"

	"github.com/vango-dev/tracked/pkg/tracked"
)

func TestUseTrackedEffectMountRun(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	var got tracked.Summary
	owner.Render(func() {
		UseTrackedEffect(func(s tracked.Summary) Cleanup {
			got = s
			return nil
		}, tracked.Deps{"a": 1, "b": "foo"})
	})
	owner.Flush()

	if !got.IsMount {
		t.Error("first run should report IsMount")
	}
	if got.ChangeCount != 2 {
		t.Errorf("ChangeCount = %d, want 2", got.ChangeCount)
	}
	if !got.Did["a"].Changed || !got.Did["b"].Changed {
		t.Errorf("all keys should be Changed on mount, got %+v", got.Did)
	}
}

func TestUseTrackedEffectGatedByHostEquality(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	runs := 0
	component := func() {
		UseTrackedEffect(func(s tracked.Summary) Cleanup {
			runs++
			return nil
		}, tracked.Deps{"a": 1, "b": "foo"})
	}

	for i := 0; i < 3; i++ {
		owner.Render(component)
		owner.Flush()
	}

	if runs != 1 {
		t.Errorf("host should not re-run the body for identical deps; ran %d times", runs)
	}
}

func TestUseTrackedEffectDetectsChange(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	a := 1
	var got tracked.Summary
	runs := 0
	component := func() {
		UseTrackedEffect(func(s tracked.Summary) Cleanup {
			got = s
			runs++
			return nil
		}, tracked.Deps{"a": a, "b": "foo"})
	}

	owner.Render(component)
	owner.Flush()

	a = 2
	owner.Render(component)
	owner.Flush()

	if runs != 2 {
		t.Fatalf("expected 2 runs, got %d", runs)
	}
	if got.IsMount {
		t.Error("second run should not be a mount run")
	}
	if !got.Did["a"].Changed || got.Did["b"].Changed {
		t.Errorf("Did = %+v, want only a changed", got.Did)
	}
	if got.ChangeCount != 1 {
		t.Errorf("ChangeCount = %d, want 1", got.ChangeCount)
	}
	if prev, ok := got.PreviousValue("a"); !ok || prev != 1 {
		t.Errorf("PreviousValue(a) = %v, %v, want 1, true", prev, ok)
	}
}

func TestUseTrackedEffectCleanupOnTeardown(t *testing.T) {
	owner := NewOwner(nil)

	cleanups := 0
	owner.Render(func() {
		UseTrackedEffect(func(s tracked.Summary) Cleanup {
			return func() { cleanups++ }
		}, tracked.Deps{"a": 1})
	})
	owner.Flush()

	owner.Dispose()
	if cleanups != 1 {
		t.Errorf("cleanup ran %d times on teardown, want 1", cleanups)
	}
}

func TestUseTrackedLayoutEffectRunsPreCommit(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	ran := false
	owner.Render(func() {
		UseTrackedLayoutEffect(func(s tracked.Summary) Cleanup {
			ran = true
			return nil
		}, tracked.Deps{"a": 1})
	})

	if !ran {
		t.Error("layout variant should run before Render returns")
	}
}

func TestUseTrackedEffectOmittedDeps(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	var mounts []bool
	component := func() {
		UseTrackedEffect(func(s tracked.Summary) Cleanup {
			mounts = append(mounts, s.IsMount)
			return nil
		}, nil)
	}

	for i := 0; i < 3; i++ {
		owner.Render(component)
		owner.Flush()
	}

	if len(mounts) != 3 {
		t.Fatalf("expected 3 runs with omitted deps, got %d", len(mounts))
	}
	for i, m := range mounts {
		want := i == 0
		if m != want {
			t.Errorf("run %d: IsMount = %v, want %v", i, m, want)
		}
	}
}
