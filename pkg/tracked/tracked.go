package tracked

import (
	"sort"
	"time"
)

// Effect registers fn with the host's post-commit effect primitive.
//
// The current dependency values, in sorted key order, become the host
// primitive's own dependency list, so the host's native equality-driven
// re-execution semantics decide when fn runs. When it runs, fn receives
// a Summary describing which keys changed since the last execution.
//
// A nil deps runs fn on every trigger; the summary then carries an empty
// Did and a zero ChangeCount, with IsMount following the usual
// first/subsequent rule.
//
// This is a hook-like API and must be called unconditionally during
// render with a stable key set.
func Effect(h Host, fn Callback, deps Deps, opts ...Option) {
	observe(h, false, fn, deps, opts)
}

// LayoutEffect is Effect using the host's pre-commit primitive. The
// change-detection behavior is identical; only the underlying scheduling
// phase differs.
func LayoutEffect(h Host, fn Callback, deps Deps, opts ...Option) {
	observe(h, true, fn, deps, opts)
}

func observe(h Host, layout bool, fn Callback, deps Deps, opts []Option) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	// Retained state: the dependency set from the last time the body ran
	// (not the last render), and the mount flag. Both live in
	// host-provided cells so they survive re-renders with stable identity.
	prevCell := h.Cell(map[string]any{})
	mountCell := h.Cell(true)

	// Go maps have no iteration order; sorting the keys supplies the
	// stable positional order the host primitive needs.
	var triggers []any
	if deps != nil {
		keys := sortedKeys(deps)
		triggers = make([]any, len(keys))
		for i, k := range keys {
			triggers[i] = deps[k]
		}
	}

	body := func() Cleanup {
		prev, _ := prevCell.Get().(map[string]any)
		isMount, _ := mountCell.Get().(bool)

		s := diff(deps, prev, isMount, cfg.equals)

		// The current set becomes the new baseline by reference; the
		// summary already copied the old one.
		prevCell.Set(map[string]any(deps))
		mountCell.Set(false)

		start := time.Now()
		cleanup := fn(s)
		if cfg.observer != nil {
			cfg.observer.ObserveRun(cfg.name, s, time.Since(start))
		}
		return cleanup
	}

	if layout {
		h.LayoutEffect(body, triggers)
	} else {
		h.Effect(body, triggers)
	}
}

// diff builds the change summary for one execution. On the first
// execution every key is changed unconditionally and the comparison is
// bypassed.
func diff(deps Deps, prev map[string]any, isMount bool, eq func(a, b any) bool) Summary {
	did := make(map[string]Change, len(deps))
	previous := make(map[string]any, len(prev))
	for k, v := range prev {
		previous[k] = v
	}

	count := 0
	for k, v := range deps {
		changed := isMount
		if !changed {
			old, ok := prev[k]
			changed = !ok || !eq(v, old)
		}
		did[k] = Change{Changed: changed, Unchanged: !changed}
		if changed {
			count++
		}
	}

	return Summary{
		Did:         did,
		Previous:    previous,
		ChangeCount: count,
		IsMount:     isMount,
	}
}

func sortedKeys(deps Deps) []string {
	keys := make([]string, 0, len(deps))
	for k := range deps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
