package runtime

import "fmt"

// hookKind tags the API a hook slot was created by, so debug mode can
// detect call-order drift between renders.
type hookKind uint8

const (
	hookState hookKind = iota
	hookEffect
	hookMemo
	hookRef
)

func (k hookKind) String() string {
	switch k {
	case hookState:
		return "UseState"
	case hookEffect:
		return "UseEffect"
	case hookMemo:
		return "UseMemo"
	case hookRef:
		return "UseRef"
	default:
		return "unknown"
	}
}

// hookSlot is one hook record. Slots are identified by call order within a
// render, so the same hooks must run in the same order every pass.
type hookSlot struct {
	kind     hookKind
	value    any
	set      func(any)
	deps     []any
	teardown func()
}

// HookContext threads hook-slot resolution through a single render pass.
// One is created per pass and handed to the behavior's Render; it must not
// be retained across passes.
type HookContext struct {
	component *Component
}

// Component returns the instance currently rendering.
func (hc *HookContext) Component() *Component { return hc.component }

// slot returns the record at the next index, creating it on the first
// render. In debug mode a kind mismatch panics: it means hook calls were
// reordered or conditionally skipped between renders.
func (hc *HookContext) slot(kind hookKind) (*hookSlot, bool) {
	c := hc.component
	idx := c.hookIndex
	c.hookIndex++
	if idx < len(c.hooks) {
		h := c.hooks[idx]
		if DebugMode && h.kind != kind {
			panic(fmt.Sprintf("rax: hook slot %d was %s on the previous render but is now %s; hook call order must be stable across renders", idx, h.kind, kind))
		}
		return h, false
	}
	h := &hookSlot{kind: kind}
	c.hooks = append(c.hooks, h)
	return h, true
}

// UseState returns a stateful value and a setter. The setter stores the new
// value in the slot and requests a batched re-render; it does not touch the
// component's key-value state.
func UseState[T any](hc *HookContext, initial T) (T, func(T)) {
	h, first := hc.slot(hookState)
	if first {
		h.value = initial
		c := hc.component
		h.set = func(v any) {
			h.value = v
			c.requestUpdate()
		}
	}
	return h.value.(T), func(v T) { h.set(v) }
}

// Ref is a mutable cell whose identity is stable across renders.
type Ref[T any] struct {
	Current T
}

// UseRef returns a slot-stable ref initialized on the first render.
// Mutating Current does not trigger a re-render.
func UseRef[T any](hc *HookContext, initial T) *Ref[T] {
	h, first := hc.slot(hookRef)
	if first {
		h.value = &Ref[T]{Current: initial}
	}
	return h.value.(*Ref[T])
}

// UseMemo returns a memoized value, recomputed when any dep changes under
// shallow inequality. With no deps the value is computed once and reused.
func UseMemo[T any](hc *HookContext, compute func() T, deps ...any) T {
	h, first := hc.slot(hookMemo)
	if first || (deps != nil && !depsEqual(h.deps, deps)) {
		h.deps = deps
		h.value = compute()
	}
	return h.value.(T)
}

// UseEffect schedules setup to run after the current render pass commits.
// Setup may return a teardown, run before the next invocation and once more
// at unmount. With no deps the effect re-runs after every render; with deps
// it re-runs only when one changes under shallow inequality.
func UseEffect(hc *HookContext, setup func() func(), deps ...any) {
	h, first := hc.slot(hookEffect)
	run := first || deps == nil || !depsEqual(h.deps, deps)
	h.deps = deps
	if !run {
		return
	}
	c := hc.component
	c.pendingEffects = append(c.pendingEffects, func() {
		if h.teardown != nil {
			h.teardown()
			h.teardown = nil
		}
		h.teardown = setup()
	})
}

// depsEqual compares dep lists element-wise under shallow inequality.
func depsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !shallowSame(a[i], b[i]) {
			return false
		}
	}
	return true
}
