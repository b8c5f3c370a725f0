package runtime

import "reflect"

// State holds a component's renderable data: string keys to arbitrary values.
// State is only mutated through the transition machinery; external callers go
// through SetState.
type State map[string]any

// Props holds the configuration a parent passes to a component. Props are
// owned by the parent and replaced wholesale on each update.
type Props map[string]any

// Updater computes a partial state from the accumulated intermediate state
// and the props staged for the same pass. Queued updaters see the result of
// every earlier contribution in the queue, not the pre-flush state.
type Updater func(state State, props Props) State

// stateUpdate is one pending contribution: either a partial state object or
// an updater function, never both.
type stateUpdate struct {
	partial State
	updater Updater
}

// cloneState returns a shallow copy of s. A nil map clones to an empty one
// so the copy can be merged into.
func cloneState(s State) State {
	clone := make(State, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// mergeState shallow-merges partial into dst, overwriting existing keys.
func mergeState(dst State, partial State) {
	for k, v := range partial {
		dst[k] = v
	}
}

// shallowEqualProps reports whether a and b have the same keys bound to
// equal values under interface comparison. Uncomparable values (maps,
// slices, funcs) are treated as unequal, matching reference-inequality
// semantics.
func shallowEqualProps(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !shallowSame(av, bv) {
			return false
		}
	}
	return true
}

// shallowSame compares two values the way a reference-inequality check
// would: comparable values by value, everything else never equal.
func shallowSame(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
