// Package runtime implements the component model behind Rax mini-program
// pages: a React-like lifecycle state machine driving a host that accepts
// only declarative key-value data pushes.
//
// # Components
//
// A Component wraps a user-supplied behavior value. The runtime discovers
// lifecycle capabilities through optional interfaces; only Renderer is
// required:
//
//	type counter struct{}
//
//	func (counter) Render(ctx *runtime.HookContext, props runtime.Props, state runtime.State) {
//	    // read props/state, register hooks
//	}
//
//	c := runtime.NewComponent(counter{}, scheduler)
//	c.SetInternal(hostHandle)
//	c.Mount()
//
// State changes go through SetState or SetStateFunc and are applied in a
// batched update pass; the committed state is pushed wholesale to the host
// through the Internal handle after every render.
//
// # Scheduling
//
// A Scheduler collapses any number of SetState calls within one host turn
// into a single update transition per component. The host drives flushes:
// wire Scheduler.OnNeedsFlush to its tick and call Flush from it.
//
// # Hooks
//
// UseState, UseRef, UseMemo and UseEffect resolve their slots through the
// HookContext passed to Render. Slot identity is call order, so the same
// hooks must run in the same order on every render; debug mode enforces
// this with a panic.
//
// # Child props
//
// A Registry maps host-assigned instance identifiers to components so a
// parent's render output can stage props onto children and registrations
// are dropped on unmount. Unknown identifiers are deliberate no-ops.
package runtime
