package runtime

import (
	"reflect"

	"github.com/haozi/rax/pkg/errors"
)

// Internal is the host-provided handle bound to a mounted component. It is
// the sole channel through which rendered output reaches the screen: the
// host consumes declarative data pushes, there is no DOM.
type Internal interface {
	// Props returns the initial props assigned by the host.
	Props() Props
	// Data returns the initial data the host seeded the instance with.
	Data() State
	// SetData pushes a full state snapshot to the host. The host invokes
	// onFlushed once the payload has been applied.
	SetData(data State, onFlushed func())
}

// ReadyKey tags every data payload pushed to the host. The host's seed data
// never carries it, so its first appearance marks the first paint.
const ReadyKey = "$ready"

// Component is the lifecycle state machine behind one mounted instance.
// It owns state, props, the pending-state and pending-callback queues, the
// hook slots, and the mount/update/unmount transition logic.
//
// A component is either unmounted (no internal handle) or mounted; all
// transitions run on the host's single UI turn, one at a time.
type Component struct {
	behavior Behavior

	state     State
	props     Props
	prevProps Props
	prevState State

	pendingStates    []stateUpdate
	pendingCallbacks []func()

	hooks          []*hookSlot
	hookIndex      int
	pendingEffects []func()

	listeners [phaseCount][]Listener

	mounted      bool
	shouldUpdate bool
	forced       bool

	internal  Internal
	tagID     string
	registry  *Registry
	scheduler *Scheduler
}

// NewComponent creates an unmounted component driven by behavior, with
// update requests batched through scheduler. A nil scheduler gets a private
// one; callers then flush through Scheduler().
func NewComponent(behavior Behavior, scheduler *Scheduler) *Component {
	if scheduler == nil {
		scheduler = NewScheduler()
	}
	return &Component{
		behavior:  behavior,
		state:     State{},
		props:     Props{},
		scheduler: scheduler,
	}
}

// Scheduler returns the scheduler batching this component's updates.
func (c *Component) Scheduler() *Scheduler { return c.scheduler }

// Behavior returns the behavior value driving this component.
func (c *Component) Behavior() Behavior { return c.behavior }

// State returns the component's current state. Callers must treat it as
// read-only; mutations go through SetState.
func (c *Component) State() State { return c.state }

// Props returns the component's current props.
func (c *Component) Props() Props { return c.props }

// Mounted reports whether the component is bound to a host instance.
func (c *Component) Mounted() bool { return c.mounted }

// TagID returns the host-assigned instance identifier, if bound.
func (c *Component) TagID() string { return c.tagID }

// On registers an additional listener for a lifecycle phase. Listeners fire
// after the behavior's own method, in registration order. Out-of-range
// phases are ignored.
func (c *Component) On(phase Phase, l Listener) {
	if phase < 0 || phase >= phaseCount || l == nil {
		return
	}
	c.listeners[phase] = append(c.listeners[phase], l)
}

// SetInternal binds the host handle, adopting the host's initial props and
// merging its seed data into state. The host calls this before Mount.
func (c *Component) SetInternal(internal Internal) {
	c.internal = internal
	if internal == nil {
		return
	}
	if p := internal.Props(); p != nil {
		c.props = p
	}
	mergeState(c.state, internal.Data())
}

// Mount runs the unmounted-to-mounted transition: derive state from props,
// willMount, the first render pass, didMount, then the first snapshots.
// Mounting an already mounted component is a no-op.
func (c *Component) Mount() error {
	if c.mounted {
		return nil
	}
	if d, ok := c.behavior.(StateDeriver); ok {
		if partial := d.DeriveState(c.props, c.state); partial != nil {
			mergeState(c.state, partial)
		}
	}
	c.firePhase(Event{Phase: PhaseWillMount})
	if err := c.renderPass("mount", c.props, c.state, nil); err != nil {
		return err
	}
	c.mounted = true
	c.firePhase(Event{Phase: PhaseDidMount})
	c.prevProps = c.props
	c.prevState = c.state
	return nil
}

// SetState enqueues a partial state for the next batched update and
// requests one. State is not applied synchronously. Callbacks run after the
// update that consumed the queue commits.
func (c *Component) SetState(partial State, callbacks ...func()) {
	if partial != nil {
		c.pendingStates = append(c.pendingStates, stateUpdate{partial: partial})
	}
	c.enqueueCallbacks(callbacks)
	c.requestUpdate()
}

// SetStateFunc enqueues an updater for the next batched update. The updater
// receives the accumulated intermediate state and the props staged for the
// same pass.
func (c *Component) SetStateFunc(updater Updater, callbacks ...func()) {
	if updater != nil {
		c.pendingStates = append(c.pendingStates, stateUpdate{updater: updater})
	}
	c.enqueueCallbacks(callbacks)
	c.requestUpdate()
}

// ForceUpdate runs the update transition immediately, bypassing the
// scheduler's batching and the ShouldUpdate check.
func (c *Component) ForceUpdate(callbacks ...func()) {
	c.enqueueCallbacks(callbacks)
	c.forced = true
	c.performUpdate()
}

// Show dispatches the host's became-visible notification.
func (c *Component) Show() {
	if c.mounted {
		c.firePhase(Event{Phase: PhaseShow})
	}
}

// Hide dispatches the host's became-hidden notification.
func (c *Component) Hide() {
	if c.mounted {
		c.firePhase(Event{Phase: PhaseHide})
	}
}

// Unmount runs the terminal transition: willUnmount, every hook teardown
// (a panicking teardown does not stop the rest), release of the host
// handle, and removal of the bridge registration.
func (c *Component) Unmount() {
	if !c.mounted {
		return
	}
	c.firePhase(Event{Phase: PhaseWillUnmount})
	name := c.behaviorName()
	for slot, h := range c.hooks {
		if h.teardown == nil {
			continue
		}
		teardown := h.teardown
		h.teardown = nil
		func() {
			defer func() {
				if r := recover(); r != nil {
					errors.ReportTeardownError(&errors.TeardownError{
						Component:  name,
						Slot:       slot,
						Recovered:  r,
						StackTrace: errors.CaptureStack(),
					})
				}
			}()
			teardown()
		}()
	}
	c.hooks = nil
	c.internal = nil
	c.mounted = false
	if c.registry != nil {
		reg := c.registry
		c.registry = nil
		reg.RemoveComponentProps(c.tagID)
	}
}

func (c *Component) enqueueCallbacks(callbacks []func()) {
	for _, cb := range callbacks {
		if cb != nil {
			c.pendingCallbacks = append(c.pendingCallbacks, cb)
		}
	}
}

func (c *Component) requestUpdate() {
	c.scheduler.Schedule(c)
}

// performUpdate runs the mounted-to-mounted update transition. Invoked by
// the scheduler during a flush, or directly by ForceUpdate. A stray update
// racing an unmount is a no-op.
func (c *Component) performUpdate() {
	if !c.mounted {
		return
	}

	// The caller stages new props into the live slot before requesting an
	// update; restore the snapshot for the comparison step.
	nextProps := c.props
	prevProps := c.prevProps
	c.props = prevProps
	if !shallowEqualProps(prevProps, nextProps) {
		c.firePhase(Event{Phase: PhaseWillReceiveProps, NextProps: nextProps})
	}

	prevState := c.state
	nextState := cloneState(c.state)
	for _, u := range c.drainStates() {
		partial := u.partial
		if u.updater != nil {
			partial = u.updater(nextState, nextProps)
		}
		mergeState(nextState, partial)
	}

	// Derived state replaces the candidate wholesale, unlike the shallow
	// merge used for queued partials.
	if d, ok := c.behavior.(StateDeriver); ok {
		if derived := d.DeriveState(nextProps, nextState); derived != nil {
			nextState = derived
		}
	}

	c.shouldUpdate = true
	if decider, ok := c.behavior.(UpdateDecider); ok && !c.forced {
		if !decider.ShouldUpdate(nextProps, nextState) {
			c.shouldUpdate = false
		}
	}

	if c.shouldUpdate {
		c.firePhase(Event{Phase: PhaseWillUpdate, NextProps: nextProps, NextState: nextState})
	}

	c.props = nextProps
	c.state = nextState
	c.forced = false

	callbacks := c.drainCallbacks()
	flush := func() {
		for _, cb := range callbacks {
			cb()
		}
	}

	if c.shouldUpdate {
		if err := c.renderPass("update", nextProps, nextState, flush); err != nil {
			// The pass aborted before any host write; the queue still
			// drained, so its callbacks still run.
			flush()
		} else {
			c.firePhase(Event{Phase: PhaseDidUpdate, PrevProps: prevProps, PrevState: prevState})
		}
	} else {
		flush()
	}

	c.prevProps = c.props
	c.prevState = c.state
}

// renderPass runs the shared render step: resolve the render function, run
// it against a fresh hook context, run any effects it scheduled, then push
// the full committed state to the host. onFlushed is handed to the host's
// acknowledgment.
func (c *Component) renderPass(phase string, props Props, state State, onFlushed func()) error {
	r, ok := c.behavior.(Renderer)
	if !ok {
		rerr := &errors.RenderError{
			Component: c.behaviorName(),
			Phase:     phase,
			Err:       errors.ErrNoRender,
		}
		errors.ReportRenderError(rerr)
		return rerr
	}
	if props == nil {
		props = c.props
	}
	if state == nil {
		state = c.state
	}

	c.hookIndex = 0
	r.Render(&HookContext{component: c}, props, state)

	effects := c.pendingEffects
	c.pendingEffects = nil
	for _, run := range effects {
		run()
	}

	if c.internal != nil {
		payload := cloneState(c.state)
		payload[ReadyKey] = true
		c.internal.SetData(payload, onFlushed)
	} else if onFlushed != nil {
		onFlushed()
	}
	return nil
}

// firePhase dispatches one lifecycle event: the behavior's own method for
// the phase first, then every registered listener in order. Phases outside
// the enumeration produce no effect.
func (c *Component) firePhase(ev Event) {
	if ev.Phase < 0 || ev.Phase >= phaseCount {
		return
	}
	switch ev.Phase {
	case PhaseWillMount:
		if b, ok := c.behavior.(WillMounter); ok {
			b.WillMount()
		}
	case PhaseDidMount:
		if b, ok := c.behavior.(DidMounter); ok {
			b.DidMount()
		}
	case PhaseWillReceiveProps:
		if b, ok := c.behavior.(PropsReceiver); ok {
			b.WillReceiveProps(ev.NextProps)
		}
	case PhaseWillUpdate:
		if b, ok := c.behavior.(WillUpdater); ok {
			b.WillUpdate(ev.NextProps, ev.NextState)
		}
	case PhaseDidUpdate:
		if b, ok := c.behavior.(DidUpdater); ok {
			b.DidUpdate(ev.PrevProps, ev.PrevState)
		}
	case PhaseWillUnmount:
		if b, ok := c.behavior.(WillUnmounter); ok {
			b.WillUnmount()
		}
	case PhaseShow:
		if b, ok := c.behavior.(Shower); ok {
			b.OnShow()
		}
	case PhaseHide:
		if b, ok := c.behavior.(Hider); ok {
			b.OnHide()
		}
	}
	for _, l := range c.listeners[ev.Phase] {
		l(ev)
	}
}

// drainStates empties the pending-state queue and returns its contents.
// The queue is cleared before any contribution is applied so the drain is
// never re-entered.
func (c *Component) drainStates() []stateUpdate {
	pending := c.pendingStates
	c.pendingStates = nil
	return pending
}

// drainCallbacks empties the pending-callback queue and returns its
// contents in enqueue order.
func (c *Component) drainCallbacks() []func() {
	pending := c.pendingCallbacks
	c.pendingCallbacks = nil
	return pending
}

func (c *Component) behaviorName() string {
	if c.behavior == nil {
		return "<nil>"
	}
	return reflect.TypeOf(c.behavior).String()
}
