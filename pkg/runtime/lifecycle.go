package runtime

// Phase identifies one lifecycle transition point of a component. The set is
// closed; dispatching an out-of-range phase has no effect.
type Phase int

const (
	// PhaseWillMount fires before the first render pass.
	PhaseWillMount Phase = iota
	// PhaseDidMount fires once, after the first render pass completes.
	PhaseDidMount
	// PhaseWillReceiveProps fires when staged props differ shallowly from
	// the previous snapshot.
	PhaseWillReceiveProps
	// PhaseWillUpdate fires before a non-skipped update commits.
	PhaseWillUpdate
	// PhaseDidUpdate fires after an update's render pass completes.
	PhaseDidUpdate
	// PhaseWillUnmount fires before hook teardown and handle release.
	PhaseWillUnmount
	// PhaseShow fires when the host reports the page became visible.
	PhaseShow
	// PhaseHide fires when the host reports the page was hidden.
	PhaseHide

	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseWillMount:
		return "willMount"
	case PhaseDidMount:
		return "didMount"
	case PhaseWillReceiveProps:
		return "willReceiveProps"
	case PhaseWillUpdate:
		return "willUpdate"
	case PhaseDidUpdate:
		return "didUpdate"
	case PhaseWillUnmount:
		return "willUnmount"
	case PhaseShow:
		return "onShow"
	case PhaseHide:
		return "onHide"
	default:
		return "unknown"
	}
}

// Event carries the argument shape for one lifecycle dispatch. Only the
// fields relevant to the phase are set: NextProps for willReceiveProps and
// willUpdate, NextState for willUpdate, PrevProps/PrevState for didUpdate.
type Event struct {
	Phase     Phase
	NextProps Props
	NextState State
	PrevProps Props
	PrevState State
}

// Listener observes a lifecycle phase. Listeners fire after the behavior's
// own method for the phase, in registration order, every time the phase
// fires.
type Listener func(Event)

// Behavior is the user-supplied value driving a component. The runtime
// discovers lifecycle capabilities through the optional interfaces below;
// only Renderer is required, and only at render time.
type Behavior = any

// Renderer produces the declarative output for a pass. The render function
// reads the staged props and state and registers hooks through ctx; the
// committed state is pushed to the host afterwards.
type Renderer interface {
	Render(ctx *HookContext, props Props, state State)
}

// StateDeriver recomputes state from props on every mount and update pass.
// A non-nil result is shallow-merged into state on mount but replaces the
// candidate next state wholesale on update.
type StateDeriver interface {
	DeriveState(props Props, state State) State
}

// UpdateDecider can skip an update's render. Returning false skips render
// and didUpdate for the pass unless the update was forced.
type UpdateDecider interface {
	ShouldUpdate(nextProps Props, nextState State) bool
}

// WillMounter observes PhaseWillMount.
type WillMounter interface {
	WillMount()
}

// DidMounter observes PhaseDidMount.
type DidMounter interface {
	DidMount()
}

// PropsReceiver observes PhaseWillReceiveProps.
type PropsReceiver interface {
	WillReceiveProps(nextProps Props)
}

// WillUpdater observes PhaseWillUpdate.
type WillUpdater interface {
	WillUpdate(nextProps Props, nextState State)
}

// DidUpdater observes PhaseDidUpdate.
type DidUpdater interface {
	DidUpdate(prevProps Props, prevState State)
}

// WillUnmounter observes PhaseWillUnmount.
type WillUnmounter interface {
	WillUnmount()
}

// Shower observes PhaseShow.
type Shower interface {
	OnShow()
}

// Hider observes PhaseHide.
type Hider interface {
	OnHide()
}
