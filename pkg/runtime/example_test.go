package runtime_test

import (
	"fmt"

	"github.com/haozi/rax/pkg/runtime"
)

// consoleInternal stands in for the host handle and prints every data push.
type consoleInternal struct{}

func (consoleInternal) Props() runtime.Props { return runtime.Props{"label": "clicks"} }
func (consoleInternal) Data() runtime.State  { return runtime.State{"count": 0} }

func (consoleInternal) SetData(data runtime.State, onFlushed func()) {
	fmt.Printf("host sees count=%v\n", data["count"])
	if onFlushed != nil {
		onFlushed()
	}
}

// clicker renders its label and count; the host template binds to both keys.
type clicker struct{}

func (clicker) Render(ctx *runtime.HookContext, props runtime.Props, state runtime.State) {
	_ = fmt.Sprintf("%v: %v", props["label"], state["count"])
}

// This example mounts a component against a host handle and batches two
// state changes into a single update pass.
func ExampleComponent() {
	scheduler := runtime.NewScheduler()
	c := runtime.NewComponent(clicker{}, scheduler)
	c.SetInternal(consoleInternal{})
	if err := c.Mount(); err != nil {
		fmt.Println("mount failed:", err)
		return
	}

	// Both calls fold into one render when the host flushes the turn.
	c.SetState(runtime.State{"count": 1})
	c.SetStateFunc(func(state runtime.State, props runtime.Props) runtime.State {
		return runtime.State{"count": state["count"].(int) + 1}
	})
	scheduler.Flush()

	// Output:
	// host sees count=0
	// host sees count=2
}
