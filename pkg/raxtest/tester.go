// Package raxtest provides an isolated harness for testing component
// behaviors without a real mini-program host. It drives the same mount,
// update, and unmount transitions as a production host but routes data
// pushes to an in-process loopback bridge and runs the scheduler on demand.
//
//	func TestCounter(t *testing.T) {
//	    tester := raxtest.NewTesterWithT(t)
//	    c := tester.MustMount(t, &counter{}, runtime.Props{"start": 1})
//
//	    c.SetState(runtime.State{"count": 2})
//	    tester.Flush()
//
//	    if tester.HostData(c)["count"] != float64(2) {
//	        t.Error("expected count on the host")
//	    }
//	}
package raxtest

import (
	"fmt"
	"testing"

	"github.com/haozi/rax/pkg/host"
	"github.com/haozi/rax/pkg/runtime"
)

// Tester drives components against a loopback host. All transitions run on
// the caller's goroutine; Flush stands in for the host's UI turn.
type Tester struct {
	scheduler  *runtime.Scheduler
	registry   *runtime.Registry
	loopback   *host.Loopback
	codec      host.MessageCodec
	dispatches []func()
	mounted    []*runtime.Component
	nextID     int
}

// NewTester creates a harness with a JSON loopback host. Call Cleanup when
// done, or use NewTesterWithT instead.
func NewTester() *Tester {
	t := &Tester{
		scheduler: runtime.NewScheduler(),
		registry:  runtime.NewRegistry(),
		codec:     host.JSONCodec{},
	}
	t.loopback = host.NewLoopback(t.codec)
	// Host acknowledgments queue here and run on the next Flush, modelling
	// the asynchronous host turn.
	host.RegisterDispatch(func(cb func()) {
		t.dispatches = append(t.dispatches, cb)
	})
	return t
}

// NewTesterWithT creates a harness that cleans up via t.Cleanup. This is
// the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts every mounted component and unregisters the dispatch
// trampoline.
func (t *Tester) Cleanup() {
	for _, c := range t.mounted {
		c.Unmount()
	}
	t.mounted = nil
	host.RegisterDispatch(nil)
}

// Scheduler returns the harness scheduler.
func (t *Tester) Scheduler() *runtime.Scheduler { return t.scheduler }

// Registry returns the harness prop/child bridge.
func (t *Tester) Registry() *runtime.Registry { return t.registry }

// Mount creates a component for behavior, binds it to a fresh loopback
// instance seeded with props, registers it on the bridge, and mounts it.
func (t *Tester) Mount(behavior runtime.Behavior, props runtime.Props) (*runtime.Component, error) {
	t.nextID++
	id := fmt.Sprintf("t-%d", t.nextID)

	c := runtime.NewComponent(behavior, t.scheduler)
	c.SetInternal(host.NewAdapter(t.loopback, t.codec, id, props, nil))
	t.registry.Bind(id, c)
	if err := c.Mount(); err != nil {
		return nil, err
	}
	t.mounted = append(t.mounted, c)
	t.Flush()
	return c, nil
}

// MustMount is Mount that fails the test on error.
func (t *Tester) MustMount(tb testing.TB, behavior runtime.Behavior, props runtime.Props) *runtime.Component {
	tb.Helper()
	c, err := t.Mount(behavior, props)
	if err != nil {
		tb.Fatalf("mount failed: %v", err)
	}
	return c
}

// SetProps stages new props onto a mounted component and requests the
// follow-up update, the way a parent's render output would.
func (t *Tester) SetProps(c *runtime.Component, props runtime.Props) {
	t.registry.UpdateChildProps(c.TagID(), props)
	t.scheduler.Schedule(c)
}

// Flush runs queued host acknowledgments and scheduled updates until the
// harness settles.
func (t *Tester) Flush() {
	for {
		ran := false
		dispatches := t.dispatches
		t.dispatches = nil
		for _, cb := range dispatches {
			ran = true
			cb()
		}
		if t.scheduler.Pending() > 0 {
			ran = true
			t.scheduler.Flush()
		}
		if !ran {
			return
		}
	}
}

// HostData returns the data currently visible to the host for a component,
// decoded the way the host sees it (JSON numbers become float64).
func (t *Tester) HostData(c *runtime.Component) map[string]any {
	return t.loopback.Data(c.TagID())
}

// Pushes returns the total number of data pushes the host received.
func (t *Tester) Pushes() int {
	return t.loopback.Pushes()
}
