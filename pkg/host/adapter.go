package host

import (
	"github.com/haozi/rax/pkg/errors"
	"github.com/haozi/rax/pkg/runtime"
)

// Bridge is the transport into the native host. Implementations deliver
// encoded data payloads for an instance and invoke ack once the host has
// applied the payload.
type Bridge interface {
	PushData(instanceID string, payload []byte, ack func()) error
}

// Adapter implements runtime.Internal over a Bridge and a MessageCodec.
// One adapter is created per host instance, seeded with the props and data
// the host assigned at creation time.
type Adapter struct {
	bridge     Bridge
	codec      MessageCodec
	instanceID string
	props      runtime.Props
	data       runtime.State
}

// NewAdapter creates the internal handle for one host instance. A nil codec
// falls back to DefaultCodec.
func NewAdapter(bridge Bridge, codec MessageCodec, instanceID string, props runtime.Props, data runtime.State) *Adapter {
	if codec == nil {
		codec = DefaultCodec
	}
	return &Adapter{
		bridge:     bridge,
		codec:      codec,
		instanceID: instanceID,
		props:      props,
		data:       data,
	}
}

// InstanceID returns the host-assigned identifier for this instance.
func (a *Adapter) InstanceID() string { return a.instanceID }

// Props returns the initial props assigned by the host.
func (a *Adapter) Props() runtime.Props { return a.props }

// Data returns the initial data the host seeded the instance with.
func (a *Adapter) Data() runtime.State { return a.data }

// SetData encodes a full state snapshot and pushes it through the bridge.
// The host acknowledgment re-enters on the UI turn before onFlushed runs.
// Encode and transport failures are reported and drop the push; the
// runtime defines no retry semantics.
func (a *Adapter) SetData(data runtime.State, onFlushed func()) {
	payload, err := a.codec.Encode(data)
	if err != nil {
		errors.Report(&errors.RaxError{
			Op:   "host.Adapter.SetData",
			Kind: errors.KindHost,
			Err:  err,
		})
		return
	}
	err = a.bridge.PushData(a.instanceID, payload, func() {
		invoke(onFlushed)
	})
	if err != nil {
		errors.Report(&errors.RaxError{
			Op:   "host.Adapter.SetData",
			Kind: errors.KindHost,
			Err:  err,
		})
	}
}
