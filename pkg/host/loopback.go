package host

import "sync"

// Loopback is an in-process Bridge used by tests and examples. It retains
// the last payload pushed per instance and can either acknowledge
// synchronously or hold acknowledgments until AckAll, which models the
// asynchronous host flush.
type Loopback struct {
	codec    MessageCodec
	payloads map[string][]byte
	pushes   int
	acks     []func()
	deferAck bool
	mu       sync.Mutex
}

// NewLoopback creates a loopback bridge decoding payloads with codec. A nil
// codec falls back to DefaultCodec.
func NewLoopback(codec MessageCodec) *Loopback {
	if codec == nil {
		codec = DefaultCodec
	}
	return &Loopback{
		codec:    codec,
		payloads: make(map[string][]byte),
	}
}

// DeferAcks switches the bridge to held acknowledgments, released by AckAll.
func (l *Loopback) DeferAcks() {
	l.mu.Lock()
	l.deferAck = true
	l.mu.Unlock()
}

// PushData records the payload as the instance's current data.
func (l *Loopback) PushData(instanceID string, payload []byte, ack func()) error {
	l.mu.Lock()
	l.payloads[instanceID] = payload
	l.pushes++
	held := l.deferAck
	if held && ack != nil {
		l.acks = append(l.acks, ack)
	}
	l.mu.Unlock()

	if !held && ack != nil {
		ack()
	}
	return nil
}

// AckAll releases every held acknowledgment in push order.
func (l *Loopback) AckAll() {
	l.mu.Lock()
	acks := l.acks
	l.acks = nil
	l.mu.Unlock()
	for _, ack := range acks {
		ack()
	}
}

// Pushes returns the number of payloads pushed so far.
func (l *Loopback) Pushes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pushes
}

// Data decodes and returns the current data payload for an instance, or nil
// if nothing has been pushed. Decoding yields generic map values, the way
// the host sees them.
func (l *Loopback) Data(instanceID string) map[string]any {
	l.mu.Lock()
	payload := l.payloads[instanceID]
	l.mu.Unlock()
	if payload == nil {
		return nil
	}
	decoded, err := l.codec.Decode(payload)
	if err != nil {
		return nil
	}
	if m, ok := decoded.(map[string]any); ok {
		return m
	}
	return nil
}
