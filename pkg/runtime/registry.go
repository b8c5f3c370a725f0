package runtime

import "sync"

// Registry is the prop/child bridge: it maps host-assigned instance
// identifiers to mounted components so a parent's render output can stage
// new props onto its children. Identifier allocation is the host's
// responsibility; an identifier is stable for the component's mounted
// lifetime.
type Registry struct {
	components map[string]*Component
	mu         sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]*Component)}
}

// Bind registers c under instanceID and records the registration on the
// component so Unmount can drop it.
func (r *Registry) Bind(instanceID string, c *Component) {
	if c == nil || instanceID == "" {
		return
	}
	r.mu.Lock()
	r.components[instanceID] = c
	r.mu.Unlock()
	c.tagID = instanceID
	c.registry = r
}

// Lookup returns the component bound under instanceID, or nil.
func (r *Registry) Lookup(instanceID string) *Component {
	r.mu.RLock()
	c := r.components[instanceID]
	r.mu.RUnlock()
	return c
}

// UpdateChildProps stages new props onto the component bound under
// instanceID without triggering a render; requesting the follow-up update
// is the caller's responsibility. An unknown identifier is a no-op: the
// host may legitimately reference a child that has not mounted yet or has
// already unmounted.
func (r *Registry) UpdateChildProps(instanceID string, props Props) {
	c := r.Lookup(instanceID)
	if c == nil || props == nil {
		return
	}
	c.props = props
}

// RemoveComponentProps drops the registration under tagID so it can no
// longer be looked up or leak after unmount. Unknown identifiers are
// no-ops.
func (r *Registry) RemoveComponentProps(tagID string) {
	r.mu.Lock()
	delete(r.components, tagID)
	r.mu.Unlock()
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.components)
}
