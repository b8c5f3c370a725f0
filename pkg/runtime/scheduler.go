package runtime

import "sync"

// Scheduler collapses re-render requests so that any number of SetState
// calls on one component within a scheduling turn produce exactly one
// update transition when the host next flushes. Requests for distinct
// components batch into the same flush, each updated exactly once.
type Scheduler struct {
	queue  []*Component
	queued map[*Component]bool
	mu     sync.Mutex

	// OnNeedsFlush is called when a component is newly scheduled,
	// signalling the host that a flush should run on its next turn.
	OnNeedsFlush func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{queued: make(map[*Component]bool)}
}

// Schedule enqueues a component for the next flush. Scheduling a component
// that is already queued is a no-op.
func (s *Scheduler) Schedule(c *Component) {
	if c == nil {
		return
	}
	added := func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.queued[c] {
			return false
		}
		if s.queued == nil {
			s.queued = make(map[*Component]bool)
		}
		s.queued[c] = true
		s.queue = append(s.queue, c)
		return true
	}()

	if added && s.OnNeedsFlush != nil {
		s.OnNeedsFlush()
	}
}

// Pending returns the number of components awaiting an update.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Flush drains the queue, running each queued component's update transition
// once in enqueue order. Updates scheduled during the flush run in the same
// call, after the current batch. Components unmounted since scheduling are
// skipped.
func (s *Scheduler) Flush() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		queue := s.queue
		s.queue = nil
		clear(s.queued)
		s.mu.Unlock()

		for _, c := range queue {
			if !c.mounted {
				continue
			}
			c.performUpdate()
		}
	}
}
