package virtualgrid

// Signal is an injected environment notification source: scroll position
// changes, container resizes. Subscribing returns an unsubscribe handle so
// the engine can detach cleanly on teardown. Keeping this an interface lets
// the geometry and recycling logic run under test without a live surface.
type Signal[E any] interface {
	Subscribe(fn func(E)) (unsubscribe func())
}

// Size is a container dimension event.
type Size struct {
	Width  int
	Height int
}

// Feed is the standard Signal implementation: a plain fan-out emitter the
// host pushes events into from its own event loop.
type Feed[E any] struct {
	listeners []feedListener[E]
	nextID    int
}

type feedListener[E any] struct {
	id int
	fn func(E)
}

// NewFeed returns an empty feed.
func NewFeed[E any]() *Feed[E] {
	return &Feed[E]{}
}

// Subscribe registers fn and returns a handle that removes it. The handle
// is safe to call more than once.
func (f *Feed[E]) Subscribe(fn func(E)) func() {
	id := f.nextID
	f.nextID++
	f.listeners = append(f.listeners, feedListener[E]{id: id, fn: fn})

	return func() {
		for i, l := range f.listeners {
			if l.id == id {
				f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers ev to every listener in subscription order.
func (f *Feed[E]) Emit(ev E) {
	for _, l := range f.listeners {
		l.fn(ev)
	}
}

// ListenerCount returns the number of registered listeners. Teardown tests
// assert this drops to zero after Destroy.
func (f *Feed[E]) ListenerCount() int { return len(f.listeners) }

// Scheduler defers a recomputation to the host's frame boundary. Scheduling
// while a callback is already pending replaces it (last-write-wins), which
// bounds work to one recomputation per frame no matter how many signals
// arrive in between.
type Scheduler interface {
	Schedule(fn func()) (cancel func())
}

// SyncScheduler runs callbacks immediately. Useful for tests and for hosts
// that already rate-limit their own event delivery.
type SyncScheduler struct{}

func (SyncScheduler) Schedule(fn func()) (cancel func()) {
	fn()
	return func() {}
}

// CoalescingScheduler holds at most one pending callback and runs it when
// the host calls Flush, typically once per display frame.
type CoalescingScheduler struct {
	pending func()
	gen     int
}

// NewCoalescingScheduler returns a scheduler with nothing pending.
func NewCoalescingScheduler() *CoalescingScheduler {
	return &CoalescingScheduler{}
}

// Schedule replaces any pending callback with fn. The returned cancel drops
// fn if it has not run yet; it is a no-op once a newer callback has taken
// its place.
func (s *CoalescingScheduler) Schedule(fn func()) (cancel func()) {
	s.gen++
	gen := s.gen
	s.pending = fn
	return func() {
		if s.gen == gen {
			s.pending = nil
		}
	}
}

// Flush runs the pending callback, if any.
func (s *CoalescingScheduler) Flush() {
	if s.pending == nil {
		return
	}
	fn := s.pending
	s.pending = nil
	fn()
}

// Pending reports whether a callback is waiting for the next Flush.
func (s *CoalescingScheduler) Pending() bool { return s.pending != nil }
