package virtualgrid

import "fmt"

// ViewportState is the observable scroll/size state the engine reacts to.
// It is mutated only in response to environment signals or explicit calls.
type ViewportState struct {
	ScrollOffset    int
	ContainerWidth  int
	ContainerHeight int
}

// Options configures an Engine.
type Options[T any] struct {
	Geometry Geometry

	// OverscanRows is the number of extra rows materialized above and below
	// the viewport. Negative means DefaultOverscanRows.
	OverscanRows int

	// KeyOf returns the stable identity of an item, unique within one
	// collection snapshot. Required.
	KeyOf func(T) string

	// RenderItem maps an item to its visual representation. Invoked once
	// per materialized slot per reconciliation. Required.
	RenderItem func(T) string

	// Scheduler defers recomputation to the host's frame boundary. Nil
	// means a CoalescingScheduler the host must Flush each frame; pass
	// SyncScheduler{} for immediate recomputation.
	Scheduler Scheduler
}

// Engine is the viewport controller tying the pieces together: it observes
// scroll and resize signals, derives the visible index range, reconciles
// render slots, and exposes the materialized result to the host. All
// methods must be called from the host's single event-loop context.
type Engine[T any] struct {
	geo      Geometry
	overscan int
	keyOf    func(T) string
	render   func(T) string
	sched    Scheduler

	items    []T
	viewport ViewportState

	layout      Layout
	layoutValid bool

	pool  *slotPool[T]
	slots []Slot[T]

	unsubs        []func()
	cancelPending func()
	mounted       bool
	destroyed     bool
	lastErr       error
}

// New validates the options and returns an engine with an empty collection.
func New[T any](opts Options[T]) (*Engine[T], error) {
	if err := opts.Geometry.Validate(); err != nil {
		return nil, err
	}
	if opts.KeyOf == nil {
		return nil, fmt.Errorf("%w: KeyOf", ErrMissingCallback)
	}
	if opts.RenderItem == nil {
		return nil, fmt.Errorf("%w: RenderItem", ErrMissingCallback)
	}

	overscan := opts.OverscanRows
	if overscan < 0 {
		overscan = DefaultOverscanRows
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewCoalescingScheduler()
	}

	return &Engine[T]{
		geo:      opts.Geometry,
		overscan: overscan,
		keyOf:    opts.KeyOf,
		render:   opts.RenderItem,
		sched:    sched,
		pool:     newSlotPool[T](opts.KeyOf),
	}, nil
}

// Mount sets the initial container size and subscribes to the environment
// signals. Either signal may be nil when the host drives the engine
// directly through ScrollTo and SetViewport. Mounting twice is a no-op.
func (e *Engine[T]) Mount(container Size, scroll Signal[int], resize Signal[Size]) {
	if e.mounted || e.destroyed {
		return
	}
	e.mounted = true
	e.viewport.ContainerWidth = container.Width
	e.viewport.ContainerHeight = container.Height
	e.layoutValid = false

	if scroll != nil {
		e.unsubs = append(e.unsubs, scroll.Subscribe(func(offset int) {
			e.viewport.ScrollOffset = offset
			e.requestRecompute()
		}))
	}
	if resize != nil {
		e.unsubs = append(e.unsubs, resize.Subscribe(func(sz Size) {
			e.SetViewport(sz.Width, sz.Height)
		}))
	}
	e.requestRecompute()
}

// SetItems replaces the collection. Duplicate keys are a caller
// precondition violation and are rejected before any state changes. When
// only per-item content changed (same count, same container width) the
// cached layout is reused and only the slot assignments refresh.
func (e *Engine[T]) SetItems(items []T) error {
	if e.destroyed {
		return nil
	}

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		key := e.keyOf(it)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}
	}

	if len(items) != len(e.items) {
		e.layoutValid = false
	}
	e.items = items
	e.requestRecompute()
	return nil
}

// ScrollTo moves the viewport to offset, clamped to the scrollable extent.
func (e *Engine[T]) ScrollTo(offset int) {
	if e.destroyed {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if e.layoutValid {
		if max := e.layout.MaxScroll(e.viewport.ContainerHeight); offset > max {
			offset = max
		}
	}
	e.viewport.ScrollOffset = offset
	e.requestRecompute()
}

// SetViewport updates the container size, invalidating the layout when the
// width changed (column count may differ).
func (e *Engine[T]) SetViewport(width, height int) {
	if e.destroyed {
		return
	}
	if width != e.viewport.ContainerWidth {
		e.layoutValid = false
	}
	e.viewport.ContainerWidth = width
	e.viewport.ContainerHeight = height
	e.requestRecompute()
}

// Destroy tears the engine down: pending recomputation is canceled, signal
// subscriptions are removed, and all slots are released. Idempotent, and
// safe to call before Mount.
func (e *Engine[T]) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	if e.cancelPending != nil {
		e.cancelPending()
		e.cancelPending = nil
	}
	for _, unsub := range e.unsubs {
		unsub()
	}
	e.unsubs = nil
	e.pool.releaseAll()
	e.slots = nil
	e.items = nil
}

// Slots returns the current materialized slots in index order. The slice is
// owned by the engine and valid until the next recomputation.
func (e *Engine[T]) Slots() []Slot[T] { return e.slots }

// LiveSlotCount returns the number of slots currently assigned to items.
func (e *Engine[T]) LiveSlotCount() int { return e.pool.liveCount() }

// AllocatedSlots returns the total number of slots ever created; it tracks
// the peak window size, not the collection size.
func (e *Engine[T]) AllocatedSlots() int { return e.pool.allocated() }

// Layout returns the current derived layout. The zero Layout is returned
// before the first recomputation.
func (e *Engine[T]) Layout() Layout {
	if !e.layoutValid {
		return Layout{}
	}
	return e.layout
}

// TotalExtent returns the total scrollable extent of the collection, used
// by the host to size its scrollable container.
func (e *Engine[T]) TotalExtent() int {
	if !e.layoutValid {
		return 0
	}
	return e.layout.TotalExtent
}

// Viewport returns the current observed viewport state.
func (e *Engine[T]) Viewport() ViewportState { return e.viewport }

// requestRecompute coalesces recomputation onto the host's frame boundary.
// A request superseded before its frame is dropped, never queued.
func (e *Engine[T]) requestRecompute() {
	if e.destroyed || !e.mounted {
		return
	}
	e.cancelPending = e.sched.Schedule(e.recompute)
}

func (e *Engine[T]) recompute() {
	if e.destroyed {
		return
	}
	e.cancelPending = nil

	if !e.layoutValid {
		e.layout = ComputeLayout(len(e.items), e.viewport.ContainerWidth, e.geo)
		e.layoutValid = true
	}

	// Stale offsets after a shrink clamp here as well, so the stored state
	// converges instead of drifting.
	if max := e.layout.MaxScroll(e.viewport.ContainerHeight); e.viewport.ScrollOffset > max {
		e.viewport.ScrollOffset = max
	}

	rng := VisibleRange(e.layout, e.viewport.ScrollOffset, e.viewport.ContainerHeight, e.overscan)
	slots, err := e.pool.reconcile(rng, e.layout, e.items)
	if err != nil {
		// SetItems rejects duplicate keys up front, so reconciliation can
		// only fail if the caller mutated the collection in place. Keep the
		// previous slots and surface the violation through Err.
		e.lastErr = err
		return
	}
	e.lastErr = nil
	for i := range slots {
		slots[i].Content = e.render(slots[i].Item)
	}
	e.slots = slots
}

// Err returns the precondition violation observed during the most recent
// reconciliation, if any.
func (e *Engine[T]) Err() error { return e.lastErr }
