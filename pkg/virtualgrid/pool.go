package virtualgrid

import (
	"fmt"
	"sort"
)

// Slot is one materialized item: a reusable render-node handle carrying the
// item currently assigned to it, its rendered content, and its absolute
// position in the scrollable plane. Slot IDs are stable for the lifetime of
// the engine; only the assignment changes as the visible window moves.
type Slot[T any] struct {
	ID      int
	Key     string
	Item    T
	Content string
	X       int
	Y       int
}

// slotPool recycles slots as the visible range shifts. Slots are created
// lazily up to the peak concurrently-visible count and never destroyed
// until teardown; this is the invariant that keeps node count bounded.
type slotPool[T any] struct {
	keyOf func(T) string

	byKey map[string]int // assigned key -> slot ID
	inUse map[int]string // slot ID -> assigned key
	free  []int
	next  int // next slot ID to mint
}

func newSlotPool[T any](keyOf func(T) string) *slotPool[T] {
	return &slotPool[T]{
		keyOf: keyOf,
		byKey: make(map[string]int),
		inUse: make(map[int]string),
	}
}

// reconcile assigns the items in rng to slots and returns them in index
// order. Items whose key already holds a slot keep it, so an item that
// merely shifts position is not re-mounted; items entering the range take a
// freed slot before a new one is minted.
func (p *slotPool[T]) reconcile(rng Range, l Layout, items []T) ([]Slot[T], error) {
	if rng.Empty() {
		p.releaseAll()
		return nil, nil
	}

	wanted := make(map[string]int, rng.Len())
	for i := rng.First; i <= rng.Last; i++ {
		key := p.keyOf(items[i])
		if _, dup := wanted[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		wanted[key] = i
	}

	// Release slots whose item left the range before assigning newcomers,
	// so freed slots are available for reuse in the same pass.
	for key, id := range p.byKey {
		if _, keep := wanted[key]; !keep {
			delete(p.byKey, key)
			delete(p.inUse, id)
			p.free = append(p.free, id)
		}
	}

	// Reuse lowest IDs first. This keeps assignment deterministic, so
	// scrolling away and back restores the exact slot-to-item mapping.
	sort.Sort(sort.Reverse(sort.IntSlice(p.free)))

	out := make([]Slot[T], 0, rng.Len())
	for i := rng.First; i <= rng.Last; i++ {
		item := items[i]
		key := p.keyOf(item)

		id, ok := p.byKey[key]
		if !ok {
			id = p.take()
			p.byKey[key] = id
			p.inUse[id] = key
		}

		x, y := l.PositionOf(i)
		out = append(out, Slot[T]{ID: id, Key: key, Item: item, X: x, Y: y})
	}
	return out, nil
}

func (p *slotPool[T]) take() int {
	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		return id
	}
	id := p.next
	p.next++
	return id
}

// liveCount returns the number of slots currently assigned to items.
func (p *slotPool[T]) liveCount() int { return len(p.inUse) }

// allocated returns the total number of slots ever minted. It tracks the
// peak window size, not the collection size.
func (p *slotPool[T]) allocated() int { return p.next }

func (p *slotPool[T]) releaseAll() {
	for key, id := range p.byKey {
		delete(p.byKey, key)
		delete(p.inUse, id)
		p.free = append(p.free, id)
	}
}
