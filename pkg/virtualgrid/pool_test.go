package virtualgrid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	key   string
	title string
}

func makeItems(n int) []testItem {
	items := make([]testItem, n)
	for i := range items {
		items[i] = testItem{key: fmt.Sprintf("item-%d", i), title: fmt.Sprintf("Item %d", i)}
	}
	return items
}

func itemKey(it testItem) string { return it.key }

func assignments(slots []Slot[testItem]) map[string]int {
	m := make(map[string]int, len(slots))
	for _, s := range slots {
		m[s.Key] = s.ID
	}
	return m
}

func TestSlotPool_InitialAssignment(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 0}
	l := ComputeLayout(100, 300, geo)
	p := newSlotPool(itemKey)
	items := makeItems(100)

	slots, err := p.reconcile(Range{First: 0, Last: 3}, l, items)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	for i, s := range slots {
		assert.Equal(t, i, s.ID, "fresh slots mint sequential IDs")
		assert.Equal(t, items[i].key, s.Key)
		assert.Equal(t, 0, s.X)
		assert.Equal(t, i*200, s.Y)
	}
	assert.Equal(t, 4, p.liveCount())
	assert.Equal(t, 4, p.allocated())
}

func TestSlotPool_KeyContinuity(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 0}
	l := ComputeLayout(100, 300, geo)
	p := newSlotPool(itemKey)
	items := makeItems(100)

	first, err := p.reconcile(Range{First: 0, Last: 4}, l, items)
	require.NoError(t, err)
	before := assignments(first)

	// Shift the window by two rows: items 2..4 stay visible.
	second, err := p.reconcile(Range{First: 2, Last: 6}, l, items)
	require.NoError(t, err)
	after := assignments(second)

	for _, key := range []string{"item-2", "item-3", "item-4"} {
		assert.Equal(t, before[key], after[key], "surviving item %s keeps its slot", key)
	}
	assert.Equal(t, 5, p.liveCount())
	assert.Equal(t, 5, p.allocated(), "newcomers reuse freed slots before minting")
}

func TestSlotPool_DisjointWindowReusesSlots(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 0}
	l := ComputeLayout(1000, 300, geo)
	p := newSlotPool(itemKey)
	items := makeItems(1000)

	_, err := p.reconcile(Range{First: 0, Last: 9}, l, items)
	require.NoError(t, err)

	_, err = p.reconcile(Range{First: 500, Last: 509}, l, items)
	require.NoError(t, err)

	assert.Equal(t, 10, p.liveCount())
	assert.Equal(t, 10, p.allocated(), "slot count must not grow when the window jumps")
}

func TestSlotPool_RoundTripRestoresAssignments(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 0}
	l := ComputeLayout(1000, 300, geo)
	p := newSlotPool(itemKey)
	items := makeItems(1000)

	initial, err := p.reconcile(Range{First: 0, Last: 9}, l, items)
	require.NoError(t, err)

	_, err = p.reconcile(Range{First: 500, Last: 509}, l, items)
	require.NoError(t, err)

	back, err := p.reconcile(Range{First: 0, Last: 9}, l, items)
	require.NoError(t, err)

	assert.Equal(t, assignments(initial), assignments(back))
}

func TestSlotPool_EmptyRangeReleasesEverything(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 0}
	l := ComputeLayout(100, 300, geo)
	p := newSlotPool(itemKey)
	items := makeItems(100)

	_, err := p.reconcile(Range{First: 0, Last: 9}, l, items)
	require.NoError(t, err)
	require.Equal(t, 10, p.liveCount())

	slots, err := p.reconcile(EmptyRange, l, items)
	require.NoError(t, err)
	assert.Nil(t, slots)
	assert.Equal(t, 0, p.liveCount())
	assert.Equal(t, 10, p.allocated(), "released slots stay pooled, not destroyed")
}

func TestSlotPool_DuplicateKeysReported(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 0}
	l := ComputeLayout(3, 300, geo)
	p := newSlotPool(itemKey)

	items := []testItem{
		{key: "a", title: "A"},
		{key: "b", title: "B"},
		{key: "a", title: "A again"},
	}

	_, err := p.reconcile(Range{First: 0, Last: 2}, l, items)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}
